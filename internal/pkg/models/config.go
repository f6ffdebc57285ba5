package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	OTP      OTPConfig
	Admin    AdminConfig
	SMS      SMSConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address     string
	LookupdAddr []string
	Channel     string
}

// JWTConfig contains repair access token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
	// Scope is either TokenScopeGlobal or TokenScopeJob
	Scope string
}

// OTPConfig contains the one-time code policy
type OTPConfig struct {
	TTLSeconds        int
	MaxAttempts       int // 0 disables the cap
	SendLimit         int // 0 disables rate limiting of send-otp
	SendWindowSeconds int
	FixedCode         string // development only
}

// AdminConfig contains settings for the admin endpoints
type AdminConfig struct {
	APIKey string
}

// SMSConfig contains the SMS provider used by the notifier
type SMSConfig struct {
	ProviderURL string
	APIKey      string
	SenderID    string
	Timeout     int // in seconds
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
