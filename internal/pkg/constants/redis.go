package constants

// Redis key formats
const (
	// Repair portal
	KeyRepairOTP         = "repair:otp:%s:%s:%d"          // Format: repair:otp:{purpose}:{phone}:{lead_id}
	KeyRepairOTPAttempts = "repair:otp:attempts:%s:%s:%d" // Format: repair:otp:attempts:{purpose}:{phone}:{lead_id}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
