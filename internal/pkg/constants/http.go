package constants

// HTTP headers
const (
	HeaderRepairToken = "X-Repair-Token"
	HeaderAPIKey      = "X-API-Key"
	HeaderRequestID   = "X-Request-ID"
)

// Echo context keys
const (
	CtxRepairClaims = "repair_claims"
	CtxRequestID    = "request_id"
	CtxUserID       = "user_id"
)

// Access token scopes
const (
	TokenScopeGlobal = "global"
	TokenScopeJob    = "job"
)
