package models

import "errors"

// Domain errors returned by the repair usecase and mapped to HTTP status codes
// by the handlers
var (
	ErrJobNotFound           = errors.New("job not found")
	ErrRepairmanNotFound     = errors.New("repairman not found")
	ErrRepairmanExists       = errors.New("repairman already registered")
	ErrRepairmanNameRequired = errors.New("repairman name is required")
	ErrInvalidPhone          = errors.New("invalid phone number")
	ErrInvalidOTPPurpose     = errors.New("invalid otp type")
	ErrLeadIDRequired        = errors.New("lead_id is required")
	ErrPhoneMismatch         = errors.New("phone number does not match the job's customer")
	ErrOTPNotFound           = errors.New("otp not found or expired")
	ErrInvalidOTP            = errors.New("invalid otp code")
	ErrTooManyOTPAttempts    = errors.New("too many otp attempts")
	ErrUnauthorized          = errors.New("missing or invalid access token")
	ErrForbiddenScope        = errors.New("access token is not valid for this job")
	ErrJobNotStartable       = errors.New("job cannot be started from its current status")
	ErrJobNotInProgress      = errors.New("job is not in progress")
	ErrStatusChanged         = errors.New("job status changed concurrently")
)
