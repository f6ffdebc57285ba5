package models

import (
	"time"
)

// OTPPurpose tags what a one-time code proves
type OTPPurpose string

const (
	// OTPPurposeLogin verifies the repairman's own phone
	OTPPurposeLogin OTPPurpose = "login"
	// OTPPurposeJobClose verifies the customer's phone before a job is closed
	OTPPurposeJobClose OTPPurpose = "job_close"
)

// Valid reports whether p is a known purpose
func (p OTPPurpose) Valid() bool {
	return p == OTPPurposeLogin || p == OTPPurposeJobClose
}

// OTP is a pending challenge as stored in Redis. The code itself is never
// stored, only its bcrypt hash.
type OTP struct {
	ID        string     `json:"id"`
	Phone     string     `json:"phone"`
	Purpose   OTPPurpose `json:"purpose"`
	LeadID    int64      `json:"lead_id,omitempty"`
	CodeHash  string     `json:"code_hash"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// SendOTPRequest represents a request to send a one-time code
type SendOTPRequest struct {
	PhoneNumber string     `json:"phone_number"`
	Type        OTPPurpose `json:"type"`
	LeadID      int64      `json:"lead_id,omitempty"`
}

// VerifyOTPRequest represents a request to verify a one-time code
type VerifyOTPRequest struct {
	PhoneNumber string     `json:"phone_number"`
	Code        string     `json:"code"`
	Type        OTPPurpose `json:"type"`
	LeadID      int64      `json:"lead_id,omitempty"`
}

// VerifyOTPResponse is returned by verify-otp. A wrong or expired code is not
// a transport error: Success is false and Message explains why.
type VerifyOTPResponse struct {
	Success     bool   `json:"success"`
	Token       string `json:"token,omitempty"`
	RepairmanID int64  `json:"repairman_id,omitempty"`
	ExpiresAt   int64  `json:"expires_at,omitempty"`
	Message     string `json:"message"`
}

// OTPDispatchEvent is published for the notifier to deliver by SMS
type OTPDispatchEvent struct {
	Phone     string     `json:"phone"`
	Purpose   OTPPurpose `json:"purpose"`
	LeadID    int64      `json:"lead_id,omitempty"`
	Code      string     `json:"code"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
}
