package gate

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds surfaced by the gate. Match them with errors.Is.
var (
	ErrOtpSendFailed   = errors.New("otp send failed")
	ErrOtpVerifyFailed = errors.New("otp verification failed")
	ErrActionRejected  = errors.New("action rejected")
	ErrLoadFailed      = errors.New("load failed")
)

// Error reports a failed gate operation. Kind is one of the Err* sentinels;
// Err is the underlying cause, if any.
type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// APIError is a non-2xx answer from the job API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("job api returned %d: %s", e.Status, e.Message)
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func isUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}
