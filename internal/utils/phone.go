package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/canyfix/repairdesk/internal/pkg/models"
)

// Indian mobile numbers are ten digits starting with 6-9
var mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// NormalizePhone strips formatting and the +91, 91 or 0 prefix and returns the
// bare ten digit number
func NormalizePhone(phone string) (string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.TrimPrefix(stripped, "+")

	switch {
	case len(stripped) == 12 && strings.HasPrefix(stripped, "91"):
		stripped = stripped[2:]
	case len(stripped) == 11 && strings.HasPrefix(stripped, "0"):
		stripped = stripped[1:]
	}

	if !mobilePattern.MatchString(stripped) {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidPhone, phone)
	}
	return stripped, nil
}

// IsValidPhone reports whether phone normalizes to a ten digit mobile number
func IsValidPhone(phone string) bool {
	_, err := NormalizePhone(phone)
	return err == nil
}

// MaskJobPhone renders the customer phone of a job shown without access: a
// fixed letter prefix followed by the last four digits. The result never
// parses as a phone number.
func MaskJobPhone(phone string) string {
	digits := regexp.MustCompile(`[^0-9]`).ReplaceAllString(phone, "")
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return models.MaskedPhonePrefix + digits
}
