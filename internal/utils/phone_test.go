package utils

import (
	"testing"

	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		expected    string
		expectError bool
	}{
		{name: "Bare number", phone: "9876543210", expected: "9876543210"},
		{name: "With +91", phone: "+919876543210", expected: "9876543210"},
		{name: "With 91", phone: "919876543210", expected: "9876543210"},
		{name: "With leading zero", phone: "09123456789", expected: "9123456789"},
		{name: "With spaces", phone: "+91 98765 43210", expected: "9876543210"},
		{name: "With dashes", phone: "98765-43210", expected: "9876543210"},
		{name: "Starts with 9 and 1", phone: "9191234567", expected: "9191234567"},
		{name: "Too short", phone: "987654321", expectError: true},
		{name: "Too long", phone: "98765432101", expectError: true},
		{name: "Landline prefix", phone: "1234567890", expectError: true},
		{name: "Masked value", phone: "XXXXXX3210", expectError: true},
		{name: "Empty", phone: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.phone)

			if tt.expectError {
				assert.ErrorIs(t, err, models.ErrInvalidPhone)
				assert.Empty(t, got)
				assert.False(t, IsValidPhone(tt.phone))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
				assert.True(t, IsValidPhone(tt.phone))
			}
		})
	}
}

func TestMaskJobPhone(t *testing.T) {
	assert.Equal(t, "XXXXXX6789", MaskJobPhone("9123456789"))
	assert.Equal(t, "XXXXXX6789", MaskJobPhone("+91 91234-56789"))
	assert.Equal(t, "XXXXXX12", MaskJobPhone("12"))

	// a masked phone never passes validation
	assert.False(t, IsValidPhone(MaskJobPhone("9123456789")))
}
