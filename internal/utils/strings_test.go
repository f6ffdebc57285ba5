package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		assert.Len(t, code, OTPLength)
		assert.True(t, IsValidOTP(code), "generated code %q should be numeric", code)
		seen[code] = true
	}

	// 200 draws from 10^4 codes should not collapse to a handful
	assert.Greater(t, len(seen), 100)
}

func TestIsValidOTP(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"1234", true},
		{"0000", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"", false},
		{"١٢٣٤", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidOTP(tt.code))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		expected  string
	}{
		{"Shorter than max", "hello", 10, "hello"},
		{"Exact length", "hello", 5, "hello"},
		{"Needs truncation", "Your Canyfix code is 1234", 12, "Your Cany..."},
		{"Tiny max", "hello", 2, "..."},
		{"Unicode", "नमस्ते दुनिया", 5, "नम..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.maxLength))
		})
	}
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "******3210", MaskPhoneNumber("9876543210"))
	assert.Equal(t, "********3210", MaskPhoneNumber("+91 98765-43210"))
	assert.Equal(t, "123", MaskPhoneNumber("123"))
}
