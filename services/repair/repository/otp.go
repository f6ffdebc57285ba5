package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/canyfix/repairdesk/internal/pkg/constants"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/go-redis/redis/v8"
)

func otpKey(purpose models.OTPPurpose, phone string, leadID int64) string {
	return fmt.Sprintf(constants.KeyRepairOTP, purpose, phone, leadID)
}

func otpAttemptsKey(purpose models.OTPPurpose, phone string, leadID int64) string {
	return fmt.Sprintf(constants.KeyRepairOTPAttempts, purpose, phone, leadID)
}

// StoreOTP saves a challenge until its expiry, replacing any earlier
// challenge for the same key and resetting its attempt counter
func (r *RepairRepo) StoreOTP(ctx context.Context, otp *models.OTP) error {
	ttl := time.Until(otp.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("otp already expired")
	}

	otpJSON, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	key := otpKey(otp.Purpose, otp.Phone, otp.LeadID)
	if err := r.redisClient.Set(ctx, key, otpJSON, ttl); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}
	if err := r.redisClient.Delete(ctx, otpAttemptsKey(otp.Purpose, otp.Phone, otp.LeadID)); err != nil {
		return fmt.Errorf("failed to reset OTP attempts: %w", err)
	}

	return nil
}

// GetOTP retrieves the pending challenge, or models.ErrOTPNotFound once it
// expired or was consumed
func (r *RepairRepo) GetOTP(ctx context.Context, purpose models.OTPPurpose, phone string, leadID int64) (*models.OTP, error) {
	val, err := r.redisClient.Get(ctx, otpKey(purpose, phone, leadID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrOTPNotFound
		}
		return nil, fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	return &otp, nil
}

// DeleteOTP consumes a challenge together with its attempt counter
func (r *RepairRepo) DeleteOTP(ctx context.Context, purpose models.OTPPurpose, phone string, leadID int64) error {
	err := r.redisClient.Delete(ctx, otpKey(purpose, phone, leadID), otpAttemptsKey(purpose, phone, leadID))
	if err != nil {
		return fmt.Errorf("failed to delete OTP from Redis: %w", err)
	}
	return nil
}

// IncrementOTPAttempts counts a failed verification. The counter lives no
// longer than ttl.
func (r *RepairRepo) IncrementOTPAttempts(ctx context.Context, purpose models.OTPPurpose, phone string, leadID int64, ttl time.Duration) (int64, error) {
	count, err := r.redisClient.IncrWithExpire(ctx, otpAttemptsKey(purpose, phone, leadID), ttl)
	if err != nil {
		return 0, fmt.Errorf("failed to count OTP attempt: %w", err)
	}
	return count, nil
}
