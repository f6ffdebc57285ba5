package repair

import (
	"context"
	"time"

	"github.com/canyfix/repairdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/canyfix/repairdesk/services/repair RepairRepo

// RepairRepo defines the repair repository interface
type RepairRepo interface {
	// Job management
	GetJobByID(ctx context.Context, id int64) (*models.Job, error)
	StartJob(ctx context.Context, id int64, fromStatus string, repairmanID int64, startedAt time.Time) error
	CompleteJob(ctx context.Context, id int64, completedAt time.Time) error
	AssignRepairman(ctx context.Context, jobID, repairmanID int64) error

	// Repairman management
	GetRepairmanByID(ctx context.Context, id int64) (*models.Repairman, error)
	GetRepairmanByPhone(ctx context.Context, phone string) (*models.Repairman, error)
	ListRepairmen(ctx context.Context) ([]*models.Repairman, error)
	CreateRepairman(ctx context.Context, repairman *models.Repairman) error
	DeleteRepairman(ctx context.Context, id int64) error

	// OTP management
	StoreOTP(ctx context.Context, otp *models.OTP) error
	GetOTP(ctx context.Context, purpose models.OTPPurpose, phone string, leadID int64) (*models.OTP, error)
	DeleteOTP(ctx context.Context, purpose models.OTPPurpose, phone string, leadID int64) error
	IncrementOTPAttempts(ctx context.Context, purpose models.OTPPurpose, phone string, leadID int64, ttl time.Duration) (int64, error)
}
