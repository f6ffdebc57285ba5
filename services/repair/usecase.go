package repair

import (
	"context"

	jwtpkg "github.com/canyfix/repairdesk/internal/pkg/jwt"
	"github.com/canyfix/repairdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/canyfix/repairdesk/services/repair RepairUC

// RepairUC represents the repairman portal usecase interface. Claims are nil
// for anonymous callers.
type RepairUC interface {
	// job access
	GetJob(ctx context.Context, jobID int64, claims *jwtpkg.Claims) (*models.Job, error)
	StartJob(ctx context.Context, jobID int64, claims *jwtpkg.Claims) (*models.Job, error)
	CloseJob(ctx context.Context, jobID int64, claims *jwtpkg.Claims, customerOTP string) (*models.Job, error)

	// handle OTP
	SendOTP(ctx context.Context, req *models.SendOTPRequest, claims *jwtpkg.Claims) error
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest, claims *jwtpkg.Claims) (*models.VerifyOTPResponse, error)

	// admin
	ListRepairmen(ctx context.Context) ([]*models.Repairman, error)
	CreateRepairman(ctx context.Context, req *models.RepairmanCreate) (*models.Repairman, error)
	DeleteRepairman(ctx context.Context, id int64) error
	AssignRepairman(ctx context.Context, jobID, repairmanID int64) (*models.Job, error)
}
