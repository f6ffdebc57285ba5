package usecase

import (
	"testing"
	"time"

	"github.com/canyfix/repairdesk/internal/pkg/constants"
	jwtpkg "github.com/canyfix/repairdesk/internal/pkg/jwt"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/canyfix/repairdesk/services/repair/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	repairmanPhone = "9876543210"
	customerPhone  = "9123456789"
	jobID          = int64(42)
	repairmanID    = int64(7)
)

func init() {
	otpHashCost = bcrypt.MinCost
}

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "test-issuer",
			Scope:      constants.TokenScopeGlobal,
		},
		OTP: models.OTPConfig{
			TTLSeconds:  300,
			MaxAttempts: 3,
		},
	}
}

func setupUC(t *testing.T, cfg *models.Config) (*RepairUC, *mocks.MockRepairRepo, *mocks.MockRepairGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockRepairRepo(ctrl)
	mockGW := mocks.NewMockRepairGW(ctrl)

	return NewRepairUC(mockRepo, mockGW, cfg), mockRepo, mockGW
}

func newJob(status string) *models.Job {
	return &models.Job{
		ID:            jobID,
		CustomerName:  "Asha",
		CustomerPhone: customerPhone,
		Address:       "12 MG Road, Bengaluru",
		ServiceIssues: []models.ServiceIssue{{IssueName: "Screen replacement", Price: 2500}},
		Status:        status,
		UpdatedAt:     time.Now(),
	}
}

func newRepairman() *models.Repairman {
	return &models.Repairman{ID: repairmanID, Name: "Ravi", PhoneNumber: repairmanPhone}
}

func pendingOTP(t *testing.T, purpose models.OTPPurpose, phone string, leadID int64, code string) *models.OTP {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.OTP{
		ID:        "otp-1",
		Phone:     phone,
		Purpose:   purpose,
		LeadID:    leadID,
		CodeHash:  string(hash),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
}

func globalClaims() *jwtpkg.Claims {
	return &jwtpkg.Claims{RepairmanID: repairmanID, Phone: repairmanPhone, Scope: constants.TokenScopeGlobal}
}

func jobClaims(leadID int64) *jwtpkg.Claims {
	return &jwtpkg.Claims{RepairmanID: repairmanID, Phone: repairmanPhone, Scope: constants.TokenScopeJob, LeadID: leadID}
}

type mockRepoT = mocks.MockRepairRepo
