package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/canyfix/repairdesk/internal/pkg/constants"
	jwtpkg "github.com/canyfix/repairdesk/internal/pkg/jwt"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSendOTP_Login_Success(t *testing.T) {
	uc, mockRepo, mockGW := setupUC(t, testConfig())

	var stored *models.OTP
	var published *models.OTPDispatchEvent

	mockRepo.EXPECT().GetRepairmanByPhone(gomock.Any(), repairmanPhone).Return(newRepairman(), nil)
	mockRepo.EXPECT().StoreOTP(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, otp *models.OTP) error {
			stored = otp
			return nil
		})
	mockGW.EXPECT().PublishOTPDispatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event *models.OTPDispatchEvent) error {
			published = event
			return nil
		})

	err := uc.SendOTP(context.Background(), &models.SendOTPRequest{
		PhoneNumber: "+91 98765-43210",
		Type:        models.OTPPurposeLogin,
		LeadID:      jobID,
	}, nil)

	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, published)

	assert.Equal(t, repairmanPhone, stored.Phone)
	assert.Equal(t, int64(0), stored.LeadID, "global scope login challenges are not bound to a job")
	assert.Len(t, published.Code, 4)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.CodeHash), []byte(published.Code)))
	assert.Contains(t, published.Message, published.Code)
	assert.Equal(t, 5*time.Minute, stored.ExpiresAt.Sub(stored.CreatedAt))
}

func TestSendOTP_FixedCode(t *testing.T) {
	cfg := testConfig()
	cfg.OTP.FixedCode = "0000"
	uc, mockRepo, mockGW := setupUC(t, cfg)

	mockRepo.EXPECT().GetRepairmanByPhone(gomock.Any(), repairmanPhone).Return(newRepairman(), nil)
	mockRepo.EXPECT().StoreOTP(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishOTPDispatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event *models.OTPDispatchEvent) error {
			assert.Equal(t, "0000", event.Code)
			return nil
		})

	err := uc.SendOTP(context.Background(), &models.SendOTPRequest{PhoneNumber: repairmanPhone, Type: models.OTPPurposeLogin}, nil)

	assert.NoError(t, err)
}

func TestSendOTP_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name        string
		req         *models.SendOTPRequest
		expectedErr error
	}{
		{
			name:        "Invalid Phone",
			req:         &models.SendOTPRequest{PhoneNumber: "12345", Type: models.OTPPurposeLogin},
			expectedErr: models.ErrInvalidPhone,
		},
		{
			name:        "Unknown Purpose",
			req:         &models.SendOTPRequest{PhoneNumber: repairmanPhone, Type: "signup"},
			expectedErr: models.ErrInvalidOTPPurpose,
		},
		{
			name:        "Close Without Lead",
			req:         &models.SendOTPRequest{PhoneNumber: customerPhone, Type: models.OTPPurposeJobClose},
			expectedErr: models.ErrLeadIDRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, _ := setupUC(t, testConfig())

			err := uc.SendOTP(context.Background(), tc.req, nil)

			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestSendOTP_Login_UnregisteredPhone(t *testing.T) {
	uc, mockRepo, _ := setupUC(t, testConfig())

	mockRepo.EXPECT().GetRepairmanByPhone(gomock.Any(), "9000000000").Return(nil, models.ErrRepairmanNotFound)

	err := uc.SendOTP(context.Background(), &models.SendOTPRequest{PhoneNumber: "9000000000", Type: models.OTPPurposeLogin}, nil)

	assert.ErrorIs(t, err, models.ErrRepairmanNotFound)
}

func TestSendOTP_Login_JobScope(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Scope = constants.TokenScopeJob

	t.Run("Lead Required", func(t *testing.T) {
		uc, mockRepo, _ := setupUC(t, cfg)
		mockRepo.EXPECT().GetRepairmanByPhone(gomock.Any(), repairmanPhone).Return(newRepairman(), nil)

		err := uc.SendOTP(context.Background(), &models.SendOTPRequest{PhoneNumber: repairmanPhone, Type: models.OTPPurposeLogin}, nil)

		assert.ErrorIs(t, err, models.ErrLeadIDRequired)
	})

	t.Run("Challenge Bound To Lead", func(t *testing.T) {
		uc, mockRepo, mockGW := setupUC(t, cfg)
		mockRepo.EXPECT().GetRepairmanByPhone(gomock.Any(), repairmanPhone).Return(newRepairman(), nil)
		mockRepo.EXPECT().GetJobByID(gomock.Any(), jobID).Return(newJob(models.JobStatusNew), nil)
		mockRepo.EXPECT().StoreOTP(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, otp *models.OTP) error {
				assert.Equal(t, jobID, otp.LeadID)
				return nil
			})
		mockGW.EXPECT().PublishOTPDispatch(gomock.Any(), gomock.Any()).Return(nil)

		err := uc.SendOTP(context.Background(), &models.SendOTPRequest{PhoneNumber: repairmanPhone, Type: models.OTPPurposeLogin, LeadID: jobID}, nil)

		assert.NoError(t, err)
	})
}

func TestSendOTP_JobClose(t *testing.T) {
	testCases := []struct {
		name        string
		phone       string
		job         *models.Job
		expectedErr error
	}{
		{
			name:        "Job Not In Progress",
			phone:       customerPhone,
			job:         newJob(models.JobStatusNew),
			expectedErr: models.ErrJobNotInProgress,
		},
		{
			name:        "Phone Is Not The Customer's",
			phone:       repairmanPhone,
			job:         newJob(models.JobStatusInProgress),
			expectedErr: models.ErrPhoneMismatch,
		},
		{
			name:  "Success",
			phone: "0" + customerPhone,
			job:   newJob(models.JobStatusInProgress),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, mockRepo, mockGW := setupUC(t, testConfig())

			mockRepo.EXPECT().GetJobByID(gomock.Any(), jobID).Return(tc.job, nil)
			if tc.expectedErr == nil {
				mockRepo.EXPECT().StoreOTP(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, otp *models.OTP) error {
						assert.Equal(t, customerPhone, otp.Phone)
						assert.Equal(t, jobID, otp.LeadID)
						assert.Equal(t, models.OTPPurposeJobClose, otp.Purpose)
						return nil
					})
				mockGW.EXPECT().PublishOTPDispatch(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := uc.SendOTP(context.Background(), &models.SendOTPRequest{
				PhoneNumber: tc.phone,
				Type:        models.OTPPurposeJobClose,
				LeadID:      jobID,
			}, globalClaims())

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSendOTP_JobClose_RequiresToken(t *testing.T) {
	testCases := []struct {
		name        string
		phone       string
		claims      *jwtpkg.Claims
		expectedErr error
	}{
		{name: "Anonymous Right Number", phone: customerPhone, expectedErr: models.ErrUnauthorized},
		{name: "Anonymous Wrong Number", phone: repairmanPhone, expectedErr: models.ErrUnauthorized},
		{name: "Token For Another Job", phone: customerPhone, claims: jobClaims(jobID + 1), expectedErr: models.ErrForbiddenScope},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// no job lookup, storage or dispatch may happen
			uc, _, _ := setupUC(t, testConfig())

			err := uc.SendOTP(context.Background(), &models.SendOTPRequest{
				PhoneNumber: tc.phone,
				Type:        models.OTPPurposeJobClose,
				LeadID:      jobID,
			}, tc.claims)

			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestSendOTP_JobClose_JobScopedToken(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Scope = constants.TokenScopeJob
	uc, mockRepo, mockGW := setupUC(t, cfg)

	mockRepo.EXPECT().GetJobByID(gomock.Any(), jobID).Return(newJob(models.JobStatusInProgress), nil)
	mockRepo.EXPECT().StoreOTP(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishOTPDispatch(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.SendOTP(context.Background(), &models.SendOTPRequest{
		PhoneNumber: customerPhone,
		Type:        models.OTPPurposeJobClose,
		LeadID:      jobID,
	}, jobClaims(jobID))

	assert.NoError(t, err)
}

func TestSendOTP_PublishFailureDiscardsChallenge(t *testing.T) {
	uc, mockRepo, mockGW := setupUC(t, testConfig())

	mockRepo.EXPECT().GetRepairmanByPhone(gomock.Any(), repairmanPhone).Return(newRepairman(), nil)
	mockRepo.EXPECT().StoreOTP(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishOTPDispatch(gomock.Any(), gomock.Any()).Return(errors.New("nsqd down"))
	mockRepo.EXPECT().DeleteOTP(gomock.Any(), models.OTPPurposeLogin, repairmanPhone, int64(0)).Return(nil)

	err := uc.SendOTP(context.Background(), &models.SendOTPRequest{PhoneNumber: repairmanPhone, Type: models.OTPPurposeLogin}, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to dispatch OTP")
}

func TestVerifyOTP_Login_Success(t *testing.T) {
	cfg := testConfig()
	uc, mockRepo, _ := setupUC(t, cfg)

	otp := pendingOTP(t, models.OTPPurposeLogin, repairmanPhone, 0, "1234")
	mockRepo.EXPECT().GetOTP(gomock.Any(), models.OTPPurposeLogin, repairmanPhone, int64(0)).Return(otp, nil)
	mockRepo.EXPECT().DeleteOTP(gomock.Any(), models.OTPPurposeLogin, repairmanPhone, int64(0)).Return(nil)
	mockRepo.EXPECT().GetRepairmanByPhone(gomock.Any(), repairmanPhone).Return(newRepairman(), nil)

	resp, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		PhoneNumber: repairmanPhone,
		Code:        "1234",
		Type:        models.OTPPurposeLogin,
	}, nil)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, repairmanID, resp.RepairmanID)
	assert.NotZero(t, resp.ExpiresAt)

	claims, err := jwtpkg.ValidateToken(resp.Token, cfg.JWT)
	require.NoError(t, err)
	assert.Equal(t, repairmanID, claims.RepairmanID)
	assert.Equal(t, constants.TokenScopeGlobal, claims.Scope)
	assert.True(t, claims.AllowsJob(jobID))
}

func TestVerifyOTP_Login_JobScope(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Scope = constants.TokenScopeJob

	t.Run("Lead Required", func(t *testing.T) {
		uc, _, _ := setupUC(t, cfg)

		_, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
			PhoneNumber: repairmanPhone, Code: "1234", Type: models.OTPPurposeLogin,
		}, nil)

		assert.ErrorIs(t, err, models.ErrLeadIDRequired)
	})

	t.Run("Token Bound To Lead", func(t *testing.T) {
		uc, mockRepo, _ := setupUC(t, cfg)

		otp := pendingOTP(t, models.OTPPurposeLogin, repairmanPhone, jobID, "1234")
		mockRepo.EXPECT().GetOTP(gomock.Any(), models.OTPPurposeLogin, repairmanPhone, jobID).Return(otp, nil)
		mockRepo.EXPECT().DeleteOTP(gomock.Any(), models.OTPPurposeLogin, repairmanPhone, jobID).Return(nil)
		mockRepo.EXPECT().GetRepairmanByPhone(gomock.Any(), repairmanPhone).Return(newRepairman(), nil)

		resp, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
			PhoneNumber: repairmanPhone, Code: "1234", Type: models.OTPPurposeLogin, LeadID: jobID,
		}, nil)
		require.NoError(t, err)
		require.True(t, resp.Success)

		claims, err := jwtpkg.ValidateToken(resp.Token, cfg.JWT)
		require.NoError(t, err)
		assert.True(t, claims.AllowsJob(jobID))
		assert.False(t, claims.AllowsJob(jobID+1))
	})
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	uc, mockRepo, _ := setupUC(t, testConfig())

	otp := pendingOTP(t, models.OTPPurposeLogin, repairmanPhone, 0, "1234")
	mockRepo.EXPECT().GetOTP(gomock.Any(), models.OTPPurposeLogin, repairmanPhone, int64(0)).Return(otp, nil)
	mockRepo.EXPECT().IncrementOTPAttempts(gomock.Any(), models.OTPPurposeLogin, repairmanPhone, int64(0), gomock.Any()).Return(int64(1), nil)

	resp, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		PhoneNumber: repairmanPhone, Code: "9999", Type: models.OTPPurposeLogin,
	}, nil)

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Empty(t, resp.Token)
	assert.Equal(t, models.ErrInvalidOTP.Error(), resp.Message)
}

func TestVerifyOTP_TooManyAttempts(t *testing.T) {
	uc, mockRepo, _ := setupUC(t, testConfig())

	otp := pendingOTP(t, models.OTPPurposeLogin, repairmanPhone, 0, "1234")
	mockRepo.EXPECT().GetOTP(gomock.Any(), models.OTPPurposeLogin, repairmanPhone, int64(0)).Return(otp, nil)
	mockRepo.EXPECT().IncrementOTPAttempts(gomock.Any(), models.OTPPurposeLogin, repairmanPhone, int64(0), gomock.Any()).Return(int64(3), nil)
	mockRepo.EXPECT().DeleteOTP(gomock.Any(), models.OTPPurposeLogin, repairmanPhone, int64(0)).Return(nil)

	resp, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		PhoneNumber: repairmanPhone, Code: "9999", Type: models.OTPPurposeLogin,
	}, nil)

	assert.ErrorIs(t, err, models.ErrTooManyOTPAttempts)
	assert.Nil(t, resp)
}

func TestVerifyOTP_UnlimitedAttempts(t *testing.T) {
	cfg := testConfig()
	cfg.OTP.MaxAttempts = 0
	uc, mockRepo, _ := setupUC(t, cfg)

	otp := pendingOTP(t, models.OTPPurposeLogin, repairmanPhone, 0, "1234")
	mockRepo.EXPECT().GetOTP(gomock.Any(), models.OTPPurposeLogin, repairmanPhone, int64(0)).Return(otp, nil)
	mockRepo.EXPECT().IncrementOTPAttempts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(100), nil)

	resp, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		PhoneNumber: repairmanPhone, Code: "9999", Type: models.OTPPurposeLogin,
	}, nil)

	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestVerifyOTP_Expired(t *testing.T) {
	uc, mockRepo, _ := setupUC(t, testConfig())

	mockRepo.EXPECT().GetOTP(gomock.Any(), models.OTPPurposeLogin, repairmanPhone, int64(0)).Return(nil, models.ErrOTPNotFound)

	resp, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		PhoneNumber: repairmanPhone, Code: "1234", Type: models.OTPPurposeLogin,
	}, nil)

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, models.ErrOTPNotFound.Error(), resp.Message)
}

func TestVerifyOTP_JobClose_DoesNotConsume(t *testing.T) {
	uc, mockRepo, _ := setupUC(t, testConfig())

	otp := pendingOTP(t, models.OTPPurposeJobClose, customerPhone, jobID, "0000")
	mockRepo.EXPECT().GetOTP(gomock.Any(), models.OTPPurposeJobClose, customerPhone, jobID).Return(otp, nil)

	resp, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		PhoneNumber: customerPhone, Code: "0000", Type: models.OTPPurposeJobClose, LeadID: jobID,
	}, globalClaims())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Token)
}

func TestVerifyOTP_JobClose_LeadRequired(t *testing.T) {
	uc, _, _ := setupUC(t, testConfig())

	_, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		PhoneNumber: customerPhone, Code: "0000", Type: models.OTPPurposeJobClose,
	}, globalClaims())

	assert.ErrorIs(t, err, models.ErrLeadIDRequired)
}

func TestVerifyOTP_JobClose_RequiresToken(t *testing.T) {
	// the pending challenge is never looked up
	uc, _, _ := setupUC(t, testConfig())

	resp, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		PhoneNumber: customerPhone, Code: "0000", Type: models.OTPPurposeJobClose, LeadID: jobID,
	}, nil)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.Nil(t, resp)

	_, err = uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		PhoneNumber: customerPhone, Code: "0000", Type: models.OTPPurposeJobClose, LeadID: jobID,
	}, jobClaims(jobID+1))
	assert.ErrorIs(t, err, models.ErrForbiddenScope)
}
