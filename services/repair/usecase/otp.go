package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canyfix/repairdesk/internal/pkg/constants"
	jwtpkg "github.com/canyfix/repairdesk/internal/pkg/jwt"
	"github.com/canyfix/repairdesk/internal/pkg/logger"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/canyfix/repairdesk/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultOTPTTL = 5 * time.Minute

	loginOTPMessage = "Your Canyfix login code is %s. It expires in %d minutes."
	closeOTPMessage = "Share code %s with your Canyfix technician only after job #%d is done."
)

var otpHashCost = bcrypt.DefaultCost

// SendOTP issues a one-time code and hands it to the notifier.
// Login codes go to a registered repairman; close codes go to the job's
// customer, are bound to that job and need a token covering it.
func (u *RepairUC) SendOTP(ctx context.Context, req *models.SendOTPRequest, claims *jwtpkg.Claims) error {
	if !req.Type.Valid() {
		return models.ErrInvalidOTPPurpose
	}

	phone, err := utils.NormalizePhone(req.PhoneNumber)
	if err != nil {
		return err
	}

	leadID, err := u.resolveChallengeLead(ctx, req.Type, phone, req.LeadID, claims)
	if err != nil {
		return err
	}

	code := u.cfg.OTP.FixedCode
	if code == "" {
		code, err = utils.GenerateOTP()
		if err != nil {
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), otpHashCost)
	if err != nil {
		return fmt.Errorf("failed to hash OTP: %w", err)
	}

	now := time.Now()
	ttl := u.otpTTL()
	otp := &models.OTP{
		ID:        uuid.NewString(),
		Phone:     phone,
		Purpose:   req.Type,
		LeadID:    leadID,
		CodeHash:  string(hash),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	if err := u.repairRepo.StoreOTP(ctx, otp); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	event := &models.OTPDispatchEvent{
		Phone:     phone,
		Purpose:   req.Type,
		LeadID:    leadID,
		Code:      code,
		Message:   otpMessage(req.Type, code, leadID, ttl),
		CreatedAt: now,
	}
	if err := u.repairGW.PublishOTPDispatch(ctx, event); err != nil {
		// an undeliverable code must not stay verifiable
		if delErr := u.repairRepo.DeleteOTP(ctx, otp.Purpose, otp.Phone, otp.LeadID); delErr != nil {
			logger.Warn("Failed to discard undelivered OTP", logger.ErrorField(delErr))
		}
		return fmt.Errorf("failed to dispatch OTP: %w", err)
	}

	logger.Info("OTP issued",
		logger.String("phone", utils.MaskPhoneNumber(phone)),
		logger.String("purpose", string(req.Type)),
		logger.Int64("lead_id", leadID))

	return nil
}

// VerifyOTP checks a code. A successful login verification consumes the code
// and issues an access token. A close verification only confirms the code; the
// close operation consumes it and, like sending, needs a token covering the job.
func (u *RepairUC) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest, claims *jwtpkg.Claims) (*models.VerifyOTPResponse, error) {
	if !req.Type.Valid() {
		return nil, models.ErrInvalidOTPPurpose
	}

	phone, err := utils.NormalizePhone(req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	leadID := req.LeadID
	switch req.Type {
	case models.OTPPurposeJobClose:
		if leadID == 0 {
			return nil, models.ErrLeadIDRequired
		}
		if err := authorize(claims, leadID); err != nil {
			return nil, err
		}
	case models.OTPPurposeLogin:
		if u.jobScoped() {
			if leadID == 0 {
				return nil, models.ErrLeadIDRequired
			}
		} else {
			leadID = 0
		}
	}

	consume := req.Type == models.OTPPurposeLogin
	if err := u.checkCode(ctx, req.Type, phone, leadID, req.Code, consume); err != nil {
		if errors.Is(err, models.ErrInvalidOTP) || errors.Is(err, models.ErrOTPNotFound) {
			return &models.VerifyOTPResponse{Success: false, Message: err.Error()}, nil
		}
		return nil, err
	}

	if req.Type == models.OTPPurposeJobClose {
		return &models.VerifyOTPResponse{Success: true, Message: "customer otp verified"}, nil
	}

	repairman, err := u.repairRepo.GetRepairmanByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := jwtpkg.GenerateToken(repairman.ID, repairman.PhoneNumber, leadID, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Repairman verified",
		logger.Int64("repairman_id", repairman.ID),
		logger.Int64("lead_id", leadID))

	return &models.VerifyOTPResponse{
		Success:     true,
		Token:       token,
		RepairmanID: repairman.ID,
		ExpiresAt:   expiresAt,
		Message:     "login successful",
	}, nil
}

// resolveChallengeLead validates the send request against stored state and
// returns the lead id the challenge is keyed by
func (u *RepairUC) resolveChallengeLead(ctx context.Context, purpose models.OTPPurpose, phone string, leadID int64, claims *jwtpkg.Claims) (int64, error) {
	switch purpose {
	case models.OTPPurposeLogin:
		if _, err := u.repairRepo.GetRepairmanByPhone(ctx, phone); err != nil {
			return 0, err
		}
		if !u.jobScoped() {
			return 0, nil
		}
		if leadID == 0 {
			return 0, models.ErrLeadIDRequired
		}
		if _, err := u.repairRepo.GetJobByID(ctx, leadID); err != nil {
			return 0, err
		}
		return leadID, nil

	case models.OTPPurposeJobClose:
		if leadID == 0 {
			return 0, models.ErrLeadIDRequired
		}
		// checked before the job lookup so the customer number is never confirmed to outsiders
		if err := authorize(claims, leadID); err != nil {
			return 0, err
		}
		job, err := u.repairRepo.GetJobByID(ctx, leadID)
		if err != nil {
			return 0, err
		}
		if job.Status != models.JobStatusInProgress {
			return 0, models.ErrJobNotInProgress
		}
		if jobCustomerPhone(job) != phone {
			return 0, models.ErrPhoneMismatch
		}
		return leadID, nil
	}

	return 0, models.ErrInvalidOTPPurpose
}

// checkCode compares a submitted code with the pending challenge. Wrong codes
// count against the attempt limit; reaching it discards the challenge.
func (u *RepairUC) checkCode(ctx context.Context, purpose models.OTPPurpose, phone string, leadID int64, code string, consume bool) error {
	otp, err := u.repairRepo.GetOTP(ctx, purpose, phone, leadID)
	if err != nil {
		return err
	}

	if !utils.IsValidOTP(code) || bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(code)) != nil {
		attempts, err := u.repairRepo.IncrementOTPAttempts(ctx, purpose, phone, leadID, time.Until(otp.ExpiresAt))
		if err != nil {
			return err
		}
		if limit := u.cfg.OTP.MaxAttempts; limit > 0 && attempts >= int64(limit) {
			if err := u.repairRepo.DeleteOTP(ctx, purpose, phone, leadID); err != nil {
				return err
			}
			logger.Warn("OTP challenge discarded after too many attempts",
				logger.String("phone", utils.MaskPhoneNumber(phone)),
				logger.String("purpose", string(purpose)))
			return models.ErrTooManyOTPAttempts
		}
		return models.ErrInvalidOTP
	}

	if consume {
		if err := u.repairRepo.DeleteOTP(ctx, purpose, phone, leadID); err != nil {
			return err
		}
	}
	return nil
}

func (u *RepairUC) otpTTL() time.Duration {
	if u.cfg.OTP.TTLSeconds <= 0 {
		return defaultOTPTTL
	}
	return time.Duration(u.cfg.OTP.TTLSeconds) * time.Second
}

func (u *RepairUC) jobScoped() bool {
	return u.cfg.JWT.Scope == constants.TokenScopeJob
}

func otpMessage(purpose models.OTPPurpose, code string, leadID int64, ttl time.Duration) string {
	if purpose == models.OTPPurposeJobClose {
		return fmt.Sprintf(closeOTPMessage, code, leadID)
	}
	return fmt.Sprintf(loginOTPMessage, code, int(ttl.Minutes()))
}

// jobCustomerPhone returns the job's customer phone in normalized form, or as
// stored when it does not parse
func jobCustomerPhone(job *models.Job) string {
	phone, err := utils.NormalizePhone(job.CustomerPhone)
	if err != nil {
		return job.CustomerPhone
	}
	return phone
}
