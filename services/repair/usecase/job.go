package usecase

import (
	"context"
	"fmt"
	"time"

	jwtpkg "github.com/canyfix/repairdesk/internal/pkg/jwt"
	"github.com/canyfix/repairdesk/internal/pkg/logger"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/canyfix/repairdesk/internal/utils"
)

// GetJob loads a job, masking the customer's contact details unless the
// caller holds a token valid for this job
func (u *RepairUC) GetJob(ctx context.Context, jobID int64, claims *jwtpkg.Claims) (*models.Job, error) {
	job, err := u.repairRepo.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if claims == nil || !claims.AllowsJob(jobID) {
		maskJob(job)
	}
	return job, nil
}

// StartJob moves a not started job to Work In Progress on behalf of the
// token holder
func (u *RepairUC) StartJob(ctx context.Context, jobID int64, claims *jwtpkg.Claims) (*models.Job, error) {
	if err := authorize(claims, jobID); err != nil {
		return nil, err
	}

	job, err := u.repairRepo.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.IsStarted() {
		return nil, models.ErrJobNotStartable
	}

	if err := u.repairRepo.StartJob(ctx, jobID, job.Status, claims.RepairmanID, time.Now()); err != nil {
		return nil, err
	}

	logger.Info("Job started",
		logger.Int64("lead_id", jobID),
		logger.Int64("repairman_id", claims.RepairmanID),
		logger.String("previous_status", job.Status))

	return u.reloadJob(ctx, jobID)
}

// CloseJob completes a Work In Progress job once the customer's code verifies
func (u *RepairUC) CloseJob(ctx context.Context, jobID int64, claims *jwtpkg.Claims, customerOTP string) (*models.Job, error) {
	if err := authorize(claims, jobID); err != nil {
		return nil, err
	}

	job, err := u.repairRepo.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusInProgress {
		return nil, models.ErrJobNotInProgress
	}

	phone := jobCustomerPhone(job)
	if err := u.checkCode(ctx, models.OTPPurposeJobClose, phone, jobID, customerOTP, false); err != nil {
		return nil, err
	}

	// the code stays valid until the job is actually completed
	if err := u.repairRepo.CompleteJob(ctx, jobID, time.Now()); err != nil {
		return nil, err
	}
	if err := u.repairRepo.DeleteOTP(ctx, models.OTPPurposeJobClose, phone, jobID); err != nil {
		logger.Warn("Failed to discard used close OTP",
			logger.Int64("lead_id", jobID),
			logger.ErrorField(err))
	}

	logger.Info("Job closed",
		logger.Int64("lead_id", jobID),
		logger.Int64("repairman_id", claims.RepairmanID))

	return u.reloadJob(ctx, jobID)
}

func (u *RepairUC) reloadJob(ctx context.Context, jobID int64) (*models.Job, error) {
	job, err := u.repairRepo.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload job: %w", err)
	}
	return job, nil
}

func authorize(claims *jwtpkg.Claims, jobID int64) error {
	if claims == nil {
		return models.ErrUnauthorized
	}
	if !claims.AllowsJob(jobID) {
		return models.ErrForbiddenScope
	}
	return nil
}

func maskJob(job *models.Job) {
	job.CustomerPhone = utils.MaskJobPhone(job.CustomerPhone)
	job.Address = models.MaskedAddress
	job.IsMasked = true
}
