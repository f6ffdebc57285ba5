package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/canyfix/repairdesk/internal/pkg/logger"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/canyfix/repairdesk/internal/utils"
)

// ListRepairmen returns all registered repairmen
func (u *RepairUC) ListRepairmen(ctx context.Context) ([]*models.Repairman, error) {
	return u.repairRepo.ListRepairmen(ctx)
}

// CreateRepairman registers a repairman under a normalized, unique phone number
func (u *RepairUC) CreateRepairman(ctx context.Context, req *models.RepairmanCreate) (*models.Repairman, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.ErrRepairmanNameRequired
	}

	phone, err := utils.NormalizePhone(req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	_, err = u.repairRepo.GetRepairmanByPhone(ctx, phone)
	switch {
	case err == nil:
		return nil, models.ErrRepairmanExists
	case !errors.Is(err, models.ErrRepairmanNotFound):
		return nil, err
	}

	repairman := &models.Repairman{
		Name:         name,
		PhoneNumber:  phone,
		ServiceType:  strings.TrimSpace(req.ServiceType),
		EmployeeType: strings.TrimSpace(req.EmployeeType),
	}
	if err := u.repairRepo.CreateRepairman(ctx, repairman); err != nil {
		return nil, err
	}

	logger.Info("Repairman registered",
		logger.Int64("repairman_id", repairman.ID),
		logger.String("phone", utils.MaskPhoneNumber(phone)))

	return repairman, nil
}

// DeleteRepairman removes a repairman
func (u *RepairUC) DeleteRepairman(ctx context.Context, id int64) error {
	if err := u.repairRepo.DeleteRepairman(ctx, id); err != nil {
		return err
	}
	logger.Info("Repairman deleted", logger.Int64("repairman_id", id))
	return nil
}

// AssignRepairman makes a registered repairman responsible for a job
func (u *RepairUC) AssignRepairman(ctx context.Context, jobID, repairmanID int64) (*models.Job, error) {
	if _, err := u.repairRepo.GetRepairmanByID(ctx, repairmanID); err != nil {
		return nil, err
	}
	if err := u.repairRepo.AssignRepairman(ctx, jobID, repairmanID); err != nil {
		return nil, err
	}
	return u.reloadJob(ctx, jobID)
}
