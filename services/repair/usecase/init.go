package usecase

import (
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/canyfix/repairdesk/services/repair"
)

// RepairUC implements the repairman portal business logic
type RepairUC struct {
	repairRepo repair.RepairRepo
	repairGW   repair.RepairGW
	cfg        *models.Config
}

// NewRepairUC creates a new repair usecase instance
func NewRepairUC(
	repairRepo repair.RepairRepo,
	repairGW repair.RepairGW,
	cfg *models.Config,
) *RepairUC {
	return &RepairUC{
		repairRepo: repairRepo,
		repairGW:   repairGW,
		cfg:        cfg,
	}
}
