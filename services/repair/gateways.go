package repair

import (
	"context"

	"github.com/canyfix/repairdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/canyfix/repairdesk/services/repair RepairGW

// RepairGW defines the repair gateways interface
type RepairGW interface {
	// NSQ Gateway
	PublishOTPDispatch(ctx context.Context, event *models.OTPDispatchEvent) error
}
