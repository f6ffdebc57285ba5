package gateway

import (
	"context"
	"fmt"

	"github.com/canyfix/repairdesk/internal/pkg/constants"
	"github.com/canyfix/repairdesk/internal/pkg/logger"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	nrpkg "github.com/canyfix/repairdesk/internal/pkg/newrelic"
	"github.com/canyfix/repairdesk/internal/utils"
)

// PublishOTPDispatch hands a freshly issued code to the notifier
func (g *RepairGW) PublishOTPDispatch(ctx context.Context, event *models.OTPDispatchEvent) error {
	if event == nil {
		return fmt.Errorf("otp dispatch event is nil")
	}

	err := nrpkg.WithSegment(ctx, "nsq.publish."+constants.TopicOTPDispatch, func() error {
		return g.publisher.Publish(constants.TopicOTPDispatch, event)
	})
	if err != nil {
		logger.Error("Failed to publish OTP dispatch",
			logger.String("phone", utils.MaskPhoneNumber(event.Phone)),
			logger.String("purpose", string(event.Purpose)),
			logger.ErrorField(err))
		return fmt.Errorf("failed to publish otp dispatch: %w", err)
	}

	logger.Info("OTP dispatch published",
		logger.String("phone", utils.MaskPhoneNumber(event.Phone)),
		logger.String("purpose", string(event.Purpose)),
		logger.Int64("lead_id", event.LeadID))
	return nil
}
