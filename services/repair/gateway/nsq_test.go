package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/canyfix/repairdesk/internal/pkg/constants"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	topic   string
	message interface{}
	err     error
}

func (f *fakePublisher) Publish(topic string, message interface{}) error {
	f.topic = topic
	f.message = message
	return f.err
}

func TestPublishOTPDispatch(t *testing.T) {
	publisher := &fakePublisher{}
	gw := NewRepairGW(publisher)

	event := &models.OTPDispatchEvent{
		Phone:     "9876543210",
		Purpose:   models.OTPPurposeLogin,
		Code:      "1234",
		Message:   "Your Canyfix login code is 1234",
		CreatedAt: time.Now(),
	}

	err := gw.PublishOTPDispatch(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, constants.TopicOTPDispatch, publisher.topic)
	assert.Same(t, event, publisher.message)
}

func TestPublishOTPDispatch_Error(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("nsqd unreachable")}
	gw := NewRepairGW(publisher)

	err := gw.PublishOTPDispatch(context.Background(), &models.OTPDispatchEvent{Phone: "9876543210"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nsqd unreachable")
}

func TestPublishOTPDispatch_NilEvent(t *testing.T) {
	publisher := &fakePublisher{}
	gw := NewRepairGW(publisher)

	assert.Error(t, gw.PublishOTPDispatch(context.Background(), nil))
	assert.Empty(t, publisher.topic)
}
