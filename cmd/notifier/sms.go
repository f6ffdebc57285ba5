package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/canyfix/repairdesk/internal/pkg/circuitbreaker"
	httpclient "github.com/canyfix/repairdesk/internal/pkg/http"
	"github.com/canyfix/repairdesk/internal/pkg/logger"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	nsqpkg "github.com/canyfix/repairdesk/internal/pkg/nsq"
	"github.com/canyfix/repairdesk/internal/utils"
)

// smsRequest is the provider's send payload
type smsRequest struct {
	To      string `json:"to"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// dispatcher delivers OTP dispatch events by SMS
type dispatcher struct {
	client   *httpclient.Client
	breaker  *circuitbreaker.Breaker
	senderID string
	ttl      time.Duration
	now      func() time.Time
}

func newDispatcher(configs *models.Config) *dispatcher {
	d := &dispatcher{
		senderID: configs.SMS.SenderID,
		ttl:      time.Duration(configs.OTP.TTLSeconds) * time.Second,
		now:      time.Now,
		breaker: circuitbreaker.New(circuitbreaker.Config{
			Name:      "sms-provider",
			IsFailure: isOutage,
		}),
	}
	if configs.SMS.ProviderURL != "" {
		d.client = httpclient.NewClient(httpclient.Config{
			BaseURL: configs.SMS.ProviderURL,
			APIKey:  configs.SMS.APIKey,
			Timeout: time.Duration(configs.SMS.Timeout) * time.Second,
		})
	}
	return d
}

// handle returns an error only for failures worth a redelivery
func (d *dispatcher) handle(body []byte) error {
	var event models.OTPDispatchEvent
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		logger.Error("Dropping malformed OTP dispatch event", logger.Err(err))
		return nil
	}

	fields := []logger.Field{
		logger.String("phone", utils.MaskPhoneNumber(event.Phone)),
		logger.String("purpose", string(event.Purpose)),
		logger.Int64("lead_id", event.LeadID),
	}

	if d.ttl > 0 && !event.CreatedAt.IsZero() && d.now().Sub(event.CreatedAt) > d.ttl {
		logger.Warn("Dropping expired OTP dispatch event", fields...)
		return nil
	}

	if d.client == nil {
		logger.Info("No SMS provider configured, OTP not delivered", fields...)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), httpclient.DefaultTimeout)
	defer cancel()

	err := d.breaker.Do(func() error {
		return d.send(ctx, smsRequest{To: event.Phone, Sender: d.senderID, Message: event.Message})
	})
	var rejected *providerError
	if errors.As(err, &rejected) && rejected.permanent() {
		logger.Error("SMS provider rejected OTP", append(fields, logger.Err(err))...)
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("OTP delivered", fields...)
	return nil
}

func (d *dispatcher) send(ctx context.Context, req smsRequest) error {
	resp, err := d.client.Post(ctx, "", req)
	if err != nil {
		return fmt.Errorf("failed to reach SMS provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providerError{status: resp.StatusCode, body: utils.Truncate(string(body), 200)}
	}
	return nil
}

type providerError struct {
	status int
	body   string
}

func (e *providerError) Error() string {
	return fmt.Sprintf("SMS provider returned %d: %s", e.status, e.body)
}

// permanent reports whether resending the same request cannot succeed
func (e *providerError) permanent() bool {
	return e.status < http.StatusInternalServerError && e.status != http.StatusTooManyRequests
}

// isOutage counts failures that say the provider is unhealthy, not that one
// message was refused
func isOutage(err error) bool {
	var rejected *providerError
	if errors.As(err, &rejected) {
		return !rejected.permanent()
	}
	return err != nil
}
