package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	cfg := &models.Config{}
	cfg.NewRelic.Enabled = false
	assert.Nil(t, InitNewRelic(cfg))

	cfg.NewRelic.Enabled = true
	cfg.NewRelic.LicenseKey = ""
	assert.Nil(t, InitNewRelic(cfg))
}

func TestHelpers_WithoutTransaction(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, FromContext(ctx))
	assert.Nil(t, StartSegment(nil, "segment"))

	// nil transactions are ignored
	SetTransactionName(nil, "name")
	AddTransactionAttribute(nil, "key", "value")
	NoticeTransactionError(nil, errors.New("boom"))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, FromEchoContext(c))
}

func TestWithSegment(t *testing.T) {
	called := false
	err := WithSegment(context.Background(), "Repair.Load", func() error {
		called = true
		return errors.New("failed")
	})
	assert.True(t, called)
	assert.EqualError(t, err, "failed")

	value, err := WithSegmentAndReturn(context.Background(), "Repair.Count", func() (int, error) {
		return 3, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, value)
}

func TestInstrumentHTTPRequest_WithoutTransaction(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://sms.example.com/send", nil)
	expected := &http.Response{StatusCode: http.StatusAccepted}

	resp, err := InstrumentHTTPRequest(context.Background(), req, func() (*http.Response, error) {
		return expected, nil
	})

	assert.NoError(t, err)
	assert.Same(t, expected, resp)
}
