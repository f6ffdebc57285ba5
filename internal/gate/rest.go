package gate

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/canyfix/repairdesk/internal/pkg/constants"
	httpclient "github.com/canyfix/repairdesk/internal/pkg/http"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/canyfix/repairdesk/internal/utils"
)

// JobAPI is the server side of the gate: job records plus the OTP channel.
// An empty token means an anonymous call.
type JobAPI interface {
	LoadJob(ctx context.Context, jobID int64, token string) (*models.Job, error)
	SendOTP(ctx context.Context, req *models.SendOTPRequest, token string) error
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.VerifyOTPResponse, error)
	StartJob(ctx context.Context, jobID int64, token string) (*models.Job, error)
	CloseJob(ctx context.Context, jobID int64, token, customerOTP string) (*models.Job, error)
}

// RESTClient talks to the repair service over HTTP
type RESTClient struct {
	client *httpclient.Client
}

// NewRESTClient creates a job API client for the given base URL
func NewRESTClient(config httpclient.Config) *RESTClient {
	return &RESTClient{client: httpclient.NewClient(config)}
}

func (r *RESTClient) LoadJob(ctx context.Context, jobID int64, token string) (*models.Job, error) {
	resp, err := r.client.Get(ctx, jobPath(jobID, ""), withToken(token))
	if err != nil {
		return nil, err
	}

	var job models.Job
	if err := decode(resp, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *RESTClient) SendOTP(ctx context.Context, req *models.SendOTPRequest, token string) error {
	resp, err := r.client.Post(ctx, "/repair/send-otp", req, withToken(token))
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

func (r *RESTClient) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.VerifyOTPResponse, error) {
	resp, err := r.client.Post(ctx, "/repair/verify-otp", req)
	if err != nil {
		return nil, err
	}

	var result models.VerifyOTPResponse
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *RESTClient) StartJob(ctx context.Context, jobID int64, token string) (*models.Job, error) {
	resp, err := r.client.Post(ctx, jobPath(jobID, "/start"), nil, withToken(token))
	if err != nil {
		return nil, err
	}

	var job models.Job
	if err := decode(resp, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *RESTClient) CloseJob(ctx context.Context, jobID int64, token, customerOTP string) (*models.Job, error) {
	body := models.CloseJobRequest{CustomerOTP: customerOTP}
	resp, err := r.client.Post(ctx, jobPath(jobID, "/close"), body, withToken(token))
	if err != nil {
		return nil, err
	}

	var job models.Job
	if err := decode(resp, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func jobPath(jobID int64, action string) string {
	return fmt.Sprintf("/repair/leads/%d%s", jobID, action)
}

func withToken(token string) httpclient.RequestOption {
	return httpclient.WithHeader(constants.HeaderRepairToken, token)
}

// decode closes the body and unwraps the response envelope. Error statuses
// become *APIError.
func decode(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if perr := utils.ParseJSONResponse(body, nil); perr != nil {
			apiErr.Message = perr.Error()
		}
		return apiErr
	}

	return utils.ParseJSONResponse(body, target)
}
