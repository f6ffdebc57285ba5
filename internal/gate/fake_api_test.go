package gate

import (
	"context"
	"fmt"
	"net/http"

	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/canyfix/repairdesk/internal/utils"
)

const (
	repairmanPhone = "9876543210"
	customerPhone  = "9123456789"
	loginCode      = "1234"
	closeCode      = "5678"
)

// fakeAPI behaves like the repair service for one repairman
type fakeAPI struct {
	jobs        map[int64]models.Job
	perJob      bool
	tokens      map[string]int64
	closeSentTo map[int64]string
	issued      int

	sent    []models.SendOTPRequest
	calls   map[string]int
	loadErr error
	sendErr error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		jobs: map[int64]models.Job{
			42: {ID: 42, CustomerName: "Asha", CustomerPhone: customerPhone, Address: "12 MG Road", Status: models.JobStatusNew},
			43: {ID: 43, CustomerName: "Vikram", CustomerPhone: "9988776655", Address: "7 Park Street", Status: models.JobStatusNew},
		},
		tokens:      map[string]int64{},
		closeSentTo: map[int64]string{},
		calls:       map[string]int{},
	}
}

func (f *fakeAPI) accepts(token string, jobID int64) bool {
	lead, ok := f.tokens[token]
	return ok && (lead == 0 || lead == jobID)
}

func (f *fakeAPI) LoadJob(_ context.Context, jobID int64, token string) (*models.Job, error) {
	f.calls["load"]++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, &APIError{Status: http.StatusNotFound, Message: "job not found"}
	}
	if !f.accepts(token, jobID) {
		job.CustomerPhone = utils.MaskJobPhone(job.CustomerPhone)
		job.Address = models.MaskedAddress
		job.IsMasked = true
	}
	return &job, nil
}

func (f *fakeAPI) SendOTP(_ context.Context, req *models.SendOTPRequest, token string) error {
	f.calls["send"]++
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, *req)

	switch req.Type {
	case models.OTPPurposeLogin:
		if req.PhoneNumber != repairmanPhone {
			return &APIError{Status: http.StatusNotFound, Message: "repairman not found"}
		}
	case models.OTPPurposeJobClose:
		if !f.accepts(token, req.LeadID) {
			return &APIError{Status: http.StatusUnauthorized, Message: "invalid or expired repair token"}
		}
		job := f.jobs[req.LeadID]
		if job.CustomerPhone != req.PhoneNumber {
			return &APIError{Status: http.StatusUnprocessableEntity, Message: "phone number does not match the job's customer"}
		}
		f.closeSentTo[req.LeadID] = req.PhoneNumber
	}
	return nil
}

func (f *fakeAPI) VerifyOTP(_ context.Context, req *models.VerifyOTPRequest) (*models.VerifyOTPResponse, error) {
	f.calls["verify"]++
	if req.PhoneNumber != repairmanPhone || req.Code != loginCode {
		return &models.VerifyOTPResponse{Success: false, Message: "invalid otp code"}, nil
	}

	f.issued++
	token := fmt.Sprintf("T%d", f.issued)
	if f.perJob {
		f.tokens[token] = req.LeadID
	} else {
		f.tokens[token] = 0
	}
	return &models.VerifyOTPResponse{Success: true, Token: token, RepairmanID: 7, Message: "login successful"}, nil
}

func (f *fakeAPI) StartJob(_ context.Context, jobID int64, token string) (*models.Job, error) {
	f.calls["start"]++
	if !f.accepts(token, jobID) {
		return nil, &APIError{Status: http.StatusUnauthorized, Message: "invalid or expired repair token"}
	}
	job := f.jobs[jobID]
	if job.IsStarted() {
		return nil, &APIError{Status: http.StatusConflict, Message: "job cannot be started from its current status"}
	}
	job.Status = models.JobStatusInProgress
	f.jobs[jobID] = job
	return &job, nil
}

func (f *fakeAPI) CloseJob(_ context.Context, jobID int64, token, code string) (*models.Job, error) {
	f.calls["close"]++
	if !f.accepts(token, jobID) {
		return nil, &APIError{Status: http.StatusUnauthorized, Message: "invalid or expired repair token"}
	}
	job := f.jobs[jobID]
	if job.Status != models.JobStatusInProgress {
		return nil, &APIError{Status: http.StatusConflict, Message: "job is not in progress"}
	}
	if f.closeSentTo[jobID] != job.CustomerPhone || code != closeCode {
		return nil, &APIError{Status: http.StatusUnprocessableEntity, Message: "invalid otp code"}
	}
	job.Status = models.JobStatusCompleted
	f.jobs[jobID] = job
	return &job, nil
}
