// Package gate implements the repairman access gate: the client side state
// machine that keeps a job's customer details masked until the repairman
// proves their identity, and guards starting and closing the job.
package gate

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/canyfix/repairdesk/internal/pkg/logger"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/canyfix/repairdesk/internal/utils"
)

// State of the gate for the current job
type State int

const (
	// Masked means no accepted token was presented
	Masked State = iota
	// Unmasked means the job was loaded with an accepted token
	Unmasked
)

func (s State) String() string {
	if s == Unmasked {
		return "unmasked"
	}
	return "masked"
}

// TokenScope controls whether one token serves every job or each job needs
// its own login
type TokenScope int

const (
	ScopeGlobal TokenScope = iota
	ScopePerJob
)

const tokenKey = "repair_token"

// Gate guards a single job for a single client session. It is not safe for
// concurrent use; callers serialize operations the way a UI does.
type Gate struct {
	jobID       int64
	api         JobAPI
	store       TokenStore
	scope       TokenScope
	maxAttempts int

	job        *models.Job
	loginPhone string
	attempts   int
}

// Option configures a Gate
type Option func(*Gate)

// WithScope sets how tokens are keyed and requested
func WithScope(scope TokenScope) Option {
	return func(g *Gate) {
		g.scope = scope
	}
}

// WithMaxVerifyAttempts caps failed verifications per sent code. After the
// cap a new code must be sent. Zero means unlimited.
func WithMaxVerifyAttempts(n int) Option {
	return func(g *Gate) {
		g.maxAttempts = n
	}
}

// New creates a gate for jobID
func New(jobID int64, api JobAPI, store TokenStore, opts ...Option) *Gate {
	g := &Gate{
		jobID: jobID,
		api:   api,
		store: store,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// TokenKey returns the store key the gate uses for its token
func (g *Gate) TokenKey() string {
	if g.scope == ScopePerJob {
		return fmt.Sprintf("%s_%d", tokenKey, g.jobID)
	}
	return tokenKey
}

// Job returns the last loaded job, or nil before the first successful load
func (g *Gate) Job() *models.Job {
	return g.job
}

// State reports whether the last loaded job was unmasked
func (g *Gate) State() State {
	if g.job == nil || g.job.IsMasked {
		return Masked
	}
	return Unmasked
}

// Load fetches the job, presenting the stored token if there is one. A token
// the server did not accept is discarded.
func (g *Gate) Load(ctx context.Context) (*models.Job, error) {
	const op = "load"

	token, err := g.store.Get(g.TokenKey())
	if err != nil {
		return nil, newError(ErrLoadFailed, op, err)
	}

	job, err := g.api.LoadJob(ctx, g.jobID, token)
	if err != nil {
		return nil, newError(ErrLoadFailed, op, err)
	}
	g.job = job

	if token != "" && job.IsMasked {
		logger.Debug("Stored repair token was not accepted", logger.Int64("lead_id", g.jobID))
		g.discardToken()
	}
	return job, nil
}

// SendLoginOTP asks for a login code on the repairman's phone
func (g *Gate) SendLoginOTP(ctx context.Context, phone string) error {
	const op = "send login otp"

	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return newError(ErrOtpSendFailed, op, err)
	}

	req := &models.SendOTPRequest{PhoneNumber: normalized, Type: models.OTPPurposeLogin}
	if g.scope == ScopePerJob {
		req.LeadID = g.jobID
	}
	if err := g.api.SendOTP(ctx, req, ""); err != nil {
		return newError(ErrOtpSendFailed, op, err)
	}

	g.loginPhone = normalized
	g.attempts = 0
	return nil
}

// ResumeLogin expects a code already sent to phone by an earlier session
func (g *Gate) ResumeLogin(phone string) error {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return newError(ErrOtpVerifyFailed, "resume login", err)
	}
	g.loginPhone = normalized
	g.attempts = 0
	return nil
}

// VerifyLogin submits the login code. On success the token is stored and
// the job reloaded unmasked; on failure nothing changes.
func (g *Gate) VerifyLogin(ctx context.Context, code string) error {
	const op = "verify login otp"

	if g.loginPhone == "" {
		return newError(ErrOtpVerifyFailed, op, errors.New("no login code was sent"))
	}
	if err := g.checkAttempts(op); err != nil {
		return err
	}

	req := &models.VerifyOTPRequest{PhoneNumber: g.loginPhone, Code: code, Type: models.OTPPurposeLogin}
	if g.scope == ScopePerJob {
		req.LeadID = g.jobID
	}

	resp, err := g.api.VerifyOTP(ctx, req)
	if err != nil {
		g.attempts++
		return newError(ErrOtpVerifyFailed, op, err)
	}
	if !resp.Success || resp.Token == "" {
		g.attempts++
		return newError(ErrOtpVerifyFailed, op, errors.New(resp.Message))
	}

	if err := g.store.Set(g.TokenKey(), resp.Token); err != nil {
		return newError(ErrOtpVerifyFailed, op, fmt.Errorf("failed to store token: %w", err))
	}
	g.loginPhone = ""
	g.attempts = 0

	if _, err := g.Load(ctx); err != nil {
		return err
	}
	return nil
}

// CanStart reports whether the start control is enabled
func (g *Gate) CanStart() bool {
	return g.State() == Unmasked && g.hasToken() && !g.job.IsStarted()
}

// CanClose reports whether the close controls are enabled
func (g *Gate) CanClose() bool {
	return g.State() == Unmasked && g.hasToken() && g.job.Status == models.JobStatusInProgress
}

// StartJob moves the job to Work In Progress and reloads it
func (g *Gate) StartJob(ctx context.Context) error {
	const op = "start job"

	if !g.CanStart() {
		return newError(ErrActionRejected, op, g.rejectReason())
	}

	token, _ := g.store.Get(g.TokenKey())
	if _, err := g.api.StartJob(ctx, g.jobID, token); err != nil {
		if isUnauthorized(err) {
			g.discardToken()
		}
		return newError(ErrActionRejected, op, err)
	}

	_, err := g.Load(ctx)
	return err
}

// SendCloseOTP sends a close code to the job's customer
func (g *Gate) SendCloseOTP(ctx context.Context) error {
	const op = "send close otp"

	if !g.CanClose() {
		return newError(ErrActionRejected, op, g.rejectReason())
	}

	req := &models.SendOTPRequest{
		PhoneNumber: g.job.CustomerPhone,
		Type:        models.OTPPurposeJobClose,
		LeadID:      g.jobID,
	}
	token, _ := g.store.Get(g.TokenKey())
	if err := g.api.SendOTP(ctx, req, token); err != nil {
		if isUnauthorized(err) {
			g.discardToken()
		}
		return newError(ErrOtpSendFailed, op, err)
	}

	g.attempts = 0
	return nil
}

// CloseJob completes the job with the code the customer read out and
// reloads it
func (g *Gate) CloseJob(ctx context.Context, code string) error {
	const op = "close job"

	if !g.CanClose() {
		return newError(ErrActionRejected, op, g.rejectReason())
	}
	if err := g.checkAttempts(op); err != nil {
		return err
	}

	token, _ := g.store.Get(g.TokenKey())
	if _, err := g.api.CloseJob(ctx, g.jobID, token, code); err != nil {
		switch status := statusOf(err); status {
		case http.StatusUnprocessableEntity, http.StatusTooManyRequests:
			g.attempts++
			return newError(ErrOtpVerifyFailed, op, err)
		case http.StatusUnauthorized:
			g.discardToken()
		}
		return newError(ErrActionRejected, op, err)
	}
	g.attempts = 0

	_, err := g.Load(ctx)
	return err
}

// Logout forgets the token and reloads the job masked
func (g *Gate) Logout(ctx context.Context) error {
	if err := g.store.Clear(g.TokenKey()); err != nil {
		return newError(ErrActionRejected, "logout", err)
	}
	g.loginPhone = ""
	_, err := g.Load(ctx)
	return err
}

func (g *Gate) hasToken() bool {
	token, err := g.store.Get(g.TokenKey())
	return err == nil && token != ""
}

func (g *Gate) discardToken() {
	if err := g.store.Clear(g.TokenKey()); err != nil {
		logger.Warn("Failed to discard repair token", logger.ErrorField(err))
	}
}

func (g *Gate) checkAttempts(op string) error {
	if g.maxAttempts > 0 && g.attempts >= g.maxAttempts {
		return newError(ErrOtpVerifyFailed, op, errors.New("too many attempts, request a new code"))
	}
	return nil
}

func (g *Gate) rejectReason() error {
	switch {
	case g.job == nil:
		return errors.New("job not loaded")
	case g.State() == Masked || !g.hasToken():
		return errors.New("login required")
	case g.job.IsCompleted():
		return errors.New("job already completed")
	default:
		return fmt.Errorf("job is %s", g.job.Status)
	}
}
