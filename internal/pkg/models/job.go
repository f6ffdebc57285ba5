package models

import (
	"time"
)

// Job statuses that drive the repairman lifecycle. Any other label is treated
// as not started and passed through untouched.
const (
	JobStatusNew        = "New"
	JobStatusInProgress = "Work In Progress"
	JobStatusCompleted  = "Completed"
)

// Masked placeholders returned to callers without a valid access token
const (
	MaskedPhonePrefix = "XXXXXX"
	MaskedAddress     = "Address hidden until verified"
)

// ServiceIssue is a single priced line item of a job
type ServiceIssue struct {
	IssueName string  `json:"issue_name" db:"issue_name"`
	Price     float64 `json:"price" db:"price"`
}

// Job is the service or repair record (a lead in the admin dashboard) a
// repairman works on
type Job struct {
	ID            int64          `json:"id" db:"id"`
	CustomerName  string         `json:"customer_name" db:"customer_name"`
	CustomerPhone string         `json:"customer_phone" db:"customer_phone"`
	Address       string         `json:"address" db:"address"`
	ServiceIssues []ServiceIssue `json:"service_issues"`
	MobileRepair  bool           `json:"mobile_repair" db:"is_mobile_repair"`
	MobileBrand   string         `json:"mobile_brand,omitempty" db:"mobile_brand"`
	MobileModel   string         `json:"mobile_model,omitempty" db:"mobile_model"`
	MobileIssue   string         `json:"mobile_issue,omitempty" db:"mobile_issue"`
	Status        string         `json:"status" db:"status"`
	IsMasked      bool           `json:"is_masked" db:"-"`
	RepairmanID   *int64         `json:"repairman_id,omitempty" db:"repairman_id"`
	StartedAt     *time.Time     `json:"started_at,omitempty" db:"started_at"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty" db:"completed_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// IsStarted reports whether the job has left its not-started state
func (j *Job) IsStarted() bool {
	return j.Status == JobStatusInProgress || j.Status == JobStatusCompleted
}

// IsCompleted reports whether the job reached its terminal state
func (j *Job) IsCompleted() bool {
	return j.Status == JobStatusCompleted
}

// Total sums the prices of all service issues
func (j *Job) Total() float64 {
	var total float64
	for _, issue := range j.ServiceIssues {
		total += issue.Price
	}
	return total
}

// CloseJobRequest carries the code the customer read out to the repairman
type CloseJobRequest struct {
	CustomerOTP string `json:"customer_otp"`
}

// AssignRepairmanRequest assigns a repairman to a job from the admin dashboard
type AssignRepairmanRequest struct {
	RepairmanID int64 `json:"repairman_id"`
}
