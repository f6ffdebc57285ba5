package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/canyfix/repairdesk/internal/pkg/models"
)

const jobColumns = `id, customer_name, customer_phone, address, is_mobile_repair,
	mobile_brand, mobile_model, mobile_issue, status, repairman_id,
	started_at, completed_at, updated_at`

// GetJobByID retrieves a job with its service issues
func (r *RepairRepo) GetJobByID(ctx context.Context, id int64) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM leads WHERE id = $1`

	var job models.Job
	if err := r.db.GetContext(ctx, &job, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	issues := []models.ServiceIssue{}
	err := r.db.SelectContext(ctx, &issues,
		`SELECT issue_name, price FROM lead_service_issues WHERE lead_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get service issues: %w", err)
	}
	job.ServiceIssues = issues

	return &job, nil
}

// StartJob moves a job to Work In Progress. The update only applies while the
// job still has fromStatus, so two concurrent starts cannot both succeed.
func (r *RepairRepo) StartJob(ctx context.Context, id int64, fromStatus string, repairmanID int64, startedAt time.Time) error {
	query := `
		UPDATE leads
		SET status = $1, repairman_id = $2, started_at = $3, updated_at = $3
		WHERE id = $4 AND status = $5
	`

	result, err := r.db.ExecContext(ctx, query, models.JobStatusInProgress, repairmanID, startedAt, id, fromStatus)
	if err != nil {
		return fmt.Errorf("failed to start job: %w", err)
	}

	return expectOneRow(result, models.ErrStatusChanged)
}

// CompleteJob moves a Work In Progress job to Completed
func (r *RepairRepo) CompleteJob(ctx context.Context, id int64, completedAt time.Time) error {
	query := `
		UPDATE leads
		SET status = $1, completed_at = $2, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, models.JobStatusCompleted, completedAt, id, models.JobStatusInProgress)
	if err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	return expectOneRow(result, models.ErrStatusChanged)
}

// AssignRepairman sets the repairman responsible for a job
func (r *RepairRepo) AssignRepairman(ctx context.Context, jobID, repairmanID int64) error {
	query := `UPDATE leads SET repairman_id = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, repairmanID, time.Now(), jobID)
	if err != nil {
		return fmt.Errorf("failed to assign repairman: %w", err)
	}

	return expectOneRow(result, models.ErrJobNotFound)
}

func expectOneRow(result sql.Result, notMatched error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return notMatched
	}
	return nil
}
