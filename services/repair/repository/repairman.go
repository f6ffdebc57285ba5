package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/jackc/pgconn"
)

const uniqueViolation = "23505"

const repairmanColumns = `id, name, phone_number, service_type, employee_type, created_at`

// GetRepairmanByID retrieves a repairman by ID
func (r *RepairRepo) GetRepairmanByID(ctx context.Context, id int64) (*models.Repairman, error) {
	return r.getRepairmanByField(ctx, "id", id)
}

// GetRepairmanByPhone retrieves a repairman by normalized phone number
func (r *RepairRepo) GetRepairmanByPhone(ctx context.Context, phone string) (*models.Repairman, error) {
	return r.getRepairmanByField(ctx, "phone_number", phone)
}

// getRepairmanByField is a helper function to get a repairman by a specific field
func (r *RepairRepo) getRepairmanByField(ctx context.Context, field string, value interface{}) (*models.Repairman, error) {
	query := fmt.Sprintf(`SELECT %s FROM repairmen WHERE %s = $1`, repairmanColumns, field)

	var repairman models.Repairman
	if err := r.db.GetContext(ctx, &repairman, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrRepairmanNotFound
		}
		return nil, fmt.Errorf("failed to get repairman: %w", err)
	}
	return &repairman, nil
}

// ListRepairmen returns every registered repairman ordered by ID
func (r *RepairRepo) ListRepairmen(ctx context.Context) ([]*models.Repairman, error) {
	query := `SELECT ` + repairmanColumns + ` FROM repairmen ORDER BY id`

	repairmen := []*models.Repairman{}
	if err := r.db.SelectContext(ctx, &repairmen, query); err != nil {
		return nil, fmt.Errorf("failed to list repairmen: %w", err)
	}
	return repairmen, nil
}

// CreateRepairman inserts a repairman and fills in the generated ID and timestamp
func (r *RepairRepo) CreateRepairman(ctx context.Context, repairman *models.Repairman) error {
	query := `
		INSERT INTO repairmen (name, phone_number, service_type, employee_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		repairman.Name,
		repairman.PhoneNumber,
		repairman.ServiceType,
		repairman.EmployeeType,
	).Scan(&repairman.ID, &repairman.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.ErrRepairmanExists
		}
		return fmt.Errorf("failed to insert repairman: %w", err)
	}

	return nil
}

// DeleteRepairman removes a repairman. Jobs assigned to them are unassigned
// by the foreign key.
func (r *RepairRepo) DeleteRepairman(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM repairmen WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete repairman: %w", err)
	}
	return expectOneRow(result, models.ErrRepairmanNotFound)
}
