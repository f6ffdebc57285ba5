package repository

import (
	"github.com/canyfix/repairdesk/internal/pkg/database"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// RepairRepo implements the repair repository interface. Jobs and repairmen
// live in PostgreSQL; pending OTP challenges live in Redis.
type RepairRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewRepairRepo creates a new repair repository instance
func NewRepairRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *RepairRepo {
	return &RepairRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
