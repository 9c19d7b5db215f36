package postgres

import (
	"context"
	"time"

	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/alumniconnect/portal-api/pkg/logger"
	"github.com/alumniconnect/portal-api/pkg/metrics"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = `
	id, first_name, last_name, role, is_verified, is_active,
	industry, experience, university, created_at`

// ScanUser scans one users row selected with userColumns
func ScanUser(row pgx.Row) (models.UserRecord, error) {
	var u models.UserRecord
	var role string

	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &role, &u.IsVerified, &u.IsActive,
		&u.Industry, &u.Experience, &u.University, &u.CreatedAt,
	)
	if err != nil {
		return models.UserRecord{}, err
	}
	u.Role = models.UserRole(role)

	return u, nil
}

// GetAllUsers fetches every user
func (c *Client) GetAllUsers(ctx context.Context) ([]models.UserRecord, error) {
	query := `SELECT` + userColumns + ` FROM users ORDER BY created_at ASC, id ASC`
	return queryList(ctx, c, "getAllUsers", query, ScanUser)
}

// GetVerifiedAlumni fetches users with role ALUMNI and isVerified set
func (c *Client) GetVerifiedAlumni(ctx context.Context) ([]models.UserRecord, error) {
	query := `SELECT` + userColumns + `
		FROM users
		WHERE role = 'ALUMNI' AND is_verified
		ORDER BY created_at ASC, id ASC`
	return queryList(ctx, c, "getVerifiedAlumni", query, ScanUser)
}

// CountUsers returns the number of user records
func (c *Client) CountUsers(ctx context.Context) (int, error) {
	start := time.Now()
	operation := "countUsers"

	var count int
	err := c.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	duration := metrics.MeasureDuration(start)
	if err != nil {
		metrics.RecordDBOperation("postgres_"+operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return 0, err
	}

	metrics.RecordDBOperation("postgres_"+operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.Int("count", count))

	return count, nil
}
