package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/alumniconnect/portal-api/pkg/db"
	"github.com/alumniconnect/portal-api/pkg/logger"
	"github.com/alumniconnect/portal-api/pkg/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Client wraps a pgx connection pool with observability
type Client struct {
	pool *pgxpool.Pool
}

// NewClient wraps an already-verified pool (see pkg/db.NewPool)
func NewClient(pool *pgxpool.Pool) *Client {
	stat := pool.Stat()
	logger.Info("PostgreSQL client initialized",
		zap.Int32("max_conns", stat.MaxConns()),
		zap.Int32("total_conns", stat.TotalConns()),
	)
	return &Client{pool: pool}
}

// Close closes the connection pool
func (c *Client) Close() {
	if c.pool != nil {
		db.Close(c.pool)
		logger.Info("PostgreSQL connection pool closed")
	}
}

// Ping checks if the database connection is alive
func (c *Client) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// queryList runs a read query and scans every row with scan.
// Metrics and a structured log line are recorded for both outcomes.
func queryList[T any](ctx context.Context, c *Client, operation, query string, scan func(pgx.Row) (T, error), args ...any) ([]T, error) {
	start := time.Now()

	fail := func(err error, msg string) ([]T, error) {
		duration := metrics.MeasureDuration(start)
		metrics.RecordDBOperation("postgres_"+operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", msg, err)
	}

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return fail(err, "failed to query "+operation)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return fail(err, "failed to scan "+operation+" row")
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return fail(err, "error iterating "+operation+" rows")
	}

	duration := metrics.MeasureDuration(start)
	metrics.RecordDBOperation("postgres_"+operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.Int("count", len(items)))

	return items, nil
}
