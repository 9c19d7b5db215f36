package db

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/alumniconnect/portal-api/pkg/retry"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultCACertPath is used when DATABASE_CA_CERT is unset and the URL asks for certificate verification
const DefaultCACertPath = "certs/db-ca.crt"

// PoolConfig contains database pool configuration parameters
type PoolConfig struct {
	URL      string
	MaxConns int32
	MinConns int32
}

// configureTLS builds a TLS config pinned to the cluster CA.
// Returns nil when the URL does not request certificate verification.
func configureTLS(databaseURL string) (*tls.Config, error) {
	if !requiresCAVerification(databaseURL) {
		return nil, nil
	}

	certPath := os.Getenv("DATABASE_CA_CERT")
	if certPath == "" {
		certPath = DefaultCACertPath
	}

	caPEM, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate from %s: %w", certPath, err)
	}

	rootCertPool := x509.NewCertPool()
	if ok := rootCertPool.AppendCertsFromPEM(caPEM); !ok {
		return nil, fmt.Errorf("failed to append CA certificate to pool")
	}

	tlsConfig := &tls.Config{
		RootCAs:    rootCertPool,
		MinVersion: tls.VersionTLS12,
	}
	if serverName := os.Getenv("DATABASE_TLS_SERVER_NAME"); serverName != "" {
		tlsConfig.ServerName = serverName
	}

	return tlsConfig, nil
}

// requiresCAVerification reports whether sslmode is verify-ca or verify-full.
// sslmode=require is left to pgx defaults.
func requiresCAVerification(databaseURL string) bool {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return false
	}
	switch u.Query().Get("sslmode") {
	case "verify-ca", "verify-full":
		return true
	default:
		return false
	}
}

// NewPool creates a PostgreSQL connection pool and verifies it with a ping.
//
// Pool limits come from poolCfg; health check period, connection lifetime and idle
// time use fixed values suited to a read-mostly reporting workload.
func NewPool(ctx context.Context, poolCfg PoolConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(poolCfg.URL)
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("failed to parse database URL: %w", err))
	}

	tlsConfig, err := configureTLS(poolCfg.URL)
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("failed to configure TLS: %w", err))
	}
	if tlsConfig != nil {
		config.ConnConfig.TLSConfig = tlsConfig
	}

	if poolCfg.MaxConns > 0 {
		config.MaxConns = poolCfg.MaxConns
	}
	if poolCfg.MinConns >= 0 && poolCfg.MinConns <= config.MaxConns {
		config.MinConns = poolCfg.MinConns
	}
	config.HealthCheckPeriod = 30 * time.Second
	config.MaxConnLifetime = 1 * time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// Close gracefully closes the connection pool
func Close(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
	}
}
