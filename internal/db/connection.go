package db

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// DB wraps a pgx connection with metadata. A pgx.Conn serves one query at
// a time, so every use of Conn holds mu.
type DB struct {
	mu         sync.Mutex
	Conn       *pgx.Conn
	connString string
	host       string
	port       string
	user       string
	database   string
}

// Connect establishes a PostgreSQL connection from a URI with a 10-second
// timeout.
func Connect(uri string) (*DB, error) {
	connStr, err := normalizeURI(uri)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, err
	}

	cfg := conn.Config()
	return &DB{
		Conn:       conn,
		connString: connStr,
		host:       cfg.Host,
		port:       fmt.Sprint(cfg.Port),
		user:       cfg.User,
		database:   cfg.Database,
	}, nil
}

// normalizeURI validates uri and defaults sslmode to prefer.
func normalizeURI(uri string) (string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid URI: %w", err)
	}
	if parsed.Scheme != "postgres" && parsed.Scheme != "postgresql" {
		return "", fmt.Errorf("invalid URI: unsupported scheme %q", parsed.Scheme)
	}
	q := parsed.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "prefer")
		parsed.RawQuery = q.Encode()
	}
	return parsed.String(), nil
}

// Reconnect closes the existing connection and re-establishes it using the
// original connection string. On failure the DB is left without a
// connection until the next successful Reconnect.
func (d *DB) Reconnect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.Conn != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		d.Conn.Close(ctx)
		cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, d.connString)
	if err != nil {
		d.Conn = nil
		return err
	}
	d.Conn = conn
	return nil
}

// Database returns the current database name.
func (d *DB) Database() string {
	return d.database
}

// User returns the role the connection authenticated as.
func (d *DB) User() string {
	return d.user
}

// Close closes the database connection.
func (d *DB) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Conn != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		d.Conn.Close(ctx)
		d.Conn = nil
	}
}

// IsConnected checks if the connection is alive.
func (d *DB) IsConnected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Conn == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return d.Conn.Ping(ctx) == nil
}

// ConnInfo returns a display-safe connection string (no password).
func (d *DB) ConnInfo() string {
	return fmt.Sprintf("postgres://%s@%s:%s/%s", d.user, d.host, d.port, d.database)
}
