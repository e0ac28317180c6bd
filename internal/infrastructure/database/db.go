package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver "pgx"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // sqlite driver "sqlite3"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"

	connectionTimeout = 5 * time.Second
	sqliteBusyMillis  = 5000
)

// DB is the shared connection pool. Request work never touches it directly;
// it goes through InTx.
type DB struct {
	*sqlx.DB
	dsn string
}

// Options selects the store. An empty URL means the SQLite fallback.
type Options struct {
	URL         string
	SQLitePath  string
	MaxConns    int
	MinConns    int
	MaxConnLife time.Duration
}

// SQLiteDSN builds the mattn/go-sqlite3 connection string with foreign keys,
// WAL and a busy timeout enabled.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL", path, sqliteBusyMillis)
}

// Open connects to Postgres when opts.URL is set and to a SQLite file
// otherwise, then pings with a short timeout.
func Open(ctx context.Context, opts Options) (*DB, error) {
	driver, dsn := DriverPostgres, opts.URL
	if dsn == "" {
		if err := os.MkdirAll(filepath.Dir(opts.SQLitePath), 0o750); err != nil {
			return nil, fmt.Errorf("creating sqlite directory: %w", err)
		}
		driver, dsn = DriverSQLite, SQLiteDSN(opts.SQLitePath)
	}

	sqlxDB, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if driver == DriverSQLite {
		// single writer
		sqlxDB.SetMaxOpenConns(1)
		sqlxDB.SetMaxIdleConns(1)
	} else {
		if opts.MaxConns > 0 {
			sqlxDB.SetMaxOpenConns(opts.MaxConns)
		}
		if opts.MinConns > 0 {
			sqlxDB.SetMaxIdleConns(opts.MinConns)
		}
	}
	if opts.MaxConnLife > 0 {
		sqlxDB.SetConnMaxLifetime(opts.MaxConnLife)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectionTimeout)
	defer cancel()
	if err := sqlxDB.PingContext(pingCtx); err != nil {
		_ = sqlxDB.Close()
		return nil, fmt.Errorf("verifying database connection: %w", err)
	}
	return &DB{DB: sqlxDB, dsn: dsn}, nil
}

// New wraps an existing handle, mostly for tests.
func New(db *sqlx.DB) *DB {
	return &DB{DB: db}
}

// HealthCheck runs a trivial query.
func (db *DB) HealthCheck(ctx context.Context) error {
	var one int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	return nil
}
