package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-api/migrations"
)

// Migrate applies the embedded schema for the pool's dialect. It opens its
// own handle so the migration driver can close it freely.
func (db *DB) Migrate(logger *logrus.Logger) error {
	return RunMigrations(db.DriverName(), db.dsn, logger)
}

// RunMigrations applies every pending up migration. ErrNoChange is not an error.
func RunMigrations(driver, dsn string, logger *logrus.Logger) error {
	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()

	var (
		instance migratedb.Driver
		dir      string
	)
	switch driver {
	case DriverPostgres:
		dir = "postgres"
		instance, err = pgmigrate.WithInstance(sqlDB, &pgmigrate.Config{})
	case DriverSQLite:
		dir = "sqlite"
		instance, err = sqlitemigrate.WithInstance(sqlDB, &sqlitemigrate.Config{})
	default:
		return fmt.Errorf("no migrations for driver %q", driver)
	}
	if err != nil {
		return err
	}

	src, err := iofs.New(migrations.FS, dir)
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, dir, instance)
	if err != nil {
		return err
	}

	if logger != nil {
		logger.WithField("dialect", dir).Info("running migrations...")
	}
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		if logger != nil {
			logger.Info("no migrations to run")
		}
		return nil
	}
	return err
}
