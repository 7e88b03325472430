package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/savoria/savoria/config"
)

// Savoria is the shared database handle for the whole service.
var Savoria *sqlx.DB

//go:embed migrations/*.sql
var migrationsFS embed.FS

func ConnectAndMigrate() error {
	db, err := sqlx.Open("postgres", config.DatabaseURL())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	Savoria = db
	return migrateUp(db)
}

func migrateUp(db *sqlx.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("build migrator: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Tx runs fn inside a transaction, committing only when fn returns nil.
func Tx(fn func(tx *sqlx.Tx) error) error {
	tx, err := Savoria.Beginx()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}
	return tx.Commit()
}

func ShutdownDatabase() error {
	if Savoria == nil {
		return nil
	}
	return Savoria.Close()
}
