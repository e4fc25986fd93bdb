package sqlstore

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"smart-task-bot/internal/task/repository"
	"smart-task-bot/pkg/log"
)

const (
	driverSQLite   = "sqlite"
	driverPostgres = "postgres"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// Open connects to url and applies pending migrations. postgres:// and
// postgresql:// URLs use lib/pq; anything else is a SQLite path.
func Open(url string) (*sqlx.DB, error) {
	driver, dsn := driverFor(url)

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s db: %w", driver, err)
	}

	if driver == driverSQLite {
		// One connection: ":memory:" databases are per-connection and SQLite allows a single writer.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enabling WAL mode: %w", err)
		}
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

// New creates a SQL-backed Repository for the task domain.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, l: l}
}

func driverFor(url string) (driver, dsn string) {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return driverPostgres, url
	}
	return driverSQLite, strings.TrimPrefix(url, "sqlite://")
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlstore.%s", method)
}

func (r *implRepository) isPostgres() bool {
	return r.db.DriverName() == driverPostgres
}
