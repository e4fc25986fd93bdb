package sqlstore

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// migration holds a single schema migration with its target version and SQL
// for each dialect.
type migration struct {
	version  int
	sqlite   string
	postgres string
}

var migrations = []migration{
	{
		version: 1,
		sqlite: `
CREATE TABLE IF NOT EXISTS tasks (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	owner_id    INTEGER NOT NULL,
	description TEXT NOT NULL,
	due_at      DATETIME,
	status      TEXT NOT NULL DEFAULT 'pending'
	            CHECK (status IN ('pending', 'completed', 'overdue', 'cancelled')),
	priority    TEXT NOT NULL DEFAULT 'medium'
	            CHECK (priority IN ('high', 'medium', 'low')),
	category    TEXT,
	notes       TEXT NOT NULL DEFAULT '',
	created_at  DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_owner_status ON tasks(owner_id, status);`,
		postgres: `
CREATE TABLE IF NOT EXISTS tasks (
	id          BIGSERIAL PRIMARY KEY,
	owner_id    BIGINT NOT NULL,
	description TEXT NOT NULL,
	due_at      TIMESTAMPTZ,
	status      TEXT NOT NULL DEFAULT 'pending'
	            CHECK (status IN ('pending', 'completed', 'overdue', 'cancelled')),
	priority    TEXT NOT NULL DEFAULT 'medium'
	            CHECK (priority IN ('high', 'medium', 'low')),
	category    TEXT,
	notes       TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_owner_status ON tasks(owner_id, status);`,
	},
}

// runMigrations applies outstanding migrations in order and records each version.
func runMigrations(db *sqlx.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("creating schema_version: %w", err)
	}

	var current int
	if err := db.Get(&current, "SELECT COALESCE(MAX(version), 0) FROM schema_version"); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		stmt := m.sqlite
		if db.DriverName() == driverPostgres {
			stmt = m.postgres
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
		if _, err := db.Exec(db.Rebind("INSERT INTO schema_version (version) VALUES (?)"), m.version); err != nil {
			return fmt.Errorf("recording migration v%d: %w", m.version, err)
		}
	}
	return nil
}
