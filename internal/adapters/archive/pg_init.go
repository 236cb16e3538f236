package archive

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for the optimization result archive.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createArchiveQuery := `
	CREATE TABLE IF NOT EXISTS optimization_archive (
        id BIGSERIAL PRIMARY KEY,
        cache_key TEXT NOT NULL,
        recommended TEXT NOT NULL,
        weather_overall DOUBLE PRECISION NOT NULL,
        result JSONB NOT NULL,
        generated_at TIMESTAMPTZ NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_optimization_archive_key_generated
    ON optimization_archive(cache_key, generated_at);
	`

	statements := []string{
		createArchiveQuery,
		createIndexQuery,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit: %w", err)
	}

	return nil
}
