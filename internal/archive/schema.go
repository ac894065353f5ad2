package archive

import (
	"context"
	"database/sql"
	"fmt"
)

// createSchema creates the archive tables. Safe to call on every open.
func createSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS run (
    id TEXT PRIMARY KEY,
    created_at INTEGER NOT NULL,
    inputs TEXT NOT NULL,
    games INTEGER NOT NULL,
    valid_games INTEGER NOT NULL,
    sum_of_valid_ids INTEGER NOT NULL,
    total_power INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS game_record (
    run_id TEXT NOT NULL REFERENCES run(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    game_id INTEGER NOT NULL,
    max_red INTEGER NOT NULL,
    max_green INTEGER NOT NULL,
    max_blue INTEGER NOT NULL,
    PRIMARY KEY (run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_run_created_at ON run(created_at);
`
