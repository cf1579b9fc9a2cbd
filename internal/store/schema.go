package store

import (
	"database/sql"
	"fmt"
)

// ensureSchema creates the tables if they don't exist. The schema is
// additive only; there are no destructive migrations.
func ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS interviews (
			id          TEXT PRIMARY KEY,
			candidate   TEXT NOT NULL,
			started_at  TIMESTAMP NOT NULL,
			ended_at    TIMESTAMP,
			reason      TEXT NOT NULL DEFAULT '',
			report      TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS exchanges (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			interview_id TEXT NOT NULL REFERENCES interviews(id) ON DELETE CASCADE,
			position     INTEGER NOT NULL,
			question_id  TEXT NOT NULL,
			topic        TEXT NOT NULL,
			difficulty   TEXT NOT NULL,
			question     TEXT NOT NULL,
			answer       TEXT NOT NULL,
			score        INTEGER NOT NULL,
			feedback     TEXT NOT NULL,
			created_at   TIMESTAMP NOT NULL,
			UNIQUE (interview_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS llm_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at    TIMESTAMP NOT NULL,
			provider      TEXT NOT NULL,
			model         TEXT NOT NULL,
			purpose       TEXT NOT NULL,
			input_tokens  INTEGER NOT NULL,
			output_tokens INTEGER NOT NULL,
			latency_ms    INTEGER NOT NULL,
			success       BOOLEAN NOT NULL,
			error_message TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_exchanges_interview ON exchanges (interview_id, position)`,
		`CREATE INDEX IF NOT EXISTS idx_llm_events_created ON llm_events (created_at)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
