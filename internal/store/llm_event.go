package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/abhisek/intervue/internal/llm"
)

// LLMEvent is one persisted LLM request event.
type LLMEvent struct {
	ID        int64
	CreatedAt time.Time
	llm.RequestEvent
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // created_at >= From
	To    time.Time // created_at <= To
}

// EventRepo persists LLM request events. It implements llm.EventRecorder.
type EventRepo struct {
	db *sql.DB
}

var _ llm.EventRecorder = (*EventRepo)(nil)

// AppendLLMRequest records an LLM API call event.
func (r *EventRepo) AppendLLMRequest(ctx context.Context, ev llm.RequestEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_events
			(created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), ev.Provider, ev.Model, ev.Purpose,
		ev.InputTokens, ev.OutputTokens, ev.LatencyMs, ev.Success, ev.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

// Query returns events newest first, filtered by opts.
func (r *EventRepo) Query(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	q := `SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message
		FROM llm_events WHERE 1=1`
	var args []any
	if !opts.From.IsZero() {
		q += " AND created_at >= ?"
		args = append(args, opts.From)
	}
	if !opts.To.IsZero() {
		q += " AND created_at <= ?"
		args = append(args, opts.To)
	}
	q += " ORDER BY id DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var out []LLMEvent
	for rows.Next() {
		var ev LLMEvent
		if err := rows.Scan(&ev.ID, &ev.CreatedAt, &ev.Provider, &ev.Model, &ev.Purpose,
			&ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs, &ev.Success, &ev.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate LLM events: %w", err)
	}
	return out, nil
}
