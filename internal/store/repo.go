package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a requested interview does not exist.
var ErrNotFound = errors.New("store: not found")

// Interview is one persisted interview session. Exchanges is populated
// by Get, not by List.
type Interview struct {
	ID        string
	Candidate string
	StartedAt time.Time
	EndedAt   time.Time
	Reason    string
	Report    string
	Exchanges []Exchange
}

// Exchange is one persisted question/answer/grade row.
type Exchange struct {
	Position   int
	QuestionID string
	Topic      string
	Difficulty string
	Question   string
	Answer     string
	Score      int
	Feedback   string
	CreatedAt  time.Time
}

// InterviewRepo manages interview sessions and their transcripts.
type InterviewRepo interface {
	// Create records the start of an interview.
	Create(ctx context.Context, iv Interview) error

	// AppendExchange adds a graded exchange to an interview's transcript.
	AppendExchange(ctx context.Context, interviewID string, ex Exchange) error

	// Finish marks an interview complete with its end reason and report.
	Finish(ctx context.Context, interviewID string, endedAt time.Time, reason, report string) error

	// Get returns one interview with its full transcript, or ErrNotFound.
	Get(ctx context.Context, id string) (*Interview, error)

	// List returns interviews newest first, transcripts omitted.
	List(ctx context.Context) ([]Interview, error)
}

// interviewRepo implements InterviewRepo on raw SQL.
type interviewRepo struct {
	db *sql.DB
}

func (r *interviewRepo) Create(ctx context.Context, iv Interview) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO interviews (id, candidate, started_at) VALUES (?, ?, ?)`,
		iv.ID, iv.Candidate, iv.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("create interview: %w", err)
	}
	return nil
}

func (r *interviewRepo) AppendExchange(ctx context.Context, interviewID string, ex Exchange) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO exchanges
			(interview_id, position, question_id, topic, difficulty, question, answer, score, feedback, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		interviewID, ex.Position, ex.QuestionID, ex.Topic, ex.Difficulty,
		ex.Question, ex.Answer, ex.Score, ex.Feedback, ex.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append exchange: %w", err)
	}
	return nil
}

func (r *interviewRepo) Finish(ctx context.Context, interviewID string, endedAt time.Time, reason, report string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE interviews SET ended_at = ?, reason = ?, report = ? WHERE id = ?`,
		endedAt, reason, report, interviewID,
	)
	if err != nil {
		return fmt.Errorf("finish interview: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish interview: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *interviewRepo) Get(ctx context.Context, id string) (*Interview, error) {
	iv := Interview{ID: id}
	var endedAt sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT candidate, started_at, ended_at, reason, report FROM interviews WHERE id = ?`,
		id,
	).Scan(&iv.Candidate, &iv.StartedAt, &endedAt, &iv.Reason, &iv.Report)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get interview: %w", err)
	}
	if endedAt.Valid {
		iv.EndedAt = endedAt.Time
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT position, question_id, topic, difficulty, question, answer, score, feedback, created_at
		FROM exchanges WHERE interview_id = ? ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("get exchanges: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ex Exchange
		if err := rows.Scan(&ex.Position, &ex.QuestionID, &ex.Topic, &ex.Difficulty,
			&ex.Question, &ex.Answer, &ex.Score, &ex.Feedback, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan exchange: %w", err)
		}
		iv.Exchanges = append(iv.Exchanges, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exchanges: %w", err)
	}
	return &iv, nil
}

func (r *interviewRepo) List(ctx context.Context) ([]Interview, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, candidate, started_at, ended_at, reason FROM interviews ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	defer rows.Close()

	var out []Interview
	for rows.Next() {
		var iv Interview
		var endedAt sql.NullTime
		if err := rows.Scan(&iv.ID, &iv.Candidate, &iv.StartedAt, &endedAt, &iv.Reason); err != nil {
			return nil, fmt.Errorf("scan interview: %w", err)
		}
		if endedAt.Valid {
			iv.EndedAt = endedAt.Time
		}
		out = append(out, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interviews: %w", err)
	}
	return out, nil
}
