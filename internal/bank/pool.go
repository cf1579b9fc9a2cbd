package bank

import (
	"fmt"
	"sort"
)

// Question is a single interview question with its grading rubric.
// Questions are built once at load time and never mutated; the pool shares
// them read-only across concurrent sessions.
type Question struct {
	// ID uniquely identifies the question across the entire bank.
	ID string

	// Topic is the bank section the question came from, e.g. "Pivot Tables".
	Topic string

	// Difficulty is the question's level on the Easy/Medium/Hard ladder.
	Difficulty Difficulty

	// Text is the question prompt shown to the candidate.
	Text string

	// Rubric is the grading criteria. Opaque to the engine — it is passed
	// verbatim to the scoring oracle.
	Rubric string
}

// Record is the raw question shape in a bank file. Topic is absent — it is
// the key of the enclosing section and gets injected during Build.
type Record struct {
	ID         string `json:"id"`
	Difficulty string `json:"difficulty"`
	Text       string `json:"question_text"`
	Rubric     string `json:"evaluation_rubric"`
}

// MalformedBankError reports a question bank that failed structural
// validation. It is fatal to startup, not recoverable by a session.
type MalformedBankError struct {
	Topic string // section containing the bad record, empty for bank-level problems
	ID    string // offending question id, if known
	Err   error
}

func (e *MalformedBankError) Error() string {
	switch {
	case e.Topic != "" && e.ID != "":
		return fmt.Sprintf("malformed question bank: topic %q, question %q: %v", e.Topic, e.ID, e.Err)
	case e.Topic != "":
		return fmt.Sprintf("malformed question bank: topic %q: %v", e.Topic, e.Err)
	}
	return fmt.Sprintf("malformed question bank: %v", e.Err)
}

func (e *MalformedBankError) Unwrap() error { return e.Err }

// Pool is the immutable, flattened view of a question bank. Safe for
// concurrent reads; never mutated after Build.
type Pool struct {
	questions    []Question
	byDifficulty map[Difficulty][]Question
	ids          map[string]struct{}
}

// Build flattens a topic→records mapping into a Pool, tagging every
// question with its topic. The input is never mutated. Build is idempotent:
// the same bank always yields a pool with the same id set and tagging.
func Build(sections map[string][]Record) (*Pool, error) {
	if len(sections) == 0 {
		return nil, &MalformedBankError{Err: fmt.Errorf("bank has no topics")}
	}

	p := &Pool{
		byDifficulty: make(map[Difficulty][]Question),
		ids:          make(map[string]struct{}),
	}

	// Walk topics in sorted order so construction is deterministic.
	topics := make([]string, 0, len(sections))
	for t := range sections {
		topics = append(topics, t)
	}
	sort.Strings(topics)

	for _, topic := range topics {
		for _, rec := range sections[topic] {
			q, err := buildQuestion(topic, rec)
			if err != nil {
				return nil, err
			}
			if _, dup := p.ids[q.ID]; dup {
				return nil, &MalformedBankError{
					Topic: topic,
					ID:    q.ID,
					Err:   fmt.Errorf("duplicate question id"),
				}
			}
			p.ids[q.ID] = struct{}{}
			p.questions = append(p.questions, q)
			p.byDifficulty[q.Difficulty] = append(p.byDifficulty[q.Difficulty], q)
		}
	}

	if len(p.questions) == 0 {
		return nil, &MalformedBankError{Err: fmt.Errorf("bank has no questions")}
	}

	return p, nil
}

func buildQuestion(topic string, rec Record) (Question, error) {
	if rec.ID == "" {
		return Question{}, &MalformedBankError{Topic: topic, Err: fmt.Errorf("question record missing id")}
	}
	if rec.Text == "" {
		return Question{}, &MalformedBankError{Topic: topic, ID: rec.ID, Err: fmt.Errorf("missing question_text")}
	}
	if rec.Rubric == "" {
		return Question{}, &MalformedBankError{Topic: topic, ID: rec.ID, Err: fmt.Errorf("missing evaluation_rubric")}
	}
	diff, err := ParseDifficulty(rec.Difficulty)
	if err != nil {
		return Question{}, &MalformedBankError{Topic: topic, ID: rec.ID, Err: err}
	}

	return Question{
		ID:         rec.ID,
		Topic:      topic,
		Difficulty: diff,
		Text:       rec.Text,
		Rubric:     rec.Rubric,
	}, nil
}

// Len returns the total number of questions in the pool.
func (p *Pool) Len() int {
	return len(p.questions)
}

// Questions returns all questions in deterministic (topic-sorted) order.
// The returned slice is a copy; callers may not reach the pool's backing array.
func (p *Pool) Questions() []Question {
	out := make([]Question, len(p.questions))
	copy(out, p.questions)
	return out
}

// AtDifficulty returns a copy of the questions at the given difficulty.
func (p *Pool) AtDifficulty(d Difficulty) []Question {
	qs := p.byDifficulty[d]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// Contains reports whether the pool holds a question with the given id.
func (p *Pool) Contains(id string) bool {
	_, ok := p.ids[id]
	return ok
}

// Topics returns the distinct topic names in sorted order.
func (p *Pool) Topics() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, q := range p.questions {
		if _, ok := seen[q.Topic]; !ok {
			seen[q.Topic] = struct{}{}
			out = append(out, q.Topic)
		}
	}
	sort.Strings(out)
	return out
}
