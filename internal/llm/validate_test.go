package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func gradeTestSchema() *Schema {
	return &Schema{
		Name:        "test-grade",
		Description: "A grade object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":    map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
				"feedback": map[string]any{"type": "string"},
			},
			"required":             []any{"score", "feedback"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_ValidGrade(t *testing.T) {
	raw := json.RawMessage(`{"score":4,"feedback":"Covered the rubric."}`)
	if err := validateResponse(gradeTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"score":4}`)
	err := validateResponse(gradeTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing feedback")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"score":"four","feedback":"ok"}`)
	if err := validateResponse(gradeTestSchema(), raw); err == nil {
		t.Fatal("expected error for string score")
	}
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"score":7,"feedback":"ok"}`)
	if err := validateResponse(gradeTestSchema(), raw); err == nil {
		t.Fatal("expected error for score above maximum")
	}
}

func TestValidateResponse_ExtraProperty(t *testing.T) {
	raw := json.RawMessage(`{"score":3,"feedback":"ok","confidence":0.9}`)
	if err := validateResponse(gradeTestSchema(), raw); err == nil {
		t.Fatal("expected error for additional property")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(gradeTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
