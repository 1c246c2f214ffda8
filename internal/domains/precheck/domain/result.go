package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Bounds the oracle's reply must respect.
const (
	MinScore    = 0
	MaxScore    = 100
	MinFeedback = 3
	MaxFeedback = 6
	MaxFlags    = 4
)

// Result is the oracle's verdict on a questionnaire. Immutable once
// produced.
type Result struct {
	Pass     bool
	Score    int
	Summary  string
	Feedback []string
	Flags    []string
}

// Evaluation augments a Result with the caller's remaining quota.
type Evaluation struct {
	Result
	Remaining  int
	RetryAfter time.Duration
}

// SchemaError reports an oracle reply that does not conform to the
// declared result shape. The reply is never partially trusted.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "oracle reply violates result schema: " + e.Reason
}

type rawResult struct {
	Pass     *bool     `json:"pass"`
	Score    *int      `json:"score"`
	Summary  *string   `json:"summary"`
	Feedback *[]string `json:"feedback"`
	Flags    *[]string `json:"flags"`
}

// ParseResult decodes an oracle reply, rejecting unknown fields, missing
// fields, and out-of-bound values.
func ParseResult(raw string) (*Result, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()
	var r rawResult
	if err := dec.Decode(&r); err != nil {
		return nil, &SchemaError{Reason: err.Error()}
	}
	if dec.More() {
		return nil, &SchemaError{Reason: "trailing data after result object"}
	}
	if r.Pass == nil || r.Score == nil || r.Summary == nil || r.Feedback == nil || r.Flags == nil {
		return nil, &SchemaError{Reason: "required field missing"}
	}
	if *r.Score < MinScore || *r.Score > MaxScore {
		return nil, &SchemaError{Reason: fmt.Sprintf("score %d outside [%d,%d]", *r.Score, MinScore, MaxScore)}
	}
	if n := len(*r.Feedback); n < MinFeedback || n > MaxFeedback {
		return nil, &SchemaError{Reason: fmt.Sprintf("feedback has %d items, want %d-%d", n, MinFeedback, MaxFeedback)}
	}
	if n := len(*r.Flags); n > MaxFlags {
		return nil, &SchemaError{Reason: fmt.Sprintf("flags has %d items, max %d", n, MaxFlags)}
	}
	return &Result{
		Pass:     *r.Pass,
		Score:    *r.Score,
		Summary:  *r.Summary,
		Feedback: *r.Feedback,
		Flags:    *r.Flags,
	}, nil
}
