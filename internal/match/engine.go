package match

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyDescription is returned when a match is requested without a
// job description.
var ErrEmptyDescription = errors.New("job description must not be empty")

// Top-N bounds for one match request. Out-of-range requests are clamped,
// never rejected.
const (
	MinTopN     = 1
	MaxTopN     = 20
	DefaultTopN = 5
)

// Candidate is one resume in the matching pool.
type Candidate struct {
	ResumeID      string
	Name          string
	Email         string
	SuggestedRole string
	Skills        []string
	Experience    string
}

// Result is one scored candidate. Score is a percentage in [0,100];
// Highlights explain the score, strongest evidence first.
type Result struct {
	Candidate  Candidate
	Score      float64
	Highlights []string
}

// Evaluation is a scorer's verdict for one candidate.
type Evaluation struct {
	Score      float64
	Highlights []string
}

// Scorer is the pluggable scoring strategy. Implementations must be
// deterministic: identical (job, candidate) input yields an identical
// evaluation, with no randomness and no clock involved.
type Scorer interface {
	Score(job Job, c Candidate) Evaluation
}

// CandidateSource loads the matching pool for an institution code. The
// returned order must be stable across calls over an unchanged pool; it
// is the tie-break order for equal scores.
type CandidateSource interface {
	CandidatesByCollege(ctx context.Context, code string) ([]Candidate, error)
}

// Job is a preprocessed job description shared by scorer invocations.
type Job struct {
	Description string
	Skills      []string
	Tokens      []string
}

// Engine ranks a candidate pool against a job description.
type Engine struct {
	source CandidateSource
	scorer Scorer
}

func NewEngine(source CandidateSource, scorer Scorer) *Engine {
	return &Engine{source: source, scorer: scorer}
}

// Match scores every candidate of the institution against the
// description and returns at most topN results, best first. An unknown
// institution code or an empty pool yields an empty result, not an
// error.
func (e *Engine) Match(ctx context.Context, description, collegeCode string, topN int) ([]Result, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	topN = ClampTopN(topN)

	pool, err := e.source.CandidatesByCollege(ctx, collegeCode)
	if err != nil {
		return nil, fmt.Errorf("load candidate pool: %w", err)
	}
	if len(pool) == 0 {
		return []Result{}, nil
	}

	job := NewJob(description)

	results := make([]Result, 0, len(pool))
	for _, c := range pool {
		ev := e.scorer.Score(job, c)
		results = append(results, Result{
			Candidate:  c,
			Score:      ev.Score,
			Highlights: ev.Highlights,
		})
	}

	// Stable sort keeps pool order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topN {
		results = results[:topN]
	}
	return results, nil
}

// ClampTopN forces a requested result count into [MinTopN, MaxTopN]. A
// zero or negative request falls back to the default.
func ClampTopN(n int) int {
	if n <= 0 {
		return DefaultTopN
	}
	if n < MinTopN {
		return MinTopN
	}
	if n > MaxTopN {
		return MaxTopN
	}
	return n
}
