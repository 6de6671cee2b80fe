package match

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	pools map[string][]Candidate
	err   error
}

func (s stubSource) CandidatesByCollege(_ context.Context, code string) ([]Candidate, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.pools[code], nil
}

func newTestEngine(pools map[string][]Candidate) *Engine {
	return NewEngine(stubSource{pools: pools}, NewKeywordScorer())
}

func frontendCandidate() Candidate {
	return Candidate{
		ResumeID:      "r-frontend",
		Name:          "John Student",
		Email:         "student@example.com",
		SuggestedRole: "Frontend Developer",
		Skills:        []string{"React", "TypeScript"},
		Experience:    "3 years of experience in web development",
	}
}

func backendCandidate() Candidate {
	return Candidate{
		ResumeID:      "r-backend",
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		SuggestedRole: "Backend Developer",
		Skills:        []string{"Python", "SQL"},
		Experience:    "4 years of experience with databases",
	}
}

func TestMatchEmptyPool(t *testing.T) {
	engine := newTestEngine(map[string][]Candidate{})

	results, err := engine.Match(context.Background(), "React developer wanted", "UNKNOWN", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMatchEmptyDescription(t *testing.T) {
	engine := newTestEngine(map[string][]Candidate{
		"COLLEGE123": {frontendCandidate()},
	})

	_, err := engine.Match(context.Background(), "   ", "COLLEGE123", 5)
	assert.ErrorIs(t, err, ErrEmptyDescription)
}

func TestMatchSourceError(t *testing.T) {
	engine := NewEngine(stubSource{err: errors.New("db down")}, NewKeywordScorer())

	_, err := engine.Match(context.Background(), "React developer", "COLLEGE123", 5)
	assert.Error(t, err)
}

func TestMatchFrontendScenario(t *testing.T) {
	engine := newTestEngine(map[string][]Candidate{
		"COLLEGE123": {backendCandidate(), frontendCandidate()},
	})

	results, err := engine.Match(context.Background(),
		"Looking for React and TypeScript frontend developer", "COLLEGE123", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "r-frontend", results[0].Candidate.ResumeID)
	assert.Greater(t, results[0].Score, results[1].Score)
	assert.Contains(t, results[0].Highlights[0], "React")
}

func TestMatchTruncatesToTopN(t *testing.T) {
	pool := make([]Candidate, 0, 5)
	for i := 0; i < 5; i++ {
		c := frontendCandidate()
		c.ResumeID = fmt.Sprintf("r-%d", i)
		pool = append(pool, c)
	}
	engine := newTestEngine(map[string][]Candidate{"COLLEGE123": pool})

	results, err := engine.Match(context.Background(), "React developer", "COLLEGE123", 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestMatchResultNeverExceedsPool(t *testing.T) {
	engine := newTestEngine(map[string][]Candidate{
		"COLLEGE123": {frontendCandidate(), backendCandidate()},
	})

	results, err := engine.Match(context.Background(), "React developer", "COLLEGE123", 20)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestMatchDeterministic(t *testing.T) {
	engine := newTestEngine(map[string][]Candidate{
		"COLLEGE123": {backendCandidate(), frontendCandidate()},
	})

	first, err := engine.Match(context.Background(), "Looking for a React frontend developer", "COLLEGE123", 5)
	require.NoError(t, err)
	second, err := engine.Match(context.Background(), "Looking for a React frontend developer", "COLLEGE123", 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMatchStableTieBreak(t *testing.T) {
	first := frontendCandidate()
	first.ResumeID = "r-first"
	second := frontendCandidate()
	second.ResumeID = "r-second"

	engine := newTestEngine(map[string][]Candidate{
		"COLLEGE123": {first, second},
	})

	results, err := engine.Match(context.Background(), "React and TypeScript developer", "COLLEGE123", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, "r-first", results[0].Candidate.ResumeID)
	assert.Equal(t, "r-second", results[1].Candidate.ResumeID)
}

func TestMatchSortedDescending(t *testing.T) {
	engine := newTestEngine(map[string][]Candidate{
		"COLLEGE123": {backendCandidate(), frontendCandidate()},
	})

	results, err := engine.Match(context.Background(),
		"Frontend role requiring React, TypeScript and SQL", "COLLEGE123", 5)
	require.NoError(t, err)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestMatchScoresWithinRange(t *testing.T) {
	engine := newTestEngine(map[string][]Candidate{
		"COLLEGE123": {frontendCandidate(), backendCandidate()},
	})

	results, err := engine.Match(context.Background(), "React and TypeScript frontend developer", "COLLEGE123", 5)
	require.NoError(t, err)

	for _, r := range results {
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 100.0)
		assert.GreaterOrEqual(t, len(r.Highlights), 2)
		assert.LessOrEqual(t, len(r.Highlights), 4)
	}
}

func TestClampTopN(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultTopN},
		{-3, DefaultTopN},
		{1, 1},
		{5, 5},
		{20, 20},
		{21, 20},
		{100, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampTopN(tt.in), "ClampTopN(%d)", tt.in)
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Looking for a C++ and Go developer, the ideal candidate knows SQL.")

	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "developer")
	assert.Contains(t, tokens, "sql")
	assert.NotContains(t, tokens, "the")
	assert.NotContains(t, tokens, "for")
	assert.NotContains(t, tokens, "a")
}
