package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"resume-matcher/internal/storage"
)

// MatchRequest is the payload for a matching run.
type MatchRequest struct {
	JobDescription string `json:"jobDescription"`
	CollegeCode    string `json:"collegeCode"`
	TopN           int    `json:"topN"`
}

// MatchResponse is the result of a matching run. HistoryID is empty
// when recording the run failed; the matches are still valid.
type MatchResponse struct {
	Matches   []MatchEntry `json:"matches"`
	HistoryID string       `json:"historyId,omitempty"`
}

// MatchEntry is one ranked candidate with its score and justification.
type MatchEntry struct {
	Resume     MatchedResume `json:"resume"`
	Score      float64       `json:"score"`
	Highlights []string      `json:"highlights"`
}

// MatchedResume is the resume summary embedded in a match result.
type MatchedResume struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	SuggestedRole string `json:"suggestedRole"`
}

// MatchHandler ranks an institution's resumes against a job description
// @Summary Match resumes to a job description
// @Description Score and rank the institution's resumes against a job description; company accounts only
// @Tags match
// @Accept json
// @Produce json
// @Param request body MatchRequest true "Job description, college code and result count (clamped to 1-20)"
// @Success 200 {object} MatchResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /match [post]
func (a *API) MatchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	user, err := a.currentUser(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if user.Type != "company" {
		writeError(w, http.StatusForbidden, "only company accounts can run matches")
		return
	}

	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.CollegeCode == "" {
		req.CollegeCode = user.CollegeCode
	}

	results, err := a.engine.Match(r.Context(), req.JobDescription, req.CollegeCode, req.TopN)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	matches := make([]MatchEntry, 0, len(results))
	summaries := make([]storage.MatchSummary, 0, len(results))
	for _, res := range results {
		matches = append(matches, MatchEntry{
			Resume: MatchedResume{
				ID:            res.Candidate.ResumeID,
				Name:          res.Candidate.Name,
				Email:         res.Candidate.Email,
				SuggestedRole: res.Candidate.SuggestedRole,
			},
			Score:      res.Score,
			Highlights: res.Highlights,
		})
		summaries = append(summaries, storage.MatchSummary{
			ResumeID: res.Candidate.ResumeID,
			Name:     res.Candidate.Name,
			Email:    res.Candidate.Email,
			Score:    res.Score,
		})
	}

	entry := &storage.HistoryEntry{
		ID:             uuid.NewString(),
		RequesterID:    user.ID,
		JobDescription: req.JobDescription,
		CollegeCode:    req.CollegeCode,
		Matches:        summaries,
		CreatedAt:      time.Now().UTC(),
	}
	historyID := entry.ID
	if err := a.history.RecordMatch(r.Context(), entry); err != nil {
		// A failed history write must not fail the match itself.
		log.Printf("failed to record match history for %s: %v", user.ID, err)
		historyID = ""
	}

	writeJSON(w, http.StatusOK, MatchResponse{
		Matches:   matches,
		HistoryID: historyID,
	})
}

// MatchHistoryHandler lists the caller's past matching runs
// @Summary Match history
// @Description List the caller's past matching runs, most recent first; company accounts only
// @Tags match
// @Produce json
// @Success 200 {array} storage.HistoryEntry
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /match/history [get]
func (a *API) MatchHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	user, err := a.currentUser(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if user.Type != "company" {
		writeError(w, http.StatusForbidden, "only company accounts can view match history")
		return
	}

	entries, err := a.history.HistoryByRequester(r.Context(), user.ID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if entries == nil {
		entries = []*storage.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
