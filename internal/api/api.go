package api

import (
	"context"
	"time"

	"resume-matcher/internal/auth"
	"resume-matcher/internal/config"
	"resume-matcher/internal/match"
	"resume-matcher/internal/resume"
	"resume-matcher/internal/storage"
)

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *storage.User) error
	UserByEmail(ctx context.Context, email string) (*storage.User, error)
	UserByID(ctx context.Context, id string) (*storage.User, error)
}

// ResumeStore persists parsed resumes, one current record per owner.
type ResumeStore interface {
	UpsertResume(ctx context.Context, r *storage.Resume) error
	ResumeByOwner(ctx context.Context, ownerID string) (*storage.Resume, error)
	ResumeByID(ctx context.Context, id string) (*storage.Resume, error)
	ResumesByCollege(ctx context.Context, code string) ([]*storage.Resume, error)
}

// HistoryStore records match invocations, append-only.
type HistoryStore interface {
	RecordMatch(ctx context.Context, entry *storage.HistoryEntry) error
	HistoryByRequester(ctx context.Context, requesterID string) ([]*storage.HistoryEntry, error)
}

// ResumeParser turns uploaded document bytes into structured fields.
type ResumeParser interface {
	Parse(data []byte, mimeType string) (*resume.Parsed, error)
}

type API struct {
	users      UserStore
	resumes    ResumeStore
	history    HistoryStore
	parser     ResumeParser
	engine     *match.Engine
	tokenGen   auth.TokenGenerator
	verifier   auth.TokenVerifier
	tokenTTL   time.Duration
	uploadsDir string
}

func NewAPI(db *storage.DB, cfg *config.Config) *API {
	a := &API{
		users:      db,
		resumes:    db,
		history:    db,
		parser:     resume.NewParser(),
		tokenGen:   auth.NewJWTTokenGen(cfg.JWTIssuer, cfg.JWTSecret),
		verifier:   auth.NewJWTTokenVerifier(cfg.JWTSecret),
		tokenTTL:   cfg.TokenTTL,
		uploadsDir: cfg.UploadsDir,
	}
	a.engine = match.NewEngine(poolSource{resumes: db}, match.NewKeywordScorer())
	return a
}

// poolSource adapts the resume store into the matching engine's
// candidate pool.
type poolSource struct {
	resumes ResumeStore
}

func (p poolSource) CandidatesByCollege(ctx context.Context, code string) ([]match.Candidate, error) {
	records, err := p.resumes.ResumesByCollege(ctx, code)
	if err != nil {
		return nil, err
	}
	candidates := make([]match.Candidate, 0, len(records))
	for _, r := range records {
		candidates = append(candidates, match.Candidate{
			ResumeID:      r.ID,
			Name:          r.Name,
			Email:         r.Email,
			SuggestedRole: r.SuggestedRole,
			Skills:        r.Skills,
			Experience:    r.Experience,
		})
	}
	return candidates, nil
}
