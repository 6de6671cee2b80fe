package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"resume-matcher/internal/auth"
	"resume-matcher/internal/storage"
)

// Seeds a development database with a student, a company and a couple of
// resumes so the dashboard has something to show.
func main() {
	var wipe bool
	flag.BoolVar(&wipe, "wipe", true, "If true, delete existing rows before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	log.Println("Connecting to DB...")
	db, err := storage.NewDB(dbURL)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	if wipe {
		for _, table := range []string{"match_history", "resumes", "users"} {
			if _, err := db.GetConnection().ExecContext(ctx, "DELETE FROM "+table); err != nil {
				log.Fatalf("wipe %s: %v", table, err)
			}
		}
		log.Println("Existing rows deleted")
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	student := &storage.User{
		ID:           uuid.NewString(),
		Name:         "John Student",
		Email:        "student@example.com",
		PasswordHash: hash,
		CollegeCode:  "COLLEGE123",
		Type:         "student",
		CreatedAt:    time.Now().UTC(),
	}
	student2 := &storage.User{
		ID:           uuid.NewString(),
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		PasswordHash: hash,
		CollegeCode:  "COLLEGE123",
		Type:         "student",
		CreatedAt:    time.Now().UTC(),
	}
	company := &storage.User{
		ID:           uuid.NewString(),
		Name:         "Acme Corp",
		Email:        "company@example.com",
		PasswordHash: hash,
		CollegeCode:  "COLLEGE123",
		Type:         "company",
		CreatedAt:    time.Now().UTC(),
	}
	for _, u := range []*storage.User{student, student2, company} {
		if err := db.CreateUser(ctx, u); err != nil {
			log.Fatalf("create user %s: %v", u.Email, err)
		}
	}

	resumes := []*storage.Resume{
		{
			ID:            uuid.NewString(),
			OwnerID:       student.ID,
			Name:          "John Student",
			Email:         "student@example.com",
			SuggestedRole: "Frontend Developer",
			Skills:        []string{"React", "JavaScript", "HTML", "CSS", "Git", "TypeScript"},
			Experience:    "3 years of experience in web development",
			RawText:       "Sample resume text for John Student",
			FilePath:      "uploads/sample_resume1.pdf",
			CollegeCode:   "COLLEGE123",
			UploadedAt:    time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            uuid.NewString(),
			OwnerID:       student2.ID,
			Name:          "Jane Doe",
			Email:         "jane@example.com",
			SuggestedRole: "Full Stack Developer",
			Skills:        []string{"React", "Node.js", "MongoDB", "Express", "AWS"},
			Experience:    "4 years of experience in full stack development",
			RawText:       "Sample resume text for Jane Doe",
			FilePath:      "uploads/sample_resume2.pdf",
			CollegeCode:   "COLLEGE123",
			UploadedAt:    time.Date(2023, 6, 20, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, r := range resumes {
		if err := db.UpsertResume(ctx, r); err != nil {
			log.Fatalf("seed resume for %s: %v", r.Email, err)
		}
	}

	history := &storage.HistoryEntry{
		ID:             uuid.NewString(),
		RequesterID:    company.ID,
		JobDescription: "We are looking for a Frontend Developer with experience in React, TypeScript, and modern web development practices.",
		CollegeCode:    "COLLEGE123",
		Matches: []storage.MatchSummary{
			{ResumeID: resumes[0].ID, Name: "John Student", Email: "student@example.com", Score: 85},
			{ResumeID: resumes[1].ID, Name: "Jane Doe", Email: "jane@example.com", Score: 60},
		},
		CreatedAt: time.Now().UTC(),
	}
	if err := db.RecordMatch(ctx, history); err != nil {
		log.Fatalf("seed history: %v", err)
	}

	log.Printf("Seeded %d users, %d resumes, 1 history entry", 3, len(resumes))
	log.Println("Login with student@example.com / company@example.com, password: password")
}
