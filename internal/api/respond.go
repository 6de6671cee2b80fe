package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"resume-matcher/internal/match"
	"resume-matcher/internal/resume"
	"resume-matcher/internal/storage"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeDomainError maps typed failures from the parser, engine and
// stores onto the HTTP error taxonomy. Anything unrecognized is an
// internal error and gets logged with its cause.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, match.ErrEmptyDescription):
		writeError(w, http.StatusBadRequest, "job description must not be empty")
	case errors.Is(err, resume.ErrTooLarge):
		writeError(w, http.StatusBadRequest, "file exceeds the 5MB upload limit")
	case errors.Is(err, resume.ErrUnsupportedFormat):
		writeError(w, http.StatusUnsupportedMediaType, "only PDF resumes are accepted")
	case errors.Is(err, resume.ErrParse):
		writeError(w, http.StatusUnprocessableEntity, "could not extract resume details from the document")
	case errors.Is(err, storage.ErrDuplicateEmail):
		writeError(w, http.StatusBadRequest, "email already registered")
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "record not found")
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "unexpected error")
	}
}
