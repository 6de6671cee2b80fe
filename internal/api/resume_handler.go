package api

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-matcher/internal/resume"
	"resume-matcher/internal/storage"
)

// multipart overhead on top of the 5MB document limit
const maxUploadBody = resume.MaxUploadBytes + 1<<20

// UploadResumeHandler accepts a PDF resume, parses it and stores the
// structured record, replacing any previous resume of the caller
// @Summary Upload resume
// @Description Upload a PDF resume (max 5MB); the parsed record replaces the caller's previous resume
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume PDF"
// @Success 200 {object} storage.Resume
// @Failure 400 {object} map[string]string
// @Failure 415 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /resume/upload [post]
func (a *API) UploadResumeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	user, err := a.currentUser(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
	if err := r.ParseMultipartForm(maxUploadBody); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid (max 5MB)")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no resume file uploaded")
		return
	}
	defer file.Close()

	if header.Size > resume.MaxUploadBytes {
		writeError(w, http.StatusBadRequest, "file exceeds the 5MB upload limit")
		return
	}
	if strings.ToLower(filepath.Ext(header.Filename)) != ".pdf" {
		writeError(w, http.StatusUnsupportedMediaType, "only PDF resumes are accepted")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read uploaded file")
		return
	}

	parsed, err := a.parser.Parse(data, resume.MimeTypePDF)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	// Persist the raw document for later download. One file per owner,
	// overwritten on re-upload like the database record.
	if err := os.MkdirAll(a.uploadsDir, 0755); err != nil {
		writeDomainError(w, err)
		return
	}
	filePath := filepath.Join(a.uploadsDir, user.ID+".pdf")
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		writeDomainError(w, err)
		return
	}

	record := &storage.Resume{
		ID:            uuid.NewString(),
		OwnerID:       user.ID,
		Name:          parsed.Name,
		Email:         parsed.Email,
		SuggestedRole: parsed.Role,
		Skills:        parsed.Skills,
		Experience:    parsed.Experience,
		RawText:       parsed.Text,
		FilePath:      filePath,
		CollegeCode:   user.CollegeCode,
		UploadedAt:    time.Now().UTC(),
	}
	if err := a.resumes.UpsertResume(r.Context(), record); err != nil {
		writeDomainError(w, err)
		return
	}

	log.Printf("Resume stored for user %s (%d skills)", user.ID, len(record.Skills))
	writeJSON(w, http.StatusOK, record)
}

// UserResumeHandler returns the caller's current resume, or null when
// none has been uploaded yet
// @Summary Get own resume
// @Description Return the caller's current resume record, or null
// @Tags resume
// @Produce json
// @Success 200 {object} storage.Resume
// @Security BearerAuth
// @Router /resume/user [get]
func (a *API) UserResumeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	record, err := a.resumes.ResumeByOwner(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// ListResumesHandler lists the current resumes of an institution
// @Summary List resumes by college code
// @Description List current resumes for an institution; company accounts only
// @Tags resume
// @Produce json
// @Param collegeCode query string false "College code (defaults to the caller's)"
// @Success 200 {array} storage.Resume
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /resumes [get]
func (a *API) ListResumesHandler(w http.ResponseWriter, r *http.Request) {
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
		writeError(w, http.StatusForbidden, "only company accounts can list resumes")
		return
	}

	code := r.URL.Query().Get("collegeCode")
	if code == "" {
		code = user.CollegeCode
	}

	records, err := a.resumes.ResumesByCollege(r.Context(), code)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if records == nil {
		records = []*storage.Resume{}
	}
	writeJSON(w, http.StatusOK, records)
}

// DownloadResumeHandler streams the stored PDF for a resume id
// @Summary Download resume PDF
// @Description Download the original document; allowed for the owner or a company of the same institution
// @Tags resume
// @Produce application/pdf
// @Param id path string true "Resume id"
// @Success 200 {file} binary
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /resume/{id}/download [get]
func (a *API) DownloadResumeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/resume/")
	id := strings.TrimSuffix(rest, "/download")
	if id == rest || id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}

	record, err := a.resumes.ResumeByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	user, err := a.currentUser(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	switch user.Type {
	case "company":
		if user.CollegeCode != record.CollegeCode {
			writeError(w, http.StatusForbidden, "resume belongs to another institution")
			return
		}
	default:
		if user.ID != record.OwnerID {
			writeError(w, http.StatusForbidden, "not the owner of this resume")
			return
		}
	}

	f, err := os.Open(record.FilePath)
	if err != nil {
		log.Printf("stored resume file missing for %s: %v", record.ID, err)
		writeError(w, http.StatusInternalServerError, "error downloading file")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", record.Name+".pdf"))
	http.ServeContent(w, r, record.Name+".pdf", record.UploadedAt, f)
}
