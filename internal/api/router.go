package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Authentication
	mux.HandleFunc("/api/register", a.RegisterHandler)
	mux.HandleFunc("/api/login", a.LoginHandler)

	// Resume endpoints
	mux.HandleFunc("/api/resume/upload", a.requireAuth(a.UploadResumeHandler))
	mux.HandleFunc("/api/resume/user", a.requireAuth(a.UserResumeHandler))
	mux.HandleFunc("/api/resume/", a.requireAuth(a.DownloadResumeHandler)) // /api/resume/{id}/download
	mux.HandleFunc("/api/resumes", a.requireAuth(a.ListResumesHandler))

	// Matching endpoints
	mux.HandleFunc("/api/match", a.requireAuth(a.MatchHandler))
	mux.HandleFunc("/api/match/history", a.requireAuth(a.MatchHistoryHandler))

	return withCORS(mux)
}

// withCORS lets the browser dashboard call the API from another origin.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
