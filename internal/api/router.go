package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.Handler())

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Ingestion and matching
	mux.HandleFunc("POST /api/cv/upload", a.UploadHandler)
	mux.HandleFunc("POST /api/match", a.MatchHandler)

	// Stored documents
	mux.HandleFunc("GET /api/cv/{id}", a.DocumentHandler)
	mux.HandleFunc("DELETE /api/cv/{id}", a.DeleteHandler)
	mux.HandleFunc("GET /api/cvs", a.ListHandler)
	mux.HandleFunc("GET /api/cvs/count", a.CountHandler)
	mux.HandleFunc("POST /api/cvs/clear", a.ClearHandler)

	return mux
}
