package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"cv-matcher/internal/cv"
	"cv-matcher/internal/matcher"
	"cv-matcher/internal/search"
	"cv-matcher/internal/store"
)

const maxUploadBytes = 16 << 20 // 16MB

type API struct {
	matcher *matcher.Matcher
	parser  *cv.Parser
	log     *zap.Logger
}

func NewAPI(m *matcher.Matcher, parser *cv.Parser, log *zap.Logger) *API {
	return &API{matcher: m, parser: parser, log: log}
}

// UploadHandler ingests one CV file
// @Summary Upload a CV
// @Description Upload a CV file (PDF/DOCX/TXT), extract structured fields and store it
// @Tags cv
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CV file"
// @Param name formData string false "Candidate name used when extraction finds none"
// @Success 200 {object} matcher.IngestResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cv/upload [post]
func (a *API) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid (max 16MB)")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	if !cv.AllowedExt(ext) {
		writeError(w, http.StatusBadRequest, "invalid file type (supported: PDF, DOCX, TXT)")
		return
	}

	path, size, err := a.parser.Save(cv.SanitizeFilename(header.Filename), file)
	if err != nil {
		a.log.Error("failed to save upload", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save file")
		return
	}
	a.log.Info("CV uploaded",
		zap.String("filename", header.Filename), zap.Int64("size", size))

	result, err := a.matcher.Ingest(r.Context(), path, r.FormValue("name"))
	if err != nil {
		a.log.Warn("ingestion failed", zap.Error(err))
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type matchRequest struct {
	JobDescription string `json:"job_description"`
}

type matchResponse struct {
	Query   string         `json:"query"`
	Total   int            `json:"total"`
	Matches []search.Match `json:"matches"`
}

// MatchHandler ranks stored CVs against a job description
// @Summary Match CVs against a job description
// @Description Rank stored CVs by lexical similarity to the given job description
// @Tags match
// @Accept json
// @Produce json
// @Param request body matchRequest true "Job description"
// @Success 200 {object} matchResponse
// @Failure 400 {object} map[string]string
// @Router /match [post]
func (a *API) MatchHandler(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	query := strings.TrimSpace(req.JobDescription)
	if query == "" {
		writeError(w, http.StatusBadRequest, "job_description is required")
		return
	}

	matches := a.matcher.Match(r.Context(), query)
	if matches == nil {
		matches = []search.Match{}
	}

	writeJSON(w, http.StatusOK, matchResponse{
		Query:   query,
		Total:   len(matches),
		Matches: matches,
	})
}

// DocumentHandler fetches one stored CV
// @Summary Get a stored CV
// @Tags cv
// @Produce json
// @Param id path string true "Document id"
// @Success 200 {object} store.Document
// @Failure 404 {object} map[string]string
// @Router /cv/{id} [get]
func (a *API) DocumentHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := a.matcher.Document(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "CV not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load CV")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// DeleteHandler removes one stored CV
// @Summary Delete a stored CV
// @Tags cv
// @Produce json
// @Param id path string true "Document id"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /cv/{id} [delete]
func (a *API) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if !a.matcher.Delete(r.Context(), r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "CV not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type listedCV struct {
	ID            string `json:"id"`
	CandidateName string `json:"candidate_name"`
	Skills        string `json:"skills"`
}

// ListHandler lists every stored CV
// @Summary List stored CVs
// @Tags cv
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /cvs [get]
func (a *API) ListHandler(w http.ResponseWriter, r *http.Request) {
	docs := a.matcher.Documents(r.Context())

	cvs := make([]listedCV, 0, len(docs))
	for _, d := range docs {
		cvs = append(cvs, listedCV{
			ID:            d.ID,
			CandidateName: d.Metadata["candidate_name"],
			Skills:        d.Metadata["skills"],
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_cvs": len(cvs),
		"cvs":       cvs,
	})
}

// CountHandler returns the number of stored CVs
// @Summary Count stored CVs
// @Tags cv
// @Produce json
// @Success 200 {object} map[string]int
// @Router /cvs/count [get]
func (a *API) CountHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{"total_cvs": a.matcher.Count(r.Context())})
}

// ClearHandler removes every stored CV
// @Summary Clear all stored CVs
// @Tags cv
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /cvs/clear [post]
func (a *API) ClearHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": a.matcher.Clear(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
