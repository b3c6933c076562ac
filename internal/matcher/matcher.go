// Package matcher composes parsing, extraction, formatting, storage and
// ranking into the two end-to-end flows: ingest one CV, match stored CVs
// against a job description.
package matcher

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"cv-matcher/internal/cv"
	"cv-matcher/internal/format"
	"cv-matcher/internal/llm"
	"cv-matcher/internal/search"
	"cv-matcher/internal/store"
	"cv-matcher/internal/textutil"
)

const defaultCandidateName = "Unknown Candidate"

type Matcher struct {
	parser    *cv.Parser
	extractor *llm.Extractor
	store     store.Store
	ranker    *search.Ranker
	log       *zap.Logger
}

func New(parser *cv.Parser, extractor *llm.Extractor, st store.Store, ranker *search.Ranker, log *zap.Logger) *Matcher {
	return &Matcher{
		parser:    parser,
		extractor: extractor,
		store:     st,
		ranker:    ranker,
		log:       log,
	}
}

// IngestResult reports one successful ingestion.
type IngestResult struct {
	CVID          string   `json:"cv_id"`
	CandidateName string   `json:"candidate_name"`
	Skills        []string `json:"skills"`
	TextLength    int      `json:"text_length"`
}

// Ingest parses, extracts, formats and stores one CV. Failures anywhere in
// the chain come back as an error value for the caller to report; ingestion
// never takes the process down.
func (m *Matcher) Ingest(ctx context.Context, filePath, candidateName string) (result *IngestResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("ingestion panic", zap.Any("panic", r))
			result, err = nil, fmt.Errorf("CV processing failed: %v", r)
		}
	}()

	raw, err := m.parser.Parse(filePath)
	if err != nil {
		return nil, fmt.Errorf("unreadable document: %w", err)
	}
	if cv.Failed(raw) {
		return nil, fmt.Errorf("no usable text: %s", strings.TrimSpace(raw))
	}

	cleaned := textutil.Clean(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("document contains no text")
	}

	// Extraction sees the raw text: cleaning strips the characters and line
	// structure the deterministic fallback keys on (@ in emails, name lines).
	skills := m.extractor.ExtractSkills(ctx, raw)
	details := m.extractor.ExtractDetails(ctx, raw)

	name := strings.TrimSpace(details.PersonalInfo.FullName)
	if name == "" {
		name = strings.TrimSpace(candidateName)
	}
	if name == "" {
		name = defaultCandidateName
	}

	metadata := buildMetadata(name, skills, details, raw)

	id, err := m.store.Add(ctx, cleaned, metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to store CV: %w", err)
	}

	m.log.Info("CV ingested",
		zap.String("cv_id", id),
		zap.String("candidate", name),
		zap.Int("skills", len(skills)),
		zap.Int("text_length", len(cleaned)))

	return &IngestResult{
		CVID:          id,
		CandidateName: name,
		Skills:        skills,
		TextLength:    len(cleaned),
	}, nil
}

// buildMetadata assembles the stored string-valued record. List fields are
// comma-joined; every display field is non-empty by construction.
func buildMetadata(name string, skills []string, d *llm.Details, rawText string) map[string]string {
	skillList := llm.PlaceholderSkills
	if len(skills) > 0 {
		skillList = strings.Join(skills, ", ")
	}

	return map[string]string{
		"candidate_name":        name,
		"skills":                skillList,
		"email":                 d.PersonalInfo.Email,
		"phone":                 d.PersonalInfo.Phone,
		"address":               d.PersonalInfo.Address,
		"location":              d.PersonalInfo.Location,
		"current_role":          d.ProfessionalInfo.CurrentRole,
		"experience":            d.ProfessionalInfo.TotalExperience,
		"current_company":       d.ProfessionalInfo.CurrentCompany,
		"education":             format.Education(d.Education, rawText),
		"summary":               format.Summary(d.ProfessionalInfo.Summary, rawText),
		"programming_languages": strings.Join(d.TechnicalSkills.ProgrammingLanguages, ", "),
		"frameworks":            strings.Join(d.TechnicalSkills.Frameworks, ", "),
		"databases":             strings.Join(d.TechnicalSkills.Databases, ", "),
		"cloud_platforms":       strings.Join(d.TechnicalSkills.CloudPlatforms, ", "),
		"raw_text":              format.Preview(rawText),
	}
}

// Match ranks the current corpus against a job description. Any failure
// degrades to "no matches" with a logged diagnostic; callers never see an
// error. The corpus snapshot is taken at call start, so a concurrent Ingest
// may or may not be visible.
func (m *Matcher) Match(ctx context.Context, jobDescription string) (matches []search.Match) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("match panic", zap.Any("panic", r))
			matches = nil
		}
	}()

	corpus, err := m.store.GetAll(ctx)
	if err != nil {
		m.log.Warn("failed to load corpus", zap.Error(err))
		return nil
	}

	matches = m.ranker.Search(jobDescription, corpus, search.DefaultTopK)
	m.log.Info("match query completed",
		zap.Int("corpus_size", len(corpus)),
		zap.Int("matches", len(matches)))
	return matches
}

// Document fetches one stored CV by id.
func (m *Matcher) Document(ctx context.Context, id string) (*store.Document, error) {
	return m.store.GetByID(ctx, id)
}

// Documents lists every stored CV.
func (m *Matcher) Documents(ctx context.Context) []store.Document {
	docs, err := m.store.GetAll(ctx)
	if err != nil {
		m.log.Warn("failed to list documents", zap.Error(err))
		return nil
	}
	return docs
}

// Count returns the number of stored CVs.
func (m *Matcher) Count(ctx context.Context) int {
	n, err := m.store.Count(ctx)
	if err != nil {
		m.log.Warn("failed to count documents", zap.Error(err))
		return 0
	}
	return n
}

// Delete removes one stored CV.
func (m *Matcher) Delete(ctx context.Context, id string) bool {
	return m.store.Delete(ctx, id)
}

// Clear removes every stored CV.
func (m *Matcher) Clear(ctx context.Context) bool {
	return m.store.Clear(ctx)
}
