package llm

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"cv-matcher/internal/config"
	"cv-matcher/internal/textutil"
)

// Input limits before the provider call. Extraction has a context-size
// budget; the head of a CV carries the fields we need.
const (
	skillsInputLimit  = 3500
	detailsInputLimit = 4000
)

// noise entries some providers emit instead of real skills.
var skillNoise = map[string]struct{}{
	"extracted":    {},
	"ai analyzing": {},
	"no skills":    {},
}

// Extractor wraps the configured provider with the deterministic fallback.
// Provider errors, timeouts and malformed responses never escape: the result
// is always a usable record.
type Extractor struct {
	provider Provider
	fallback *Fallback
	timeout  time.Duration
	log      *zap.Logger
}

func NewExtractor(provider Provider, timeout time.Duration, log *zap.Logger) *Extractor {
	return &Extractor{
		provider: provider,
		fallback: NewFallback(),
		timeout:  timeout,
		log:      log,
	}
}

// NewFromConfig selects the provider at startup. Construction failure of the
// preferred provider (missing key) degrades to the deterministic fallback
// with a warning, never an error.
func NewFromConfig(cfg *config.Config, log *zap.Logger) *Extractor {
	timeout := time.Duration(cfg.LLMTimeoutSec) * time.Second

	var provider Provider
	var err error
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		provider, err = NewOpenAIProvider(cfg.LLMAPIKey, cfg.LLMModel)
	case config.ProviderAnthropic:
		provider, err = NewAnthropicProvider(cfg.LLMAPIKey, cfg.LLMModel, timeout)
	case config.ProviderNone:
		err = nil
	default:
		log.Warn("unknown LLM provider, using deterministic extraction",
			zap.String("provider", cfg.LLMProvider))
	}
	if err != nil {
		log.Warn("LLM provider unavailable, using deterministic extraction",
			zap.String("provider", cfg.LLMProvider), zap.Error(err))
		provider = nil
	}

	if provider != nil {
		log.Info("extraction provider selected", zap.String("provider", provider.Name()))
	}
	return NewExtractor(provider, timeout, log)
}

// ExtractSkills returns the flat skill list for a CV. Never fails; a provider
// error falls back to taxonomy matching.
func (e *Extractor) ExtractSkills(ctx context.Context, text string) []string {
	input := textutil.Truncate(text, skillsInputLimit)

	var skills []string
	if e.provider != nil {
		cctx, cancel := context.WithTimeout(ctx, e.timeout)
		var err error
		skills, err = e.provider.ExtractSkills(cctx, input)
		cancel()
		if err != nil {
			e.log.Warn("skill extraction failed, using fallback",
				zap.String("provider", e.provider.Name()), zap.Error(err))
			skills = nil
		}
	}
	if skills == nil {
		skills, _ = e.fallback.ExtractSkills(ctx, text)
	}

	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s == "" {
			continue
		}
		if _, noisy := skillNoise[strings.ToLower(s)]; noisy {
			continue
		}
		out = append(out, s)
	}
	return out
}

// ExtractDetails returns the structured record for a CV. Never fails; any
// provider problem repairs locally, and an extraction-provided email that is
// not well-formed is replaced by one found in the text.
func (e *Extractor) ExtractDetails(ctx context.Context, text string) *Details {
	input := textutil.Truncate(text, detailsInputLimit)

	var details *Details
	if e.provider != nil {
		cctx, cancel := context.WithTimeout(ctx, e.timeout)
		d, err := e.provider.ExtractDetails(cctx, input)
		cancel()
		if err != nil {
			e.log.Warn("detail extraction failed, using fallback",
				zap.String("provider", e.provider.Name()), zap.Error(err))
		} else {
			details = d
		}
	}
	if details == nil {
		details, _ = e.fallback.ExtractDetails(ctx, text)
		return details
	}

	if !ValidEmail(details.PersonalInfo.Email) {
		details.PersonalInfo.Email = e.fallback.ExtractEmail(text)
	}
	applyPlaceholders(details)
	return details
}
