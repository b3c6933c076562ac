package llm

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Provider is one extraction backend. Implementations may fail; the Extractor
// wrapper decides what happens then.
type Provider interface {
	Name() string
	// ExtractSkills returns a flat skill list for the given CV text.
	ExtractSkills(ctx context.Context, text string) ([]string, error)
	// ExtractDetails returns the structured record for the given CV text.
	ExtractDetails(ctx context.Context, text string) (*Details, error)
}

// ErrNoJSON is returned when a provider response carries no JSON object.
var ErrNoJSON = errors.New("no JSON object in response")

const (
	skillsPrompt = "You are an expert HR technical analyst. Extract ALL technical skills, " +
		"programming languages, frameworks, tools, and technologies from the CV text. " +
		"Return ONLY a comma-separated list of skills."

	detailsPrompt = "You are an expert CV analyst. Extract COMPLETE details from the CV in JSON format. " +
		"Return exactly this JSON structure and nothing else:\n" +
		`{"personal_info": {"full_name": "", "email": "", "phone": "", "address": "", "location": ""},` +
		` "professional_info": {"current_role": "", "total_experience": "", "current_company": "", "summary": ""},` +
		` "education": {"highest_degree": "", "university": "", "qualifications": ""},` +
		` "technical_skills": {"programming_languages": [], "frameworks": [], "databases": [], "cloud_platforms": []}}`
)

// firstJSONObject locates the first balanced {...} span in s. Provider
// responses may wrap the object in prose or markdown fences, so the whole
// body is never assumed to be JSON.
func firstJSONObject(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", ErrNoJSON
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("%w: unbalanced braces", ErrNoJSON)
}

var skillSplitRe = regexp.MustCompile(`[,\n]`)

// splitSkills parses a comma/newline-delimited skill list.
func splitSkills(s string) []string {
	parts := skillSplitRe.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.Trim(strings.TrimSpace(p), "•-*"))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
