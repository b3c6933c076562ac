// Package format turns raw extraction output into display-ready, bounded
// text fields. All functions are pure.
package format

import (
	"strings"
	"unicode"

	"cv-matcher/internal/llm"
)

var educationKeywords = []string{
	"bachelor", "master", "phd", "degree", "university", "college",
	"bs", "ms", "btech", "mtech",
}

var achievementKeywords = []string{
	"developed", "created", "managed", "led", "implemented", "achieved", "built",
}

var sectionKeywords = []string{
	"experience", "education", "skills", "projects", "summary",
}

const genericEducation = "• Educational qualifications detailed in CV\n" +
	"• Professional certifications\n" +
	"• University degree"

const genericSummary = "• Experienced professional with technical expertise\n" +
	"• Strong problem-solving skills\n" +
	"• Excellent communication abilities"

const previewBudget = 800

// Education renders extracted education as bullet lines, at most 4. When the
// extraction produced only placeholders it scans the raw text for lines with
// education keywords, and failing that emits fixed generic bullets.
func Education(edu llm.Education, rawText string) string {
	var points []string

	if edu.HighestDegree != "" && edu.HighestDegree != llm.PlaceholderDegree {
		points = append(points, "• "+edu.HighestDegree)
	}
	if edu.University != "" && edu.University != llm.PlaceholderUniversity {
		points = append(points, "• "+edu.University)
	}
	if edu.Qualifications != "" && edu.Qualifications != llm.PlaceholderQualifications {
		quals := splitNonEmpty(edu.Qualifications, ",")
		if len(quals) > 3 {
			quals = quals[:3]
		}
		for _, q := range quals {
			points = append(points, "• "+q)
		}
	}

	if len(points) == 0 {
		for _, line := range strings.Split(rawText, "\n") {
			trimmed := strings.TrimSpace(line)
			if len(trimmed) > 10 && containsAny(strings.ToLower(line), educationKeywords) {
				points = append(points, "• "+trimmed)
				if len(points) >= 2 {
					break
				}
			}
		}
	}

	if len(points) == 0 {
		return genericEducation
	}
	if len(points) > 4 {
		points = points[:4]
	}
	return strings.Join(points, "\n")
}

// Summary renders the extracted summary as bullet lines. A missing or
// placeholder summary falls back to achievement lines mined from the head of
// the raw text, then to fixed generic bullets.
func Summary(summary, rawText string) string {
	if summary == "" || strings.Contains(strings.ToLower(summary), "technical expertise") {
		var points []string
		lines := strings.Split(rawText, "\n")
		if len(lines) > 20 {
			lines = lines[:20]
		}
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if len(trimmed) > 20 && containsAny(strings.ToLower(line), achievementKeywords) {
				points = append(points, "• "+trimmed)
				if len(points) >= 3 {
					break
				}
			}
		}
		if len(points) == 0 {
			return genericSummary
		}
		return strings.Join(points, "\n")
	}

	var points []string
	for _, sentence := range strings.FieldsFunc(summary, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) > 15 && len(points) < 4 {
			points = append(points, "• "+sentence)
		}
	}
	if len(points) == 0 {
		return summary
	}
	return strings.Join(points, "\n")
}

// Preview builds a sectioned, bounded preview of the raw text. Lines that are
// short and either all-uppercase or carry a section keyword become headers;
// everything else becomes a bullet under the current header. At most the first
// 6 sections contribute, and lines are added greedily while the running
// character budget of 800 allows. A line that would exceed it is skipped, not
// truncated, and later shorter lines may still fit.
func Preview(text string) string {
	var sections [][]string
	var current []string
	sawHeader := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) < 50 && (isUpper(line) || containsAny(strings.ToLower(line), sectionKeywords)) {
			if len(current) > 0 {
				sections = append(sections, current)
			}
			current = []string{"\n" + strings.ToUpper(line)}
			sawHeader = true
		} else {
			current = append(current, "• "+line)
		}
	}
	if len(current) > 0 {
		sections = append(sections, current)
	}

	if len(sections) > 6 {
		sections = sections[:6]
	}

	var preview []string
	charCount := 0
	for _, section := range sections {
		for _, line := range section {
			n := len([]rune(line))
			if charCount+n < previewBudget {
				preview = append(preview, line)
				charCount += n
			}
		}
	}

	if !sawHeader || len(preview) == 0 {
		runes := []rune(text)
		if len(runes) > previewBudget {
			runes = runes[:previewBudget]
		}
		return string(runes)
	}
	return strings.Join(preview, "\n")
}

func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, p := range strings.Split(s, sep) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// isUpper reports whether the line has at least one letter and no lowercase
// letters, i.e. it reads as an all-caps heading.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
