package llm

import (
	"context"
	"regexp"
	"strings"
)

// Fallback is the deterministic local extractor. It never fails and carries
// no external dependency, which makes it both the repair path for provider
// errors and a standalone provider when no API key is configured.
type Fallback struct{}

func NewFallback() *Fallback { return &Fallback{} }

func (f *Fallback) Name() string { return "fallback" }

var (
	emailRe      = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	emailValidRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phoneRe      = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	experienceRe = regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)`)
)

// skill taxonomy for keyword-category matching. Bucket names are what the
// flat skill list reports; the per-field lists feed technical_skills.
var skillBuckets = []struct {
	name     string
	keywords []string
}{
	{"python", []string{"python", "django", "flask", "fastapi", "pandas", "numpy"}},
	{"java", []string{"java", "spring", "hibernate", "maven", "gradle"}},
	{"javascript", []string{"javascript", "typescript", "node.js", "react", "angular", "vue", "express"}},
	{"database", []string{"mysql", "postgresql", "mongodb", "sql", "oracle", "redis"}},
	{"cloud", []string{"aws", "azure", "gcp", "docker", "kubernetes", "jenkins"}},
	{"mobile", []string{"android", "ios", "flutter", "react native"}},
	{"ml_ai", []string{"machine learning", "deep learning", "tensorflow", "pytorch", "nlp", "computer vision"}},
}

var (
	languageKeywords  = []string{"Python", "Java", "JavaScript", "TypeScript", "Go", "C++", "C#", "Ruby", "PHP", "Kotlin", "Swift"}
	frameworkKeywords = []string{"Django", "Flask", "FastAPI", "Spring", "React", "Angular", "Vue", "Express", "Node.js"}
	databaseKeywords  = []string{"MySQL", "PostgreSQL", "MongoDB", "Oracle", "Redis", "SQL"}
	cloudKeywords     = []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins"}
)

// ExtractSkills matches the text against the fixed taxonomy and returns the
// names of every bucket with at least one keyword hit.
func (f *Fallback) ExtractSkills(_ context.Context, text string) ([]string, error) {
	lower := strings.ToLower(text)
	var found []string
	for _, bucket := range skillBuckets {
		for _, kw := range bucket.keywords {
			if containsWord(lower, kw) {
				found = append(found, bucket.name)
				break
			}
		}
	}
	return found, nil
}

// ExtractDetails builds a best-effort record from regexes and keyword scans.
// Fields it cannot recover are left for placeholder substitution.
func (f *Fallback) ExtractDetails(_ context.Context, text string) (*Details, error) {
	d := &Details{}

	d.PersonalInfo.FullName = firstNonEmptyLine(text)
	d.PersonalInfo.Email = emailRe.FindString(text)
	d.PersonalInfo.Phone = strings.TrimSpace(phoneRe.FindString(text))

	if m := experienceRe.FindStringSubmatch(strings.ToLower(text)); m != nil {
		d.ProfessionalInfo.TotalExperience = m[1] + " years"
	}

	lower := strings.ToLower(text)
	d.TechnicalSkills.ProgrammingLanguages = matchKeywords(lower, languageKeywords)
	d.TechnicalSkills.Frameworks = matchKeywords(lower, frameworkKeywords)
	d.TechnicalSkills.Databases = matchKeywords(lower, databaseKeywords)
	d.TechnicalSkills.CloudPlatforms = matchKeywords(lower, cloudKeywords)

	applyPlaceholders(d)
	return d, nil
}

// ExtractEmail returns the first well-formed email in the text, or empty.
func (f *Fallback) ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ValidEmail reports whether s has a well-formed local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailValidRe.MatchString(s)
}

func firstNonEmptyLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runes := []rune(line)
		if len(runes) > 50 {
			line = string(runes[:50])
		}
		return line
	}
	return ""
}

func matchKeywords(lowerText string, keywords []string) []string {
	var out []string
	for _, kw := range keywords {
		if containsWord(lowerText, strings.ToLower(kw)) {
			out = append(out, kw)
		}
	}
	return out
}

// containsWord matches kw at word edges so "go" does not hit "google".
// Keywords like "c++" have non-word edges, so a plain \b regex is not usable.
func containsWord(lowerText, kw string) bool {
	for from := 0; ; {
		i := strings.Index(lowerText[from:], kw)
		if i < 0 {
			return false
		}
		i += from
		if edgeOK(lowerText, i-1) && edgeOK(lowerText, i+len(kw)) {
			return true
		}
		from = i + 1
	}
}

// edgeOK reports whether the byte at position i (possibly out of range) does
// not glue the match to a neighboring word.
func edgeOK(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	return !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9')
}
