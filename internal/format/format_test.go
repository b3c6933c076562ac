package format

import (
	"strings"
	"testing"

	"cv-matcher/internal/llm"
)

func TestEducationFromExtractedFields(t *testing.T) {
	edu := llm.Education{
		HighestDegree:  "MSc Computer Science",
		University:     "TU Delft",
		Qualifications: "AWS Certified, CKA, Scrum Master, PMP",
	}
	got := Education(edu, "")

	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d bullets, want 4 (capped): %q", len(lines), got)
	}
	if lines[0] != "• MSc Computer Science" || lines[1] != "• TU Delft" {
		t.Errorf("unexpected leading bullets: %q", got)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "• ") {
			t.Errorf("line %q is not a bullet", line)
		}
	}
	// qualifications beyond the third are dropped
	if strings.Contains(got, "PMP") {
		t.Errorf("fourth qualification should be dropped: %q", got)
	}
}

func TestEducationScansRawTextOnPlaceholders(t *testing.T) {
	edu := llm.Education{
		HighestDegree:  llm.PlaceholderDegree,
		University:     llm.PlaceholderUniversity,
		Qualifications: llm.PlaceholderQualifications,
	}
	raw := "John Smith\nBachelor of Science in Physics\nWorked at Acme\nMaster of Engineering, MIT\nPhD dropout\n"
	got := Education(edu, raw)

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d bullets, want 2: %q", len(lines), got)
	}
	if lines[0] != "• Bachelor of Science in Physics" {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if lines[1] != "• Master of Engineering, MIT" {
		t.Errorf("lines[1] = %q", lines[1])
	}
}

func TestEducationGenericFallback(t *testing.T) {
	got := Education(llm.Education{}, "no relevant lines here")
	if got != genericEducation {
		t.Errorf("got %q, want generic bullets", got)
	}
}

func TestSummarySplitsSentences(t *testing.T) {
	got := Summary("Built scalable payment services. Led a team of five engineers! Short. Mentored juniors across two offices?", "")

	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d bullets, want 3: %q", len(lines), got)
	}
	if lines[0] != "• Built scalable payment services" {
		t.Errorf("lines[0] = %q", lines[0])
	}
	// "Short" is under the length cutoff and must not appear
	if strings.Contains(got, "Short") {
		t.Errorf("short sentence should be dropped: %q", got)
	}
}

func TestSummaryCapsAtFourBullets(t *testing.T) {
	s := strings.Repeat("This sentence is long enough to keep. ", 6)
	got := Summary(s, "")
	if n := len(strings.Split(got, "\n")); n != 4 {
		t.Errorf("got %d bullets, want 4: %q", n, got)
	}
}

func TestSummaryPlaceholderMinesRawText(t *testing.T) {
	raw := "Jane Doe\nDeveloped a payment gateway used by thousands\nCreated internal tooling for the data team\nplain line\n"
	got := Summary(llm.PlaceholderSummary, raw)

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d bullets, want 2: %q", len(lines), got)
	}
	if lines[0] != "• Developed a payment gateway used by thousands" {
		t.Errorf("lines[0] = %q", lines[0])
	}
}

func TestSummaryGenericFallback(t *testing.T) {
	if got := Summary("", "nothing useful"); got != genericSummary {
		t.Errorf("got %q, want generic bullets", got)
	}
}

func TestPreviewSectionsAndBullets(t *testing.T) {
	text := "EXPERIENCE\nSenior engineer at Acme since 2019\nEDUCATION\nBSc Computer Science\n"
	got := Preview(text)

	if !strings.Contains(got, "\nEXPERIENCE") {
		t.Errorf("missing EXPERIENCE header: %q", got)
	}
	if !strings.Contains(got, "• Senior engineer at Acme since 2019") {
		t.Errorf("missing experience bullet: %q", got)
	}
	if !strings.Contains(got, "\nEDUCATION") {
		t.Errorf("missing EDUCATION header: %q", got)
	}
}

func TestPreviewKeywordHeaderIsUppercased(t *testing.T) {
	got := Preview("Work Experience\nshipped the billing rewrite in under a quarter with zero downtime\n")
	if !strings.Contains(got, "WORK EXPERIENCE") {
		t.Errorf("keyword header should be uppercased: %q", got)
	}
}

func TestPreviewNoHeadersReturnsVerbatimPrefix(t *testing.T) {
	line := "this is a deliberately long lowercase line without any heading markers in it at all"
	text := strings.Repeat(line+"\n", 20)
	got := Preview(text)

	runes := []rune(text)[:previewBudget]
	if got != string(runes) {
		t.Errorf("want verbatim %d-char prefix, got %q", previewBudget, got)
	}
}

func TestPreviewRespectsBudget(t *testing.T) {
	var b strings.Builder
	b.WriteString("EXPERIENCE\n")
	for i := 0; i < 60; i++ {
		b.WriteString("worked on a reasonably sized project with measurable impact\n")
	}
	got := Preview(b.String())

	total := 0
	for _, line := range strings.Split(got, "\n") {
		total += len([]rune(line))
	}
	if total >= previewBudget+len("\nEXPERIENCE") {
		t.Errorf("preview content %d chars exceeds budget", total)
	}
}

func TestIsUpper(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"EXPERIENCE", true},
		{"WORK HISTORY 2019", true},
		{"Experience", false},
		{"12345", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := isUpper(tc.in); got != tc.want {
			t.Errorf("isUpper(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
