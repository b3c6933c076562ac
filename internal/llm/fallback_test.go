package llm

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

const sampleCV = `John Smith
Senior Backend Engineer
john.smith@example.com | +1 555-123-4567

Over 7 years of experience building web services.

SKILLS
Python, Django, PostgreSQL, Docker, AWS, React
`

func TestFallbackExtractSkillsBuckets(t *testing.T) {
	f := NewFallback()
	skills, err := f.ExtractSkills(context.Background(), sampleCV)
	if err != nil {
		t.Fatalf("ExtractSkills: %v", err)
	}

	want := []string{"python", "javascript", "database", "cloud"}
	if !reflect.DeepEqual(skills, want) {
		t.Errorf("skills = %v, want %v", skills, want)
	}
}

func TestFallbackExtractSkillsNoHits(t *testing.T) {
	f := NewFallback()
	skills, err := f.ExtractSkills(context.Background(), "gardening and cooking enthusiast")
	if err != nil {
		t.Fatalf("ExtractSkills: %v", err)
	}
	if len(skills) != 0 {
		t.Errorf("skills = %v, want none", skills)
	}
}

func TestFallbackExtractDetails(t *testing.T) {
	f := NewFallback()
	d, err := f.ExtractDetails(context.Background(), sampleCV)
	if err != nil {
		t.Fatalf("ExtractDetails: %v", err)
	}

	if d.PersonalInfo.FullName != "John Smith" {
		t.Errorf("FullName = %q", d.PersonalInfo.FullName)
	}
	if d.PersonalInfo.Email != "john.smith@example.com" {
		t.Errorf("Email = %q", d.PersonalInfo.Email)
	}
	if d.PersonalInfo.Phone == "" || d.PersonalInfo.Phone == PlaceholderPhone {
		t.Errorf("Phone = %q, want a matched number", d.PersonalInfo.Phone)
	}
	if d.ProfessionalInfo.TotalExperience != "7 years" {
		t.Errorf("TotalExperience = %q", d.ProfessionalInfo.TotalExperience)
	}
	if !reflect.DeepEqual(d.TechnicalSkills.ProgrammingLanguages, []string{"Python"}) {
		t.Errorf("ProgrammingLanguages = %v", d.TechnicalSkills.ProgrammingLanguages)
	}
	if !reflect.DeepEqual(d.TechnicalSkills.Frameworks, []string{"Django", "React"}) {
		t.Errorf("Frameworks = %v", d.TechnicalSkills.Frameworks)
	}
	if !reflect.DeepEqual(d.TechnicalSkills.CloudPlatforms, []string{"AWS", "Docker"}) {
		t.Errorf("CloudPlatforms = %v", d.TechnicalSkills.CloudPlatforms)
	}

	// fields the regexes cannot recover are filled with placeholders
	if d.PersonalInfo.Address != PlaceholderAddress {
		t.Errorf("Address = %q", d.PersonalInfo.Address)
	}
	if d.ProfessionalInfo.CurrentRole != PlaceholderRole {
		t.Errorf("CurrentRole = %q", d.ProfessionalInfo.CurrentRole)
	}
	if d.ProfessionalInfo.Summary != PlaceholderSummary {
		t.Errorf("Summary = %q", d.ProfessionalInfo.Summary)
	}
}

func TestFallbackFirstLineTruncated(t *testing.T) {
	long := strings.Repeat("x", 80)
	d, _ := NewFallback().ExtractDetails(context.Background(), "\n\n  "+long+"\nrest")
	if got := d.PersonalInfo.FullName; len([]rune(got)) != 50 {
		t.Errorf("FullName length = %d, want 50", len([]rune(got)))
	}
}

func TestValidEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"a.b@example.com", true},
		{"user+tag@sub.domain.io", true},
		{"Email in CV", false},
		{"", false},
		{"no-at-sign.com", false},
		{"user@localhost", false},
	}
	for _, tc := range cases {
		if got := ValidEmail(tc.in); got != tc.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestContainsWord(t *testing.T) {
	cases := []struct {
		text, kw string
		want     bool
	}{
		{"worked with java services", "java", true},
		{"loves javascript", "java", false},
		{"go and golang", "go", true},
		{"google cloud only", "go", false},
		{"fluent in c++ and c", "c++", true},
		{"react native apps", "react native", true},
	}
	for _, tc := range cases {
		if got := containsWord(tc.text, tc.kw); got != tc.want {
			t.Errorf("containsWord(%q, %q) = %v, want %v", tc.text, tc.kw, got, tc.want)
		}
	}
}
