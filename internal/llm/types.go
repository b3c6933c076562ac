// Package llm turns normalized CV text into a structured record. The actual
// extraction is delegated to a provider (OpenAI or Anthropic); every provider
// failure is repaired locally by a deterministic extractor, so callers never
// see an extraction error.
package llm

import "strings"

// Details is the structured record extracted from one CV.
type Details struct {
	PersonalInfo     PersonalInfo    `json:"personal_info"`
	ProfessionalInfo Professional    `json:"professional_info"`
	Education        Education       `json:"education"`
	TechnicalSkills  TechnicalSkills `json:"technical_skills"`
}

type PersonalInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Location string `json:"location"`
}

type Professional struct {
	CurrentRole     string `json:"current_role"`
	TotalExperience string `json:"total_experience"`
	CurrentCompany  string `json:"current_company"`
	Summary         string `json:"summary"`
}

type Education struct {
	HighestDegree  string `json:"highest_degree"`
	University     string `json:"university"`
	Qualifications string `json:"qualifications"`
}

type TechnicalSkills struct {
	ProgrammingLanguages []string `json:"programming_languages"`
	Frameworks           []string `json:"frameworks"`
	Databases            []string `json:"databases"`
	CloudPlatforms       []string `json:"cloud_platforms"`
}

// Placeholder values used when a field could not be extracted. Display fields
// are never empty; consumers only need to special-case these strings.
const (
	PlaceholderEmail          = "Email in CV"
	PlaceholderPhone          = "Phone in CV"
	PlaceholderAddress        = "Address in CV"
	PlaceholderLocation       = "Location in CV"
	PlaceholderRole           = "Professional Role"
	PlaceholderExperience     = "Experience in CV"
	PlaceholderCompany        = "Company in CV"
	PlaceholderDegree         = "Education in CV"
	PlaceholderUniversity     = "University in CV"
	PlaceholderQualifications = "Qualifications in CV"
	PlaceholderSkills         = "Technical Skills"
	PlaceholderSummary        = "Professional with technical expertise"
)

// applyPlaceholders fills every empty display field.
func applyPlaceholders(d *Details) {
	fill := func(s *string, placeholder string) {
		if strings.TrimSpace(*s) == "" {
			*s = placeholder
		}
	}
	fill(&d.PersonalInfo.Email, PlaceholderEmail)
	fill(&d.PersonalInfo.Phone, PlaceholderPhone)
	fill(&d.PersonalInfo.Address, PlaceholderAddress)
	fill(&d.PersonalInfo.Location, PlaceholderLocation)
	fill(&d.ProfessionalInfo.CurrentRole, PlaceholderRole)
	fill(&d.ProfessionalInfo.TotalExperience, PlaceholderExperience)
	fill(&d.ProfessionalInfo.CurrentCompany, PlaceholderCompany)
	fill(&d.ProfessionalInfo.Summary, PlaceholderSummary)
	fill(&d.Education.HighestDegree, PlaceholderDegree)
	fill(&d.Education.University, PlaceholderUniversity)
	fill(&d.Education.Qualifications, PlaceholderQualifications)
}
