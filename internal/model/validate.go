package model

import (
	"strings"

	"careertrack/internal/domain"
)

// DefaultTemplate is applied when a draft arrives without a template choice.
const DefaultTemplate = "modern"

// ValidateForSave gates writes to the draft store. Only first name, last
// name and email are checked; phone, location and summary are documented
// as required on the wire shape but have never been enforced here, and
// tightening that would reject drafts older clients saved legally.
func ValidateForSave(d *ResumeData) error {
	if d.PersonalInfo.FirstName == "" ||
		d.PersonalInfo.LastName == "" ||
		d.PersonalInfo.Email == "" {
		return &domain.ValidationError{Message: "Missing required personal information"}
	}
	return nil
}

// FillDefaults normalizes an accepted draft so nothing downstream ever
// sees a nil section slice or an empty template id. No trimming or
// format checks happen here.
func FillDefaults(d *ResumeData) {
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.SelectedTemplate == "" {
		d.SelectedTemplate = DefaultTemplate
	}
}

func collectMissing(fields map[string]string) error {
	missing := []string{}
	for _, name := range []string{"company", "position", "institution", "degree", "field", "startDate", "name", "level", "description"} {
		v, ok := fields[name]
		if !ok {
			continue
		}
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &domain.MissingFieldsError{Fields: missing}
	}
	return nil
}

// ValidateExperienceEntry checks the required fields of a profile
// experience entry before it is written into the section array.
func ValidateExperienceEntry(e *Experience) error {
	return collectMissing(map[string]string{
		"company":   e.Company,
		"position":  e.Position,
		"startDate": e.StartDate,
	})
}

func ValidateEducationEntry(e *Education) error {
	return collectMissing(map[string]string{
		"institution": e.Institution,
		"degree":      e.Degree,
		"field":       e.Field,
		"startDate":   e.StartDate,
	})
}

func ValidateSkillEntry(s *Skill) error {
	if err := collectMissing(map[string]string{"name": s.Name, "level": s.Level}); err != nil {
		return err
	}
	if !IsValidLevel(s.Level) {
		return &domain.MissingFieldsError{Fields: []string{"level"}}
	}
	return nil
}

func ValidateProjectEntry(p *Project) error {
	return collectMissing(map[string]string{
		"name":        p.Name,
		"description": p.Description,
	})
}
