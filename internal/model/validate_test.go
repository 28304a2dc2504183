package model

import (
	"errors"
	"testing"

	"careertrack/internal/domain"
)

func TestValidateForSave(t *testing.T) {
	cases := []struct {
		name    string
		data    ResumeData
		wantErr bool
	}{
		{
			name: "missing first name",
			data: ResumeData{PersonalInfo: PersonalInfo{FirstName: "", LastName: "B", Email: "b@x.com"}},
			wantErr: true,
		},
		{
			name: "missing email",
			data: ResumeData{PersonalInfo: PersonalInfo{FirstName: "A", LastName: "B"}},
			wantErr: true,
		},
		{
			// phone, location and summary are not enforced
			name: "minimal personal info passes",
			data: ResumeData{PersonalInfo: PersonalInfo{FirstName: "A", LastName: "B", Email: "b@x.com"}},
			wantErr: false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateForSave(&c.data)
			if c.wantErr {
				var ve *domain.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("want ValidationError, got %v", err)
				}
				if ve.Message != "Missing required personal information" {
					t.Errorf("message = %q", ve.Message)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestFillDefaults(t *testing.T) {
	d := &ResumeData{}
	FillDefaults(d)
	if d.Experience == nil || d.Education == nil || d.Skills == nil || d.Projects == nil {
		t.Error("section slices should never stay nil")
	}
	if d.SelectedTemplate != "modern" {
		t.Errorf("selectedTemplate = %q, want modern", d.SelectedTemplate)
	}

	d2 := &ResumeData{SelectedTemplate: "executive", Skills: []Skill{{ID: "s", Name: "Go", Level: LevelAdvanced}}}
	FillDefaults(d2)
	if d2.SelectedTemplate != "executive" {
		t.Error("existing template choice must be kept")
	}
	if len(d2.Skills) != 1 {
		t.Error("existing sections must be kept")
	}
}

func TestEntryValidators(t *testing.T) {
	missing := func(err error, want ...string) bool {
		var mf *domain.MissingFieldsError
		if !errors.As(err, &mf) {
			return false
		}
		if len(mf.Fields) != len(want) {
			return false
		}
		for i := range want {
			if mf.Fields[i] != want[i] {
				return false
			}
		}
		return true
	}

	if err := ValidateExperienceEntry(&Experience{Company: "  ", Position: "Dev", StartDate: "2020"}); !missing(err, "company") {
		t.Errorf("experience: got %v", err)
	}
	if err := ValidateExperienceEntry(&Experience{Company: "Acme", Position: "Dev", StartDate: "2020"}); err != nil {
		t.Errorf("experience: unexpected %v", err)
	}
	if err := ValidateEducationEntry(&Education{Institution: "MIT"}); !missing(err, "degree", "field", "startDate") {
		t.Errorf("education: got %v", err)
	}
	if err := ValidateSkillEntry(&Skill{Name: "Go", Level: "wizard"}); !missing(err, "level") {
		t.Errorf("skill level enum: got %v", err)
	}
	if err := ValidateSkillEntry(&Skill{Name: "Go", Level: LevelBeginner}); err != nil {
		t.Errorf("skill: unexpected %v", err)
	}
	if err := ValidateProjectEntry(&Project{Name: "Thing"}); !missing(err, "description") {
		t.Errorf("project: got %v", err)
	}
}
