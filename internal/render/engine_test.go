package render

import (
	"reflect"
	"strings"
	"testing"

	"careertrack/internal/model"
)

func fullResume() *model.ResumeData {
	return &model.ResumeData{
		PersonalInfo: model.PersonalInfo{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "+44 1234",
			Location:  "London",
			LinkedIn:  "https://linkedin.com/in/ada",
			Summary:   "Engineer and analyst.",
		},
		Experience: []model.Experience{{
			ID: "e1", Company: "Analytical Engines Ltd", Position: "Lead Analyst",
			Location: "London", StartDate: "1842", EndDate: "1843", Current: false,
			Description: "Wrote the first published program.",
		}},
		Education: []model.Education{{
			ID: "ed1", Institution: "Home Tutoring", Degree: "BSc", Field: "Mathematics",
			StartDate: "1830", Current: true, GPA: "4.0",
		}},
		Skills: []model.Skill{{ID: "s1", Name: "Mathematics", Level: model.LevelExpert}},
		Projects: []model.Project{{
			ID: "p1", Name: "Notes on the Analytical Engine",
			Description: "Annotated translation with original algorithms.",
			Technologies: []string{"Punched cards", "Algebra"},
			URL:          "https://example.com/notes",
		}},
		SelectedTemplate: "modern",
	}
}

var allTemplates = []string{"modern", "professional", "creative", "minimalist", "executive"}

func sectionKinds(doc Document) []SectionKind {
	kinds := make([]SectionKind, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}

func TestRenderCompleteness(t *testing.T) {
	e := NewEngine()
	want := []SectionKind{SectionHeader, SectionSummary, SectionExperience, SectionEducation, SectionSkills, SectionProjects}
	for _, id := range allTemplates {
		t.Run(id, func(t *testing.T) {
			doc := e.Render(fullResume(), id)
			if doc.Template != id {
				t.Fatalf("doc.Template = %q, want %q", doc.Template, id)
			}
			if got := sectionKinds(doc); !reflect.DeepEqual(got, want) {
				t.Errorf("section order = %v, want %v", got, want)
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	e := NewEngine()
	for _, id := range allTemplates {
		a := e.Render(fullResume(), id)
		b := e.Render(fullResume(), id)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("template %q: repeated renders differ", id)
		}
	}
}

func TestRenderSectionOmission(t *testing.T) {
	e := NewEngine()
	data := fullResume()
	data.PersonalInfo.Summary = ""
	data.Experience = nil
	data.Education = nil
	data.Skills = nil
	data.Projects = nil

	for _, id := range allTemplates {
		doc := e.Render(data, id)
		if got := sectionKinds(doc); !reflect.DeepEqual(got, []SectionKind{SectionHeader}) {
			t.Errorf("template %q: sections = %v, want header only", id, got)
		}
	}
}

func TestRenderCurrentEntryEndsInPresent(t *testing.T) {
	e := NewEngine()
	data := fullResume()
	data.Experience[0].Current = true
	data.Experience[0].EndDate = "1850"

	doc := e.Render(data, "modern")
	for _, s := range doc.Sections {
		if s.Kind == SectionExperience {
			if got := s.Entries[0].DateRange; !strings.HasSuffix(got, "Present") {
				t.Errorf("date range %q does not end in Present", got)
			}
			return
		}
	}
	t.Fatal("experience section missing")
}

func TestRenderUnknownTemplateFallsBack(t *testing.T) {
	e := NewEngine()
	doc := e.Render(fullResume(), "vaporwave")
	if doc.Template != "modern" {
		t.Errorf("fallback template = %q, want modern", doc.Template)
	}
	if !reflect.DeepEqual(doc, e.Render(fullResume(), "modern")) {
		t.Error("fallback render differs from modern render")
	}
}

func TestRenderTemplatesDifferOnlyInStyle(t *testing.T) {
	e := NewEngine()
	base := e.Render(fullResume(), "modern")
	for _, id := range allTemplates[1:] {
		doc := e.Render(fullResume(), id)
		if !reflect.DeepEqual(doc.Sections, base.Sections) {
			t.Errorf("template %q: sections differ from modern; templates may only vary style", id)
		}
		if reflect.DeepEqual(doc.Style, base.Style) {
			t.Errorf("template %q: style identical to modern", id)
		}
	}
}

func TestRenderEntryFormatting(t *testing.T) {
	e := NewEngine()
	doc := e.Render(fullResume(), "professional")
	for _, s := range doc.Sections {
		switch s.Kind {
		case SectionProjects:
			if got := s.Projects[0].Technologies; got != "Punched cards, Algebra" {
				t.Errorf("technologies = %q", got)
			}
		case SectionSkills:
			if s.Skills[0].Name != "Mathematics" || s.Skills[0].Level != "expert" {
				t.Errorf("skill line = %+v", s.Skills[0])
			}
		case SectionEducation:
			if s.Entries[0].Heading != "BSc in Mathematics" {
				t.Errorf("education heading = %q", s.Entries[0].Heading)
			}
			if s.Entries[0].Meta != "GPA: 4.0" {
				t.Errorf("education meta = %q", s.Entries[0].Meta)
			}
		case SectionHeader:
			if s.Header.Name != "Ada Lovelace" {
				t.Errorf("header name = %q", s.Header.Name)
			}
			if len(s.Header.Contact) != 3 || len(s.Header.Links) != 1 {
				t.Errorf("header contact/links = %v / %v", s.Header.Contact, s.Header.Links)
			}
		}
	}
}

func TestRenderHTML(t *testing.T) {
	e := NewEngine()
	for _, id := range allTemplates {
		doc := e.Render(fullResume(), id)
		html, err := e.RenderHTML(doc)
		if err != nil {
			t.Fatalf("template %q: RenderHTML: %v", id, err)
		}
		for _, want := range []string{"Ada Lovelace", "Analytical Engines Ltd", "Punched cards, Algebra", "1830 - Present"} {
			if !strings.Contains(html, want) {
				t.Errorf("template %q: HTML missing %q", id, want)
			}
		}
	}
}

func TestEngineIDs(t *testing.T) {
	e := NewEngine()
	want := []string{"creative", "executive", "minimalist", "modern", "professional"}
	if got := e.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}
