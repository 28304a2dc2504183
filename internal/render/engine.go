package render

import (
	"sort"
	"strings"

	"careertrack/internal/model"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Template is one visual layout variant. Implementations supply only
// their identifier, style values and stylesheet; the engine owns section
// assembly so every template shares the same ordering and omission rules.
type Template interface {
	ID() string
	Style() Style
	CSS() string
}

// Engine renders a resume with one of the registered templates. It is
// pure: no I/O, no shared state, identical output for identical input.
type Engine struct {
	templates map[string]Template
	fallback  string
}

// NewEngine registers the five built-in layouts.
func NewEngine() *Engine {
	e := &Engine{templates: map[string]Template{}, fallback: model.DefaultTemplate}
	for _, t := range []Template{
		Modern{},
		Professional{},
		Creative{},
		Minimalist{},
		Executive{},
	} {
		e.templates[t.ID()] = t
	}
	return e
}

// IDs returns the registered template identifiers, sorted.
func (e *Engine) IDs() []string {
	ids := make([]string, 0, len(e.templates))
	for id := range e.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup resolves a template id, falling back to the default layout for
// unknown ids so a stale client choice renders something sensible
// instead of failing.
func (e *Engine) Lookup(id string) Template {
	if t, ok := e.templates[id]; ok {
		return t
	}
	log.WithField("templateId", id).Warn("unknown template id, falling back to default")
	return e.templates[e.fallback]
}

// Render assembles the document for the given resume and template id.
// Section order is fixed: header, summary, experience, education,
// skills, projects. A section with no content is omitted entirely.
func (e *Engine) Render(data *model.ResumeData, templateID string) Document {
	t := e.Lookup(templateID)

	doc := Document{
		Template: t.ID(),
		Style:    t.Style(),
		Sections: []Section{{Kind: SectionHeader, Header: buildHeader(data.PersonalInfo)}},
	}

	if data.PersonalInfo.Summary != "" {
		doc.Sections = append(doc.Sections, Section{
			Kind:  SectionSummary,
			Title: "Summary",
			Text:  data.PersonalInfo.Summary,
		})
	}

	if len(data.Experience) > 0 {
		s := Section{Kind: SectionExperience, Title: "Experience"}
		for _, exp := range data.Experience {
			s.Entries = append(s.Entries, Entry{
				Heading:    exp.Position,
				SubHeading: exp.Company,
				Meta:       exp.Location,
				DateRange:  FormatDateRange(exp.StartDate, exp.EndDate, exp.Current),
				Body:       exp.Description,
			})
		}
		doc.Sections = append(doc.Sections, s)
	}

	if len(data.Education) > 0 {
		s := Section{Kind: SectionEducation, Title: "Education"}
		for _, edu := range data.Education {
			s.Entries = append(s.Entries, Entry{
				Heading:    educationHeading(edu),
				SubHeading: edu.Institution,
				Meta:       gpaMeta(edu.GPA),
				DateRange:  FormatDateRange(edu.StartDate, edu.EndDate, edu.Current),
			})
		}
		doc.Sections = append(doc.Sections, s)
	}

	if len(data.Skills) > 0 {
		s := Section{Kind: SectionSkills, Title: "Skills"}
		for _, sk := range data.Skills {
			s.Skills = append(s.Skills, SkillLine{Name: sk.Name, Level: sk.Level})
		}
		doc.Sections = append(doc.Sections, s)
	}

	if len(data.Projects) > 0 {
		s := Section{Kind: SectionProjects, Title: "Projects"}
		for _, p := range data.Projects {
			s.Projects = append(s.Projects, ProjectLine{
				Name:         p.Name,
				Description:  p.Description,
				Technologies: strings.Join(p.Technologies, ", "),
				URL:          p.URL,
			})
		}
		doc.Sections = append(doc.Sections, s)
	}

	return doc
}

func buildHeader(p model.PersonalInfo) *HeaderBlock {
	h := &HeaderBlock{Name: strings.TrimSpace(p.FirstName + " " + p.LastName)}
	for _, c := range []string{p.Email, p.Phone, p.Location} {
		if c != "" {
			h.Contact = append(h.Contact, c)
		}
	}
	for _, l := range []string{p.LinkedIn, p.GitHub, p.Portfolio} {
		if l != "" {
			h.Links = append(h.Links, l)
		}
	}
	return h
}

func educationHeading(e model.Education) string {
	if e.Field == "" {
		return e.Degree
	}
	return e.Degree + " in " + e.Field
}

func gpaMeta(gpa string) string {
	if gpa == "" {
		return ""
	}
	return "GPA: " + gpa
}
