package render

// Document is the rendered form of a resume: an ordered list of sections
// plus the visual style of the template that produced it. It is plain
// data so previews can be serialized to the client and exports can be
// turned into HTML without re-deriving anything.

type SectionKind string

const (
	SectionHeader     SectionKind = "header"
	SectionSummary    SectionKind = "summary"
	SectionExperience SectionKind = "experience"
	SectionEducation  SectionKind = "education"
	SectionSkills     SectionKind = "skills"
	SectionProjects   SectionKind = "projects"
)

type Document struct {
	Template string    `json:"template"`
	Style    Style     `json:"style"`
	Sections []Section `json:"sections"`
}

// Style carries everything a template is allowed to vary: typography,
// palette and layout geometry. Section ordering, omission rules and
// entry formatting are owned by the engine and identical for every
// template.
type Style struct {
	FontFamily      string `json:"fontFamily"`
	HeadingFont     string `json:"headingFont,omitempty"`
	BaseFontSizePt  int    `json:"baseFontSizePt"`
	AccentColor     string `json:"accentColor"`
	TextColor       string `json:"textColor"`
	Background      string `json:"background"`
	HeaderAlign     string `json:"headerAlign"`
	SectionDivider  string `json:"sectionDivider,omitempty"`
	UppercaseTitles bool   `json:"uppercaseTitles"`
	SkillColumns    int    `json:"skillColumns"`
}

type Section struct {
	Kind     SectionKind   `json:"kind"`
	Title    string        `json:"title,omitempty"`
	Header   *HeaderBlock  `json:"header,omitempty"`
	Text     string        `json:"text,omitempty"`
	Entries  []Entry       `json:"entries,omitempty"`
	Skills   []SkillLine   `json:"skills,omitempty"`
	Projects []ProjectLine `json:"projects,omitempty"`
}

// HeaderBlock is the name/contact banner at the top of every layout.
type HeaderBlock struct {
	Name    string   `json:"name"`
	Contact []string `json:"contact"`
	Links   []string `json:"links,omitempty"`
}

// Entry is a dated experience or education item, already display-ready.
type Entry struct {
	Heading    string `json:"heading"`
	SubHeading string `json:"subHeading"`
	Meta       string `json:"meta,omitempty"`
	DateRange  string `json:"dateRange"`
	Body       string `json:"body,omitempty"`
}

type SkillLine struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type ProjectLine struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies,omitempty"`
	URL          string `json:"url,omitempty"`
}
