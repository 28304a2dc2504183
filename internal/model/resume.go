package model

// Go models for the canonical resume shape shared by the editor, the draft
// store and the template renderer. Field names follow the wire format the
// web client sends (camelCase).

type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Summary   string `json:"summary"`
}

type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	GPA         string `json:"gpa,omitempty"`
}

// Skill levels accepted by the editor.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
}

type ResumeData struct {
	PersonalInfo     PersonalInfo `json:"personalInfo"`
	Experience       []Experience `json:"experience"`
	Education        []Education  `json:"education"`
	Skills           []Skill      `json:"skills"`
	Projects         []Project    `json:"projects"`
	SelectedTemplate string       `json:"selectedTemplate"`
}

// IsValidLevel reports whether s is one of the accepted skill levels.
func IsValidLevel(s string) bool {
	switch s {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}
