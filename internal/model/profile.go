package model

import "time"

// Profile holds the structured sections a user maintains outside any
// particular resume draft. The section entry shapes are shared with
// ResumeData so the editor can pull profile data straight into a draft.
type Profile struct {
	UserID     string       `json:"userId"`
	PhotoURL   string       `json:"photoUrl,omitempty"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     []Skill      `json:"skills"`
	Projects   []Project    `json:"projects"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}
