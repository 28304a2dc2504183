package domain

import (
	"time"

	"github.com/google/uuid"
)

// Job is a browsable job listing.
type Job struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	SalaryRange string    `json:"salaryRange,omitempty"`
	URL         string    `json:"url,omitempty"`
	PostedAt    time.Time `json:"postedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Application tracks one job application owned by a user.
type Application struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"userId"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	Status      string    `json:"status"`
	AppliedDate string    `json:"appliedDate"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Application statuses recognized by the tracker. Free-form values are
// not rejected; these are the ones the client offers.
const (
	StatusApplied      = "applied"
	StatusInterviewing = "interviewing"
	StatusOffer        = "offer"
	StatusRejected     = "rejected"
)

// Achievement is an append-only accomplishment on a user's profile.
type Achievement struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
