package models

import (
	"time"

	"github.com/google/uuid"
)

// Form is one visa application being filled in across the wizard.
type Form struct {
	ID          uuid.UUID
	ApplicantID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StepRecord is the persisted slice of a form belonging to one wizard step.
// Values holds the last merged save; Submitted marks the step as having
// passed full validation at least once.
type StepRecord struct {
	FormID    uuid.UUID
	Step      Step
	Values    Values
	Submitted bool
	UpdatedAt time.Time
}

// Issue is one field-scoped validation finding. Path may address a nested
// list location ("previousJobs.1.companyCity"). Issues are never persisted.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}
