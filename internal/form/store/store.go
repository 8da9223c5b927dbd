// Package store persists forms and their step records. Implementations
// come in a memory/postgres pair behind the same interface.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"vistoforms/internal/form/models"
)

// ErrNotFound is returned when a form or step record does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the persistence collaborator of the form service.
type Store interface {
	CreateForm(ctx context.Context, form *models.Form) error
	GetForm(ctx context.Context, formID uuid.UUID) (*models.Form, error)

	// GetStep returns ErrNotFound when the step has never been saved.
	GetStep(ctx context.Context, formID uuid.UUID, step models.Step) (*models.StepRecord, error)
	// SaveStep upserts a step record wholesale; the caller passes the
	// already-merged values.
	SaveStep(ctx context.Context, record *models.StepRecord) error
	// ListSteps returns every saved step record of a form, ordered by step.
	ListSteps(ctx context.Context, formID uuid.UUID) ([]*models.StepRecord, error)
}
