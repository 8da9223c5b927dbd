package wizard

import (
	"context"

	"github.com/google/uuid"

	"vistoforms/internal/form/models"
)

// RedirectStore holds pending commit-and-navigate requests, one per form.
// A request is consumed exactly once: Take both reads and clears it, so a
// double-clicked step tab cannot trigger two implicit saves.
type RedirectStore interface {
	// Request records the target step of a pending redirect, replacing any
	// earlier request for the same form.
	Request(ctx context.Context, formID uuid.UUID, target models.Step) error
	// Take returns and clears the pending request, or nil when there is none.
	Take(ctx context.Context, formID uuid.UUID) (*models.Step, error)
}
