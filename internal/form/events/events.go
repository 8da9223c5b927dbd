// Package events publishes step-submission events so downstream consumers
// (case workers, notification pipelines) learn about wizard progress without
// polling the database.
package events

import (
	"context"
	"time"
)

// StepSubmitted is emitted after a step passes full validation and is
// persisted.
type StepSubmitted struct {
	ID          string    `json:"id"`
	FormID      string    `json:"form_id"`
	ApplicantID string    `json:"applicant_id"`
	Step        string    `json:"step"`
	IsEditing   bool      `json:"is_editing"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Publisher emits submission events. Publishing is best-effort from the
// service's point of view: a failed emit is logged, never surfaced to the
// applicant.
type Publisher interface {
	PublishStepSubmitted(ctx context.Context, event StepSubmitted) error
	Close()
}

// NopPublisher drops events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishStepSubmitted(context.Context, StepSubmitted) error { return nil }
func (NopPublisher) Close()                                                    {}
