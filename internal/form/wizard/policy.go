// Package wizard decides where the applicant lands after each step
// operation and carries the commit-and-navigate requests raised when a step
// tab is clicked while another step has unsaved edits.
package wizard

import "vistoforms/internal/form/models"

// Trigger names the operation that finished.
type Trigger string

const (
	TriggerSubmit   Trigger = "submit"
	TriggerSave     Trigger = "save"
	TriggerRedirect Trigger = "redirect"
)

// TargetKind classifies a navigation decision.
type TargetKind string

const (
	// KindStay keeps the applicant on the current step (draft saved).
	KindStay TargetKind = "stay"
	// KindStep navigates to another wizard step.
	KindStep TargetKind = "step"
	// KindSummary navigates to the read-only review view.
	KindSummary TargetKind = "summary"
)

// NavigationTarget is the outcome of a transition decision.
type NavigationTarget struct {
	Kind TargetKind  `json:"kind"`
	Step models.Step `json:"step,omitempty"`
}

// Decide picks the destination after a completed operation.
//
//	submit, editing an already-submitted step → summary
//	submit, first submission                  → next step (summary after the last)
//	save without redirect                     → stay
//	redirect                                  → requested step
func Decide(trigger Trigger, isEditing bool, current models.Step, redirectTarget *models.Step) NavigationTarget {
	switch trigger {
	case TriggerSubmit:
		if isEditing {
			return NavigationTarget{Kind: KindSummary}
		}
		if current.IsLast() {
			return NavigationTarget{Kind: KindSummary}
		}
		return NavigationTarget{Kind: KindStep, Step: current.Next()}
	case TriggerRedirect:
		if redirectTarget != nil && redirectTarget.Valid() {
			return NavigationTarget{Kind: KindStep, Step: *redirectTarget}
		}
		return NavigationTarget{Kind: KindStay, Step: current}
	default:
		return NavigationTarget{Kind: KindStay, Step: current}
	}
}
