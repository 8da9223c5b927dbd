// Package listctl manages the repeatable sub-records of a step (previous
// jobs, courses, travel companions, past USA trips, extra phone numbers).
//
// Invariants: the list is never empty while its section is open — the last
// element is always the current editable slot; every earlier element is a
// committed, read-only entry.
package listctl

import (
	"vistoforms/internal/form/models"
	"vistoforms/internal/form/validate"
)

// Controller operates on one list field, driven by its schema spec.
type Controller struct {
	spec models.FieldSpec
}

// New builds a controller for a KindList field spec.
func New(spec models.FieldSpec) Controller {
	return Controller{spec: spec}
}

// Seed returns the initial list state: a single empty working slot.
func (c Controller) Seed() []models.Values {
	return []models.Values{c.spec.EmptyEntry()}
}

// AddEntry validates the current slot and, when it is complete, appends a
// fresh empty slot which becomes the new current element. On validation
// failure the list is returned unchanged alongside the issues; moving focus
// to the offending field is the caller's concern.
func (c Controller) AddEntry(list []models.Values, currentIndex int) ([]models.Values, []models.Issue) {
	if currentIndex < 0 || currentIndex >= len(list) {
		return list, nil
	}
	issues := validate.ValidateEntry(c.spec, c.spec.Name, currentIndex, list[currentIndex])
	if len(issues) > 0 {
		return list, issues
	}
	return append(list, c.spec.EmptyEntry()), nil
}

// RemoveEntry removes the element at index. If the removal would leave the
// list without a working slot, an empty one is appended so editing can
// continue.
func (c Controller) RemoveEntry(list []models.Values, index int) []models.Values {
	if index < 0 || index >= len(list) {
		return list
	}
	out := make([]models.Values, 0, len(list)-1)
	out = append(out, list[:index]...)
	out = append(out, list[index+1:]...)
	if len(out) == 0 || c.spec.EntryCommitted(out[len(out)-1]) {
		out = append(out, c.spec.EmptyEntry())
	}
	return out
}

// CurrentIndex recomputes the editable-slot index after a removal. Callers
// pass their previous index; the result is clamped into the list bounds
// rather than blindly decremented.
func (c Controller) CurrentIndex(previous, length int) int {
	if length == 0 {
		return 0
	}
	if previous > length-1 {
		return length - 1
	}
	if previous < 0 {
		return 0
	}
	return previous
}

// CommittedEntries filters the list down to elements whose required
// sub-fields are all filled: the entries shown as chips and the payload
// handed to the draft merge.
func (c Controller) CommittedEntries(list []models.Values) []models.Values {
	var committed []models.Values
	for _, entry := range list {
		if c.spec.EntryCommitted(entry) {
			committed = append(committed, entry)
		}
	}
	return committed
}

// ResetCurrent replaces the current slot with an empty entry, discarding
// partial input.
func (c Controller) ResetCurrent(list []models.Values, currentIndex int) []models.Values {
	if currentIndex < 0 || currentIndex >= len(list) {
		return list
	}
	out := append([]models.Values(nil), list...)
	out[currentIndex] = c.spec.EmptyEntry()
	return out
}
