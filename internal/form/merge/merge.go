// Package merge reconciles in-memory pending edits against the last
// persisted step record when the applicant saves, submits, or navigates
// away. Merge is a pure function; callers dispatch the result and only
// adopt it as the new persisted baseline after the store reports success.
package merge

import (
	"time"

	"vistoforms/internal/form/listctl"
	"vistoforms/internal/form/models"
)

// Merge combines pending edits with the persisted record field by field.
// Precedence per kind:
//
//	text/email: pending unless empty string
//	date:       pending unless unset
//	Sim/Não:    pending if answered at all (a "Não" answer wins), else persisted
//	list:       committed projection of pending, plus the trailing working
//	            slot when it holds partial input, replaces the persisted
//	            list wholesale; a pending list that was never touched keeps
//	            the persisted one
//
// Merging an already-merged result against the same persisted baseline is a
// no-op.
func Merge(pending, persisted models.Values, schema models.Schema) models.Values {
	out := make(models.Values, len(schema.Fields))
	for _, field := range schema.Fields {
		out[field.Name] = mergeField(field, pending[field.Name], persisted[field.Name])
	}
	return out
}

func mergeField(field models.FieldSpec, pending, persisted any) any {
	switch field.Kind {
	case models.KindList:
		return mergeList(field, pending, persisted)
	case models.KindSimNao:
		if answer := toAnswer(pending); answer.Answered() {
			return answer
		}
		return toAnswer(persisted)
	case models.KindDate:
		if t := toDate(pending); t != nil {
			return cloneDate(t)
		}
		return cloneDate(toDate(persisted))
	default:
		if s, ok := pending.(string); ok && s != "" {
			return s
		}
		if s, ok := persisted.(string); ok {
			return s
		}
		return ""
	}
}

func mergeList(field models.FieldSpec, pending, persisted any) any {
	pendingList, touched := pending.([]models.Values)
	if !touched {
		if persistedList, ok := persisted.([]models.Values); ok {
			return cloneList(persistedList)
		}
		return []models.Values(nil)
	}
	ctl := listctl.New(field)
	merged := ctl.CommittedEntries(pendingList)
	// The trailing working slot survives when it holds partial input, so
	// navigating between steps never destroys typed list values.
	if n := len(pendingList); n > 0 {
		last := pendingList[n-1]
		if !field.EntryCommitted(last) && !field.EntryEmpty(last) {
			merged = append(merged, last)
		}
	}
	return cloneList(merged)
}

func toDate(value any) *time.Time {
	t, _ := value.(*time.Time)
	return t
}

func cloneDate(t *time.Time) *time.Time {
	if t == nil {
		return (*time.Time)(nil)
	}
	copied := *t
	return &copied
}

func toAnswer(value any) models.SimNao {
	switch a := value.(type) {
	case models.SimNao:
		return a
	case string:
		return models.SimNao(a)
	}
	return models.Unanswered
}

func cloneList(list []models.Values) []models.Values {
	out := make([]models.Values, len(list))
	for i, entry := range list {
		out[i] = entry.Clone()
	}
	return out
}
