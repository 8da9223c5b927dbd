package models

import "time"

// FieldKind describes how a field is typed, coerced, and compared against
// "empty" during validation and merge.
type FieldKind int

const (
	KindText FieldKind = iota
	KindEmail
	KindDate
	KindSimNao
	KindList
)

// FieldSpec describes one field of a step schema. For KindList fields,
// Entry holds the sub-field specs of each list element.
type FieldSpec struct {
	Name string
	Kind FieldKind

	// Entry sub-fields, KindList only.
	Entry []FieldSpec

	// Required marks list sub-fields that must be filled before the entry
	// can be committed (AddEntry) and that submit validation checks on the
	// trailing slot.
	Required bool

	// Identifying marks the sub-fields that label a committed entry in the
	// UI's chips. Identifying sub-fields are always also Required.
	Identifying bool
}

// Schema is the ordered field set of one wizard step.
type Schema struct {
	Step   Step
	Fields []FieldSpec
}

// Field looks up a field spec by name.
func (s Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// EmptyEntry builds an untouched element for a list field: the shape the
// trailing editable slot always has.
func (f FieldSpec) EmptyEntry() Values {
	entry := make(Values, len(f.Entry))
	for _, sub := range f.Entry {
		switch sub.Kind {
		case KindDate:
			entry[sub.Name] = (*time.Time)(nil)
		case KindSimNao:
			entry[sub.Name] = Unanswered
		default:
			entry[sub.Name] = ""
		}
	}
	return entry
}

// EntryCommitted reports whether a list element has all required
// sub-fields filled. Committed entries render as read-only chips and count
// toward a gated list's requirement; anything else is the trailing working
// slot.
func (f FieldSpec) EntryCommitted(entry Values) bool {
	for _, sub := range f.Entry {
		if !sub.Required {
			continue
		}
		if IsEmptyValue(entry[sub.Name]) {
			return false
		}
	}
	return true
}

// EntryEmpty reports whether every sub-field of a list element is
// untouched.
func (f FieldSpec) EntryEmpty(entry Values) bool {
	for _, sub := range f.Entry {
		if !IsEmptyValue(entry[sub.Name]) {
			return false
		}
	}
	return true
}

// RequiredEntryFields returns the names of sub-fields that must be filled
// before an entry counts as complete.
func (f FieldSpec) RequiredEntryFields() []string {
	var names []string
	for _, sub := range f.Entry {
		if sub.Required {
			names = append(names, sub.Name)
		}
	}
	return names
}
