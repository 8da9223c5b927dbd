package models

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the display format dates are serialized to at the
// persistence boundary. In memory dates are always time.Time values.
const DateLayout = "02/01/2006"

// SimNao is the tri-state answer of the questionnaire radios: answered yes,
// answered no, or not answered yet.
type SimNao string

const (
	Sim        SimNao = "Sim"
	Nao        SimNao = "Não"
	Unanswered SimNao = ""
)

// Answered reports whether the applicant picked either option.
func (s SimNao) Answered() bool { return s == Sim || s == Nao }

// EncodeBool re-encodes a persisted nullable boolean as a SimNao answer.
func EncodeBool(b *bool) SimNao {
	switch {
	case b == nil:
		return Unanswered
	case *b:
		return Sim
	default:
		return Nao
	}
}

// Values is the editable working copy of one step's fields. Keys are field
// names from the step schema. Value types by field kind:
//
//	Text, Email  string     ("" means untouched)
//	Date         *time.Time (nil means untouched)
//	SimNao       SimNao     (Unanswered means untouched)
//	List         []Values
type Values map[string]any

// String returns the string value at name, or "" when unset.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Date returns the date value at name, or nil when unset.
func (v Values) Date(name string) *time.Time {
	t, _ := v[name].(*time.Time)
	return t
}

// Answer returns the SimNao value at name.
func (v Values) Answer(name string) SimNao {
	switch a := v[name].(type) {
	case SimNao:
		return a
	case string:
		return SimNao(a)
	}
	return Unanswered
}

// List returns the list value at name, or nil when unset.
func (v Values) List(name string) []Values {
	l, _ := v[name].([]Values)
	return l
}

// At resolves a dotted field path, descending into lists by numeric index
// (e.g. "previousJobs.1.companyCity"). Returns nil when any segment is
// missing or out of range.
func (v Values) At(path string) any {
	segments := strings.Split(path, ".")
	var current any = v
	for _, seg := range segments {
		switch node := current.(type) {
		case Values:
			current = node[seg]
		case []Values:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil
			}
			current = node[idx]
		default:
			return nil
		}
	}
	return current
}

// Clone deep-copies the value bag so stores and merge results never alias
// caller-held state.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for name, value := range v {
		switch typed := value.(type) {
		case []Values:
			list := make([]Values, len(typed))
			for i, entry := range typed {
				list[i] = entry.Clone()
			}
			out[name] = list
		case *time.Time:
			if typed == nil {
				out[name] = (*time.Time)(nil)
			} else {
				t := *typed
				out[name] = &t
			}
		default:
			out[name] = value
		}
	}
	return out
}

// IsEmptyValue reports whether value counts as "untouched" for merge and
// required-field purposes, independent of field kind.
func IsEmptyValue(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case SimNao:
		return !typed.Answered()
	case *time.Time:
		return typed == nil
	case []Values:
		return len(typed) == 0
	}
	return false
}
