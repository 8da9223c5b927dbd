// Package validate implements the conditional-required validation of the
// intake wizard. Rules are data: each step has a table of trigger →
// dependent-field entries evaluated in submit mode. Draft saves are lossy by
// design and never produce required-field issues.
package validate

import (
	"fmt"
	"net/mail"

	"vistoforms/internal/form/models"
)

// Mode selects how strict validation is.
type Mode string

const (
	// ModeSubmit enforces the full conditional rule table.
	ModeSubmit Mode = "submit"
	// ModeDraft performs no required-field checks; saving never blocks.
	ModeDraft Mode = "draft"
)

const (
	// MsgRequired is the inline message for a missing required field.
	MsgRequired = "Campo vazio, preencha para prosseguir"
	// MsgInvalidEmail is the inline message for a malformed e-mail address.
	MsgInvalidEmail = "E-mail inválido"
)

// Rule makes dependent fields required when a trigger radio holds a given
// answer. An empty Trigger makes the dependents unconditionally required.
type Rule struct {
	Trigger  string
	When     models.SimNao
	Requires []string
}

// ListRule gates a dynamic list on a trigger answer. The list is satisfied
// when it holds at least one committed entry; otherwise the trailing working
// slot's required sub-fields are validated.
type ListRule struct {
	Trigger string
	When    models.SimNao
	List    string
}

// OccupationRule maps each occupation value to the date field it makes
// required. The map is exhaustive over occupations that require a date;
// values outside the map require nothing.
type OccupationRule struct {
	Field    string
	Required map[string]string
}

// StepRules is the complete rule set of one wizard step.
type StepRules struct {
	Rules      []Rule
	ListRules  []ListRule
	Occupation *OccupationRule
}

// Error carries the issue set of a failed submit validation. It satisfies
// the error interface so services can return it through coded-error paths.
type Error struct {
	Issues []models.Issue
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation failed with %d issue(s)", len(e.Issues))
}

// Validate checks one step's values. In draft mode it returns nil: drafts
// are partial by design. In submit mode it evaluates the step's rule table
// and returns every finding, keyed by field path. Issue order is not
// significant.
func Validate(step models.Step, values models.Values, mode Mode) []models.Issue {
	if mode != ModeSubmit {
		return nil
	}

	schema := models.SchemaFor(step)
	rules := rulesByStep[step]
	var issues []models.Issue

	for _, rule := range rules.Rules {
		if rule.Trigger != "" && values.Answer(rule.Trigger) != rule.When {
			continue
		}
		for _, name := range rule.Requires {
			issues = appendFieldIssue(issues, schema, values, name)
		}
	}

	if occ := rules.Occupation; occ != nil {
		if required, ok := occ.Required[values.String(occ.Field)]; ok {
			issues = appendFieldIssue(issues, schema, values, required)
		}
	}

	for _, rule := range rules.ListRules {
		if values.Answer(rule.Trigger) != rule.When {
			continue
		}
		spec, ok := schema.Field(rule.List)
		if !ok {
			continue
		}
		issues = append(issues, validateGatedList(spec, values.List(rule.List))...)
	}

	// Format check on every filled e-mail field, rule table or not.
	for _, field := range schema.Fields {
		if field.Kind != models.KindEmail {
			continue
		}
		if v := values.String(field.Name); v != "" && !ValidEmail(v) {
			issues = append(issues, models.Issue{Path: field.Name, Message: MsgInvalidEmail})
		}
	}

	return issues
}

// ValidateEntry runs submit-mode rules scoped to a single list element,
// reporting paths as "<list>.<index>.<field>". Used before committing a new
// entry to a dynamic list.
func ValidateEntry(spec models.FieldSpec, listName string, index int, entry models.Values) []models.Issue {
	var issues []models.Issue
	for _, sub := range spec.Entry {
		path := fmt.Sprintf("%s.%d.%s", listName, index, sub.Name)
		value := entry[sub.Name]
		if sub.Required && models.IsEmptyValue(value) {
			issues = append(issues, models.Issue{Path: path, Message: MsgRequired})
			continue
		}
		if sub.Kind == models.KindEmail {
			if v, _ := value.(string); v != "" && !ValidEmail(v) {
				issues = append(issues, models.Issue{Path: path, Message: MsgInvalidEmail})
			}
		}
	}
	return issues
}

// validateGatedList applies the committed-entry semantic: one committed
// entry satisfies the requirement; with none, the trailing slot must be
// completed.
func validateGatedList(spec models.FieldSpec, list []models.Values) []models.Issue {
	for _, entry := range list {
		if spec.EntryCommitted(entry) {
			return nil
		}
	}
	if len(list) == 0 {
		// No working slot yet: report the list itself as missing.
		return []models.Issue{{Path: spec.Name, Message: MsgRequired}}
	}
	last := len(list) - 1
	return ValidateEntry(spec, spec.Name, last, list[last])
}

func appendFieldIssue(issues []models.Issue, schema models.Schema, values models.Values, name string) []models.Issue {
	field, ok := schema.Field(name)
	if !ok {
		return issues
	}
	value := values[name]
	if models.IsEmptyValue(value) {
		return append(issues, models.Issue{Path: name, Message: MsgRequired})
	}
	if field.Kind == models.KindEmail {
		if v, _ := value.(string); !ValidEmail(v) {
			return append(issues, models.Issue{Path: name, Message: MsgInvalidEmail})
		}
	}
	return issues
}

// ValidEmail is the canonical e-mail predicate used everywhere a form field
// is typed as an e-mail address.
func ValidEmail(address string) bool {
	parsed, err := mail.ParseAddress(address)
	return err == nil && parsed.Address == address
}
