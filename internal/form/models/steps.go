// Package models defines the intake form domain: wizard steps, field
// schemas, the editable value bag, and validation issues. All other form
// packages are parameterized by these tables rather than hard-coding
// per-step logic.
package models

import (
	"strconv"

	dErrors "vistoforms/pkg/domain-errors"
)

// Step identifies one page of the intake wizard. Order matters: submitting
// step N advances to step N+1.
type Step int

const (
	StepPersonalData Step = iota
	StepAddressContacts
	StepPassport
	StepAboutTravel
	StepTravelCompany
	StepPreviousTravel
	StepUSAContact
	StepFamily
	StepWorkEducation
	StepSecurity

	stepCount
)

// StepCount is the number of wizard steps.
const StepCount = int(stepCount)

var stepSlugs = [stepCount]string{
	StepPersonalData:    "personal-data",
	StepAddressContacts: "address-contacts",
	StepPassport:        "passport",
	StepAboutTravel:     "about-travel",
	StepTravelCompany:   "travel-company",
	StepPreviousTravel:  "previous-travel",
	StepUSAContact:      "usa-contact",
	StepFamily:          "family",
	StepWorkEducation:   "work-education",
	StepSecurity:        "security",
}

// Slug returns the URL segment for the step.
func (s Step) Slug() string {
	if !s.Valid() {
		return "unknown"
	}
	return stepSlugs[s]
}

func (s Step) String() string { return s.Slug() }

// Valid reports whether s addresses an existing wizard step.
func (s Step) Valid() bool { return s >= 0 && s < stepCount }

// IsLast reports whether s is the final wizard step.
func (s Step) IsLast() bool { return s == stepCount-1 }

// Next returns the step after s. Calling Next on the last step returns the
// last step itself; callers use IsLast to branch to the summary instead.
func (s Step) Next() Step {
	if s.IsLast() {
		return s
	}
	return s + 1
}

// ParseStep accepts either a step index ("3") or a slug ("about-travel").
func ParseStep(raw string) (Step, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		s := Step(n)
		if !s.Valid() {
			return 0, dErrors.New(dErrors.CodeBadRequest, "step index out of range")
		}
		return s, nil
	}
	for i, slug := range stepSlugs {
		if slug == raw {
			return Step(i), nil
		}
	}
	return 0, dErrors.New(dErrors.CodeBadRequest, "unknown step: "+raw)
}
