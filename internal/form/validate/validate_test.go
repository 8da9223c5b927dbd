package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vistoforms/internal/form/models"
)

func issuePaths(issues []models.Issue) []string {
	paths := make([]string, 0, len(issues))
	for _, issue := range issues {
		paths = append(paths, issue.Path)
	}
	return paths
}

func TestValidate_ConditionalRequirement(t *testing.T) {
	t.Run("trigger Sim with empty dependent yields issue", func(t *testing.T) {
		values := models.Values{
			"hasAddressInUSA":    models.Sim,
			"USACompleteAddress": "",
		}
		issues := Validate(models.StepAboutTravel, values, ModeSubmit)
		assert.Contains(t, issuePaths(issues), "USACompleteAddress")
	})

	t.Run("trigger Não removes issue regardless of dependent", func(t *testing.T) {
		values := models.Values{
			"hasAddressInUSA":    models.Nao,
			"USACompleteAddress": "",
		}
		issues := Validate(models.StepAboutTravel, values, ModeSubmit)
		assert.NotContains(t, issuePaths(issues), "USACompleteAddress")
	})

	t.Run("unanswered trigger requires nothing", func(t *testing.T) {
		issues := Validate(models.StepAboutTravel, models.Values{}, ModeSubmit)
		assert.NotContains(t, issuePaths(issues), "USACompleteAddress")
	})

	t.Run("filled dependent satisfies rule", func(t *testing.T) {
		values := models.Values{
			"hasAddressInUSA":    models.Sim,
			"USACompleteAddress": "123 Main St",
			"USAZipCode":         "10001",
			"USACity":            "New York",
			"USAState":           "NY",
		}
		issues := Validate(models.StepAboutTravel, values, ModeSubmit)
		for _, path := range []string{"USACompleteAddress", "USAZipCode", "USACity", "USAState"} {
			assert.NotContains(t, issuePaths(issues), path)
		}
	})
}

func TestValidate_DraftNeverBlocks(t *testing.T) {
	allEmpty := models.Values{}
	for step := models.Step(0); int(step) < models.StepCount; step++ {
		assert.Empty(t, Validate(step, allEmpty, ModeDraft), "step %s", step.Slug())
	}

	// Even a step with every trigger answered Sim saves freely as a draft.
	values := models.Values{
		"hasAddressInUSA":             models.Sim,
		"travelItineraryConfirmation": models.Sim,
	}
	assert.Empty(t, Validate(models.StepAboutTravel, values, ModeDraft))
}

func TestValidate_AboutTravelScenario(t *testing.T) {
	values := models.Values{
		"hasAddressInUSA":    models.Sim,
		"USACompleteAddress": "",
	}
	issues := Validate(models.StepAboutTravel, values, ModeSubmit)

	require.NotEmpty(t, issues)
	var found bool
	for _, issue := range issues {
		if issue.Path == "USACompleteAddress" {
			found = true
			assert.Equal(t, "Campo vazio, preencha para prosseguir", issue.Message)
		}
	}
	assert.True(t, found, "expected issue at USACompleteAddress")

	// arriveFlyNumber has no required rule even with a confirmed itinerary.
	values = models.Values{
		"travelItineraryConfirmation": models.Sim,
		"arriveFlyNumber":             "",
	}
	issues = Validate(models.StepAboutTravel, values, ModeSubmit)
	assert.NotContains(t, issuePaths(issues), "arriveFlyNumber")
}

func TestValidate_OccupationDates(t *testing.T) {
	t.Run("student requires admission date", func(t *testing.T) {
		values := models.Values{"occupation": OccupationStudent}
		issues := Validate(models.StepWorkEducation, values, ModeSubmit)
		assert.Contains(t, issuePaths(issues), "admissionDate")
	})

	t.Run("retired requires retiree date, not admission date", func(t *testing.T) {
		values := models.Values{"occupation": OccupationRetired}
		issues := Validate(models.StepWorkEducation, values, ModeSubmit)
		paths := issuePaths(issues)
		assert.Contains(t, paths, "retireeDate")
		assert.NotContains(t, paths, "admissionDate")
	})

	t.Run("every date-bearing occupation is mapped", func(t *testing.T) {
		occ := RulesFor(models.StepWorkEducation).Occupation
		require.NotNil(t, occ)
		for _, occupation := range []string{
			OccupationBusinessOwner, OccupationStudent, OccupationEmployee,
			OccupationSelfEmployed, OccupationOther,
		} {
			assert.Equal(t, "admissionDate", occ.Required[occupation])
		}
		assert.Equal(t, "retireeDate", occ.Required[OccupationRetired])
	})

	t.Run("unknown occupation requires no date", func(t *testing.T) {
		values := models.Values{"occupation": "Do lar"}
		issues := Validate(models.StepWorkEducation, values, ModeSubmit)
		paths := issuePaths(issues)
		assert.NotContains(t, paths, "admissionDate")
		assert.NotContains(t, paths, "retireeDate")
	})

	t.Run("filled admission date satisfies rule", func(t *testing.T) {
		admission := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
		values := models.Values{
			"occupation":    OccupationEmployee,
			"admissionDate": &admission,
		}
		issues := Validate(models.StepWorkEducation, values, ModeSubmit)
		assert.NotContains(t, issuePaths(issues), "admissionDate")
	})
}

func TestValidate_PreviousTravelList(t *testing.T) {
	t.Run("single empty slot yields one issue per required sub-field", func(t *testing.T) {
		values := models.Values{
			"hasBeenOnUSAConfirmation": models.Sim,
			"USALastTravel": []models.Values{
				{"arriveDate": (*time.Time)(nil), "estimatedTime": ""},
			},
		}
		issues := Validate(models.StepPreviousTravel, values, ModeSubmit)
		paths := issuePaths(issues)
		assert.Contains(t, paths, "USALastTravel.0.arriveDate")
		assert.Contains(t, paths, "USALastTravel.0.estimatedTime")
	})

	t.Run("one committed entry satisfies the list", func(t *testing.T) {
		arrive := time.Date(2019, 7, 14, 0, 0, 0, 0, time.UTC)
		values := models.Values{
			"hasBeenOnUSAConfirmation": models.Sim,
			"USALastTravel": []models.Values{
				{"arriveDate": &arrive, "estimatedTime": "30 dias"},
				{"arriveDate": (*time.Time)(nil), "estimatedTime": ""},
			},
		}
		issues := Validate(models.StepPreviousTravel, values, ModeSubmit)
		for _, path := range issuePaths(issues) {
			assert.NotContains(t, path, "USALastTravel")
		}
	})

	t.Run("trigger Não skips the list entirely", func(t *testing.T) {
		values := models.Values{
			"hasBeenOnUSAConfirmation": models.Nao,
			"USALastTravel": []models.Values{
				{"arriveDate": (*time.Time)(nil), "estimatedTime": ""},
			},
		}
		issues := Validate(models.StepPreviousTravel, values, ModeSubmit)
		assert.Empty(t, issues)
	})

	t.Run("missing list reports the list itself", func(t *testing.T) {
		values := models.Values{"hasBeenOnUSAConfirmation": models.Sim}
		issues := Validate(models.StepPreviousTravel, values, ModeSubmit)
		assert.Contains(t, issuePaths(issues), "USALastTravel")
	})
}

func TestValidate_PreviousJobsList(t *testing.T) {
	t.Run("identifying field alone does not commit an entry", func(t *testing.T) {
		values := models.Values{
			"previousJobConfirmation": models.Sim,
			"previousJobs": []models.Values{
				{"companyName": "Empresa X"},
			},
		}
		issues := Validate(models.StepWorkEducation, values, ModeSubmit)
		paths := issuePaths(issues)
		assert.Contains(t, paths, "previousJobs.0.companyCity")
		assert.Contains(t, paths, "previousJobs.0.office")
		assert.Contains(t, paths, "previousJobs.0.admissionDate")
	})

	t.Run("all required sub-fields filled satisfies the list", func(t *testing.T) {
		admission := time.Date(2018, 2, 1, 0, 0, 0, 0, time.UTC)
		values := models.Values{
			"previousJobConfirmation": models.Sim,
			"previousJobs": []models.Values{
				{
					"companyName":   "Empresa X",
					"companyCity":   "São Paulo",
					"office":        "Gerente",
					"admissionDate": &admission,
				},
			},
		}
		issues := Validate(models.StepWorkEducation, values, ModeSubmit)
		for _, path := range issuePaths(issues) {
			assert.NotContains(t, path, "previousJobs")
		}
	})
}

func TestValidate_EmailFormat(t *testing.T) {
	t.Run("malformed email on filled field", func(t *testing.T) {
		values := models.Values{"email": "not-an-email"}
		issues := Validate(models.StepAddressContacts, values, ModeSubmit)

		require.Len(t, issues, 1)
		assert.Equal(t, "email", issues[0].Path)
		assert.Equal(t, "E-mail inválido", issues[0].Message)
	})

	t.Run("empty email is not a format error", func(t *testing.T) {
		issues := Validate(models.StepAddressContacts, models.Values{}, ModeSubmit)
		assert.Empty(t, issues)
	})

	t.Run("valid email passes", func(t *testing.T) {
		values := models.Values{"email": "maria@example.com"}
		issues := Validate(models.StepAddressContacts, values, ModeSubmit)
		assert.Empty(t, issues)
	})
}

func TestValidate_SecurityDetails(t *testing.T) {
	values := models.Values{
		"crimeConfirmation":             models.Sim,
		"crimeDetails":                  "",
		"contagiousDiseaseConfirmation": models.Nao,
	}
	issues := Validate(models.StepSecurity, values, ModeSubmit)
	paths := issuePaths(issues)
	assert.Contains(t, paths, "crimeDetails")
	assert.NotContains(t, paths, "contagiousDiseaseDetails")
}

func TestValidate_UnconditionalUSAContact(t *testing.T) {
	issues := Validate(models.StepUSAContact, models.Values{}, ModeSubmit)
	paths := issuePaths(issues)
	assert.Contains(t, paths, "organizationOrUSAResidentName")
	assert.Contains(t, paths, "USAContactAddress")
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("joao.silva@example.com.br"))
	assert.False(t, ValidEmail(""))
	assert.False(t, ValidEmail("joao@"))
	assert.False(t, ValidEmail("Joao Silva <joao@example.com>"))
}
