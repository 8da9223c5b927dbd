package merge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vistoforms/internal/form/models"
)

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestMerge_TextPrecedence(t *testing.T) {
	schema := models.SchemaFor(models.StepPersonalData)

	t.Run("filled pending wins", func(t *testing.T) {
		merged := Merge(
			models.Values{"firstName": "Maria"},
			models.Values{"firstName": "Mariana"},
			schema,
		)
		assert.Equal(t, "Maria", merged.String("firstName"))
	})

	t.Run("empty pending keeps persisted", func(t *testing.T) {
		merged := Merge(
			models.Values{"firstName": ""},
			models.Values{"firstName": "Mariana"},
			schema,
		)
		assert.Equal(t, "Mariana", merged.String("firstName"))
	})

	t.Run("absent pending keeps persisted", func(t *testing.T) {
		merged := Merge(
			models.Values{},
			models.Values{"lastName": "Silva"},
			schema,
		)
		assert.Equal(t, "Silva", merged.String("lastName"))
	})
}

func TestMerge_DatePrecedence(t *testing.T) {
	schema := models.SchemaFor(models.StepPersonalData)
	older := date(1990, time.May, 10)
	newer := date(1991, time.June, 20)

	merged := Merge(
		models.Values{"birthDate": newer},
		models.Values{"birthDate": older},
		schema,
	)
	require.NotNil(t, merged.Date("birthDate"))
	assert.True(t, merged.Date("birthDate").Equal(*newer))

	merged = Merge(
		models.Values{"birthDate": (*time.Time)(nil)},
		models.Values{"birthDate": older},
		schema,
	)
	require.NotNil(t, merged.Date("birthDate"))
	assert.True(t, merged.Date("birthDate").Equal(*older))
}

func TestMerge_SimNaoPrecedence(t *testing.T) {
	schema := models.SchemaFor(models.StepPersonalData)

	t.Run("explicit Não overrides persisted Sim", func(t *testing.T) {
		merged := Merge(
			models.Values{"otherNamesConfirmation": models.Nao},
			models.Values{"otherNamesConfirmation": models.Sim},
			schema,
		)
		assert.Equal(t, models.Nao, merged.Answer("otherNamesConfirmation"))
	})

	t.Run("unanswered pending keeps persisted", func(t *testing.T) {
		merged := Merge(
			models.Values{"otherNamesConfirmation": models.Unanswered},
			models.Values{"otherNamesConfirmation": models.Sim},
			schema,
		)
		assert.Equal(t, models.Sim, merged.Answer("otherNamesConfirmation"))
	})
}

func TestMerge_ListReplacement(t *testing.T) {
	schema := models.SchemaFor(models.StepWorkEducation)
	persisted := models.Values{
		"previousJobs": []models.Values{
			{"companyName": "Empresa Antiga", "companyCity": "Recife", "office": "Analista", "admissionDate": date(2015, time.January, 5)},
		},
	}

	t.Run("committed pending entries replace the persisted list wholesale", func(t *testing.T) {
		pending := models.Values{
			"previousJobs": []models.Values{
				{"companyName": "Empresa Nova", "companyCity": "São Paulo", "office": "Gerente", "admissionDate": date(2020, time.March, 2)},
				{"companyName": "", "companyCity": "", "office": ""}, // working slot, not committed
			},
		}
		merged := Merge(pending, persisted, schema)
		list := merged.List("previousJobs")
		require.Len(t, list, 1)
		assert.Equal(t, "Empresa Nova", list[0].String("companyName"))
	})

	t.Run("untouched pending list keeps the persisted one", func(t *testing.T) {
		merged := Merge(models.Values{}, persisted, schema)
		list := merged.List("previousJobs")
		require.Len(t, list, 1)
		assert.Equal(t, "Empresa Antiga", list[0].String("companyName"))
	})

	t.Run("partial working slot survives the merge", func(t *testing.T) {
		pending := models.Values{
			"previousJobs": []models.Values{
				{"companyName": "", "companyCity": "São Paulo", "office": "Gerente"},
			},
		}
		merged := Merge(pending, models.Values{}, schema)
		list := merged.List("previousJobs")
		require.Len(t, list, 1)
		assert.Equal(t, "São Paulo", list[0].String("companyCity"))
		assert.Equal(t, "Gerente", list[0].String("office"))
	})

	t.Run("partial working slot appends after committed entries", func(t *testing.T) {
		pending := models.Values{
			"previousJobs": []models.Values{
				{"companyName": "Empresa Nova", "companyCity": "São Paulo", "office": "Gerente", "admissionDate": date(2020, time.March, 2)},
				{"companyName": "Empresa Seguinte", "companyCity": "", "office": ""},
			},
		}
		merged := Merge(pending, persisted, schema)
		list := merged.List("previousJobs")
		require.Len(t, list, 2)
		assert.Equal(t, "Empresa Nova", list[0].String("companyName"))
		assert.Equal(t, "Empresa Seguinte", list[1].String("companyName"))
	})

	t.Run("pending list of only blank slots clears the persisted entries", func(t *testing.T) {
		pending := models.Values{
			"previousJobs": []models.Values{
				{"companyName": "", "companyCity": "", "office": ""},
			},
		}
		merged := Merge(pending, persisted, schema)
		assert.Empty(t, merged.List("previousJobs"))
	})
}

func TestMerge_Idempotent(t *testing.T) {
	schema := models.SchemaFor(models.StepAboutTravel)
	pending := models.Values{
		"hasAddressInUSA":      models.Sim,
		"USACompleteAddress":   "350 5th Ave",
		"USAPreviewArriveDate": date(2026, time.October, 1),
	}
	persisted := models.Values{
		"hasAddressInUSA":    models.Nao,
		"USACompleteAddress": "old address",
		"USACity":            "Boston",
	}

	once := Merge(pending, persisted, schema)
	twice := Merge(once, persisted, schema)
	assert.Equal(t, once, twice)
}

func TestMerge_IdempotentWithWorkingSlot(t *testing.T) {
	schema := models.SchemaFor(models.StepWorkEducation)
	pending := models.Values{
		"previousJobs": []models.Values{
			{"companyName": "Empresa Nova", "companyCity": "São Paulo", "office": "Gerente", "admissionDate": date(2020, time.March, 2)},
			{"companyName": "Empresa Seguinte", "companyCity": "", "office": ""},
		},
	}

	once := Merge(pending, models.Values{}, schema)
	twice := Merge(once, models.Values{}, schema)
	assert.Equal(t, once, twice)
}

func TestMerge_DoesNotAliasInputs(t *testing.T) {
	schema := models.SchemaFor(models.StepPreviousTravel)
	arrive := date(2019, time.July, 14)
	pending := models.Values{
		"USALastTravel": []models.Values{
			{"arriveDate": arrive, "estimatedTime": "30 dias"},
		},
	}

	merged := Merge(pending, models.Values{}, schema)
	list := merged.List("USALastTravel")
	require.Len(t, list, 1)

	// Mutating the merge result must not write through to the caller's bag.
	list[0]["estimatedTime"] = "changed"
	assert.Equal(t, "30 dias", pending.List("USALastTravel")[0].String("estimatedTime"))

	*list[0].Date("arriveDate") = time.Time{}
	assert.True(t, arrive.Equal(time.Date(2019, time.July, 14, 0, 0, 0, 0, time.UTC)))
}
