package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "vistoforms/pkg/domain-errors"
)

func TestParseStep(t *testing.T) {
	t.Run("by index", func(t *testing.T) {
		step, err := ParseStep("3")
		require.NoError(t, err)
		assert.Equal(t, StepAboutTravel, step)
	})

	t.Run("by slug", func(t *testing.T) {
		step, err := ParseStep("work-education")
		require.NoError(t, err)
		assert.Equal(t, StepWorkEducation, step)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := ParseStep("10")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := ParseStep("pets")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func TestStepOrdering(t *testing.T) {
	assert.Equal(t, StepAddressContacts, StepPersonalData.Next())
	assert.True(t, StepSecurity.IsLast())
	assert.Equal(t, StepSecurity, StepSecurity.Next())
	assert.False(t, Step(-1).Valid())
	assert.False(t, Step(StepCount).Valid())
}

func TestEverySchemaHasItsStep(t *testing.T) {
	for step := Step(0); int(step) < StepCount; step++ {
		schema := SchemaFor(step)
		assert.Equal(t, step, schema.Step, "schema of %s", step.Slug())
		assert.NotEmpty(t, schema.Fields, "schema of %s", step.Slug())
	}
	assert.Empty(t, SchemaFor(Step(99)).Fields)
}

func TestListFieldsDeclareIdentifyingSubFields(t *testing.T) {
	for step := Step(0); int(step) < StepCount; step++ {
		for _, field := range SchemaFor(step).Fields {
			if field.Kind != KindList {
				continue
			}
			require.NotEmpty(t, field.Entry, "%s.%s", step.Slug(), field.Name)
			var identifying bool
			for _, sub := range field.Entry {
				if sub.Identifying {
					identifying = true
				}
			}
			assert.True(t, identifying, "%s.%s needs an identifying sub-field", step.Slug(), field.Name)
		}
	}
}
