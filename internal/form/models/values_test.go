package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesAt(t *testing.T) {
	admission := time.Date(2018, time.February, 1, 0, 0, 0, 0, time.UTC)
	values := Values{
		"occupation": "Estudante",
		"previousJobs": []Values{
			{"companyName": "Acme", "admissionDate": &admission},
			{"companyName": "Globex"},
		},
	}

	assert.Equal(t, "Estudante", values.At("occupation"))
	assert.Equal(t, "Globex", values.At("previousJobs.1.companyName"))
	assert.Equal(t, &admission, values.At("previousJobs.0.admissionDate"))
	assert.Nil(t, values.At("previousJobs.2.companyName"))
	assert.Nil(t, values.At("previousJobs.x.companyName"))
	assert.Nil(t, values.At("occupation.deeper"))
}

func TestValuesClone(t *testing.T) {
	birth := time.Date(1990, time.May, 10, 0, 0, 0, 0, time.UTC)
	original := Values{
		"firstName": "Maria",
		"birthDate": &birth,
		"otherPhones": []Values{
			{"number": "+55 11 91234-5678"},
		},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone["firstName"] = "Ana"
	clone.List("otherPhones")[0]["number"] = "changed"
	*clone.Date("birthDate") = time.Time{}

	assert.Equal(t, "Maria", original.String("firstName"))
	assert.Equal(t, "+55 11 91234-5678", original.List("otherPhones")[0].String("number"))
	assert.True(t, original.Date("birthDate").Equal(birth))

	assert.Nil(t, Values(nil).Clone())
}

func TestIsEmptyValue(t *testing.T) {
	now := time.Now()
	assert.True(t, IsEmptyValue(nil))
	assert.True(t, IsEmptyValue(""))
	assert.True(t, IsEmptyValue(Unanswered))
	assert.True(t, IsEmptyValue((*time.Time)(nil)))
	assert.True(t, IsEmptyValue([]Values{}))

	assert.False(t, IsEmptyValue("x"))
	assert.False(t, IsEmptyValue(Sim))
	assert.False(t, IsEmptyValue(Nao), "an answered Não is a value, not an empty field")
	assert.False(t, IsEmptyValue(&now))
	assert.False(t, IsEmptyValue([]Values{{}}))
}

func TestEncodeBool(t *testing.T) {
	yes, no := true, false
	assert.Equal(t, Sim, EncodeBool(&yes))
	assert.Equal(t, Nao, EncodeBool(&no))
	assert.Equal(t, Unanswered, EncodeBool(nil))
}
