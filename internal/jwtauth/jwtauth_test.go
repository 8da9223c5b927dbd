package jwtauth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_RoundTrip(t *testing.T) {
	v := NewValidator("secret")

	token, err := v.IssueToken("applicant-1", time.Hour)
	require.NoError(t, err)

	claims, err := v.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "applicant-1", claims.ApplicantID)
}

func TestValidator_RejectsExpiredToken(t *testing.T) {
	v := NewValidator("secret")

	token, err := v.IssueToken("applicant-1", -time.Minute)
	require.NoError(t, err)

	_, err = v.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidator_RejectsWrongKey(t *testing.T) {
	token, err := NewValidator("one-key").IssueToken("applicant-1", time.Hour)
	require.NoError(t, err)

	_, err = NewValidator("another-key").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidator_RejectsUnsignedAlg(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "applicant-1"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewValidator("secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidator_RejectsMissingSubject(t *testing.T) {
	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := signed.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewValidator("secret").ValidateToken(token)
	assert.Error(t, err)
}
