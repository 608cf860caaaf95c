package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	iss := NewIssuer("s3cret", time.Minute)

	signed, expires, err := iss.Issue("clerk")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), expires, 5*time.Second)

	claims, err := iss.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "clerk", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestValidate_Rejects(t *testing.T) {
	iss := NewIssuer("s3cret", time.Minute)
	signed, _, err := iss.Issue("clerk")
	require.NoError(t, err)

	_, err = NewIssuer("other", time.Minute).Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = iss.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	iss.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = iss.Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDisabledIssuer(t *testing.T) {
	iss := NewIssuer("", 0)
	assert.False(t, iss.Enabled())

	_, _, err := iss.Issue("clerk")
	assert.ErrorIs(t, err, ErrNoSecret)
	_, err = iss.Validate("x")
	assert.ErrorIs(t, err, ErrNoSecret)

	var nilIssuer *Issuer
	assert.False(t, nilIssuer.Enabled())
}
