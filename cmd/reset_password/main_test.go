package main

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	email, err := normalizeEmail("  User@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)

	_, err = normalizeEmail("no-at-mark")
	assert.ErrorIs(t, err, errInvalidEmail)

	_, err = normalizeEmail("   ")
	assert.ErrorIs(t, err, errInvalidEmail)
}

func TestValidatePassword(t *testing.T) {
	assert.ErrorIs(t, validatePassword("12345"), errShortPassword)
	assert.NoError(t, validatePassword("123456"))
}

func TestDisplayNameOf(t *testing.T) {
	assert.Equal(t, "N/A", displayNameOf(&user{}))
	assert.Equal(t, "Taro", displayNameOf(&user{DisplayName: sql.NullString{String: "Taro", Valid: true}}))
}
