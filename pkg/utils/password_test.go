package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassword(t *testing.T) {
	h := HashPassword("password")
	assert.NotEqual(t, "password", h)
	assert.True(t, CheckPassword("password", h))
	assert.False(t, CheckPassword("Password", h))
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
