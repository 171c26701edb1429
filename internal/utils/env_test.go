package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CORPUSMOOD_TEST_KEY", "set-value")

	assert.Equal(t, "set-value", GetEnv("CORPUSMOOD_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CORPUSMOOD_TEST_KEY_MISSING", "fallback"))
}

func TestGetEnvEmptyButSet(t *testing.T) {
	t.Setenv("CORPUSMOOD_TEST_EMPTY", "")

	assert.Equal(t, "", GetEnv("CORPUSMOOD_TEST_EMPTY", "fallback"))
}
