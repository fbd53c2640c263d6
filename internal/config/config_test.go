package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfigEnv unsets every variable Load reads so the host CI
// environment does not leak into the tests.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvCommitSHA, EnvVerbose} {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestNewConfig(t *testing.T) {
	c := NewConfig()

	assert.Nil(t, c.CommitID)
	assert.False(t, c.Verbose)
}

func TestLoad_Unset(t *testing.T) {
	isolateConfigEnv(t)

	c := Load()

	assert.Nil(t, c.CommitID)
	assert.False(t, c.Verbose)
}

func TestLoad_CommitSHA(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv(EnvCommitSHA, "abc123")

	c := Load()

	require.NotNil(t, c.CommitID)
	assert.Equal(t, "abc123", *c.CommitID)
}

func TestLoad_EmptyCommitSHA(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv(EnvCommitSHA, "")

	c := Load()

	require.NotNil(t, c.CommitID)
	assert.Equal(t, "", *c.CommitID)
}

func TestLoad_Verbose(t *testing.T) {
	tests := map[string]bool{
		"true":  true,
		"TRUE":  true,
		"1":     true,
		" yes ": true,
		"on":    true,
		"false": false,
		"0":     false,
		"":      false,
		"maybe": false,
	}

	for value, want := range tests {
		t.Run(value, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv(EnvVerbose, value)

			assert.Equal(t, want, Load().Verbose)
		})
	}
}
