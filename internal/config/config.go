// Package config reads the CI environment the converter runs in.
package config

import (
	"os"
	"strings"
)

// EnvCommitSHA carries the commit the review is attached to; EnvVerbose
// turns on the summary line on stderr.
const (
	EnvCommitSHA = "CI_COMMIT_SHA"
	EnvVerbose   = "VALE_REVIEW_VERBOSE"
)

// Config is the converter's view of the environment. CommitID is nil when
// CI_COMMIT_SHA is unset; a set but empty variable is kept as "".
type Config struct {
	CommitID *string
	Verbose  bool
}

func NewConfig() *Config {
	return &Config{
		CommitID: nil,
		Verbose:  false,
	}
}

// Load reads the environment once and returns the resulting Config.
func Load() *Config {
	cfg := NewConfig()

	if sha, ok := os.LookupEnv(EnvCommitSHA); ok {
		cfg.CommitID = &sha
	}

	if v, ok := os.LookupEnv(EnvVerbose); ok {
		cfg.Verbose = parseBool(v)
	}

	return cfg
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
