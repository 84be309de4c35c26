package testutil

import (
	"os"
	"testing"
)

// WithEnv sets key to val for the duration of the test scope; an empty val
// unsets it. Returns a cleanup func restoring the previous value.
func WithEnv(t *testing.T, key, val string) func() {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}

// ClearEnv unsets every key for the test scope.
func ClearEnv(t *testing.T, keys ...string) func() {
	t.Helper()
	restore := make([]func(), 0, len(keys))
	for _, k := range keys {
		restore = append(restore, WithEnv(t, k, ""))
	}
	return func() {
		for i := len(restore) - 1; i >= 0; i-- {
			restore[i]()
		}
	}
}
