// Package testutil provides common test utilities and assertions for boundary tests
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CapturePanic runs f and returns the value it panicked with, or nil.
func CapturePanic(f func()) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	f()
	return nil
}

// RequireFault asserts that f aborts with a panic whose value is an error
// matching want under errors.Is.
func RequireFault(t *testing.T, want error, f func(), msgAndArgs ...interface{}) {
	t.Helper()

	recovered := CapturePanic(f)
	require.NotNil(t, recovered, msgAndArgs...)

	err, ok := recovered.(error)
	require.True(t, ok, "panic value %#v is not an error", recovered)
	require.ErrorIs(t, err, want, msgAndArgs...)
}

// AssertNoFault asserts that f completes without panicking.
func AssertNoFault(t *testing.T, f func(), msgAndArgs ...interface{}) {
	t.Helper()
	assert.NotPanics(t, f, msgAndArgs...)
}
