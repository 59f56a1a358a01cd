// Package testutil provides shared test helpers for the transform and
// field codec packages.
package testutil

import (
	"errors"
	"testing"

	"github.com/banshee-data/lasfield/internal/monitoring"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertErrorIs fails the test unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error = %v, want %v", err, target)
	}
}

// Field returns a width-byte buffer holding s followed by zero padding.
// Bytes of s beyond width are dropped.
func Field(s string, width int) []byte {
	buf := make([]byte, width)
	copy(buf, s)
	return buf
}

// MuteLogs silences the diagnostic logger for the rest of the test.
func MuteLogs(t testing.TB) {
	t.Helper()
	previous := monitoring.Logf
	monitoring.SetLogger(nil)
	t.Cleanup(func() { monitoring.Logf = previous })
}
