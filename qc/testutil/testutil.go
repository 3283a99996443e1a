// Package testutil provides testing utilities and constants shared across
// the qc package tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kegliz/qre/qc/builder"
	"github.com/kegliz/qre/qc/circuit"
	"github.com/stretchr/testify/require"
)

// Test constants for consistent configuration across tests
const (
	DefaultTestTimeout = 10 * time.Second
	LongTestTimeout    = 30 * time.Second

	// Circuit parameters
	DefaultQubits = 3
	SmallQubits   = 2
	LargeQubits   = 7

	// File testing
	TestFilePrefix = "qc_test_"
)

// WithTimeout creates a context with timeout for test operations
func WithTimeout(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// TempFile creates a temporary test file and returns cleanup function
func TempFile(t *testing.T, suffix string) (string, func()) {
	t.Helper()

	tempDir := t.TempDir()
	filename := TestFilePrefix + t.Name() + suffix
	path := filepath.Join(tempDir, filename)

	cleanup := func() {
		if _, err := os.Stat(path); err == nil {
			os.Remove(path)
		}
	}

	return path, cleanup
}

// NewBellStateCircuit creates a standard Bell state circuit for testing.
func NewBellStateCircuit(t *testing.T) circuit.Circuit {
	t.Helper()

	b := builder.New(builder.Q(2), builder.C(2))
	b.H(0).CNOT(0, 1).Measure(0, 0).Measure(1, 1)

	c, err := b.BuildCircuit()
	require.NoError(t, err, "failed to build Bell state circuit")
	return c
}

// NewGroverCircuit creates a standard 2-qubit Grover circuit for testing.
func NewGroverCircuit(t *testing.T) circuit.Circuit {
	t.Helper()

	b := builder.New(builder.Q(2), builder.C(2))

	b.H(0).H(1)
	b.CZ(0, 1)
	b.H(0).H(1)
	b.X(0).X(1)
	b.CZ(0, 1)
	b.X(0).X(1)
	b.H(0).H(1)
	b.Measure(0, 0).Measure(1, 1)

	c, err := b.BuildCircuit()
	require.NoError(t, err, "failed to build Grover circuit")
	return c
}

// RequireWithinTimeout runs fn and fails the test if it doesn't return within timeout.
func RequireWithinTimeout(t *testing.T, timeout time.Duration, fn func() error, msgAndArgs ...interface{}) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		require.NoError(t, err, msgAndArgs...)
	case <-ctx.Done():
		t.Fatalf("operation timed out after %v: %v", timeout, msgAndArgs)
	}
}

// SkipIfShort skips the test if running with -short flag
func SkipIfShort(t *testing.T, reason string) {
	t.Helper()
	if testing.Short() {
		t.Skipf("skipping test in short mode: %s", reason)
	}
}

// SkipIfCI skips the test if running in CI environment
func SkipIfCI(t *testing.T, reason string) {
	t.Helper()
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		t.Skipf("skipping test in CI: %s", reason)
	}
}
