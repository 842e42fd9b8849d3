package testutils

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"
)

// RunPackage starts the shared environment for a test package, runs its tests
// and tears the environment down. With -short the package is skipped.
func RunPackage(m *testing.M, env **TestEnvironment) {
	flag.Parse()
	if testing.Short() {
		log.Println("Skipping integration tests in short mode")
		os.Exit(0)
	}

	e, err := NewTestEnvironment(context.Background())
	if err != nil {
		log.Fatalf("Failed to set up test environment: %v", err)
	}
	*env = e

	code := m.Run()
	e.Cleanup()
	os.Exit(code)
}
