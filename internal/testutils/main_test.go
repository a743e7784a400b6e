package testutils

import (
	"os"
	"testing"
)

// TestMain purges any container a test in this package started
func TestMain(m *testing.M) {
	code := m.Run()
	CleanupSharedContainer()
	os.Exit(code)
}
