package lane

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain runs before all tests and prints backend diagnostic
// information, so CI logs show which implementation was exercised.
func TestMain(m *testing.M) {
	fmt.Printf("=== lane backend diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("LANEDIST_BACKEND=%q\n", os.Getenv("LANEDIST_BACKEND"))
	fmt.Printf("Active: %s\n", ActiveKind())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("Fast popcount: %v\n", HasFastPopcount())
	fmt.Printf("================================\n\n")

	os.Exit(m.Run())
}

// backends returns both realizations so every test can assert they agree.
func backends() []Backend {
	return []Backend{wordBackend{}, scalarBackend{}}
}
