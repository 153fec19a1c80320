package lane

import (
	"os"
	"strings"
)

// Kind identifies a lane backend implementation.
type Kind uint8

const (
	// Scalar is the portable byte-loop implementation.
	Scalar Kind = iota
	// Word is the SIMD-within-a-register implementation over 64-bit words.
	Word
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Word:
		return "word"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind value.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return Scalar, true
	case "word":
		return Word, true
	default:
		return Scalar, false
	}
}

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// active is the selected backend.
	active Backend = scalarBackend{}

	// activeKind mirrors active for introspection.
	activeKind Kind

	// hasOverride is true if LANEDIST_BACKEND was set.
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasWideWords  bool // native 64-bit words, required for the word backend
	hasFastPopcnt bool // hardware population count
)

// initCapabilities is called from platform-specific init functions after
// CPU features are detected.
func initCapabilities() {
	// Check for environment override
	if override := os.Getenv("LANEDIST_BACKEND"); override != "" {
		if kind, ok := ParseKind(override); ok {
			hasOverride = true
			// Validate the override is available
			if isKindAvailable(kind) {
				install(kind)
				return
			}
			// Invalid override - fall through to auto-detection
		}
	}

	install(selectBestKind())
}

// isKindAvailable checks if a backend is supported on this CPU.
func isKindAvailable(kind Kind) bool {
	switch kind {
	case Scalar:
		return true
	case Word:
		return hasWideWords
	default:
		return false
	}
}

// selectBestKind chooses the optimal backend for the current platform.
func selectBestKind() Kind {
	if hasWideWords {
		return Word
	}
	return Scalar
}

func install(kind Kind) {
	activeKind = kind
	switch kind {
	case Word:
		active = wordBackend{}
	default:
		active = scalarBackend{}
	}
}

// Active returns the currently active backend.
func Active() Backend {
	return active
}

// ActiveKind returns the Kind of the currently active backend.
func ActiveKind() Kind {
	return activeKind
}

// IsOverridden returns true if LANEDIST_BACKEND was set.
func IsOverridden() bool {
	return hasOverride
}

// HasFastPopcount returns true if the CPU counts bits in hardware. The
// word backend is usable either way; kernels are just slower without it.
func HasFastPopcount() bool {
	return hasFastPopcnt
}

// Select installs the backend of the given Kind, returning the previously
// active one. Intended for tests and embedders that pin a backend; not
// safe to call concurrently with vector operations.
func Select(kind Kind) Backend {
	prev := active
	install(kind)
	return prev
}
