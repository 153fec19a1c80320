//go:build !lanecheck

package lane

// checkEnabled gates the contract-violation assertions. In default builds
// the guarded branches are compiled out entirely, preserving the unchecked
// fast path.
const checkEnabled = false
