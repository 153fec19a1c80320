//go:build lanecheck

package lane

// checkEnabled turns caller-obligation preconditions (operand shapes,
// index bounds, buffer lengths) into panics. Build with -tags lanecheck
// during development; release builds take the unchecked path.
const checkEnabled = true
