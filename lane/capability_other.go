//go:build !amd64 && !arm64

package lane

import "math/bits"

func init() {
	// The word backend only pays off with native 64-bit registers.
	hasWideWords = bits.UintSize == 64
	hasFastPopcnt = false
	initCapabilities()
}
