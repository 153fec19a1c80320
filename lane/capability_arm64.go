//go:build arm64

package lane

import "golang.org/x/sys/cpu"

func init() {
	hasWideWords = true
	// Bit counting lowers to NEON CNT when ASIMD is present.
	hasFastPopcnt = cpu.ARM64.HasASIMD
	initCapabilities()
}
