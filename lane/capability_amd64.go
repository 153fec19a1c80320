//go:build amd64

package lane

import "golang.org/x/sys/cpu"

func init() {
	hasWideWords = true
	hasFastPopcnt = cpu.X86.HasPOPCNT
	initCapabilities()
}
