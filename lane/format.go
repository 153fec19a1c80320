package lane

import (
	"fmt"
	"strings"
)

// formatLanes renders the logical lanes of v, shared by the backends'
// String methods. Debug only; it round-trips every lane through Extract.
func formatLanes(v Vector) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%3d", v.Extract(i))
	}
	sb.WriteByte(']')
	return sb.String()
}
