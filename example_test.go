package lanedist_test

import (
	"fmt"

	"github.com/hupe1980/lanedist"
	"github.com/hupe1980/lanedist/lane"
)

func Example() {
	a := lanedist.AllocBytes(7)
	b := lanedist.AllocBytes(7)
	lanedist.Fill(a, []byte("karolin"))
	lanedist.Fill(b, []byte("kathrin"))

	fmt.Println(lane.CountMismatches(a, b, 7))
	// Output: 3
}
