package memset_test

import (
	"fmt"

	"github.com/cwbudde/algo-memset/memset"
)

func ExampleFill() {
	buf := make([]byte, 8)
	memset.Fill(buf, 0xab)

	fmt.Printf("% x\n", buf)
	// Output: ab ab ab ab ab ab ab ab
}

func ExampleParseTier() {
	tier, ok := memset.ParseTier("avx")
	fmt.Println(tier, tier.Width(), ok)
	// Output: avx 32 true
}
