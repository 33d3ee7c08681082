//go:build amd64 && !purego && avx512

package avx512

import (
	"github.com/cwbudde/algo-memset/internal/cpu"
	"github.com/cwbudde/algo-memset/internal/fill/registry"
)

// init registers the AVX-512 fill with the fill registry.
//
// The tier is only compiled with the avx512 build tag and is still gated by
// runtime detection of AVX-512 Foundation.
//
// Priority: 30 (highest - preferred whenever the CPU supports it)
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "avx512",
		SIMDLevel: cpu.SIMDAVX512,
		Priority:  30,
		Width:     Width,
		Fill:      Fill,
	})
}
