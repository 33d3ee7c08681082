//go:build amd64 && !purego

package avx

import (
	"github.com/cwbudde/algo-memset/internal/cpu"
	"github.com/cwbudde/algo-memset/internal/fill/registry"
)

// init registers the AVX fill with the fill registry.
//
// AVX provides 256-bit streaming stores. Available on Intel Sandy Bridge
// (2011+) and AMD Bulldozer (2011+).
//
// Priority: 20 (high - preferred over SSE2 and generic when available)
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "avx",
		SIMDLevel: cpu.SIMDAVX,
		Priority:  20,
		Width:     Width,
		Fill:      Fill,
	})
}
