package generic

import (
	"github.com/cwbudde/algo-memset/internal/cpu"
	"github.com/cwbudde/algo-memset/internal/fill/registry"
)

// init registers the generic (pure Go) fill with the fill registry.
//
// The generic fill serves as the baseline when no SIMD tier is available or
// when ForceGeneric is enabled.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Width:     1,
		Fill:      Fill,
	})
}
