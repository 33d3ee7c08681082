//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-memset/internal/cpu"
	"github.com/cwbudde/algo-memset/internal/fill/registry"
)

// init registers the SSE2 fill with the fill registry.
//
// SSE2 provides 128-bit streaming stores and is part of the x86-64 baseline,
// so it's available on all amd64 CPUs.
//
// Priority: 10 (medium - preferred over generic, but lower than AVX)
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Width:     Width,
		Fill:      Fill,
	})
}
