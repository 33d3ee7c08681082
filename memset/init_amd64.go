//go:build amd64 && !purego

package memset

// This file imports amd64-specific tier packages to trigger their init()
// functions, which register implementations with the global registry.

import (
	// Generic implementation (pure Go fallback)
	_ "github.com/cwbudde/algo-memset/internal/fill/arch/generic"

	// AMD64 implementations
	_ "github.com/cwbudde/algo-memset/internal/fill/arch/amd64/avx"
	_ "github.com/cwbudde/algo-memset/internal/fill/arch/amd64/sse2"
)
