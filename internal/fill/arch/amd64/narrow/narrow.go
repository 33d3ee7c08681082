//go:build amd64 && !purego

// Package narrow fills short or misaligned regions with 4-byte
// non-temporal stores. The AVX and AVX-512 tiers use it for the edges
// around their vector-aligned body.
package narrow

import (
	"unsafe"

	"github.com/cwbudde/algo-memset/internal/fill/arch/generic"
	"github.com/cwbudde/algo-memset/internal/pattern"
)

// Fill writes value to buf. Whole 4-byte words from the start of buf are
// written with MOVNTI, which has no alignment requirement; the 0-3 trailing
// bytes use plain stores. Callers must issue a store fence before
// publishing buf.
func Fill(buf []byte, value byte) {
	words := len(buf) / 4
	if words > 0 {
		streamWords(unsafe.SliceData(buf), words, pattern.Repeat32(value))
	}
	generic.Bytes(buf[words*4:], value)
}

// streamWords stores pat to n consecutive 4-byte words starting at dst.
// Implemented in narrow_amd64.s.
//
//go:noescape
func streamWords(dst *byte, n int, pat uint32)
