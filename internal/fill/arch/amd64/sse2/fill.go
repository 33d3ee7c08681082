//go:build amd64 && !purego

package sse2

import (
	"unsafe"

	"github.com/cwbudde/algo-memset/internal/align"
	"github.com/cwbudde/algo-memset/internal/fill/arch/generic"
	"github.com/cwbudde/algo-memset/internal/pattern"
)

// Width is the SSE2 vector width in bytes.
const Width = 16

// Fill writes value to every byte of buf.
// The 16-byte aligned body is written with MOVNTDQ, four vectors per
// iteration; the unaligned edges go through the generic fill. Callers must
// issue a store fence before publishing buf.
func Fill(buf []byte, value byte) {
	prefix, body, suffix := align.Split(buf, Width)

	generic.Fill(prefix, value)
	if len(body) > 0 {
		pat := pattern.Broadcast128(value)
		streamSSE2(unsafe.SliceData(body), len(body)/Width, &pat)
	}
	generic.Fill(suffix, value)
}

// Assembly function declarations (implemented in fill_amd64.s)

//go:noescape
func streamSSE2(dst *byte, n int, pat *pattern.Vec128)
