//go:build amd64 && !purego && avx512

// Package avx512 implements the 512-bit streaming fill tier. Build with
// -tags avx512 to compile it in.
package avx512

import (
	"unsafe"

	"github.com/cwbudde/algo-memset/internal/align"
	"github.com/cwbudde/algo-memset/internal/fill/arch/amd64/narrow"
	"github.com/cwbudde/algo-memset/internal/pattern"
)

// Width is the AVX-512 vector width in bytes.
const Width = 64

// Fill writes value to every byte of buf.
// The 64-byte aligned body is written with VMOVNTDQ on ZMM registers, four
// vectors per iteration; the edges use narrow 4-byte streaming stores.
// Callers must issue a store fence before publishing buf.
func Fill(buf []byte, value byte) {
	prefix, body, suffix := align.Split(buf, Width)

	narrow.Fill(prefix, value)
	if len(body) > 0 {
		pat := pattern.Broadcast512(value)
		streamAVX512(unsafe.SliceData(body), len(body)/Width, &pat)
	}
	narrow.Fill(suffix, value)
}

// Assembly function declarations (implemented in fill_amd64.s)

//go:noescape
func streamAVX512(dst *byte, n int, pat *pattern.Vec512)
