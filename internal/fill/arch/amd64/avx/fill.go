//go:build amd64 && !purego

package avx

import (
	"unsafe"

	"github.com/cwbudde/algo-memset/internal/align"
	"github.com/cwbudde/algo-memset/internal/fill/arch/amd64/narrow"
	"github.com/cwbudde/algo-memset/internal/pattern"
)

// Width is the AVX vector width in bytes.
const Width = 32

// Fill writes value to every byte of buf.
// The 32-byte aligned body is written with VMOVNTDQ, four vectors per
// iteration; the edges use narrow 4-byte streaming stores. Callers must
// issue a store fence before publishing buf.
func Fill(buf []byte, value byte) {
	prefix, body, suffix := align.Split(buf, Width)

	narrow.Fill(prefix, value)
	if len(body) > 0 {
		pat := pattern.Broadcast256(value)
		streamAVX(unsafe.SliceData(body), len(body)/Width, &pat)
	}
	narrow.Fill(suffix, value)
}

// Assembly function declarations (implemented in fill_amd64.s)

//go:noescape
func streamAVX(dst *byte, n int, pat *pattern.Vec256)
