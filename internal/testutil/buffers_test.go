package testutil

import (
	"bytes"
	"testing"

	"github.com/cwbudde/algo-memset/internal/align"
)

func TestDeterministicBytesReproducible(t *testing.T) {
	a := DeterministicBytes(42, 100)
	b := DeterministicBytes(42, 100)
	if !bytes.Equal(a, b) {
		t.Fatal("non-deterministic output for the same seed")
	}
	if c := DeterministicBytes(43, 100); bytes.Equal(a, c) {
		t.Fatal("different seeds produced identical output")
	}
}

func TestNewGuardedPlacement(t *testing.T) {
	for misalign := 0; misalign < BaseAlign; misalign++ {
		g := NewGuarded(10, misalign, 16, 0xcc)
		if len(g.Buf) != 10 || cap(g.Buf) != 10 {
			t.Fatalf("misalign %d: len %d cap %d", misalign, len(g.Buf), cap(g.Buf))
		}
		want := (BaseAlign - misalign) % BaseAlign
		if got := align.Offset(g.Buf, BaseAlign); got != want {
			t.Fatalf("misalign %d: offset to boundary %d, want %d", misalign, got, want)
		}
		if _, ok := g.Intact(); !ok {
			t.Fatalf("misalign %d: fresh buffer reports damage", misalign)
		}
	}
}

func TestGuardedDetectsOverrun(t *testing.T) {
	g := NewGuarded(8, 3, 16, 0xcc)
	full := g.backing[g.start : g.start+9]
	full[8] = 0

	idx, ok := g.Intact()
	if ok || idx != 8 {
		t.Fatalf("Intact() = (%d, %v), want (8, false)", idx, ok)
	}
}

func TestGuardedDetectsUnderrun(t *testing.T) {
	g := NewGuarded(8, 3, 16, 0xcc)
	g.backing[g.start-1] = 0

	idx, ok := g.Intact()
	if ok || idx != -1 {
		t.Fatalf("Intact() = (%d, %v), want (-1, false)", idx, ok)
	}
}

func TestCheckersAcceptLoop(t *testing.T) {
	loop := func(buf []byte, value byte) {
		for i := range buf {
			buf[i] = value
		}
	}
	CheckLengths(t, loop)
	CheckMisaligned(t, loop, 8, 40)
	CheckIdempotent(t, loop, 333)
}

func TestCanaryFor(t *testing.T) {
	for v := 0; v < 256; v++ {
		if CanaryFor(byte(v)) == byte(v) {
			t.Fatalf("CanaryFor(%#x) equals value", v)
		}
	}
}
