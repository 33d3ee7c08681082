package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-memset/internal/align"
)

// BaseAlign is the boundary guarded buffers are positioned against. It is
// the widest vector width any fill tier uses.
const BaseAlign = 64

// DeterministicBytes returns n pseudo-random bytes with a fixed seed for
// reproducibility.
func DeterministicBytes(seed int64, n int) []byte {
	out := make([]byte, n)
	rng := rand.New(rand.NewSource(seed))
	_, _ = rng.Read(out)
	return out
}

// Guarded is a byte buffer placed at a chosen misalignment and surrounded
// by canary regions that a correct fill never touches.
type Guarded struct {
	// Buf is the region under test.
	Buf []byte

	backing []byte
	start   int
	canary  byte
}

// NewGuarded allocates a buffer of n bytes that starts misalign bytes past
// a BaseAlign boundary, with guard canary bytes on each side. The buffer
// itself is prefilled with deterministic noise.
func NewGuarded(n, misalign, guard int, canary byte) *Guarded {
	backing := make([]byte, guard+BaseAlign+misalign+n+guard)
	for i := range backing {
		backing[i] = canary
	}

	start := guard + align.Offset(backing[guard:], BaseAlign) + misalign
	buf := backing[start : start+n : start+n]
	copy(buf, DeterministicBytes(int64(n)<<8|int64(misalign), n))

	return &Guarded{
		Buf:     buf,
		backing: backing,
		start:   start,
		canary:  canary,
	}
}

// Intact reports the index (relative to Buf) of the first damaged canary
// byte, and false if one was overwritten. Indices before Buf are negative.
func (g *Guarded) Intact() (int, bool) {
	end := g.start + len(g.Buf)
	for i, b := range g.backing {
		if i >= g.start && i < end {
			continue
		}
		if b != g.canary {
			return i - g.start, false
		}
	}
	return 0, true
}

// CanaryFor returns a canary byte that differs from value.
func CanaryFor(value byte) byte {
	return ^value
}
