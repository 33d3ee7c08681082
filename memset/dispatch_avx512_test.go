//go:build amd64 && !purego && avx512

package memset

import (
	"testing"

	"github.com/cwbudde/algo-memset/internal/cpu"
)

func TestDispatch_AVX512PreferredOverAVX(t *testing.T) {
	features := cpu.Features{
		HasSSE2:      true,
		HasAVX:       true,
		HasAVX512:    true,
		Architecture: "amd64",
	}
	if !supportedByHardware(features) {
		t.Skip("AVX-512 not supported by this CPU")
	}

	requireForcedDispatch(t, features, TierAVX512)
}
