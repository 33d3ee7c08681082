package memset

import "github.com/cwbudde/algo-memset/internal/cpu"

// Tier identifies a fill implementation. Higher tiers use wider vectors
// and are preferred when the CPU supports them.
type Tier int

const (
	// TierBaseline uses ordinary stores and runs everywhere.
	TierBaseline Tier = Tier(cpu.SIMDNone)

	// TierSSE2 streams 16-byte vectors.
	TierSSE2 Tier = Tier(cpu.SIMDSSE2)

	// TierAVX streams 32-byte vectors.
	TierAVX Tier = Tier(cpu.SIMDAVX)

	// TierAVX512 streams 64-byte vectors.
	TierAVX512 Tier = Tier(cpu.SIMDAVX512)
)

// String returns the tier name as accepted by ParseTier.
func (t Tier) String() string {
	switch t {
	case TierBaseline:
		return "baseline"
	case TierSSE2:
		return "sse2"
	case TierAVX:
		return "avx"
	case TierAVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// Width returns the vector width in bytes, or 1 for the baseline tier.
func (t Tier) Width() int {
	switch t {
	case TierSSE2:
		return 16
	case TierAVX:
		return 32
	case TierAVX512:
		return 64
	default:
		return 1
	}
}

// ParseTier parses a tier name such as "avx" or "baseline".
func ParseTier(name string) (Tier, bool) {
	level, ok := cpu.ParseLevel(name)
	return Tier(level), ok
}
