// Package cpu provides CPU feature detection for fill kernel selection.
//
// This package detects the x86-64 SIMD instruction set extensions (SSE2, AVX,
// AVX-512) that the fill tiers depend on. Detection is a pure function of the
// hardware: it runs once when the package is initialized and the result is
// reused for the lifetime of the process.
//
// Tests may override detection with SetForcedFeatures. Operators may restrict
// it through the MEMSET_NO_SIMD and MEMSET_MAX_TIER environment variables.
package cpu

import (
	"strings"
	"sync/atomic"
)

// SIMDLevel represents a SIMD instruction set extension level.
// Higher numeric values indicate wider vector registers and are preferred
// by the dispatcher when supported.
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD optimization (pure Go fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64, 128-bit).
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX (256-bit).
	SIMDAVX

	// SIMDAVX512 indicates x86-64 AVX-512 Foundation (512-bit).
	SIMDAVX512
)

// Levels returns every level in descending preference order.
// The slice is freshly allocated; callers may modify it.
func Levels() []SIMDLevel {
	return []SIMDLevel{SIMDAVX512, SIMDAVX, SIMDSSE2, SIMDNone}
}

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX512:
		return "AVX-512"
	default:
		return "Unknown"
	}
}

// ParseLevel parses a level name as accepted by MEMSET_MAX_TIER.
// Matching is case-insensitive; ok is false for unknown names.
func ParseLevel(name string) (level SIMDLevel, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "baseline", "generic", "scalar":
		return SIMDNone, true
	case "sse2":
		return SIMDSSE2, true
	case "avx":
		return SIMDAVX, true
	case "avx512", "avx-512", "avx512f":
		return SIMDAVX512, true
	default:
		return SIMDNone, false
	}
}

// Features describes CPU capabilities relevant to fill kernel selection.
type Features struct {
	HasSSE2   bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX    bool // Advanced Vector Extensions, with OS support for YMM state
	HasAVX512 bool // AVX-512 Foundation, with OS support for ZMM state

	// ForceGeneric disables all SIMD tiers (for testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH (e.g., "amd64", "arm64").
	Architecture string
}

var (
	// hardwareFeatures is the raw probe result, before configuration.
	hardwareFeatures = detectFeaturesImpl()

	// detectedFeatures is hardwareFeatures restricted by the environment.
	detectedFeatures = ConfigFromEnv().Apply(hardwareFeatures)

	// forcedFeatures overrides detection for testing.
	forcedFeatures atomic.Pointer[Features]
)

// DetectFeatures returns the CPU features the dispatcher may use.
//
// The result never changes during the lifetime of the process unless a test
// forces features. This function is safe for concurrent use.
func DetectFeatures() Features {
	if forced := forcedFeatures.Load(); forced != nil {
		return *forced
	}
	return detectedFeatures
}

// Hardware returns the features reported by the processor, ignoring
// environment configuration and forced features.
func Hardware() Features {
	return hardwareFeatures
}

// HasAVX returns true if the CPU supports AVX instructions.
func HasAVX() bool {
	return DetectFeatures().HasAVX
}

// HasSSE2 returns true if the CPU supports SSE2 instructions.
func HasSSE2() bool {
	return DetectFeatures().HasSSE2
}

// HasAVX512 returns true if the CPU supports AVX-512 Foundation instructions.
func HasAVX512() bool {
	return DetectFeatures().HasAVX512
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedFeatures.Store(&f)
}

// ResetDetection clears any forced features.
// This is intended for testing purposes.
func ResetDetection() {
	forcedFeatures.Store(nil)
}

// Supports returns true if the given CPU features support the specified SIMD level.
// This function is used by the fill registry to determine implementation compatibility.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX512:
		return features.HasAVX512
	default:
		return false
	}
}

// Best returns the widest level supported by features.
func Best(features Features) SIMDLevel {
	for level := SIMDAVX512; level > SIMDNone; level-- {
		if Supports(features, level) {
			return level
		}
	}
	return SIMDNone
}
