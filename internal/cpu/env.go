package cpu

import (
	"os"
	"strconv"
)

// Environment variables that restrict tier selection.
const (
	// EnvNoSIMD disables every SIMD tier when set to a true value.
	EnvNoSIMD = "MEMSET_NO_SIMD"

	// EnvMaxTier caps the dispatcher at the named level
	// (baseline, sse2, avx or avx512).
	EnvMaxTier = "MEMSET_MAX_TIER"
)

// Config restricts the features reported by the hardware.
type Config struct {
	// NoSIMD forces the generic fill.
	NoSIMD bool

	// MaxLevel caps the selected level when Capped is set.
	MaxLevel SIMDLevel
	Capped   bool
}

// ConfigFromEnv reads Config from the process environment.
func ConfigFromEnv() Config {
	return configFrom(os.Getenv)
}

func configFrom(getenv func(string) string) Config {
	var c Config

	// Any non-empty value counts, unless it parses as false.
	if val := getenv(EnvNoSIMD); val != "" {
		c.NoSIMD = true
		if b, err := strconv.ParseBool(val); err == nil {
			c.NoSIMD = b
		}
	}

	if val := getenv(EnvMaxTier); val != "" {
		if level, ok := ParseLevel(val); ok {
			c.MaxLevel = level
			c.Capped = true
		}
	}

	return c
}

// Apply returns f with every feature above the configured cap cleared.
func (c Config) Apply(f Features) Features {
	if c.NoSIMD {
		f.ForceGeneric = true
	}
	if c.Capped {
		if c.MaxLevel < SIMDAVX512 {
			f.HasAVX512 = false
		}
		if c.MaxLevel < SIMDAVX {
			f.HasAVX = false
		}
		if c.MaxLevel < SIMDSSE2 {
			f.HasSSE2 = false
		}
	}
	return f
}
