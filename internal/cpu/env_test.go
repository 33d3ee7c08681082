package cpu

import "testing"

func envOf(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestConfigFrom(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{"empty", nil, Config{}},
		{"no simd true", map[string]string{EnvNoSIMD: "1"}, Config{NoSIMD: true}},
		{"no simd false", map[string]string{EnvNoSIMD: "false"}, Config{}},
		{"no simd any value", map[string]string{EnvNoSIMD: "yes please"}, Config{NoSIMD: true}},
		{"max tier", map[string]string{EnvMaxTier: "sse2"}, Config{MaxLevel: SIMDSSE2, Capped: true}},
		{"max tier unknown", map[string]string{EnvMaxTier: "neon"}, Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := configFrom(envOf(tt.env)); got != tt.want {
				t.Errorf("configFrom() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConfigApply(t *testing.T) {
	full := Features{HasSSE2: true, HasAVX: true, HasAVX512: true, Architecture: "amd64"}

	tests := []struct {
		name string
		cfg  Config
		want SIMDLevel
	}{
		{"unrestricted", Config{}, SIMDAVX512},
		{"no simd", Config{NoSIMD: true}, SIMDNone},
		{"cap avx", Config{MaxLevel: SIMDAVX, Capped: true}, SIMDAVX},
		{"cap sse2", Config{MaxLevel: SIMDSSE2, Capped: true}, SIMDSSE2},
		{"cap baseline", Config{MaxLevel: SIMDNone, Capped: true}, SIMDNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.Apply(full)
			if lvl := Best(got); lvl != tt.want {
				t.Errorf("Best(Apply()) = %v, want %v", lvl, tt.want)
			}
			if got.Architecture != full.Architecture {
				t.Errorf("Architecture changed to %q", got.Architecture)
			}
		})
	}
}

func TestConfigApplyNeverAddsFeatures(t *testing.T) {
	sse2Only := Features{HasSSE2: true}
	got := Config{MaxLevel: SIMDAVX512, Capped: true}.Apply(sse2Only)
	if got != sse2Only {
		t.Fatalf("Apply() = %+v, want %+v", got, sse2Only)
	}
}
