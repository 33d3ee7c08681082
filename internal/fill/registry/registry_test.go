package registry

import (
	"testing"

	"github.com/cwbudde/algo-memset/internal/cpu"
)

func newTestRegistry() *Registry {
	reg := &Registry{}

	// Register in random order to test sorting.
	reg.Register(Entry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10, Width: 16})
	reg.Register(Entry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, Width: 1})
	reg.Register(Entry{Name: "avx512", SIMDLevel: cpu.SIMDAVX512, Priority: 30, Width: 64})
	reg.Register(Entry{Name: "avx", SIMDLevel: cpu.SIMDAVX, Priority: 20, Width: 32})

	return reg
}

func TestRegistry_Register(t *testing.T) {
	reg := newTestRegistry()

	entries := reg.ListEntries()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	want := []string{"avx512", "avx", "sse2", "generic"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestRegistry_Lookup_Priority(t *testing.T) {
	reg := newTestRegistry()

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{
			name:     "AVX-512 available - select AVX-512",
			features: cpu.Features{HasSSE2: true, HasAVX: true, HasAVX512: true},
			want:     "avx512",
		},
		{
			name:     "AVX available - select AVX",
			features: cpu.Features{HasSSE2: true, HasAVX: true},
			want:     "avx",
		},
		{
			name:     "SSE2 only - select SSE2",
			features: cpu.Features{HasSSE2: true},
			want:     "sse2",
		},
		{
			name:     "No SIMD - select generic",
			features: cpu.Features{},
			want:     "generic",
		},
		{
			name:     "ForceGeneric - select generic",
			features: cpu.Features{HasSSE2: true, HasAVX: true, HasAVX512: true, ForceGeneric: true},
			want:     "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, entry.Name)
			}
		})
	}
}

func TestRegistry_Lookup_MatchesBest(t *testing.T) {
	reg := newTestRegistry()

	for _, f := range []cpu.Features{
		{},
		{HasSSE2: true},
		{HasSSE2: true, HasAVX: true},
		{HasSSE2: true, HasAVX: true, HasAVX512: true},
	} {
		entry := reg.Lookup(f)
		if entry.SIMDLevel != cpu.Best(f) {
			t.Errorf("Lookup(%+v) level %v, Best %v", f, entry.SIMDLevel, cpu.Best(f))
		}
	}
}

func TestRegistry_Lookup_Empty(t *testing.T) {
	reg := &Registry{}
	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Fatalf("expected nil, got %q", entry.Name)
	}
}

func TestRegistry_Lookup_ReturnsCopy(t *testing.T) {
	reg := newTestRegistry()

	entry := reg.Lookup(cpu.Features{})
	entry.Name = "mutated"

	if again := reg.Lookup(cpu.Features{}); again.Name != "generic" {
		t.Fatalf("registry entry mutated through Lookup result: %q", again.Name)
	}
}

func TestRegistry_Find(t *testing.T) {
	reg := newTestRegistry()

	if entry := reg.Find(cpu.SIMDAVX); entry == nil || entry.Width != 32 {
		t.Fatalf("Find(AVX) = %+v", entry)
	}

	reg.Reset()
	if entry := reg.Find(cpu.SIMDAVX); entry != nil {
		t.Fatalf("Find after Reset = %+v", entry)
	}
	if n := len(reg.ListEntries()); n != 0 {
		t.Fatalf("ListEntries after Reset has %d entries", n)
	}
}
