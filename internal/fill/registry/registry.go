// Package registry provides the implementation registry for fill tiers.
//
// The registry-based dispatch system allows multiple implementation variants
// (generic, SSE2, AVX, AVX-512) to coexist. The best implementation for the
// current CPU is selected at runtime.
//
// Architecture-specific implementations register themselves via init()
// functions, and the memset package uses the registry to select the best
// implementation based on detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-memset/internal/cpu"
)

// FillFn writes value to every byte of buf.
type FillFn func(buf []byte, value byte)

// Entry represents a registered fill tier.
type Entry struct {
	// Name is a human-readable identifier for this tier (e.g., "avx", "sse2").
	Name string

	// SIMDLevel indicates the instruction set required to run Fill.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible tiers exist.
	// Higher priority tiers are preferred:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - AVX: 20
	//   - AVX-512: 30
	Priority int

	// Width is the vector width in bytes the tier aligns its body to.
	// The generic tier reports 1.
	Width int

	// Fill is the tier's fill function. It must only be called when the
	// CPU supports SIMDLevel.
	Fill FillFn
}

// Registry manages the registration and lookup of fill tiers.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the memset package.
var Global = &Registry{}

// Register adds a tier to the registry.
//
// This function is typically called from init() functions in architecture-specific
// packages. It is safe to call concurrently, but all registrations should
// complete before the first call to Lookup().
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best tier for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU, or nil if no
// compatible tier is registered (which should never happen if the generic
// fallback is registered). The returned entry is a copy owned by the caller.
func (r *Registry) Lookup(features cpu.Features) *Entry {
	r.sortOnce()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			entry := r.entries[i]
			return &entry
		}
	}

	return nil
}

// Find returns the highest-priority entry registered for level, regardless
// of CPU support, or nil.
func (r *Registry) Find(level cpu.SIMDLevel) *Entry {
	r.sortOnce()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].SIMDLevel == level {
			entry := r.entries[i]
			return &entry
		}
	}

	return nil
}

// ListEntries returns a copy of all registered entries, sorted by priority.
// This function is primarily intended for reporting and testing.
func (r *Registry) ListEntries() []Entry {
	r.sortOnce()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *Registry) sortOnce() {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *Registry) sortByPriority() {
	// Simple insertion sort (registry is small, ~4 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}
