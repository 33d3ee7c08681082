//go:build amd64 && !purego

package memset

import (
	"sync/atomic"

	"github.com/cwbudde/algo-memset/internal/cpu"
	"github.com/cwbudde/algo-memset/internal/fill/registry"
)

// unresolved is the sentinel held by cache until the first call picks a
// tier. Its Fill resolves the cache and then fills.
var unresolved = &registry.Entry{Name: "unresolved", Fill: resolve}

// cache holds the tier selected for this process.
//
// Goroutines racing through the first call may all resolve and store. That
// is safe without a lock: detection is a pure function of the hardware, so
// every racer stores an equivalent entry and none is ever downgraded.
var cache atomic.Pointer[registry.Entry]

func init() {
	cache.Store(unresolved)
}

// Fill writes value to every byte of buf and issues a store fence.
// It is a no-op apart from the fence when buf is empty.
func Fill(buf []byte, value byte) {
	cache.Load().Fill(buf, value)
	storeFence()
}

func resolve(buf []byte, value byte) {
	entry := lookup()
	cache.Store(entry)
	entry.Fill(buf, value)
}

func lookup() *registry.Entry {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("memset: no fill kernel registered (missing generic fallback?)")
	}

	if entry.Fill == nil {
		panic("memset: selected kernel missing Fill")
	}

	return entry
}

// Selected returns the tier Fill uses in this process, resolving it if no
// fill has happened yet.
func Selected() Tier {
	entry := cache.Load()
	if entry == unresolved {
		entry = lookup()
		cache.Store(entry)
	}
	return Tier(entry.SIMDLevel)
}

// Available returns the tiers compiled into this binary that the CPU
// supports, best first.
func Available() []Tier {
	features := cpu.DetectFeatures()

	var tiers []Tier
	for _, entry := range registry.Global.ListEntries() {
		if cpu.Supports(features, entry.SIMDLevel) {
			tiers = append(tiers, Tier(entry.SIMDLevel))
		}
	}
	return tiers
}

// FillWith fills buf using tier t instead of the selected one, then issues
// a store fence. It returns false without touching buf if t is not
// available.
func FillWith(t Tier, buf []byte, value byte) bool {
	entry := registry.Global.Find(cpu.SIMDLevel(t))
	if entry == nil || !cpu.Supports(cpu.DetectFeatures(), entry.SIMDLevel) {
		return false
	}

	entry.Fill(buf, value)
	storeFence()
	return true
}
