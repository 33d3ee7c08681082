//go:build amd64 && !purego

package memset

// storeFence makes every preceding store, streaming or not, globally
// visible before any later store. Implemented in fence_amd64.s.
func storeFence()
