//go:build purego || !amd64

package memset

// storeFence is a no-op: this build never issues streaming stores, and the
// Go memory model already orders plain stores.
func storeFence() {}
