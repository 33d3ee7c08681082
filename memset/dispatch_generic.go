//go:build purego || !amd64

package memset

import "github.com/cwbudde/algo-memset/internal/fill/arch/generic"

// Fill writes value to every byte of buf.
// This is the pure Go implementation; no streaming stores are issued.
func Fill(buf []byte, value byte) {
	generic.Fill(buf, value)
	storeFence()
}

// Selected returns the tier Fill uses; always TierBaseline here.
func Selected() Tier {
	return TierBaseline
}

// Available returns the tiers usable in this binary.
func Available() []Tier {
	return []Tier{TierBaseline}
}

// FillWith fills buf using tier t. Only TierBaseline is available here.
func FillWith(t Tier, buf []byte, value byte) bool {
	if t != TierBaseline {
		return false
	}
	Fill(buf, value)
	return true
}
