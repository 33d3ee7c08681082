// Package pattern replicates a fill byte across wider integers and vector
// register images.
//
// Every builder widens the byte and then ORs the value with itself shifted
// left by the current width, doubling the width each step. The vector
// images are little-endian uint64 lanes that the SIMD tiers load straight
// into XMM, YMM or ZMM registers.
package pattern

// Vec128 is the 16-byte image of an XMM register.
type Vec128 [2]uint64

// Vec256 is the 32-byte image of a YMM register.
type Vec256 [4]uint64

// Vec512 is the 64-byte image of a ZMM register.
type Vec512 [8]uint64

// Repeat16 returns b repeated in both bytes of a uint16.
func Repeat16(b byte) uint16 {
	v := uint16(b)
	return v | v<<8
}

// Repeat32 returns b repeated in every byte of a uint32.
func Repeat32(b byte) uint32 {
	v := uint32(Repeat16(b))
	return v | v<<16
}

// Repeat64 returns b repeated in every byte of a uint64.
func Repeat64(b byte) uint64 {
	v := uint64(Repeat32(b))
	return v | v<<32
}

// Broadcast128 returns b repeated across 128 bits.
func Broadcast128(b byte) Vec128 {
	v := Repeat64(b)
	return Vec128{v, v}
}

// Broadcast256 returns b repeated across 256 bits.
func Broadcast256(b byte) Vec256 {
	lo := Broadcast128(b)
	return Vec256{lo[0], lo[1], lo[0], lo[1]}
}

// Broadcast512 returns b repeated across 512 bits.
func Broadcast512(b byte) Vec512 {
	lo := Broadcast256(b)
	return Vec512{lo[0], lo[1], lo[2], lo[3], lo[0], lo[1], lo[2], lo[3]}
}
