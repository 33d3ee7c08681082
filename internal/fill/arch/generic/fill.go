// Package generic provides the portable fill used for unaligned edges and
// as the fallback on every platform.
package generic

// Fill writes value to every byte of buf using ordinary stores.
// It is a no-op for an empty buf.
func Fill(buf []byte, value byte) {
	if value == 0 {
		clear(buf)
		return
	}
	if len(buf) == 0 {
		return
	}

	// Seed one byte and double the filled region with copy, which lowers to
	// the runtime's memmove.
	buf[0] = value
	for n := 1; n < len(buf); n *= 2 {
		copy(buf[n:], buf[:n])
	}
}

// Bytes writes value to every byte of buf one store at a time. It is meant
// for edges shorter than a machine word.
func Bytes(buf []byte, value byte) {
	for i := range buf {
		buf[i] = value
	}
}
