// Package align partitions byte slices at vector-width boundaries.
package align

import "unsafe"

// Offset returns the number of bytes from the start of buf to the next
// address that is a multiple of width. It is 0 when buf is already aligned
// or empty. width must be a power of two.
func Offset(buf []byte, width int) int {
	checkWidth(width)
	if len(buf) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	return int(-addr & uintptr(width-1))
}

// Split partitions buf into an unaligned prefix, a body whose start address
// and length are multiples of width, and an unaligned suffix.
//
// prefix, body and suffix are consecutive subslices of buf that cover it
// exactly; len(prefix) < width and len(suffix) < width. A buffer that ends
// before the first boundary is returned entirely as prefix. Split only
// inspects the slice header; it never touches the bytes.
//
// Split panics if width is not a power of two.
func Split(buf []byte, width int) (prefix, body, suffix []byte) {
	head := min(Offset(buf, width), len(buf))
	n := (len(buf) - head) &^ (width - 1)

	return buf[:head:head], buf[head : head+n : head+n], buf[head+n:]
}

func checkWidth(width int) {
	if width <= 0 || width&(width-1) != 0 {
		panic("align: width must be a power of two")
	}
}
