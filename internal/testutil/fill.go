package testutil

import "testing"

// FillFn writes value to every byte of buf.
type FillFn func(buf []byte, value byte)

// RequireFilled fails t if any byte of buf differs from value.
func RequireFilled(t testing.TB, buf []byte, value byte) {
	t.Helper()
	for i, b := range buf {
		if b != value {
			t.Fatalf("len %d: byte %d = %#x, want %#x", len(buf), i, b, value)
		}
	}
}

// CheckLengths fills every prefix of a 128-byte array with its own length
// as the value, then checks the prefix.
func CheckLengths(t *testing.T, fill FillFn) {
	t.Helper()

	fill(nil, 0)
	fill([]byte{}, 0xff)

	var arr [128]byte
	for i := range arr {
		fill(arr[:i], byte(i))
		RequireFilled(t, arr[:i], byte(i))
	}
}

// CheckMisaligned fills buffers of every length up to maxLen at every
// misalignment below width and fails t if the fill is incomplete or writes
// outside the buffer.
func CheckMisaligned(t *testing.T, fill FillFn, width, maxLen int) {
	t.Helper()

	const guard = 80

	for misalign := 0; misalign < width; misalign++ {
		for n := 0; n <= maxLen; n++ {
			value := byte(n*31 + misalign)
			g := NewGuarded(n, misalign, guard, CanaryFor(value))

			fill(g.Buf, value)

			RequireFilled(t, g.Buf, value)
			if idx, ok := g.Intact(); !ok {
				t.Fatalf("misalign %d len %d: wrote outside buffer at offset %d", misalign, n, idx)
			}
		}
	}
}

// CheckIdempotent fills buf twice and checks both results match.
func CheckIdempotent(t *testing.T, fill FillFn, n int) {
	t.Helper()

	once := DeterministicBytes(7, n)
	twice := DeterministicBytes(7, n)

	fill(once, 0x5a)
	fill(twice, 0x5a)
	fill(twice, 0x5a)

	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("byte %d differs after refill: %#x vs %#x", i, once[i], twice[i])
		}
	}
	RequireFilled(t, twice, 0x5a)
}
