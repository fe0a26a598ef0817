// Package simd provides a portable byte-scanning helper used to decide
// cheaply whether a block of input is pure ASCII, letting callers skip
// per-rune case folding on the common-case fast path. It has no
// architecture-specific acceleration and no assembly: a pure SWAR ("SIMD
// within a register") scan using plain uint64 arithmetic (see DESIGN.md).
package simd

import "encoding/binary"

// IsASCII reports whether every byte in data has its high bit clear: 8
// bytes are loaded as a little-endian uint64 and checked against
// 0x8080808080808080 in one shot, rather than branching on every byte.
func IsASCII(data []byte) bool {
	n := len(data)
	if n < 8 {
		for i := 0; i < n; i++ {
			if data[i] >= 0x80 {
				return false
			}
		}
		return true
	}

	const hi8 = uint64(0x8080808080808080)
	idx := 0
	for idx+8 <= n {
		chunk := binary.LittleEndian.Uint64(data[idx:])
		if chunk&hi8 != 0 {
			return false
		}
		idx += 8
	}
	for idx < n {
		if data[idx] >= 0x80 {
			return false
		}
		idx++
	}
	return true
}

// FirstNonASCII returns the index of the first byte with its high bit set,
// or -1 if data is entirely ASCII.
func FirstNonASCII(data []byte) int {
	for i, b := range data {
		if b >= 0x80 {
			return i
		}
	}
	return -1
}
