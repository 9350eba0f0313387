package rsfs

import "strings"

// NameHash computes the case-insensitive 32-bit signed hash used to key
// archive entries by their human-readable file name.
//
// The input is ASCII-uppercased, then folded left-to-right with
// h = h*61 + (c - 32), where multiplication wraps around as 32-bit
// two's-complement arithmetic and c is the raw code point of each rune of
// the uppercased string. The result is interpreted as a signed int32.
//
// Two fixed points published alongside the original cache tooling serve as
// conformance anchors for this function; see the tests in hash_test.go.
func NameHash(s string) int32 {
	upper := strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)

	var h int32
	for _, c := range upper {
		h = h*61 + (c - 32)
	}
	return h
}
