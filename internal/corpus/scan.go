package corpus

import (
	"encoding/binary"
	"math/bits"
)

var newlinePattern = compilePattern('\n')

// compilePattern broadcasts byteToFind into every byte of a 64-bit
// word, the standard SWAR setup for scanning 8 bytes at a time.
// https://richardstartin.github.io/posts/finding-bytes
func compilePattern(byteToFind byte) uint64 {
	pattern := uint64(byteToFind)
	return pattern |
		(pattern << 8) |
		(pattern << 16) |
		(pattern << 24) |
		(pattern << 32) |
		(pattern << 40) |
		(pattern << 48) |
		(pattern << 56)
}

func firstInstance(word, pattern uint64) int {
	input := word ^ pattern
	tmp := (input & 0x7F7F7F7F7F7F7F7F) + 0x7F7F7F7F7F7F7F7F
	tmp = ^(tmp | input | 0x7F7F7F7F7F7F7F7F)
	return bits.LeadingZeros64(tmp) >> 3
}

// findNewline returns the index of the first '\n' in haystack, or -1
// if absent. It scans 8 bytes at a time via firstInstance rather than
// a byte-at-a-time loop.
func findNewline(haystack []byte) int {
	var i int
	hLen := len(haystack)
	for i = 0; i+8 <= hLen; i += 8 {
		if idx := firstInstance(binary.BigEndian.Uint64(haystack[i:i+8]), newlinePattern); idx != 8 {
			return i + idx
		}
	}
	if i == hLen {
		return -1
	}
	var tail [8]byte
	copy(tail[:], haystack[i:])
	if idx := firstInstance(binary.BigEndian.Uint64(tail[:]), newlinePattern); idx != 8 && i+idx < hLen {
		return i + idx
	}
	return -1
}

// splitLines appends to dst the start:end byte ranges of each
// non-empty, '\n'-delimited record in data (the trailing newline, if
// any, is not required).
func splitLines(data []byte, dst [][2]int) [][2]int {
	start := 0
	for start < len(data) {
		rel := findNewline(data[start:])
		var end int
		if rel < 0 {
			end = len(data)
		} else {
			end = start + rel
		}
		if end > start {
			dst = append(dst, [2]int{start, end})
		}
		if rel < 0 {
			break
		}
		start = end + 1
	}
	return dst
}
