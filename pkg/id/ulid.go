// Package id generates request identifiers and random reference suffixes.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Crockford's Base32 alphabet (no I, L, O, U).
const crockfordBase32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// NewULID returns a 26-character ULID: 48-bit millisecond timestamp
// followed by 80 random bits. ULIDs sort lexicographically by creation time.
func NewULID() string {
	return newULID(time.Now())
}

func newULID(now time.Time) string {
	var raw [16]byte
	ms := uint64(now.UnixMilli())
	raw[0] = byte(ms >> 40)
	raw[1] = byte(ms >> 32)
	binary.BigEndian.PutUint32(raw[2:6], uint32(ms))
	fillRandom(raw[6:])

	// 128 bits padded to 130 bits on the left
	var out [26]byte
	for i := range out {
		bit := i*5 - 2
		out[i] = crockfordBase32[bitsAt(raw[:], bit)]
	}
	return string(out[:])
}

// NewSuffix returns n random Crockford base32 characters.
func NewSuffix(n int) string {
	if n <= 0 {
		return ""
	}
	raw := make([]byte, (n*5+7)/8)
	fillRandom(raw)
	out := make([]byte, n)
	for i := range out {
		out[i] = crockfordBase32[bitsAt(raw, i*5)]
	}
	return string(out)
}

// bitsAt reads 5 bits starting at bit offset off; bits before 0 read as zero.
func bitsAt(b []byte, off int) byte {
	var v byte
	for j := range 5 {
		p := off + j
		v <<= 1
		if p < 0 || p/8 >= len(b) {
			continue
		}
		v |= (b[p/8] >> (7 - p%8)) & 1
	}
	return v
}

func fillRandom(b []byte) {
	if _, err := rand.Read(b); err != nil {
		// degraded entropy; crypto/rand does not fail on supported platforms
		n := uint64(time.Now().UnixNano())
		for i := range b {
			b[i] = byte(n >> (8 * (i % 8)))
		}
	}
}
