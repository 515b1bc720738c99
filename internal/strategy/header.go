// Package strategy serializes a paytable's computed EV table into the two
// binary artifact formats this system ships — a compact "best move only"
// layout (v1) and a full EV-vector layout (v2) for callers that want to
// compare the runner-up holds, not just the winner.
package strategy

import (
	"encoding/binary"
	"fmt"
)

const (
	headerSize = 64
	keySize    = 10 // two ASCII bytes (rank, suit-or-'w') per card, five cards

	magicV1 = "VPST"
	magicV2 = "VPS2"

	versionV1 = uint16(1)
	versionV2 = uint16(2)

	flagJokerDeck = uint16(1 << 0)
)

// header is the common 64-byte preamble of both artifact formats: magic(4) |
// version u16 LE | flags u16 LE (bit 0 = joker deck) | entry_count u32 LE |
// key_length u8 | 51 zero bytes.
type header struct {
	Magic      [4]byte
	Version    uint16
	Flags      uint16
	EntryCount uint32
	KeyLength  uint8
}

func newHeader(magic string, version uint16, deckSize, entryCount int) header {
	var h header
	copy(h.Magic[:], magic)
	h.Version = version
	if deckSize >= 53 {
		h.Flags |= flagJokerDeck
	}
	h.EntryCount = uint32(entryCount)
	h.KeyLength = keySize
	return h
}

func (h header) marshal() []byte {
	buf := make([]byte, headerSize)
	copy(buf[0:4], h.Magic[:])
	binary.LittleEndian.PutUint16(buf[4:6], h.Version)
	binary.LittleEndian.PutUint16(buf[6:8], h.Flags)
	binary.LittleEndian.PutUint32(buf[8:12], h.EntryCount)
	buf[12] = h.KeyLength
	// bytes 13-63 reserved, always zero.
	return buf
}

func unmarshalHeader(buf []byte) (header, error) {
	if len(buf) < headerSize {
		return header{}, fmt.Errorf("strategy: buffer too short for a %d-byte header", headerSize)
	}
	var h header
	copy(h.Magic[:], buf[0:4])
	h.Version = binary.LittleEndian.Uint16(buf[4:6])
	h.Flags = binary.LittleEndian.Uint16(buf[6:8])
	h.EntryCount = binary.LittleEndian.Uint32(buf[8:12])
	h.KeyLength = buf[12]
	return h, nil
}

// jokerDeck reports whether bit 0 of Flags (joker deck) is set.
func (h header) jokerDeck() bool {
	return h.Flags&flagJokerDeck != 0
}
