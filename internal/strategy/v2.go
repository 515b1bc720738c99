package strategy

import (
	"encoding/binary"
	"fmt"

	"github.com/lox/vppoker/internal/ev"
)

// dataSizeV2 is the per-hand data-section record: best_mask(1) scale(1)
// then 32 u16 EV codes (64 bytes), 66 bytes total.
const dataSizeV2 = 1 + 1 + 32*2

// EncodeV2 serializes results into the full EV-vector artifact: the same
// 64-byte header and index section as v1, followed by a contiguous data
// section of entry_count*66 byte records carrying the best mask, the
// per-hand quantization scale, and the entire 32-entry EV vector quantized
// to uint16 using the adaptive scale in scale.go.
func EncodeV2(deckSize int, results []ev.Result) ([]byte, error) {
	sorted := sortedByKey(results)

	h := newHeader(magicV2, versionV2, deckSize, len(sorted))

	buf := make([]byte, 0, headerSize+len(sorted)*(keySize+dataSizeV2))
	buf = append(buf, h.marshal()...)

	for _, r := range sorted {
		if len(r.Key) != keySize {
			return nil, fmt.Errorf("strategy: canonical key %q is not %d bytes", r.Key, keySize)
		}
		buf = append(buf, r.Key...)
	}
	for _, r := range sorted {
		maxEV := 0.0
		for _, v := range r.Entry.Vector {
			if v > maxEV {
				maxEV = v
			}
		}
		scaleCode, divisor := pickScale(maxEV)

		rec := make([]byte, dataSizeV2)
		rec[0] = r.Entry.BestMask
		rec[1] = scaleCode
		for i, v := range r.Entry.Vector {
			off := 2 + i*2
			binary.LittleEndian.PutUint16(rec[off:off+2], encodeScaled(v, divisor))
		}
		buf = append(buf, rec...)
	}
	return buf, nil
}

// DecodedEntryV2 is a single decoded v2 record.
type DecodedEntryV2 struct {
	Key      string
	BestMask uint8
	Vector   [32]float64
}

// DecodeV2 parses a v2 artifact back into its records. jokerDeck reports
// the header's flags bit 0.
func DecodeV2(buf []byte) (handCount int, entries []DecodedEntryV2, jokerDeck bool, err error) {
	h, err := unmarshalHeader(buf)
	if err != nil {
		return 0, nil, false, err
	}
	if string(h.Magic[:]) != magicV2 {
		return 0, nil, false, fmt.Errorf("strategy: bad v2 magic %q", h.Magic[:])
	}
	if h.Version != versionV2 {
		return 0, nil, false, fmt.Errorf("strategy: unexpected v2 version %d", h.Version)
	}

	n := int(h.EntryCount)
	keyLen := int(h.KeyLength)
	indexBytes := n * keyLen
	dataBytes := n * dataSizeV2
	body := buf[headerSize:]
	if len(body) < indexBytes+dataBytes {
		return 0, nil, false, fmt.Errorf("strategy: v2 body is %d bytes, want at least %d", len(body), indexBytes+dataBytes)
	}
	index := body[:indexBytes]
	data := body[indexBytes : indexBytes+dataBytes]

	entries = make([]DecodedEntryV2, n)
	for i := range entries {
		key := index[i*keyLen : (i+1)*keyLen]
		rec := data[i*dataSizeV2 : (i+1)*dataSizeV2]
		scaleCode := rec[1]
		if int(scaleCode) >= len(scaleDivisors) {
			return 0, nil, false, fmt.Errorf("strategy: record %d has invalid scale code %d", i, scaleCode)
		}
		divisor := scaleDivisors[scaleCode]

		e := DecodedEntryV2{
			Key:      string(key),
			BestMask: rec[0],
		}
		for m := 0; m < 32; m++ {
			off := 2 + m*2
			code := binary.LittleEndian.Uint16(rec[off : off+2])
			e.Vector[m] = decodeScaled(code, divisor)
		}
		entries[i] = e
	}
	return n, entries, h.jokerDeck(), nil
}
