package strategy

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"github.com/lox/vppoker/internal/ev"
)

// dataSizeV1 is the per-hand data-section record: best_mask(1) best_ev f32(4).
const dataSizeV1 = 1 + 4

// EncodeV1 serializes results into the "best move only" artifact: a 64-byte
// header, a contiguous index section of entry_count*key_length ASCII keys
// sorted lexicographically, and a contiguous data section of entry_count*5
// byte records in the same order — the index/data split lets a reader
// binary-search the index and offset straight into the data section without
// parsing any keys out of interleaved records.
func EncodeV1(deckSize int, results []ev.Result) ([]byte, error) {
	sorted := sortedByKey(results)

	h := newHeader(magicV1, versionV1, deckSize, len(sorted))

	buf := make([]byte, 0, headerSize+len(sorted)*(keySize+dataSizeV1))
	buf = append(buf, h.marshal()...)

	for _, r := range sorted {
		if len(r.Key) != keySize {
			return nil, fmt.Errorf("strategy: canonical key %q is not %d bytes", r.Key, keySize)
		}
		buf = append(buf, r.Key...)
	}
	for _, r := range sorted {
		rec := make([]byte, dataSizeV1)
		rec[0] = r.Entry.BestMask
		binary.LittleEndian.PutUint32(rec[1:5], math.Float32bits(float32(r.Entry.BestEV)))
		buf = append(buf, rec...)
	}
	return buf, nil
}

// DecodedEntryV1 is a single decoded v1 record.
type DecodedEntryV1 struct {
	Key      string
	BestMask uint8
	BestEV   float32
}

// DecodeV1 parses a v1 artifact back into its records. jokerDeck reports
// the header's flags bit 0, which a caller needs to know which paytable
// family's key alphabet to expect (jokers emit "Ww").
func DecodeV1(buf []byte) (handCount int, entries []DecodedEntryV1, jokerDeck bool, err error) {
	h, err := unmarshalHeader(buf)
	if err != nil {
		return 0, nil, false, err
	}
	if string(h.Magic[:]) != magicV1 {
		return 0, nil, false, fmt.Errorf("strategy: bad v1 magic %q", h.Magic[:])
	}
	if h.Version != versionV1 {
		return 0, nil, false, fmt.Errorf("strategy: unexpected v1 version %d", h.Version)
	}

	n := int(h.EntryCount)
	keyLen := int(h.KeyLength)
	indexBytes := n * keyLen
	dataBytes := n * dataSizeV1
	body := buf[headerSize:]
	if len(body) < indexBytes+dataBytes {
		return 0, nil, false, fmt.Errorf("strategy: v1 body is %d bytes, want at least %d", len(body), indexBytes+dataBytes)
	}
	index := body[:indexBytes]
	data := body[indexBytes : indexBytes+dataBytes]

	entries = make([]DecodedEntryV1, n)
	for i := range entries {
		key := index[i*keyLen : (i+1)*keyLen]
		rec := data[i*dataSizeV1 : (i+1)*dataSizeV1]
		entries[i] = DecodedEntryV1{
			Key:      string(key),
			BestMask: rec[0],
			BestEV:   math.Float32frombits(binary.LittleEndian.Uint32(rec[1:5])),
		}
	}
	return n, entries, h.jokerDeck(), nil
}

func sortedByKey(results []ev.Result) []ev.Result {
	out := make([]ev.Result, len(results))
	copy(out, results)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
