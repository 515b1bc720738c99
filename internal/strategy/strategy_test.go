package strategy

import (
	"math"
	"testing"

	"github.com/lox/vppoker/internal/card"
	"github.com/lox/vppoker/internal/ev"
)

func sampleResults() []ev.Result {
	e1 := ev.Entry{BestMask: 0b11111, BestEV: 800}
	e1.Vector[0b11111] = 800
	e1.Vector[0] = 0.25

	e2 := ev.Entry{BestMask: 0b00011, BestEV: 4.87594}
	e2.Vector[0b00011] = 4.87594
	e2.Vector[0b11111] = 1

	return []ev.Result{
		{Key: "AaKaQaJaTa"[:10], Entry: e1},
		{Key: "JbJc2d3e4f"[:10], Entry: e2},
	}
}

func TestEncodeDecodeV1RoundTrip(t *testing.T) {
	results := sampleResults()
	buf, err := EncodeV1(card.StandardDeckSize, results)
	if err != nil {
		t.Fatalf("EncodeV1: %v", err)
	}
	want := headerSize + len(results)*keySize + len(results)*dataSizeV1
	if len(buf) != want {
		t.Fatalf("buffer length = %d, want %d", len(buf), want)
	}

	handCount, entries, jokerDeck, err := DecodeV1(buf)
	if err != nil {
		t.Fatalf("DecodeV1: %v", err)
	}
	if handCount != len(results) || jokerDeck {
		t.Fatalf("header mismatch: handCount=%d jokerDeck=%v", handCount, jokerDeck)
	}
	if len(entries) != 2 || entries[0].Key > entries[1].Key {
		t.Fatalf("entries not sorted by key: %+v", entries)
	}
	for _, e := range entries {
		var want ev.Entry
		for _, r := range results {
			if r.Key == e.Key {
				want = r.Entry
			}
		}
		if e.BestMask != want.BestMask {
			t.Fatalf("key %q: best_mask = %b, want %b", e.Key, e.BestMask, want.BestMask)
		}
		if math.Abs(float64(e.BestEV)-want.BestEV) > 1e-4 {
			t.Fatalf("key %q: best_ev = %v, want %v", e.Key, e.BestEV, want.BestEV)
		}
	}
}

// TestV1LayoutMatchesIndexDataSplit pins the artifact to the index-section-
// then-data-section layout: all entry_count*key_length index bytes must be
// ASCII canonical keys in sorted order, contiguous and separate from the
// entry_count*5 byte data records that follow them.
func TestV1LayoutMatchesIndexDataSplit(t *testing.T) {
	results := sampleResults()
	buf, err := EncodeV1(card.StandardDeckSize, results)
	if err != nil {
		t.Fatalf("EncodeV1: %v", err)
	}

	h, err := unmarshalHeader(buf)
	if err != nil {
		t.Fatalf("unmarshalHeader: %v", err)
	}
	if string(h.Magic[:]) != magicV1 {
		t.Fatalf("magic = %q, want %q", h.Magic[:], magicV1)
	}
	if h.Version != versionV1 {
		t.Fatalf("version = %d, want %d", h.Version, versionV1)
	}
	if h.Flags != 0 {
		t.Fatalf("flags = %d, want 0 for a standard deck", h.Flags)
	}
	if int(h.EntryCount) != len(results) {
		t.Fatalf("entry_count = %d, want %d", h.EntryCount, len(results))
	}
	if h.KeyLength != keySize {
		t.Fatalf("key_length = %d, want %d", h.KeyLength, keySize)
	}

	sorted := sortedByKey(results)
	indexStart := headerSize
	indexLen := len(sorted) * keySize
	index := buf[indexStart : indexStart+indexLen]
	for i, r := range sorted {
		got := string(index[i*keySize : (i+1)*keySize])
		if got != r.Key {
			t.Fatalf("index entry %d = %q, want %q", i, got, r.Key)
		}
	}

	dataStart := indexStart + indexLen
	wantTotal := dataStart + len(sorted)*dataSizeV1
	if len(buf) != wantTotal {
		t.Fatalf("buffer length = %d, want %d (index then data, no interleaving)", len(buf), wantTotal)
	}
}

func TestEncodeV1SetsJokerDeckFlag(t *testing.T) {
	buf, err := EncodeV1(card.SingleJokerDeckSize, sampleResults())
	if err != nil {
		t.Fatalf("EncodeV1: %v", err)
	}
	_, _, jokerDeck, err := DecodeV1(buf)
	if err != nil {
		t.Fatalf("DecodeV1: %v", err)
	}
	if !jokerDeck {
		t.Fatal("expected joker-deck flag to be set for a 53-card deck")
	}
}

func TestEncodeDecodeV2RoundTrip(t *testing.T) {
	results := sampleResults()
	buf, err := EncodeV2(card.StandardDeckSize, results)
	if err != nil {
		t.Fatalf("EncodeV2: %v", err)
	}
	want := headerSize + len(results)*keySize + len(results)*dataSizeV2
	if len(buf) != want {
		t.Fatalf("buffer length = %d, want %d", len(buf), want)
	}

	handCount, entries, _, err := DecodeV2(buf)
	if err != nil {
		t.Fatalf("DecodeV2: %v", err)
	}
	if handCount != len(results) {
		t.Fatalf("header mismatch: handCount=%d", handCount)
	}

	for _, e := range entries {
		var want ev.Entry
		for _, r := range results {
			if r.Key == e.Key {
				want = r.Entry
			}
		}
		for m := 0; m < 32; m++ {
			// quantization error bounded by the chosen divisor (<=0.1).
			if math.Abs(e.Vector[m]-want.Vector[m]) > 0.1+1e-9 {
				t.Fatalf("key %q mask %d: decoded EV %v, want ~%v", e.Key, m, e.Vector[m], want.Vector[m])
			}
		}
	}
}

func TestPickScaleKeepsValueWithinUint16(t *testing.T) {
	code, divisor := pickScale(800)
	encoded := encodeScaled(800, divisor)
	if encoded > maxScaleCode {
		t.Fatalf("encoded value %d exceeds uint16 range for scale code %d", encoded, code)
	}
	if decodeScaled(encoded, divisor) < 799 {
		t.Fatalf("decoded value lost too much precision: %v", decodeScaled(encoded, divisor))
	}
}

func TestDecodeV1RejectsWrongMagic(t *testing.T) {
	buf, _ := EncodeV2(card.StandardDeckSize, sampleResults())
	if _, _, _, err := DecodeV1(buf); err == nil {
		t.Fatal("expected DecodeV1 to reject a v2 buffer")
	}
}
