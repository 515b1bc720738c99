package canon

import "testing"

import "github.com/lox/vppoker/internal/card"

func std(rank, suit int) card.Card {
	return card.New(rank*4+suit, card.StandardDeckSize)
}

func TestKeySuitPermutationInvariant(t *testing.T) {
	h1 := card.Hand{std(12, 0), std(11, 1), std(10, 2), std(9, 3), std(8, 0)}
	// same ranks, suits 0<->1 swapped: must canonicalize identically.
	h2 := card.Hand{std(12, 1), std(11, 0), std(10, 2), std(9, 3), std(8, 1)}
	if Key(h1) != Key(h2) {
		t.Fatalf("Key(%v)=%q != Key(%v)=%q", h1, Key(h1), h2, Key(h2))
	}
}

func TestKeyDistinguishesDifferentSuitPattern(t *testing.T) {
	flush := card.Hand{std(12, 0), std(11, 0), std(10, 0), std(9, 0), std(8, 0)}
	rainbow := card.Hand{std(12, 0), std(11, 1), std(10, 2), std(9, 3), std(8, 0)}
	if Key(flush) == Key(rainbow) {
		t.Fatalf("flush and non-flush hands must not share a canonical key")
	}
}

func TestKeyJokerTokensInterchangeable(t *testing.T) {
	jk1 := card.New(52, card.SingleJokerDeckSize)
	h1 := card.Hand{jk1, std(11, 1), std(10, 2), std(9, 3), std(8, 0)}
	h2 := card.Hand{jk1, std(11, 2), std(10, 3), std(9, 0), std(8, 1)}
	if Key(h1) != Key(h2) {
		t.Fatalf("joker hands under a suit relabeling must canonicalize identically")
	}
}

func TestEnumerateCanonicalClassCounts(t *testing.T) {
	if testing.Short() {
		t.Skip("full enumeration at both deck sizes is slow; run without -short")
	}
	if got := len(Enumerate(card.StandardDeckSize)); got != 134459 {
		t.Fatalf("standard deck: got %d canonical classes, want 134459", got)
	}
	if got := len(Enumerate(card.SingleJokerDeckSize)); got != 211876 {
		t.Fatalf("single-joker deck: got %d canonical classes, want 211876", got)
	}
}

func TestEnumerateProducesNoDuplicateKeys(t *testing.T) {
	if testing.Short() {
		t.Skip("full 52-card enumeration is slow; run without -short")
	}
	classes := Enumerate(card.StandardDeckSize)
	seen := make(map[string]bool, len(classes))
	for _, c := range classes {
		if seen[c.Key] {
			t.Fatalf("duplicate canonical key %q", c.Key)
		}
		seen[c.Key] = true
		if Key(c.Hand) != c.Key {
			t.Fatalf("class hand %v does not canonicalize back to its own key %q", c.Hand, c.Key)
		}
	}
	if len(classes) == 0 {
		t.Fatal("expected a non-empty set of canonical classes")
	}
}
