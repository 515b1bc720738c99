// Package card implements the 52/53/54-card universe used by the draw poker
// engine: card indexing, rank/suit decoding, deck construction, and the
// draw-pool complement of a five-card hand.
package card

import "fmt"

// Card is an index into a D-card universe. Indices below 52 decode to a
// standard rank/suit pair; indices 52 and 53 are joker tokens with no rank
// or suit of their own.
type Card uint8

// Deck sizes supported by the registry. The family of a paytable decides
// which one is in play.
const (
	StandardDeckSize    = 52
	SingleJokerDeckSize = 53
	DoubleJokerDeckSize = 54
)

const rankChars = "23456789TJQKA"

// New returns the card at index i in a D-card universe. It panics if i is
// out of range: malformed indices are a programmer error, not a recoverable
// condition.
func New(i, deckSize int) Card {
	if i < 0 || i >= deckSize {
		panic(fmt.Sprintf("card: index %d out of range for %d-card deck", i, deckSize))
	}
	return Card(i)
}

// Rank returns the card's rank in [0,12] (0=deuce .. 12=ace) and true, or
// (0, false) if c is a joker.
func (c Card) Rank() (int, bool) {
	if int(c) >= StandardDeckSize {
		return 0, false
	}
	return int(c) / 4, true
}

// Suit returns the card's suit in [0,3] and true, or (0, false) if c is a
// joker.
func (c Card) Suit() (int, bool) {
	if int(c) >= StandardDeckSize {
		return 0, false
	}
	return int(c) % 4, true
}

// IsJoker reports whether c is a joker token (index >= 52).
func (c Card) IsJoker() bool {
	return int(c) >= StandardDeckSize
}

// IsFaceOrHigh reports whether the card's rank is in the "face/high" group
// (T,J,Q,K,A) several bonus payouts key on. Jokers are never in this group.
func (c Card) IsFaceOrHigh() bool {
	r, ok := c.Rank()
	return ok && r >= 8
}

// RankChar returns the rank character for the card, or 'W' for a joker, per
// the canonical-key alphabet.
func (c Card) RankChar() byte {
	if r, ok := c.Rank(); ok {
		return rankChars[r]
	}
	return 'W'
}

// String renders the card as "rank+suit", e.g. "Ac", or "Jk1"/"Jk2" for
// jokers in a double-joker deck.
func (c Card) String() string {
	if r, ok := c.Rank(); ok {
		s, _ := c.Suit()
		return fmt.Sprintf("%c%c", rankChars[r], "shdc"[s])
	}
	if c == StandardDeckSize {
		return "Jk1"
	}
	return "Jk2"
}

// Deck returns the full ordered sequence of cards for a D-card universe.
func Deck(deckSize int) []Card {
	cards := make([]Card, deckSize)
	for i := range cards {
		cards[i] = Card(i)
	}
	return cards
}

// Hand is an unordered five-card multiset, stored positionally so hold
// masks can address individual slots.
type Hand [5]Card

// Complement returns the deckSize-5 cards not present in h, in ascending
// index order — the draw pool a discard completion is dealt from.
func Complement(h Hand, deckSize int) []Card {
	var inHand [DoubleJokerDeckSize]bool
	for _, c := range h {
		inHand[c] = true
	}
	pool := make([]Card, 0, deckSize-5)
	for i := 0; i < deckSize; i++ {
		if !inHand[Card(i)] {
			pool = append(pool, Card(i))
		}
	}
	return pool
}

// RankCounts returns the count of each rank [0..12] present among the
// non-joker cards of h, plus the number of jokers.
func RankCounts(h Hand) (counts [13]int, jokers int) {
	for _, c := range h {
		if r, ok := c.Rank(); ok {
			counts[r]++
		} else {
			jokers++
		}
	}
	return counts, jokers
}
