// Package canon implements enumeration of five-card hands up to suit
// symmetry. Swapping an entire suit for another (hearts for clubs, etc.)
// never changes a hand's payout under any paytable in this system, so the solver
// only needs to evaluate one representative hand per equivalence class.
package canon

import (
	"sort"

	"github.com/lox/vppoker/internal/card"
)

// Class is one suit-symmetry equivalence class: a canonical key and a
// representative hand drawn from it.
type Class struct {
	Key  string
	Hand card.Hand
}

const rankChars = "23456789TJQKA"

// Key builds the canonical key for h: cards sorted by rank (jokers last),
// equal ranks ordered by the rank set of their suit, with suits relabeled
// a/b/c/d in first-seen order so that any suit
// permutation of h produces the identical key. Jokers contribute "Ww" and
// are interchangeable with one another.
func Key(h card.Hand) string {
	// Order suits by the set of ranks they hold, so cards of equal rank sort
	// the same way under any suit relabeling of h.
	var masks [4]int
	for _, c := range h {
		if s, ok := c.Suit(); ok {
			r, _ := c.Rank()
			masks[s] |= 1 << r
		}
	}
	var suitOrder [4]int
	for s := range suitOrder {
		for o := range masks {
			if masks[o] > masks[s] || (masks[o] == masks[s] && o < s) {
				suitOrder[s]++
			}
		}
	}

	type slot struct {
		rank    int
		order   int
		isJoker bool
		card    card.Card
	}
	slots := make([]slot, 5)
	for i, c := range h {
		if r, ok := c.Rank(); ok {
			s, _ := c.Suit()
			slots[i] = slot{rank: r, order: suitOrder[s], card: c}
		} else {
			slots[i] = slot{rank: 99, isJoker: true, card: c}
		}
	}
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].rank != slots[j].rank {
			return slots[i].rank < slots[j].rank
		}
		return slots[i].order < slots[j].order
	})

	buf := make([]byte, 0, 10)
	var suitSym [4]byte
	var suitSeen [4]bool
	next := byte('a')
	for _, s := range slots {
		if s.isJoker {
			buf = append(buf, 'W', 'w')
			continue
		}
		r, _ := s.card.Rank()
		suit, _ := s.card.Suit()
		if !suitSeen[suit] {
			suitSeen[suit] = true
			suitSym[suit] = next
			next++
		}
		buf = append(buf, rankChars[r], suitSym[suit])
	}
	return string(buf)
}

// Enumerate returns one Class per suit-symmetry equivalence class over all
// five-card hands drawn from a deckSize-card universe, sorted by key. The
// class count is never hard-coded: it falls out of how many distinct keys
// the C(deckSize,5) combinations produce.
func Enumerate(deckSize int) []Class {
	seen := make(map[string]card.Hand)

	var idx [5]int
	for i := range idx {
		idx[i] = i
	}
	for {
		h := card.Hand{
			card.New(idx[0], deckSize),
			card.New(idx[1], deckSize),
			card.New(idx[2], deckSize),
			card.New(idx[3], deckSize),
			card.New(idx[4], deckSize),
		}
		key := Key(h)
		if _, ok := seen[key]; !ok {
			seen[key] = h
		}
		if !nextCombination(&idx, deckSize) {
			break
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	classes := make([]Class, len(keys))
	for i, k := range keys {
		classes[i] = Class{Key: k, Hand: seen[k]}
	}
	return classes
}

// nextCombination advances idx to the next 5-element strictly increasing
// index tuple in [0,n) in lexicographic order, reporting whether one exists.
func nextCombination(idx *[5]int, n int) bool {
	i := 4
	for i >= 0 && idx[i] == n-5+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < 5; j++ {
		idx[j] = idx[j-1] + 1
	}
	return true
}
