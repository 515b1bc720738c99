// Package ev implements the exact expected-value calculation over all 32
// hold masks of a five-card hand.
package ev

import (
	"github.com/lox/vppoker/internal/card"
	"github.com/lox/vppoker/internal/handeval"
	"github.com/lox/vppoker/internal/paytable"
)

// Entry is the per-hand EV result: the full 32-entry EV vector (indexed by
// hold mask, bit i set meaning "hold slot i") plus the best mask and its EV.
// Ties resolve to the lowest mask index.
type Entry struct {
	BestMask uint8
	BestEV   float64
	Vector   [32]float64
}

// EvaluateHand computes Entry for h under pt by exhaustively summing integer
// payouts over every possible draw completion of every hold mask and
// dividing once per mask, keeping the accumulation exact (integer sums,
// one final division) instead of accumulating floating-point rounding error
// across tens of thousands of draw completions.
func EvaluateHand(h card.Hand, pt paytable.Paytable) Entry {
	pool := card.Complement(h, pt.DeckSize())

	var entry Entry
	entry.BestEV = -1
	var heldIdx, discardIdx [5]int
	for mask := 0; mask < 32; mask++ {
		nHeld, nDiscard := 0, 0
		for i := 0; i < 5; i++ {
			if mask&(1<<uint(i)) != 0 {
				heldIdx[nHeld] = i
				nHeld++
			} else {
				discardIdx[nDiscard] = i
				nDiscard++
			}
		}
		entry.Vector[mask] = evForMask(h, pool, discardIdx[:nDiscard], pt)
	}
	for mask := 0; mask < 32; mask++ {
		if entry.Vector[mask] > entry.BestEV {
			entry.BestEV = entry.Vector[mask]
			entry.BestMask = uint8(mask)
		}
	}
	return entry
}

// evForMask sums the integer payout of every draw completion that fills
// discardIdx slots from pool, then divides once.
func evForMask(h card.Hand, pool []card.Card, discardIdx []int, pt paytable.Paytable) float64 {
	k := len(discardIdx)
	if k == 0 {
		return float64(handeval.Payout(h, pt))
	}

	combo := make([]int, k)
	for i := range combo {
		combo[i] = i
	}

	result := h
	var sum int64
	var count int64
	for {
		for j, ci := range combo {
			result[discardIdx[j]] = pool[ci]
		}
		sum += handeval.Payout(result, pt)
		count++
		if !nextCombo(combo, len(pool)) {
			break
		}
	}
	return float64(sum) / float64(count)
}

// nextCombo advances combo (a strictly increasing index tuple into [0,n)) to
// its lexicographic successor, reporting whether one exists.
func nextCombo(combo []int, n int) bool {
	k := len(combo)
	i := k - 1
	for i >= 0 && combo[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	combo[i]++
	for j := i + 1; j < k; j++ {
		combo[j] = combo[j-1] + 1
	}
	return true
}
