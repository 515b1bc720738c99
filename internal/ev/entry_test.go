package ev

import (
	"math"
	"testing"

	"github.com/lox/vppoker/internal/card"
	"github.com/lox/vppoker/internal/handeval"
	"github.com/lox/vppoker/internal/paytable"
)

func std(rank, suit int) card.Card {
	return card.New(rank*4+suit, card.StandardDeckSize)
}

func doubleDoubleBonus96() paytable.Paytable {
	return paytable.Paytable{
		ID:           "ddb96",
		Family:       paytable.Standard,
		RoyalFlush:   800,
		StraightFlush: 50,
		FourOfAKind:  25,
		FullHouse:    9,
		Flush:        6,
		Straight:     4,
		ThreeOfAKind: 3,
		TwoPair:      2,
		HighPair:     1,
		MinPairRank:  9,
		Quad:         paytable.QuadBonus{Aces: 160, Low: 80, JQK: 50, Eight: 50, Seven: 25, Mid: 25},
		Kicker: paytable.KickerBonus{
			AcesLowKicker:  400,
			LowAceKicker:   160,
			AcesFaceKicker: 160,
			JQKFaceKicker:  80,
		},
	}
}

func TestEvaluateHandHoldAllEqualsMadeHandPayout(t *testing.T) {
	pt := doubleDoubleBonus96()
	h := card.Hand{std(8, 0), std(9, 0), std(10, 0), std(11, 0), std(12, 0)} // royal flush
	entry := EvaluateHand(h, pt)
	const holdAll = 0b11111
	want := float64(handeval.Payout(h, pt))
	if entry.Vector[holdAll] != want {
		t.Fatalf("Vector[holdAll] = %v, want %v", entry.Vector[holdAll], want)
	}
}

func TestEvaluateHandFourAcesKickerExactEV(t *testing.T) {
	pt := doubleDoubleBonus96()
	// AaAbAcAd2a: holding the four aces and drawing one replacement for the
	// deuce kicker. Pool after removing this hand's 5 cards from the 52-card
	// deck: 0 aces, 3 deuces, 4 each of the other 11 ranks = 47 cards.
	//   low-kicker {2,3,4}: 3+4+4 = 11 cards -> 400
	//   face-kicker {J,Q,K}: 4+4+4 = 12 cards -> 160
	//   everything else: 24 cards -> 160 (plain four_aces)
	// EV = (11*400 + 12*160 + 24*160) / 47 = 10160/47
	h := card.Hand{std(12, 0), std(12, 1), std(12, 2), std(12, 3), std(0, 0)}
	entry := EvaluateHand(h, pt)
	const holdAces = 0b01111 // hold slots 0-3 (the aces), discard slot 4
	want := 10160.0 / 47.0
	if math.Abs(entry.Vector[holdAces]-want) > 1e-9 {
		t.Fatalf("Vector[holdAces] = %v, want %v", entry.Vector[holdAces], want)
	}
}

func TestEvaluateHandBestMaskHoldsMadeRoyal(t *testing.T) {
	pt := doubleDoubleBonus96()
	h := card.Hand{std(8, 0), std(9, 0), std(10, 0), std(11, 0), std(12, 0)}
	entry := EvaluateHand(h, pt)
	if entry.BestMask != 0b11111 {
		t.Fatalf("best mask for an already-made royal flush = %b, want all-hold 11111", entry.BestMask)
	}
	if entry.BestEV != entry.Vector[0b11111] {
		t.Fatalf("best EV %v does not match vector entry at best mask", entry.BestEV)
	}
}
