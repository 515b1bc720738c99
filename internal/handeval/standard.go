package handeval

import (
	"github.com/lox/vppoker/internal/card"
	"github.com/lox/vppoker/internal/paytable"
)

const rankAce = 12
const rank8 = 6
const rank7 = 5

func isLow234(r int) bool    { return r >= 0 && r <= 2 }
func isJQK(r int) bool       { return r >= 9 && r <= 11 }
func isFiveToKing(r int) bool { return r >= 3 && r <= 11 }

func isLowKicker(k int) bool      { return k >= 0 && k <= 2 }
func isFaceKicker(k int) bool     { return k >= 9 && k <= 11 }
func isLowAceKicker(k int) bool   { return k == rankAce || (k >= 0 && k <= 2) }
func isJQKAceKicker(k int) bool   { return k == rankAce || isJQK(k) }

// classifyCounts returns the rank of a quad (-1 if none), the rank of a trip
// (-1 if none), and the ranks holding a natural pair, highest first.
func classifyCounts(counts [13]int) (quadRank, threeRank int, pairRanks []int) {
	quadRank, threeRank = -1, -1
	for r := 12; r >= 0; r-- {
		switch counts[r] {
		case 4:
			quadRank = r
		case 3:
			threeRank = r
		case 2:
			pairRanks = append(pairRanks, r)
		}
	}
	return
}

// quadBonus resolves the payout for a four-of-a-kind, applying kicker-keyed
// bonuses (Double Jackpot-style games) before falling through to the plain
// per-rank-group quad bonuses, in the priority order the paytable defines.
func quadBonus(quadRank, kickerRank int, pt paytable.Paytable) int {
	if quadRank == rankAce {
		if isLowKicker(kickerRank) && pt.Kicker.AcesLowKicker > 0 {
			return pt.Kicker.AcesLowKicker
		}
		if isFaceKicker(kickerRank) && pt.Kicker.AcesFaceKicker > 0 {
			return pt.Kicker.AcesFaceKicker
		}
	}
	if isLow234(quadRank) && isLowAceKicker(kickerRank) && pt.Kicker.LowAceKicker > 0 {
		return pt.Kicker.LowAceKicker
	}
	if isJQK(quadRank) && isJQKAceKicker(kickerRank) && pt.Kicker.JQKFaceKicker > 0 {
		return pt.Kicker.JQKFaceKicker
	}

	switch {
	case quadRank == rankAce && pt.Quad.Aces > 0:
		return pt.Quad.Aces
	case isLow234(quadRank) && pt.Quad.Low > 0:
		return pt.Quad.Low
	case isJQK(quadRank) && pt.Quad.JQK > 0:
		return pt.Quad.JQK
	case quadRank == rank8 && pt.Quad.Eight > 0:
		return pt.Quad.Eight
	case quadRank == rank7 && pt.Quad.Seven > 0:
		return pt.Quad.Seven
	case isFiveToKing(quadRank) && pt.Quad.Mid > 0:
		return pt.Quad.Mid
	default:
		return pt.FourOfAKind
	}
}

// payoutStandard evaluates a no-wild-card hand (jacks-or-better family and
// its bonus-quad variants).
func payoutStandard(h card.Hand, pt paytable.Paytable) int64 {
	counts, _ := card.RankCounts(h)

	var distinct [13]bool
	distinctCount := 0
	suitsEqual := true
	firstSuit := -1
	for _, c := range h {
		r, _ := c.Rank()
		if !distinct[r] {
			distinct[r] = true
			distinctCount++
		}
		s, _ := c.Suit()
		if firstSuit == -1 {
			firstSuit = s
		} else if s != firstSuit {
			suitsEqual = false
		}
	}
	flush := suitsEqual
	isStraight, isWheel, highRank := straightWindow(distinct, distinctCount)

	if flush && isStraight && !isWheel && highRank == rankAce {
		return int64(pt.RoyalFlush)
	}
	if flush && isStraight {
		return int64(pt.StraightFlush)
	}

	quadRank, threeRank, pairRanks := classifyCounts(counts)
	if quadRank >= 0 {
		kicker := -1
		for r := 0; r < 13; r++ {
			if counts[r] == 1 {
				kicker = r
			}
		}
		return int64(quadBonus(quadRank, kicker, pt))
	}
	if threeRank >= 0 && len(pairRanks) > 0 {
		return int64(pt.FullHouse)
	}
	if flush {
		return int64(pt.Flush)
	}
	if isStraight {
		return int64(pt.Straight)
	}
	if threeRank >= 0 {
		return int64(pt.ThreeOfAKind)
	}
	if len(pairRanks) == 2 {
		return int64(pt.TwoPair)
	}
	if len(pairRanks) == 1 && pt.MinPairRank > 0 && pairRanks[0] >= pt.MinPairRank {
		return int64(pt.HighPair)
	}
	return 0
}
