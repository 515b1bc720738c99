package handeval

import (
	"github.com/lox/vppoker/internal/card"
	"github.com/lox/vppoker/internal/paytable"
)

var royalSet = [5]int{8, 9, 10, 11, 12}

// allNonWildRanksIn reports whether every non-wild card's rank falls within
// allowed — used to rule out a royal/wild-royal when an off-window card
// occupies one of the five hand slots.
func allNonWildRanksIn(rankCounts [13]int, allowed [5]int) bool {
	var inSet [13]bool
	for _, r := range allowed {
		inSet[r] = true
	}
	for r := 0; r < 13; r++ {
		if rankCounts[r] > 0 && !inSet[r] {
			return false
		}
	}
	return true
}

// fullHouseAchievable reports whether some pair of distinct non-wild ranks
// can be completed to three-of-a-kind + pair within the wild budget, without
// already qualifying as four-of-a-kind (caller guards that ordering).
func fullHouseAchievable(rankCounts [13]int, wildCount int) bool {
	var present []int
	for r := 0; r < 13; r++ {
		if rankCounts[r] > 0 {
			present = append(present, r)
		}
	}
	if len(present) < 2 {
		return false
	}
	best := -1
	for i := range present {
		for j := range present {
			if i == j {
				continue
			}
			c1, c2 := rankCounts[present[i]], rankCounts[present[j]]
			if c1 < c2 {
				continue
			}
			need := (3 - c1) + (2 - c2)
			if best == -1 || need < best {
				best = need
			}
		}
	}
	return best >= 0 && best <= wildCount
}

// payoutWild evaluates a hand for a wild-card family (deuces-wild or joker).
// isWild picks out which cards count toward the wild budget; deuceAlwaysWild
// is set only for the deuces-wild family, where rank index 0 never appears
// as a non-wild rank.
func payoutWild(h card.Hand, pt paytable.Paytable, isWild func(card.Card) bool, deuceAlwaysWild bool) int64 {
	var nonWilds []card.Card
	wildCount := 0
	for _, c := range h {
		if isWild(c) {
			wildCount++
		} else {
			nonWilds = append(nonWilds, c)
		}
	}

	suitsEqual := true
	firstSuit := -1
	for _, c := range nonWilds {
		s, _ := c.Suit()
		if firstSuit == -1 {
			firstSuit = s
		} else if s != firstSuit {
			suitsEqual = false
		}
	}
	isFlushWild := suitsEqual

	var rankCounts [13]int
	var distinct [13]bool
	distinctCount := 0
	for _, c := range nonWilds {
		r, _ := c.Rank()
		rankCounts[r]++
		if !distinct[r] {
			distinct[r] = true
			distinctCount++
		}
	}

	naturalRoyal := wildCount == 0 && suitsEqual && distinctCount == 5 &&
		distinct[8] && distinct[9] && distinct[10] && distinct[11] && distinct[12]
	if naturalRoyal {
		return int64(pt.RoyalFlush)
	}

	if pt.Family == paytable.DeucesWild && wildCount == 4 {
		return int64(pt.FourDeuces)
	}

	missingRoyal := 0
	for _, r := range royalSet {
		if !distinct[r] {
			missingRoyal++
		}
	}
	isRoyalWild := wildCount >= 1 && isFlushWild &&
		allNonWildRanksIn(rankCounts, royalSet) && missingRoyal <= wildCount
	if isRoyalWild {
		return int64(pt.WildRoyal)
	}

	maxCount := 0
	for r := 0; r < 13; r++ {
		if rankCounts[r] > maxCount {
			maxCount = rankCounts[r]
		}
	}

	if maxCount+wildCount >= 5 {
		return int64(pt.FiveOfAKind)
	}

	isStraightWild := straightCompletion(distinct, wildCount, deuceAlwaysWild)
	if isFlushWild && isStraightWild {
		return int64(pt.StraightFlush)
	}

	if maxCount+wildCount >= 4 {
		return int64(pt.FourOfAKind)
	}

	if fullHouseAchievable(rankCounts, wildCount) {
		return int64(pt.FullHouse)
	}

	if isFlushWild {
		return int64(pt.Flush)
	}
	if isStraightWild {
		return int64(pt.Straight)
	}

	if maxCount+wildCount >= 3 {
		return int64(pt.ThreeOfAKind)
	}

	if pt.Family != paytable.Joker {
		return 0
	}
	return jokerLowPayout(rankCounts, wildCount, pt)
}

// jokerLowPayout covers the two-pair/high-pair tail some joker-family
// paytables pay below three-of-a-kind. A lone wild can complete a second
// pair from the best single, or promote the best qualifying single into a
// pair outright.
func jokerLowPayout(rankCounts [13]int, wildCount int, pt paytable.Paytable) int64 {
	var pairs, singles []int
	for r := 12; r >= 0; r-- {
		switch rankCounts[r] {
		case 2:
			pairs = append(pairs, r)
		case 1:
			singles = append(singles, r)
		}
	}

	qualifies := func(r int) bool { return pt.MinPairRank > 0 && r >= pt.MinPairRank }

	switch {
	case len(pairs) >= 2:
		if pt.TwoPair > 0 {
			return int64(pt.TwoPair)
		}
	case len(pairs) == 1 && wildCount >= 1 && len(singles) > 0:
		if pt.TwoPair > 0 {
			return int64(pt.TwoPair)
		}
		if qualifies(pairs[0]) {
			return int64(pt.HighPair)
		}
	case len(pairs) == 1:
		if qualifies(pairs[0]) {
			return int64(pt.HighPair)
		}
	case wildCount >= 1 && len(singles) > 0:
		if qualifies(singles[0]) {
			return int64(pt.HighPair)
		}
	}
	return 0
}

func isDeuce(c card.Card) bool {
	r, ok := c.Rank()
	return ok && r == 0
}

func isJokerCard(c card.Card) bool {
	return c.IsJoker()
}
