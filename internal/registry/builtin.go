// Package registry implements A1: an immutable paytable lookup table seeded
// with a representative set of real-world video poker variants, optionally
// extended or overridden by an HCL overlay file.
package registry

import "github.com/lox/vppoker/internal/paytable"

// builtins is the representative variant set: enough distinct families and
// bonus structures to exercise every branch of the hand evaluator.
func builtins() []paytable.Paytable {
	return []paytable.Paytable{
		jacksOrBetter("jacks-or-better-9-6", "Jacks or Better (9/6)", 9, 6),
		jacksOrBetter("jacks-or-better-6-5", "Jacks or Better (6/5)", 6, 5),
		bonusPoker(),
		doubleBonus(),
		doubleDoubleBonus96(),
		tripleDoubleBonus(),
		deucesWildFullPay(),
		deucesWildNSUD(),
		jokerKingsOrBetter(),
		jokerTwoPair(),
		doubleJoker(),
	}
}

func jacksOrBetter(id, name string, fullHouse, flush int) paytable.Paytable {
	return paytable.Paytable{
		ID: id, Name: name, Family: paytable.Standard,
		RoyalFlush: 800, StraightFlush: 50, FourOfAKind: 25,
		FullHouse: fullHouse, Flush: flush, Straight: 4,
		ThreeOfAKind: 3, TwoPair: 2, HighPair: 1, MinPairRank: 9,
	}
}

func bonusPoker() paytable.Paytable {
	pt := jacksOrBetter("bonus-poker", "Bonus Poker", 8, 5)
	pt.Quad = paytable.QuadBonus{Aces: 80, Low: 40, JQK: 25, Mid: 25}
	return pt
}

func doubleBonus() paytable.Paytable {
	pt := jacksOrBetter("double-bonus", "Double Bonus", 9, 6)
	pt.FullHouse, pt.Flush = 9, 7
	pt.Quad = paytable.QuadBonus{Aces: 160, Low: 80, JQK: 50, Mid: 50}
	return pt
}

func doubleDoubleBonus96() paytable.Paytable {
	pt := jacksOrBetter("double-double-bonus-9-6", "Double Double Bonus (9/6)", 9, 6)
	pt.Quad = paytable.QuadBonus{Aces: 160, Low: 80, JQK: 50, Eight: 50, Seven: 25, Mid: 25}
	pt.Kicker = paytable.KickerBonus{
		AcesLowKicker:  400,
		LowAceKicker:   160,
		AcesFaceKicker: 160,
		JQKFaceKicker:  80,
	}
	return pt
}

func tripleDoubleBonus() paytable.Paytable {
	pt := jacksOrBetter("triple-double-bonus", "Triple Double Bonus", 9, 6)
	pt.Straight, pt.ThreeOfAKind = 5, 3
	pt.Quad = paytable.QuadBonus{Aces: 160, Low: 80, JQK: 50, Eight: 50, Seven: 50, Mid: 25}
	pt.Kicker = paytable.KickerBonus{
		AcesLowKicker:  400,
		LowAceKicker:   160,
		AcesFaceKicker: 160,
		JQKFaceKicker:  80,
	}
	return pt
}

func deucesWildFullPay() paytable.Paytable {
	return paytable.Paytable{
		ID: "deuces-wild-full-pay", Name: "Deuces Wild (Full Pay)",
		Family: paytable.DeucesWild,
		RoyalFlush: 800, WildRoyal: 25, FiveOfAKind: 15,
		StraightFlush: 9, FourOfAKind: 5, FullHouse: 3,
		Flush: 2, Straight: 2, ThreeOfAKind: 1, FourDeuces: 200,
	}
}

func deucesWildNSUD() paytable.Paytable {
	pt := deucesWildFullPay()
	pt.ID, pt.Name = "deuces-wild-nsud", "Deuces Wild (Not So Ugly Ducks)"
	pt.FullHouse, pt.Flush = 4, 4
	return pt
}

func jokerKingsOrBetter() paytable.Paytable {
	return paytable.Paytable{
		ID: "joker-kings-or-better", Name: "Joker Poker (Kings or Better)",
		Family: paytable.Joker, JokerCount: 1,
		RoyalFlush: 800, WildRoyal: 100, FiveOfAKind: 200,
		StraightFlush: 50, FourOfAKind: 20, FullHouse: 7,
		Flush: 5, Straight: 3, ThreeOfAKind: 2, MinPairRank: 11,
	}
}

func jokerTwoPair() paytable.Paytable {
	pt := jokerKingsOrBetter()
	pt.ID, pt.Name = "joker-two-pair", "Joker Poker (Two Pair)"
	pt.FourOfAKind, pt.FullHouse, pt.Flush = 15, 5, 4
	pt.TwoPair, pt.MinPairRank = 1, 0
	return pt
}

func doubleJoker() paytable.Paytable {
	return paytable.Paytable{
		ID: "double-joker", Name: "Double Joker Poker",
		Family: paytable.Joker, JokerCount: 2,
		RoyalFlush: 800, WildRoyal: 50, FiveOfAKind: 75,
		StraightFlush: 25, FourOfAKind: 9, FullHouse: 5,
		Flush: 4, Straight: 3, ThreeOfAKind: 2, MinPairRank: 9,
	}
}
