// Package handeval implements payout(hand, paytable) for the three
// evaluator families a video poker paytable can select.
package handeval

import (
	"github.com/lox/vppoker/internal/card"
	"github.com/lox/vppoker/internal/paytable"
)

// Payout returns the nonnegative credit payout h earns under pt. h must be a
// five-card hand drawn from pt.DeckSize(); callers in internal/ev enforce
// that invariant during enumeration.
func Payout(h card.Hand, pt paytable.Paytable) int64 {
	switch pt.Family {
	case paytable.Standard:
		return payoutStandard(h, pt)
	case paytable.DeucesWild:
		return payoutWild(h, pt, isDeuce, true)
	case paytable.Joker:
		return payoutWild(h, pt, isJokerCard, false)
	default:
		return 0
	}
}
