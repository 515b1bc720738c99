package handeval

// straightCompletion reports whether a 5-rank straight can be completed given
// the non-wild ranks present (distinct, indices 0..12 = deuce..ace) and a
// budget of wild cards able to fill any missing slot in the window.
//
// deuceAlwaysWild selects the deuces-wild wheel rule: when true, rank index 0
// (the deuce) can never appear as a non-wild rank — every deuce in the hand
// has already been pulled into the wild count by the caller — so the ace-low
// wheel window {A,2,3,4,5} always needs at least one wild for the "2" slot,
// on top of whatever's missing from {3,4,5,A}. When false (joker family,
// where the deuce is a real rank), the wheel window is the
// ordinary ace-low set {A,2,3,4,5} with no implicit wild requirement.
func straightCompletion(distinct [13]bool, wildBudget int, deuceAlwaysWild bool) bool {
	for start := 0; start <= 8; start++ {
		unfilled := 0
		for k := 0; k < 5; k++ {
			if !distinct[start+k] {
				unfilled++
			}
		}
		if unfilled <= wildBudget {
			return true
		}
	}

	if deuceAlwaysWild {
		matched := 0
		for _, idx := range [4]int{1, 2, 3, 12} {
			if distinct[idx] {
				matched++
			}
		}
		unfilled := (4 - matched) + 1 // +1: the deuce's slot is never a real non-wild card
		return unfilled <= wildBudget
	}

	matched := 0
	for _, idx := range [5]int{0, 1, 2, 3, 12} {
		if distinct[idx] {
			matched++
		}
	}
	return (5 - matched) <= wildBudget
}

// straightWindow is the no-wild case used by the standard family: it also
// reports whether the straight found is the ace-low wheel and, if not, the
// high rank of the window (used to detect the T-J-Q-K-A royal window).
func straightWindow(distinct [13]bool, distinctCount int) (isStraight, isWheel bool, highRank int) {
	if distinctCount != 5 {
		return false, false, 0
	}
	if distinct[0] && distinct[1] && distinct[2] && distinct[3] && distinct[12] {
		return true, true, 3
	}
	for start := 0; start <= 8; start++ {
		ok := true
		for k := 0; k < 5; k++ {
			if !distinct[start+k] {
				ok = false
				break
			}
		}
		if ok {
			return true, false, start + 4
		}
	}
	return false, false, 0
}
