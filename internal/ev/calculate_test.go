package ev

import (
	"context"
	"testing"

	"github.com/lox/vppoker/internal/canon"
	"github.com/lox/vppoker/internal/card"
)

func std5(r0, s0, r1, s1, r2, s2, r3, s3, r4, s4 int) card.Hand {
	return card.Hand{std(r0, s0), std(r1, s1), std(r2, s2), std(r3, s3), std(r4, s4)}
}

func TestCalculateCoversEveryClassAndReportsProgress(t *testing.T) {
	pt := doubleDoubleBonus96()
	classes := []canon.Class{
		{Key: "a", Hand: std5(8, 0, 9, 0, 10, 0, 11, 0, 12, 0)},
		{Key: "b", Hand: std5(0, 0, 0, 1, 0, 2, 0, 3, 12, 0)},
	}
	var lastDone int64
	results, err := Calculate(context.Background(), classes, pt, 2, func(p Progress) {
		lastDone = p.Done
		if p.Total != int64(len(classes)) {
			t.Fatalf("progress total = %d, want %d", p.Total, len(classes))
		}
	})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if len(results) != len(classes) {
		t.Fatalf("got %d results, want %d", len(results), len(classes))
	}
	if lastDone != int64(len(classes)) {
		t.Fatalf("final progress.Done = %d, want %d", lastDone, len(classes))
	}
	for i, r := range results {
		if r.Key != classes[i].Key {
			t.Fatalf("result[%d].Key = %q, want %q", i, r.Key, classes[i].Key)
		}
	}
}

func TestCalculateStopsOnCancellation(t *testing.T) {
	pt := doubleDoubleBonus96()
	classes := make([]canon.Class, 64)
	for i := range classes {
		classes[i] = canon.Class{Key: string(rune('a' + i%26)), Hand: std5(8, 0, 9, 0, 10, 0, 11, 0, 12, 0)}
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Calculate(ctx, classes, pt, 2, nil)
	if err == nil {
		t.Fatal("expected Calculate to return an error for an already-cancelled context")
	}
}
