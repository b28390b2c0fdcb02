package route

import (
	"fmt"
	"testing"
)

func makePOIs(n int) []PointOfInterest {
	pois := make([]PointOfInterest, n)
	for i := range pois {
		pois[i] = PointOfInterest{PlaceID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Place %d", i)}
	}
	return pois
}

func TestShuffleCandidates_IsPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 50} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			in := makePOIs(n)
			out := shuffleCandidates(in)

			if len(out) != n {
				t.Fatalf("length changed: got %d, want %d", len(out), n)
			}

			seen := make(map[string]int)
			for _, p := range out {
				seen[p.PlaceID]++
			}
			for _, p := range in {
				if seen[p.PlaceID] != 1 {
					t.Errorf("element %s appears %d times, want 1", p.PlaceID, seen[p.PlaceID])
				}
			}
		})
	}
}

// Back-to-back calls must not produce correlated orderings; with 50 elements
// the odds of 20 honest shuffles agreeing are negligible.
func TestShuffleCandidates_BackToBackCallsVary(t *testing.T) {
	in := makePOIs(50)
	orderings := make(map[string]bool)
	for i := 0; i < 20; i++ {
		var key string
		for _, p := range shuffleCandidates(in) {
			key += p.PlaceID + "|"
		}
		orderings[key] = true
	}
	if len(orderings) < 2 {
		t.Errorf("20 consecutive shuffles produced %d distinct orderings", len(orderings))
	}
}

func TestShuffleCandidates_DoesNotMutateInput(t *testing.T) {
	in := makePOIs(20)
	_ = shuffleCandidates(in)
	for i, p := range in {
		if p.PlaceID != fmt.Sprintf("p%d", i) {
			t.Fatalf("input mutated at index %d: %s", i, p.PlaceID)
		}
	}
}

func TestTruncateCandidates(t *testing.T) {
	if got := truncateCandidates(makePOIs(5)); len(got) != 5 {
		t.Errorf("short list truncated: got %d", len(got))
	}
	if got := truncateCandidates(makePOIs(promptCandidateBudget)); len(got) != promptCandidateBudget {
		t.Errorf("exact-budget list truncated: got %d", len(got))
	}
	if got := truncateCandidates(makePOIs(promptCandidateBudget + 15)); len(got) != promptCandidateBudget {
		t.Errorf("long list not truncated: got %d, want %d", len(got), promptCandidateBudget)
	}
}
