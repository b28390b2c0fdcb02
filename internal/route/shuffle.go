// Package route — shuffle injects the controlled randomness that makes
// "generate again" return a different plausible route.
package route

import "math/rand"

// promptCandidateBudget bounds how many candidates reach the selection prompt.
const promptCandidateBudget = 20

// shuffleCandidates returns a fresh permutation of pois. Repeated requests
// with identical inputs present the model with different orderings, even when
// they arrive concurrently.
func shuffleCandidates(pois []PointOfInterest) []PointOfInterest {
	out := make([]PointOfInterest, len(pois))
	copy(out, pois)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// truncateCandidates caps the shuffled list at the prompt budget.
func truncateCandidates(pois []PointOfInterest) []PointOfInterest {
	if len(pois) <= promptCandidateBudget {
		return pois
	}
	return pois[:promptCandidateBudget]
}
