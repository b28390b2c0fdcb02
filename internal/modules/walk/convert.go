// Package walk — convert holds the pure functions that turn a generated
// route recommendation into a persistable walk record.
package walk

import (
	"math"
	"strconv"
	"strings"

	"pawtrail/internal/route"
	"pawtrail/internal/types"
)

// fallbackPaceMinPerKm assumes a 5 km/h walking pace when a recommendation
// carries no computed directions.
const fallbackPaceMinPerKm = 12

// ParseDistanceLabel extracts the kilometre value from a label like "2.5km"
// or "2.5 km". Unparseable input yields 0, never an error.
func ParseDistanceLabel(label string) float64 {
	s := strings.TrimSpace(label)
	if strings.HasSuffix(strings.ToLower(s), "km") {
		s = strings.TrimSpace(s[:len(s)-2])
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ClassifyDifficulty buckets a distance into the three-tier difficulty scale.
// Zero and negative distances count as easy.
func ClassifyDifficulty(distanceKm float64) Difficulty {
	switch {
	case distanceKm < 3:
		return DifficultyEasy
	case distanceKm <= 6:
		return DifficultyModerate
	default:
		return DifficultyHard
	}
}

// DeriveDurationMinutes converts a directions duration to whole minutes,
// rounding half up. Missing or zero durations yield 0.
func DeriveDurationMinutes(durationSeconds float64) int {
	if durationSeconds <= 0 {
		return 0
	}
	return int(math.Floor(durationSeconds/60 + 0.5))
}

// FromRecommendation maps a recommendation to a walk record. When the
// recommendation has no directions duration, minutes fall back to a pace
// estimate from the parsed distance.
func FromRecommendation(rec route.Recommendation, owner types.ID) Walk {
	distanceKm := ParseDistanceLabel(rec.EstimatedDistanceLabel)

	minutes := 0
	if rec.Directions != nil && rec.Directions.TotalDurationSeconds > 0 {
		minutes = DeriveDurationMinutes(float64(rec.Directions.TotalDurationSeconds))
	} else {
		minutes = int(math.Round(distanceKm * fallbackPaceMinPerKm))
	}

	return Walk{
		OwnerUID:        owner,
		Name:            rec.RouteName,
		DistanceKm:      distanceKm,
		DurationMinutes: minutes,
		Difficulty:      ClassifyDifficulty(distanceKm),
		Notes:           rec.Highlights,
	}
}
