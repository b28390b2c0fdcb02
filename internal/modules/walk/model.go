// README: Saved walk record and difficulty definitions.
package walk

import (
	"errors"
	"time"

	"pawtrail/internal/types"
)

type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
)

// Walk is a persisted walk record owned by an authenticated user.
type Walk struct {
	ID              int64      `json:"id"`
	OwnerUID        types.ID   `json:"owner_uid"`
	Name            string     `json:"name"`
	DistanceKm      float64    `json:"distance_km"`
	DurationMinutes int        `json:"duration_minutes"`
	Difficulty      Difficulty `json:"difficulty"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
}

var (
	ErrBadRequest = errors.New("bad request")
	ErrStore      = errors.New("could not save walk: please try again")
)
