package ai

import (
	"errors"
	"fmt"

	"pawtrail/internal/types"
)

// CandidatePlace describes one point of interest presented to the model.
// The caller has already shuffled and truncated the list.
type CandidatePlace struct {
	PlaceID             string
	Name                string
	Categories          []string
	Lat                 float64
	Lng                 float64
	Rating              float32 // 0 when the place has no rating
	DistanceFromOriginM float64 // 0 when unknown
}

// SelectionRequest carries everything the model needs to pick waypoints.
type SelectionRequest struct {
	OriginLat        float64
	OriginLng        float64
	LocationLabel    string
	TargetDistanceKm float64
	MustInclude      []string
	SoftPreferences  []string
	Circular         bool
	Candidates       []CandidatePlace
}

// SelectedWaypoint is one element of the model's structured output.
type SelectedWaypoint struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Category string  `json:"category,omitempty"`
	PlaceID  string  `json:"place_id,omitempty"`
}

// RouteSelection captures the structured output from the AI model.
// Reasoning is diagnostic only; it is logged, never returned to callers.
type RouteSelection struct {
	Waypoints []SelectedWaypoint `json:"waypoints"`
	Reasoning string             `json:"reasoning,omitempty"`
}

// ErrInvalidSelection marks structurally invalid model output.
var ErrInvalidSelection = errors.New("invalid route selection")

var validRoles = map[string]bool{"start": true, "end": true, "poi": true}

var validCategories = map[string]bool{
	"cafe": true, "park": true, "dog_park": true, "water": true, "other": true,
}

// Validate enforces the structural contract on the model output. The model is
// an untrusted boundary: anything malformed is rejected, never coerced.
func (s *RouteSelection) Validate() error {
	if len(s.Waypoints) < 2 {
		return fmt.Errorf("%w: got %d waypoints, need at least 2", ErrInvalidSelection, len(s.Waypoints))
	}
	for i, wp := range s.Waypoints {
		if wp.Name == "" {
			return fmt.Errorf("%w: waypoint %d has no name", ErrInvalidSelection, i)
		}
		if !validRoles[wp.Role] {
			return fmt.Errorf("%w: waypoint %d has invalid role %q", ErrInvalidSelection, i, wp.Role)
		}
		if wp.Lat == 0 && wp.Lng == 0 {
			return fmt.Errorf("%w: waypoint %d has no coordinates", ErrInvalidSelection, i)
		}
		if !(types.Point{Lat: wp.Lat, Lng: wp.Lng}).Valid() {
			return fmt.Errorf("%w: waypoint %d has out-of-range coordinates (%f,%f)", ErrInvalidSelection, i, wp.Lat, wp.Lng)
		}
		if wp.Category != "" && !validCategories[wp.Category] {
			return fmt.Errorf("%w: waypoint %d has invalid category %q", ErrInvalidSelection, i, wp.Category)
		}
	}
	return nil
}
