// README: Route generation domain model (POIs, waypoints, directions, recommendation).
package route

import (
	"time"

	"pawtrail/internal/types"
)

// GeocodeResult is the resolved form of a free-text location.
type GeocodeResult struct {
	Location         types.Point
	FormattedAddress string
	PlaceID          string
}

// PointOfInterest is a candidate stop discovered near the origin.
// DistanceFromOriginM is 0 when unknown; Rating is 0 when the place has none.
type PointOfInterest struct {
	PlaceID             string
	Name                string
	Location            types.Point
	Categories          []string
	Rating              float32
	DistanceFromOriginM float64
}

// Waypoint roles and categories.
const (
	RoleStart = "start"
	RoleEnd   = "end"
	RolePOI   = "poi"
)

const (
	CategoryCafe    = "cafe"
	CategoryPark    = "park"
	CategoryDogPark = "dog_park"
	CategoryWater   = "water"
	CategoryOther   = "other"
)

// Waypoint is one ordered stop in a generated route.
type Waypoint struct {
	Position types.Point `json:"position"`
	Name     string      `json:"name"`
	Role     string      `json:"role"`
	Category string      `json:"category,omitempty"`
	PlaceID  string      `json:"place_id,omitempty"`
}

// Preferences are the caller-supplied knobs for route generation.
type Preferences struct {
	TargetDistanceKm float64
	MustInclude      []string
	SoftPreferences  []string
	Circular         bool
}

// Step is one turn-by-turn instruction of the walking path.
type Step struct {
	DistanceMeters  int         `json:"distance_meters"`
	DurationSeconds int         `json:"duration_seconds"`
	Instruction     string      `json:"instruction"`
	StartLocation   types.Point `json:"start_location"`
	EndLocation     types.Point `json:"end_location"`
	Polyline        string      `json:"polyline"`
}

// DirectionsResult is the computed walking path connecting the waypoints.
type DirectionsResult struct {
	TotalDistanceMeters  int    `json:"total_distance_meters"`
	TotalDurationSeconds int    `json:"total_duration_seconds"`
	StartAddress         string `json:"start_address"`
	EndAddress           string `json:"end_address"`
	EncodedPolyline      string `json:"encoded_polyline"`
	Steps                []Step `json:"steps"`
}

// Recommendation is the pipeline's terminal artifact. It is never mutated
// after assembly; saving it later converts it into a walk record.
type Recommendation struct {
	RouteName              string            `json:"route_name"`
	Waypoints              []Waypoint        `json:"waypoints"`
	EstimatedDistanceLabel string            `json:"estimated_distance_label"`
	Highlights             string            `json:"highlights"`
	Directions             *DirectionsResult `json:"directions,omitempty"`
	GeneratedAt            time.Time         `json:"generated_at"`
}
