// README: Route planner orchestrates geocoding, POI discovery, AI waypoint
// selection and directions into one recommendation.
package route

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"pawtrail/internal/ai"
	"pawtrail/internal/types"
)

const (
	minTargetDistanceKm = 1
	maxTargetDistanceKm = 10

	// searchRadiusFactor gives the POI search a 50% buffer over the target
	// distance so the walk has real choices.
	searchRadiusFactor = 1.5
)

// Collaborator contracts. Implementations live in internal/maps, internal/ai
// and internal/infra; tests supply stubs.
type Geocoder interface {
	Geocode(ctx context.Context, locationText string) (*GeocodeResult, error)
}

type POIFinder interface {
	NearbySearch(ctx context.Context, origin types.Point, radiusMeters float64) ([]PointOfInterest, error)
}

type DirectionsProvider interface {
	WalkingRoute(ctx context.Context, waypoints []Waypoint) (*DirectionsResult, error)
}

type FeatureGate interface {
	RouteGenerationEnabled(ctx context.Context) bool
}

// Planner runs the route-generation pipeline. It holds no per-request state;
// any number of requests may run concurrently through one Planner.
type Planner struct {
	geocoder   Geocoder
	pois       POIFinder
	selector   ai.LLMProvider
	directions DirectionsProvider
	gate       FeatureGate
}

func NewPlanner(geocoder Geocoder, pois POIFinder, selector ai.LLMProvider, directions DirectionsProvider, gate FeatureGate) *Planner {
	return &Planner{
		geocoder:   geocoder,
		pois:       pois,
		selector:   selector,
		directions: directions,
		gate:       gate,
	}
}

// GenerateCustomRoute runs the full pipeline for one request. All-or-nothing:
// a failure at any stage discards prior work and surfaces exactly one of the
// taxonomy errors in errors.go.
func (p *Planner) GenerateCustomRoute(ctx context.Context, locationText string, prefs Preferences) (*Recommendation, error) {
	if p.gate != nil && !p.gate.RouteGenerationEnabled(ctx) {
		return nil, ErrFeatureDisabled
	}

	// Input validation happens before any external call.
	locationText = strings.TrimSpace(locationText)
	if len(locationText) < 2 {
		return nil, ErrValidation
	}
	if prefs.TargetDistanceKm < minTargetDistanceKm || prefs.TargetDistanceKm > maxTargetDistanceKm {
		return nil, ErrValidation
	}

	// 1. Resolve the starting location.
	origin, err := p.geocoder.Geocode(ctx, locationText)
	if err != nil {
		return nil, stageError("geocode", err, ErrLocationNotFound)
	}

	// 2. Discover candidate POIs around the origin.
	radius := prefs.TargetDistanceKm * 1000 * searchRadiusFactor
	candidates, err := p.pois.NearbySearch(ctx, origin.Location, radius)
	if err != nil {
		return nil, stageError("poi search", err, ErrNoCandidates)
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	// 3. Shuffle, truncate, and hand over to the model.
	pool := truncateCandidates(shuffleCandidates(candidates))
	selection, err := p.selector.SelectWaypoints(ctx, selectionRequest(origin, pool, prefs))
	if err != nil {
		return nil, stageError("waypoint selection", err, ErrAIService)
	}
	if selection.Reasoning != "" {
		log.Printf("route selection reasoning: %s", selection.Reasoning)
	}

	waypoints, err := toWaypoints(selection, origin, prefs)
	if err != nil {
		return nil, stageError("waypoint selection", err, ErrAIService)
	}
	enrichPlaceIDs(waypoints, candidates)

	// 4. Compute the actual walking path.
	directions, err := p.directions.WalkingRoute(ctx, waypoints)
	if err != nil {
		return nil, stageError("directions", err, ErrDirections)
	}

	// 5. Package the result.
	rec := assemble(waypoints, directions, prefs)
	return &rec, nil
}

// taxonomy is the closed set of caller-visible categories.
var taxonomy = []error{
	ErrValidation,
	ErrLocationNotFound,
	ErrNoCandidates,
	ErrAIService,
	ErrDirections,
	ErrFeatureDisabled,
}

// stageError maps a stage failure onto the pipeline taxonomy. Errors already
// carrying a category pass through unchanged; anything else is logged for
// operators and replaced by the stage's category so raw upstream detail never
// reaches users.
func stageError(stage string, err error, category error) error {
	for _, cat := range taxonomy {
		if errors.Is(err, cat) {
			return err
		}
	}
	log.Printf("%s stage failed: %v", stage, err)
	return category
}

func selectionRequest(origin *GeocodeResult, pool []PointOfInterest, prefs Preferences) ai.SelectionRequest {
	req := ai.SelectionRequest{
		OriginLat:        origin.Location.Lat,
		OriginLng:        origin.Location.Lng,
		LocationLabel:    origin.FormattedAddress,
		TargetDistanceKm: prefs.TargetDistanceKm,
		MustInclude:      prefs.MustInclude,
		SoftPreferences:  prefs.SoftPreferences,
		Circular:         prefs.Circular,
	}
	for _, c := range pool {
		req.Candidates = append(req.Candidates, ai.CandidatePlace{
			PlaceID:             c.PlaceID,
			Name:                c.Name,
			Categories:          c.Categories,
			Lat:                 c.Location.Lat,
			Lng:                 c.Location.Lng,
			Rating:              c.Rating,
			DistanceFromOriginM: c.DistanceFromOriginM,
		})
	}
	return req
}

// toWaypoints converts the validated model output into domain waypoints.
// The start is pinned to the geocoded origin, and circular routes end where
// they began, whatever coordinates the model echoed back.
func toWaypoints(sel *ai.RouteSelection, origin *GeocodeResult, prefs Preferences) ([]Waypoint, error) {
	if len(sel.Waypoints) < 2 {
		return nil, fmt.Errorf("%w: got %d waypoints, need at least 2", ai.ErrInvalidSelection, len(sel.Waypoints))
	}

	wps := make([]Waypoint, 0, len(sel.Waypoints))
	for _, sw := range sel.Waypoints {
		wps = append(wps, Waypoint{
			Position: types.Point{Lat: sw.Lat, Lng: sw.Lng},
			Name:     sw.Name,
			Role:     sw.Role,
			Category: sw.Category,
			PlaceID:  sw.PlaceID,
		})
	}

	if wps[0].Role != RoleStart || wps[len(wps)-1].Role != RoleEnd {
		return nil, fmt.Errorf("%w: first/last waypoints must be start/end", ai.ErrInvalidSelection)
	}

	wps[0].Position = origin.Location
	if prefs.Circular {
		wps[len(wps)-1].Position = origin.Location
	}
	return wps, nil
}

// enrichPlaceIDs recovers missing place ids by matching waypoint coordinates
// (rounded to 6 decimal places) against the original candidate set. A miss is
// left absent: it only degrades deep links, never the route itself.
func enrichPlaceIDs(waypoints []Waypoint, candidates []PointOfInterest) {
	byCoord := make(map[string]string, len(candidates))
	for _, c := range candidates {
		byCoord[coordKey(c.Location)] = c.PlaceID
	}
	for i := range waypoints {
		if waypoints[i].Role != RolePOI || waypoints[i].PlaceID != "" {
			continue
		}
		if id, ok := byCoord[coordKey(waypoints[i].Position)]; ok {
			waypoints[i].PlaceID = id
		}
	}
}

func coordKey(p types.Point) string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lng)
}
