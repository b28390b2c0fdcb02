package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"pawtrail/internal/route"
	"pawtrail/internal/types"
)

// DirectionsService computes walking paths via the Google Directions API.
type DirectionsService struct {
	client *maps.Client
}

// NewDirectionsService creates a new DirectionsService with the given API Key.
func NewDirectionsService(apiKey string) (*DirectionsService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DirectionsService{client: client}, nil
}

// WalkingRoute computes turn-by-turn walking directions through the ordered
// waypoints. Zero upstream routes surface as route.ErrDirections.
func (s *DirectionsService) WalkingRoute(ctx context.Context, waypoints []route.Waypoint) (*route.DirectionsResult, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 waypoints", route.ErrDirections)
	}

	var intermediates []string
	for _, wp := range waypoints[1 : len(waypoints)-1] {
		intermediates = append(intermediates, latLngParam(wp.Position))
	}

	r := &maps.DirectionsRequest{
		Origin:      latLngParam(waypoints[0].Position),
		Destination: latLngParam(waypoints[len(waypoints)-1].Position),
		Waypoints:   intermediates,
		Mode:        maps.TravelModeWalking,
		Units:       maps.UnitsMetric,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("directions api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, fmt.Errorf("%w: no walkable route through waypoints", route.ErrDirections)
	}

	return translateRoute(routes[0]), nil
}

func latLngParam(p types.Point) string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}

// translateRoute flattens a Google route into the DirectionsResult shape.
// Pure unit normalization; no business logic.
func translateRoute(r maps.Route) *route.DirectionsResult {
	result := &route.DirectionsResult{
		EncodedPolyline: r.OverviewPolyline.Points,
	}

	for i, leg := range r.Legs {
		if i == 0 {
			result.StartAddress = leg.StartAddress
		}
		result.EndAddress = leg.EndAddress
		result.TotalDistanceMeters += leg.Distance.Meters
		result.TotalDurationSeconds += int(leg.Duration.Seconds())

		for _, step := range leg.Steps {
			result.Steps = append(result.Steps, route.Step{
				DistanceMeters:  step.Distance.Meters,
				DurationSeconds: int(step.Duration.Seconds()),
				Instruction:     step.HTMLInstructions,
				StartLocation:   types.Point{Lat: step.StartLocation.Lat, Lng: step.StartLocation.Lng},
				EndLocation:     types.Point{Lat: step.EndLocation.Lat, Lng: step.EndLocation.Lng},
				Polyline:        step.Polyline.Points,
			})
		}
	}

	return result
}
