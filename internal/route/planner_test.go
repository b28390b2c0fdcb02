package route

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"pawtrail/internal/ai"
	"pawtrail/internal/types"
)

var testOrigin = types.Point{Lat: 51.5072, Lng: -0.1276}

type stubGeocoder struct {
	calls  int
	result *GeocodeResult
	err    error
}

func (s *stubGeocoder) Geocode(_ context.Context, _ string) (*GeocodeResult, error) {
	s.calls++
	return s.result, s.err
}

type stubPOIFinder struct {
	calls  int
	radius float64
	pois   []PointOfInterest
	err    error
}

func (s *stubPOIFinder) NearbySearch(_ context.Context, _ types.Point, radiusMeters float64) ([]PointOfInterest, error) {
	s.calls++
	s.radius = radiusMeters
	return s.pois, s.err
}

type stubSelector struct {
	calls   int
	lastReq ai.SelectionRequest
	fn      func(req ai.SelectionRequest) (*ai.RouteSelection, error)
}

func (s *stubSelector) SelectWaypoints(_ context.Context, req ai.SelectionRequest) (*ai.RouteSelection, error) {
	s.calls++
	s.lastReq = req
	return s.fn(req)
}

type stubDirections struct {
	calls  int
	result *DirectionsResult
	err    error
}

func (s *stubDirections) WalkingRoute(_ context.Context, _ []Waypoint) (*DirectionsResult, error) {
	s.calls++
	return s.result, s.err
}

type stubGate struct{ enabled bool }

func (s stubGate) RouteGenerationEnabled(_ context.Context) bool { return s.enabled }

func testCandidates() []PointOfInterest {
	return []PointOfInterest{
		{PlaceID: "p1", Name: "Riverside Park", Location: types.Point{Lat: 51.5100, Lng: -0.1300}, Categories: []string{CategoryPark}, Rating: 4.6, DistanceFromOriginM: 400},
		{PlaceID: "p2", Name: "The Wagging Tail Cafe", Location: types.Point{Lat: 51.5110, Lng: -0.1250}, Categories: []string{CategoryCafe}, Rating: 4.8, DistanceFromOriginM: 550},
		{PlaceID: "p3", Name: "Hound Hill Dog Park", Location: types.Point{Lat: 51.5050, Lng: -0.1330}, Categories: []string{CategoryDogPark, CategoryPark}, Rating: 4.3, DistanceFromOriginM: 700},
		{PlaceID: "p4", Name: "Canal Basin", Location: types.Point{Lat: 51.5030, Lng: -0.1220}, Categories: []string{CategoryWater}, DistanceFromOriginM: 800},
		{PlaceID: "p5", Name: "Old Mill Green", Location: types.Point{Lat: 51.5010, Lng: -0.1290}, Categories: []string{CategoryPark}, Rating: 4.0, DistanceFromOriginM: 950},
	}
}

// cafeParkSelector mimics a well-behaved model: start at the origin, one cafe
// stop, one park stop, end back at the origin.
func cafeParkSelector(req ai.SelectionRequest) (*ai.RouteSelection, error) {
	pick := func(category string) ai.CandidatePlace {
		for _, c := range req.Candidates {
			for _, cat := range c.Categories {
				if cat == category {
					return c
				}
			}
		}
		return ai.CandidatePlace{}
	}
	cafe := pick(CategoryCafe)
	park := pick(CategoryPark)

	return &ai.RouteSelection{
		Waypoints: []ai.SelectedWaypoint{
			{Lat: req.OriginLat, Lng: req.OriginLng, Name: "Start", Role: "start"},
			{Lat: cafe.Lat, Lng: cafe.Lng, Name: cafe.Name, Role: "poi", Category: CategoryCafe, PlaceID: cafe.PlaceID},
			{Lat: park.Lat, Lng: park.Lng, Name: park.Name, Role: "poi", Category: CategoryPark, PlaceID: park.PlaceID},
			{Lat: req.OriginLat, Lng: req.OriginLng, Name: "End", Role: "end"},
		},
		Reasoning: "cafe first, then a park loop home",
	}, nil
}

func newTestPlanner(geocoder *stubGeocoder, pois *stubPOIFinder, selector *stubSelector, directions *stubDirections, gate FeatureGate) *Planner {
	return NewPlanner(geocoder, pois, selector, directions, gate)
}

func defaultStubs() (*stubGeocoder, *stubPOIFinder, *stubSelector, *stubDirections) {
	geocoder := &stubGeocoder{result: &GeocodeResult{
		Location:         testOrigin,
		FormattedAddress: "Riverside Town",
		PlaceID:          "origin-id",
	}}
	pois := &stubPOIFinder{pois: testCandidates()}
	selector := &stubSelector{fn: cafeParkSelector}
	directions := &stubDirections{result: &DirectionsResult{
		TotalDistanceMeters:  3100,
		TotalDurationSeconds: 2400,
		StartAddress:         "Riverside Town",
		EndAddress:           "Riverside Town",
		EncodedPolyline:      "abc123",
	}}
	return geocoder, pois, selector, directions
}

func TestGenerateCustomRoute_ValidationFailsBeforeExternalCalls(t *testing.T) {
	tests := []struct {
		name     string
		location string
		distance float64
	}{
		{"empty location", "", 3},
		{"whitespace location", "  a ", 3},
		{"distance too small", "Riverside Town", 0.9},
		{"distance too large", "Riverside Town", 10.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocoder, pois, selector, directions := defaultStubs()
			p := newTestPlanner(geocoder, pois, selector, directions, nil)

			_, err := p.GenerateCustomRoute(context.Background(), tt.location, Preferences{TargetDistanceKm: tt.distance, Circular: true})
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if geocoder.calls != 0 || pois.calls != 0 || selector.calls != 0 || directions.calls != 0 {
				t.Errorf("external calls made on invalid input: %d/%d/%d/%d",
					geocoder.calls, pois.calls, selector.calls, directions.calls)
			}
		})
	}
}

func TestGenerateCustomRoute_FeatureDisabled(t *testing.T) {
	geocoder, pois, selector, directions := defaultStubs()
	p := newTestPlanner(geocoder, pois, selector, directions, stubGate{enabled: false})

	_, err := p.GenerateCustomRoute(context.Background(), "Riverside Town", Preferences{TargetDistanceKm: 3, Circular: true})
	if !errors.Is(err, ErrFeatureDisabled) {
		t.Fatalf("expected ErrFeatureDisabled, got %v", err)
	}
	if geocoder.calls != 0 {
		t.Errorf("geocoder called despite disabled gate")
	}
}

func TestGenerateCustomRoute_LocationNotFoundPassesThrough(t *testing.T) {
	geocoder, pois, selector, directions := defaultStubs()
	geocoder.result = nil
	geocoder.err = fmt.Errorf("%w: %q", ErrLocationNotFound, "nowhere")
	p := newTestPlanner(geocoder, pois, selector, directions, nil)

	_, err := p.GenerateCustomRoute(context.Background(), "nowhere at all", Preferences{TargetDistanceKm: 3})
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestGenerateCustomRoute_GeocodeTransportErrorMapped(t *testing.T) {
	geocoder, pois, selector, directions := defaultStubs()
	geocoder.result = nil
	geocoder.err = errors.New("connection refused")
	p := newTestPlanner(geocoder, pois, selector, directions, nil)

	_, err := p.GenerateCustomRoute(context.Background(), "Riverside Town", Preferences{TargetDistanceKm: 3})
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestGenerateCustomRoute_NoCandidates_SkipsLaterStages(t *testing.T) {
	geocoder, pois, selector, directions := defaultStubs()
	pois.pois = nil
	p := newTestPlanner(geocoder, pois, selector, directions, nil)

	_, err := p.GenerateCustomRoute(context.Background(), "Riverside Town", Preferences{TargetDistanceKm: 3})
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
	if selector.calls != 0 {
		t.Errorf("selector invoked after empty POI search")
	}
	if directions.calls != 0 {
		t.Errorf("directions invoked after empty POI search")
	}
}

func TestGenerateCustomRoute_SearchRadiusBuffer(t *testing.T) {
	geocoder, pois, selector, directions := defaultStubs()
	p := newTestPlanner(geocoder, pois, selector, directions, nil)

	_, err := p.GenerateCustomRoute(context.Background(), "Riverside Town", Preferences{TargetDistanceKm: 4, Circular: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pois.radius != 6000 {
		t.Errorf("search radius = %.0f, want 6000", pois.radius)
	}
}

func TestGenerateCustomRoute_SelectorFailureMapsToAIService(t *testing.T) {
	tests := []struct {
		name string
		fn   func(req ai.SelectionRequest) (*ai.RouteSelection, error)
	}{
		{"transport error", func(ai.SelectionRequest) (*ai.RouteSelection, error) {
			return nil, errors.New("quota exceeded")
		}},
		{"too few waypoints", func(req ai.SelectionRequest) (*ai.RouteSelection, error) {
			return &ai.RouteSelection{Waypoints: []ai.SelectedWaypoint{
				{Lat: req.OriginLat, Lng: req.OriginLng, Name: "Start", Role: "start"},
			}}, nil
		}},
		{"missing start/end roles", func(req ai.SelectionRequest) (*ai.RouteSelection, error) {
			return &ai.RouteSelection{Waypoints: []ai.SelectedWaypoint{
				{Lat: 51.51, Lng: -0.13, Name: "Riverside Park", Role: "poi"},
				{Lat: 51.52, Lng: -0.12, Name: "Canal Basin", Role: "poi"},
			}}, nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocoder, pois, selector, directions := defaultStubs()
			selector.fn = tt.fn
			p := newTestPlanner(geocoder, pois, selector, directions, nil)

			_, err := p.GenerateCustomRoute(context.Background(), "Riverside Town", Preferences{TargetDistanceKm: 3, Circular: true})
			if !errors.Is(err, ErrAIService) {
				t.Fatalf("expected ErrAIService, got %v", err)
			}
			if directions.calls != 0 {
				t.Errorf("directions invoked after selector failure")
			}
		})
	}
}

func TestGenerateCustomRoute_DirectionsFailureMapped(t *testing.T) {
	geocoder, pois, selector, directions := defaultStubs()
	directions.result = nil
	directions.err = errors.New("ZERO_RESULTS")
	p := newTestPlanner(geocoder, pois, selector, directions, nil)

	_, err := p.GenerateCustomRoute(context.Background(), "Riverside Town", Preferences{TargetDistanceKm: 3, Circular: true})
	if !errors.Is(err, ErrDirections) {
		t.Fatalf("expected ErrDirections, got %v", err)
	}
}

func TestGenerateCustomRoute_EndToEnd(t *testing.T) {
	geocoder, pois, selector, directions := defaultStubs()
	p := newTestPlanner(geocoder, pois, selector, directions, stubGate{enabled: true})

	rec, err := p.GenerateCustomRoute(context.Background(), "Riverside Town", Preferences{
		TargetDistanceKm: 3,
		MustInclude:      []string{CategoryCafe},
		Circular:         true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.Waypoints) < 2 {
		t.Fatalf("waypoint count = %d, want >= 2", len(rec.Waypoints))
	}
	first, last := rec.Waypoints[0], rec.Waypoints[len(rec.Waypoints)-1]
	if first.Position != last.Position {
		t.Errorf("circular route does not close: %+v vs %+v", first.Position, last.Position)
	}
	if first.Position != testOrigin {
		t.Errorf("route does not start at origin: %+v", first.Position)
	}

	cafes := 0
	for _, wp := range rec.Waypoints {
		if wp.Category == CategoryCafe {
			cafes++
		}
	}
	if cafes != 1 {
		t.Errorf("cafe waypoints = %d, want exactly 1", cafes)
	}

	// Label comes from the directions result, not the requested 3km.
	if rec.EstimatedDistanceLabel != "3.1km" {
		t.Errorf("EstimatedDistanceLabel = %q, want 3.1km", rec.EstimatedDistanceLabel)
	}
	if rec.Directions == nil || rec.Directions.TotalDurationSeconds != 2400 {
		t.Errorf("directions not attached: %+v", rec.Directions)
	}
	if rec.RouteName == "" || rec.Highlights == "" {
		t.Errorf("missing name or highlights: %q / %q", rec.RouteName, rec.Highlights)
	}
}

func TestGenerateCustomRoute_CandidateBudget(t *testing.T) {
	geocoder, pois, selector, directions := defaultStubs()
	pois.pois = makePOIs(35)
	for i := range pois.pois {
		pois.pois[i].Location = types.Point{Lat: 51.5 + float64(i)*0.001, Lng: -0.12}
		pois.pois[i].Categories = []string{CategoryPark}
	}
	p := newTestPlanner(geocoder, pois, selector, directions, nil)

	_, err := p.GenerateCustomRoute(context.Background(), "Riverside Town", Preferences{TargetDistanceKm: 3, Circular: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(selector.lastReq.Candidates); got != promptCandidateBudget {
		t.Errorf("selector saw %d candidates, want %d", got, promptCandidateBudget)
	}
}

func TestGenerateCustomRoute_EnrichesMissingPlaceID(t *testing.T) {
	geocoder, pois, selector, directions := defaultStubs()
	selector.fn = func(req ai.SelectionRequest) (*ai.RouteSelection, error) {
		// Model echoes a candidate's coordinates but drops its id.
		return &ai.RouteSelection{Waypoints: []ai.SelectedWaypoint{
			{Lat: req.OriginLat, Lng: req.OriginLng, Name: "Start", Role: "start"},
			{Lat: 51.5110, Lng: -0.1250, Name: "The Wagging Tail Cafe", Role: "poi", Category: CategoryCafe},
			{Lat: req.OriginLat, Lng: req.OriginLng, Name: "End", Role: "end"},
		}}, nil
	}
	p := newTestPlanner(geocoder, pois, selector, directions, nil)

	rec, err := p.GenerateCustomRoute(context.Background(), "Riverside Town", Preferences{TargetDistanceKm: 3, Circular: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Waypoints[1].PlaceID != "p2" {
		t.Errorf("place id not enriched: %q", rec.Waypoints[1].PlaceID)
	}
}

func TestGenerateCustomRoute_UnrecoverablePlaceIDLeftAbsent(t *testing.T) {
	geocoder, pois, selector, directions := defaultStubs()
	selector.fn = func(req ai.SelectionRequest) (*ai.RouteSelection, error) {
		return &ai.RouteSelection{Waypoints: []ai.SelectedWaypoint{
			{Lat: req.OriginLat, Lng: req.OriginLng, Name: "Start", Role: "start"},
			{Lat: 51.9999, Lng: -0.9999, Name: "Mystery Meadow", Role: "poi", Category: CategoryPark},
			{Lat: req.OriginLat, Lng: req.OriginLng, Name: "End", Role: "end"},
		}}, nil
	}
	p := newTestPlanner(geocoder, pois, selector, directions, nil)

	rec, err := p.GenerateCustomRoute(context.Background(), "Riverside Town", Preferences{TargetDistanceKm: 3, Circular: true})
	if err != nil {
		t.Fatalf("missing place id should not fail the pipeline: %v", err)
	}
	if rec.Waypoints[1].PlaceID != "" {
		t.Errorf("expected absent place id, got %q", rec.Waypoints[1].PlaceID)
	}
}
