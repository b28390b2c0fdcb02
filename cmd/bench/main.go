// README: Offline benchmark of the route pipeline against in-process fakes.
// Measures per-request latency and how much route variety the candidate
// shuffle produces, without spending any upstream API quota.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"pawtrail/internal/ai"
	"pawtrail/internal/route"
	"pawtrail/internal/types"
)

type fakeGeocoder struct{}

func (fakeGeocoder) Geocode(_ context.Context, text string) (*route.GeocodeResult, error) {
	return &route.GeocodeResult{
		Location:         types.Point{Lat: 51.5072, Lng: -0.1276},
		FormattedAddress: text,
		PlaceID:          "origin",
	}, nil
}

type fakePOIFinder struct {
	candidates []route.PointOfInterest
}

func (f fakePOIFinder) NearbySearch(_ context.Context, _ types.Point, _ float64) ([]route.PointOfInterest, error) {
	return f.candidates, nil
}

// fakeSelector deterministically takes the first two candidates it is shown,
// so distinct outputs across runs measure the shuffle directly.
type fakeSelector struct{}

func (fakeSelector) SelectWaypoints(_ context.Context, req ai.SelectionRequest) (*ai.RouteSelection, error) {
	sel := &ai.RouteSelection{}
	sel.Waypoints = append(sel.Waypoints, ai.SelectedWaypoint{
		Lat: req.OriginLat, Lng: req.OriginLng, Name: req.LocationLabel, Role: "start",
	})
	for _, c := range req.Candidates[:2] {
		sel.Waypoints = append(sel.Waypoints, ai.SelectedWaypoint{
			Lat: c.Lat, Lng: c.Lng, Name: c.Name, Role: "poi", Category: "other", PlaceID: c.PlaceID,
		})
	}
	sel.Waypoints = append(sel.Waypoints, ai.SelectedWaypoint{
		Lat: req.OriginLat, Lng: req.OriginLng, Name: req.LocationLabel, Role: "end",
	})
	return sel, nil
}

type fakeDirections struct{}

func (fakeDirections) WalkingRoute(_ context.Context, waypoints []route.Waypoint) (*route.DirectionsResult, error) {
	return &route.DirectionsResult{
		TotalDistanceMeters:  3100,
		TotalDurationSeconds: 2400,
		StartAddress:         waypoints[0].Name,
		EndAddress:           waypoints[len(waypoints)-1].Name,
		EncodedPolyline:      "fake",
	}, nil
}

func main() {
	runs := flag.Int("runs", 1000, "number of pipeline runs")
	poolSize := flag.Int("pool", 30, "candidate pool size")
	flag.Parse()

	var candidates []route.PointOfInterest
	for i := 0; i < *poolSize; i++ {
		candidates = append(candidates, route.PointOfInterest{
			PlaceID:  fmt.Sprintf("p%d", i),
			Name:     fmt.Sprintf("Place %d", i),
			Location: types.Point{Lat: 51.5 + float64(i)*0.001, Lng: -0.12},
		})
	}

	planner := route.NewPlanner(fakeGeocoder{}, fakePOIFinder{candidates: candidates}, fakeSelector{}, fakeDirections{}, nil)
	prefs := route.Preferences{TargetDistanceKm: 3, Circular: true}

	distinct := make(map[string]int)
	start := time.Now()
	for i := 0; i < *runs; i++ {
		rec, err := planner.GenerateCustomRoute(context.Background(), "Riverside Town", prefs)
		if err != nil {
			log.Fatalf("run %d failed: %v", i, err)
		}
		var names []string
		for _, wp := range rec.Waypoints {
			names = append(names, wp.Name)
		}
		distinct[strings.Join(names, "|")]++
	}
	elapsed := time.Since(start)

	fmt.Printf("runs:            %d\n", *runs)
	fmt.Printf("total time:      %s\n", elapsed)
	fmt.Printf("avg per run:     %s\n", elapsed/time.Duration(*runs))
	fmt.Printf("distinct routes: %d\n", len(distinct))
}
