package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"

	"pawtrail/internal/route"
	"pawtrail/internal/types"
)

// maxSearchRadiusM is the Places Nearby Search radius ceiling.
const maxSearchRadiusM = 50000

// searchSpec is one Nearby Search pass; dog-relevant places span several
// Google place types, so candidates are gathered over multiple passes and
// de-duplicated by place id.
type searchSpec struct {
	placeType maps.PlaceType
	keyword   string
}

var candidateSearches = []searchSpec{
	{placeType: maps.PlaceTypePark},
	{placeType: maps.PlaceTypeCafe},
	{keyword: "dog park"},
	{keyword: "dog friendly water"},
}

// PlacesService discovers candidate points of interest via the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// capRadius clamps the requested radius to the API ceiling.
func capRadius(radiusMeters float64) uint {
	if radiusMeters > maxSearchRadiusM {
		return maxSearchRadiusM
	}
	if radiusMeters < 1 {
		return 1
	}
	return uint(radiusMeters)
}

// NearbySearch returns candidate POIs around origin, nearest first. An empty
// result is not an error here; the pipeline decides what that means.
func (s *PlacesService) NearbySearch(ctx context.Context, origin types.Point, radiusMeters float64) ([]route.PointOfInterest, error) {
	seen := make(map[string]bool)
	var candidates []route.PointOfInterest
	var lastErr error

	for _, spec := range candidateSearches {
		r := &maps.NearbySearchRequest{
			Location: &maps.LatLng{Lat: origin.Lat, Lng: origin.Lng},
			Radius:   capRadius(radiusMeters),
			Type:     spec.placeType,
			Keyword:  spec.keyword,
		}

		resp, err := s.client.NearbySearch(ctx, r)
		if err != nil {
			// One failed pass should not sink the others.
			lastErr = err
			continue
		}

		for _, result := range resp.Results {
			if result.PlaceID == "" || seen[result.PlaceID] {
				continue
			}
			seen[result.PlaceID] = true

			loc := types.Point{
				Lat: result.Geometry.Location.Lat,
				Lng: result.Geometry.Location.Lng,
			}
			candidates = append(candidates, route.PointOfInterest{
				PlaceID:             result.PlaceID,
				Name:                result.Name,
				Location:            loc,
				Categories:          categorize(result.Name, result.Types),
				Rating:              result.Rating,
				DistanceFromOriginM: haversineKm(origin.Lat, origin.Lng, loc.Lat, loc.Lng) * 1000,
			})
		}
	}

	if len(candidates) == 0 && lastErr != nil {
		return nil, fmt.Errorf("places api error: %w", lastErr)
	}

	sortByDistance(candidates, func(p route.PointOfInterest) float64 { return p.DistanceFromOriginM })
	return candidates, nil
}

// categorize maps Google place types (plus name hints) onto the route
// category vocabulary.
func categorize(name string, googleTypes []string) []string {
	set := make(map[string]bool)
	lower := strings.ToLower(name)

	if strings.Contains(lower, "dog park") || strings.Contains(lower, "dog run") {
		set[route.CategoryDogPark] = true
	}
	for _, t := range googleTypes {
		switch t {
		case "park":
			set[route.CategoryPark] = true
		case "cafe", "coffee_shop":
			set[route.CategoryCafe] = true
		case "natural_feature":
			set[route.CategoryWater] = true
		}
	}
	if strings.Contains(lower, "lake") || strings.Contains(lower, "river") || strings.Contains(lower, "beach") {
		set[route.CategoryWater] = true
	}
	if len(set) == 0 {
		set[route.CategoryOther] = true
	}

	var out []string
	for _, c := range []string{route.CategoryPark, route.CategoryDogPark, route.CategoryCafe, route.CategoryWater, route.CategoryOther} {
		if set[c] {
			out = append(out, c)
		}
	}
	return out
}
