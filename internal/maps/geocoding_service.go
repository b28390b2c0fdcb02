package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"pawtrail/internal/route"
	"pawtrail/internal/types"
)

// GeocodingService resolves free-text locations via the Google Geocoding API.
type GeocodingService struct {
	client *maps.Client
}

// NewGeocodingService creates a new GeocodingService with the given API Key.
func NewGeocodingService(apiKey string) (*GeocodingService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodingService{client: client}, nil
}

// Geocode resolves locationText into coordinates and a canonical address.
// Zero upstream results surface as route.ErrLocationNotFound.
func (s *GeocodingService) Geocode(ctx context.Context, locationText string) (*route.GeocodeResult, error) {
	r := &maps.GeocodingRequest{
		Address: locationText,
	}

	results, err := s.client.Geocode(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", route.ErrLocationNotFound, locationText)
	}

	best := results[0]
	return &route.GeocodeResult{
		Location: types.Point{
			Lat: best.Geometry.Location.Lat,
			Lng: best.Geometry.Location.Lng,
		},
		FormattedAddress: best.FormattedAddress,
		PlaceID:          best.PlaceID,
	}, nil
}
