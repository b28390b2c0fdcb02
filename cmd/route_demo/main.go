package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"pawtrail/internal/ai"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	// Simulated candidate pool around a fictional town centre.
	req := ai.SelectionRequest{
		OriginLat:        51.5072,
		OriginLng:        -0.1276,
		LocationLabel:    "Riverside Town Centre",
		TargetDistanceKm: 3,
		MustInclude:      []string{"cafe"},
		SoftPreferences:  []string{"off-leash", "scenic views"},
		Circular:         true,
		Candidates: []ai.CandidatePlace{
			{PlaceID: "p1", Name: "Riverside Park", Categories: []string{"park"}, Lat: 51.5100, Lng: -0.1300, Rating: 4.6, DistanceFromOriginM: 400},
			{PlaceID: "p2", Name: "The Wagging Tail Cafe", Categories: []string{"cafe"}, Lat: 51.5110, Lng: -0.1250, Rating: 4.8, DistanceFromOriginM: 550},
			{PlaceID: "p3", Name: "Hound Hill Dog Park", Categories: []string{"dog_park", "park"}, Lat: 51.5050, Lng: -0.1330, Rating: 4.3, DistanceFromOriginM: 700},
			{PlaceID: "p4", Name: "Canal Basin", Categories: []string{"water"}, Lat: 51.5030, Lng: -0.1220, Rating: 4.1, DistanceFromOriginM: 800},
		},
	}

	result, err := provider.SelectWaypoints(ctx, req)
	if err != nil {
		log.Fatalf("Error selecting waypoints: %v", err)
	}

	fmt.Printf("Reasoning: %s\n", result.Reasoning)
	for i, wp := range result.Waypoints {
		fmt.Printf("%d. [%s] %s (%.6f,%.6f) category=%s id=%s\n",
			i+1, wp.Role, wp.Name, wp.Lat, wp.Lng, wp.Category, wp.PlaceID)
	}
}
