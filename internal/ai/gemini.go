package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements LLMProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Set a reasonable temperature for creative but structured output.
	model.SetTemperature(0.4)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// SelectWaypoints asks the model to compose a walking route from candidates.
func (p *GeminiProvider) SelectWaypoints(ctx context.Context, req SelectionRequest) (*RouteSelection, error) {
	prompt := buildSelectionPrompt(req)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	// Extract text from the response parts.
	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Clean up potential markdown formatting (though json mode should handle this, safety first).
	cleanJSON := cleanJSONString(responseText.String())

	selection, err := parseSelection(cleanJSON)
	if err != nil {
		return nil, err
	}
	return selection, nil
}

// parseSelection decodes and structurally validates the model's JSON output.
func parseSelection(raw string) (*RouteSelection, error) {
	var sel RouteSelection
	if err := json.Unmarshal([]byte(raw), &sel); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, raw)
	}
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	return &sel, nil
}

// buildSelectionPrompt constructs the instructions for the AI.
func buildSelectionPrompt(req SelectionRequest) string {
	locationLabel := req.LocationLabel
	if locationLabel == "" {
		locationLabel = "UNKNOWN_LOCATION"
	}
	mustInclude := "none"
	if len(req.MustInclude) > 0 {
		mustInclude = strings.Join(req.MustInclude, ", ")
	}
	softPrefs := "none"
	if len(req.SoftPreferences) > 0 {
		softPrefs = strings.Join(req.SoftPreferences, ", ")
	}
	routeShape := "an open route (start and end may differ)"
	if req.Circular {
		routeShape = "a circular route: the end waypoint MUST have the same coordinates as the start"
	}

	var candidates strings.Builder
	for i, c := range req.Candidates {
		fmt.Fprintf(&candidates, "%d. %s (categories: %s", i+1, c.Name, strings.Join(c.Categories, ", "))
		if c.Rating > 0 {
			fmt.Fprintf(&candidates, "; rating %.1f", c.Rating)
		}
		if c.DistanceFromOriginM > 0 {
			fmt.Fprintf(&candidates, "; %.0fm from origin", c.DistanceFromOriginM)
		}
		fmt.Fprintf(&candidates, "; at %.6f,%.6f; id: %s)\n", c.Lat, c.Lng, c.PlaceID)
	}

	return fmt.Sprintf(`Role: You are the route planner for "pawtrail", an app that designs dog-walking routes.

Task: compose one walking route for a dog owner starting at %s (%.6f,%.6f).

Target distance: %.1f km. A deviation of up to 10%% is acceptable.
Route shape: %s.
Must-include place categories: %s.
Soft preferences (nice to have, not mandatory): %s.

Candidate places (pick ONLY from this list for intermediate stops):
%s
RULES:

1. The route starts at the origin (role "start") and ends with a waypoint of role "end".
2. Pick 2 to 4 intermediate stops from the candidate list, each with role "poi".
3. Order the stops so the walk never backtracks over the same stretch.
4. Every must-include category MUST appear exactly once among the intermediate stops.
5. Prefer higher-rated places and places whose distance from origin fits the target.
6. Copy each chosen candidate's coordinates and id EXACTLY as given in the list.
7. Set "category" for each poi to one of: cafe, park, dog_park, water, other.
8. Respond with structured data only. No prose outside the JSON.

Output JSON Schema:
{
  "waypoints": [
    {"lat": number, "lng": number, "name": "string", "role": "start" | "poi" | "end", "category": "string (poi only)", "place_id": "string (poi only)"}
  ],
  "reasoning": "string (one short paragraph on why this route fits)"
}
`, locationLabel, req.OriginLat, req.OriginLng,
		req.TargetDistanceKm, routeShape, mustInclude, softPrefs, candidates.String())
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
