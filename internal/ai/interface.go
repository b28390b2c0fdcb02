package ai

import (
	"context"
)

// LLMProvider defines the contract for the waypoint-selection model call.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type LLMProvider interface {
	// SelectWaypoints asks the model to pick an ordered walking route from the
	// candidate places and returns its validated structured output.
	SelectWaypoints(ctx context.Context, req SelectionRequest) (*RouteSelection, error)
}
