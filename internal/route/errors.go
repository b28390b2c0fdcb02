// README: Closed error taxonomy surfaced to callers of the route pipeline.
package route

import "errors"

// Every failure of the pipeline maps onto exactly one of these. Messages are
// user-facing; raw upstream errors are logged server-side only.
var (
	ErrValidation       = errors.New("invalid request: check the location text and target distance")
	ErrLocationNotFound = errors.New("location not found: try a more specific address")
	ErrNoCandidates     = errors.New("no points of interest nearby: try a different area")
	ErrAIService        = errors.New("route suggestion failed: please try again")
	ErrDirections       = errors.New("no walkable path between stops: try again or adjust preferences")
	ErrFeatureDisabled  = errors.New("route generation is currently disabled")
)
