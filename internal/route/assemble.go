// Package route — assemble derives the presentational parts of a
// recommendation. Deterministic, no external calls.
package route

import (
	"fmt"
	"strings"
	"time"
)

// assemble packages waypoints and directions into the final recommendation.
func assemble(waypoints []Waypoint, directions *DirectionsResult, prefs Preferences) Recommendation {
	return Recommendation{
		RouteName:              routeName(waypoints, prefs),
		Waypoints:              waypoints,
		EstimatedDistanceLabel: distanceLabel(directions.TotalDistanceMeters),
		Highlights:             highlights(waypoints, prefs),
		Directions:             directions,
		GeneratedAt:            time.Now(),
	}
}

// routeName names the route after the first intermediate stop, falling back
// to a generic circular-walk name when there is none.
func routeName(waypoints []Waypoint, prefs Preferences) string {
	for _, wp := range waypoints {
		if wp.Role == RolePOI && wp.Name != "" {
			return fmt.Sprintf("%s Loop (%gkm)", abbreviateName(wp.Name), prefs.TargetDistanceKm)
		}
	}
	return fmt.Sprintf("%gkm Circular Walk", prefs.TargetDistanceKm)
}

// abbreviateName shortens a place name for use in a route title: anything
// after the first comma is dropped, then at most the first two words remain.
func abbreviateName(name string) string {
	if i := strings.Index(name, ","); i >= 0 {
		name = name[:i]
	}
	words := strings.Fields(name)
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, " ")
}

// distanceLabel renders the walked distance, not the requested one, since the
// actual path may deviate from the target.
func distanceLabel(totalMeters int) string {
	return fmt.Sprintf("%.1fkm", float64(totalMeters)/1000)
}

// highlights joins the applicable highlight clauses; clauses that do not
// apply are simply absent.
func highlights(waypoints []Waypoint, prefs Preferences) string {
	var clauses []string

	var stops []string
	for _, wp := range waypoints {
		if wp.Role == RolePOI && wp.Name != "" {
			stops = append(stops, wp.Name)
		}
	}
	if len(stops) > 0 {
		clauses = append(clauses, "via "+strings.Join(stops, ", "))
	}
	if containsFold(prefs.MustInclude, CategoryCafe) {
		clauses = append(clauses, "includes a café stop")
	}
	if anyContainsFold(prefs.SoftPreferences, "off-leash") || anyContainsFold(prefs.SoftPreferences, "off_leash") {
		clauses = append(clauses, "passes off-leash friendly areas")
	}
	if anyContainsFold(prefs.SoftPreferences, "scenic") {
		clauses = append(clauses, "scenic views along the way")
	}

	if len(clauses) == 0 {
		return "A pleasant walk tailored to you and your dog"
	}
	return strings.Join(clauses, "; ")
}

func containsFold(list []string, want string) bool {
	for _, v := range list {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

func anyContainsFold(list []string, substr string) bool {
	for _, v := range list {
		if strings.Contains(strings.ToLower(v), strings.ToLower(substr)) {
			return true
		}
	}
	return false
}
