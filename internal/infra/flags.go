// README: Redis-backed feature gate with an env-configured default.
package infra

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const routeGenFlagKey = "feature:route_generation"

// FeatureGate answers whether route generation is currently enabled.
// Operators flip the redis key ("on"/"off"); when the key is absent or redis
// is unreachable, the configured default applies.
type FeatureGate struct {
	redis     *redis.Client
	defaultOn bool
}

func NewFeatureGate(client *redis.Client, defaultOn bool) *FeatureGate {
	return &FeatureGate{redis: client, defaultOn: defaultOn}
}

// RouteGenerationEnabled reads the gate. Failures to reach redis fall back to
// the default rather than blocking requests.
func (g *FeatureGate) RouteGenerationEnabled(ctx context.Context) bool {
	if g.redis == nil {
		return g.defaultOn
	}
	rctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	v, err := g.redis.Get(rctx, routeGenFlagKey).Result()
	if err == redis.Nil {
		return g.defaultOn
	}
	if err != nil {
		log.Printf("feature gate: redis read failed: %v", err)
		return g.defaultOn
	}
	switch v {
	case "on", "1", "true":
		return true
	case "off", "0", "false":
		return false
	default:
		return g.defaultOn
	}
}
