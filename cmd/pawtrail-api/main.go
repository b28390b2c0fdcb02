// README: Entry point; loads config, wires providers and services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawtrail/internal/ai"
	"pawtrail/internal/config"
	httptransport "pawtrail/internal/http"
	"pawtrail/internal/infra"
	"pawtrail/internal/maps"
	"pawtrail/internal/modules/walk"
	"pawtrail/internal/route"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("PAWTRAIL_FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	gate := infra.NewFeatureGate(redisClient, cfg.Routes.GenerationEnabled)

	geocoder, err := maps.NewGeocodingService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatal(err)
	}
	places, err := maps.NewPlacesService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatal(err)
	}
	directions, err := maps.NewDirectionsService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatal(err)
	}

	selector, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer selector.Close()

	planner := route.NewPlanner(geocoder, places, selector, directions, gate)

	walkStore := walk.NewStore(dbPool)
	walkSvc := walk.NewService(walkStore)

	handler := httptransport.NewRouter(planner, walkSvc, verifier)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
