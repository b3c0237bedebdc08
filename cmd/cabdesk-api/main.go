// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cabdesk/internal/ai"
	"cabdesk/internal/config"
	httptransport "cabdesk/internal/http"
	"cabdesk/internal/infra"
	"cabdesk/internal/maps"
	"cabdesk/internal/modules/enquiry"
	"cabdesk/internal/modules/quote"
	"cabdesk/internal/modules/tariff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	tariffResolver := tariff.NewResolver(tariff.NewRedisStore(redisClient))

	// No maps key means no distance provider: quotes still work with
	// manually entered kilometers and carry a warning.
	var distance quote.DistanceProvider
	if cfg.Maps.APIKey != "" {
		svc, err := maps.NewDistanceService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		distance = svc
	} else {
		log.Print("GOOGLE_MAPS_API_KEY not set; distance lookups disabled")
	}

	quoteSvc := quote.NewService(tariffResolver, distance)

	var composer enquiry.Composer
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiComposer(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		composer = gemini
	}

	enquirySvc := enquiry.NewService(enquiry.NewPGStore(dbPool), quoteSvc, composer, cfg.Pricing.Currency)

	handler := httptransport.NewRouter(tariffResolver, quoteSvc, enquirySvc)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
