package app

import (
	"fmt"
	"net/http"

	"github.com/askaralim/nba-stats-api-sub000/external/espn"
	"github.com/askaralim/nba-stats-api-sub000/external/narrative"
	"github.com/askaralim/nba-stats-api-sub000/internal/config"
	"github.com/askaralim/nba-stats-api-sub000/internal/interfaces/httpapi"
	"github.com/askaralim/nba-stats-api-sub000/internal/platform/cache"
	"github.com/askaralim/nba-stats-api-sub000/internal/platform/logging"
	"github.com/askaralim/nba-stats-api-sub000/internal/platform/resilience"
	"github.com/askaralim/nba-stats-api-sub000/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	cacheTTL := cfg.CacheTTL
	if !cfg.CacheEnabled {
		cacheTTL = -1
	}
	store := cache.NewStore(cacheTTL)

	espnClient := espn.NewClient(espn.ClientConfig{
		BaseURL:    cfg.ESPNBaseURL,
		Timeout:    cfg.ESPNTimeout,
		MaxRetries: cfg.ESPNMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ESPNCircuitEnabled,
			FailureThreshold: cfg.ESPNCircuitFailureCount,
			OpenTimeout:      cfg.ESPNCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ESPNCircuitHalfOpenMaxReq,
		},
	})

	var narrativeProvider usecase.NarrativeProvider
	if cfg.NarrativeEnabled {
		narrativeProvider = narrative.NewCompletionClient(narrative.CompletionClientConfig{
			BaseURL: cfg.NarrativeBaseURL,
			APIKey:  cfg.NarrativeAPIKey,
			Model:   cfg.NarrativeModel,
			Timeout: cfg.NarrativeTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.NarrativeCircuitEnabled,
				FailureThreshold: cfg.NarrativeCircuitFailures,
				OpenTimeout:      cfg.NarrativeCircuitOpenTime,
				HalfOpenMaxReq:   cfg.NarrativeCircuitHalfOpen,
			},
		}, logger)
	}

	marquee := cfg.Marquee()
	scoreboardSvc := usecase.NewScoreboardService(espnClient, store, logger, usecase.ScoreboardServiceConfig{
		MaxWorkers: cfg.ScoreboardMaxWorkers,
		Marquee:    marquee,
	})
	gameSvc := usecase.NewGameService(espnClient, narrativeProvider, store, logger, usecase.GameServiceConfig{
		Marquee: marquee,
	})

	handler := httpapi.NewHandler(scoreboardSvc, gameSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
