package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-fhevm/internal/config"
	"github.com/MKhiriev/go-fhevm/internal/fhevm"
	"github.com/MKhiriev/go-fhevm/internal/handler"
	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/internal/security"
	"github.com/MKhiriev/go-fhevm/internal/server"
	"github.com/MKhiriev/go-fhevm/internal/service"
	"github.com/MKhiriev/go-fhevm/internal/store"
	"github.com/MKhiriev/go-fhevm/internal/workers"
	"github.com/MKhiriev/go-fhevm/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("go-fhevm-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildInfo.HasVersion() && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().
		Str("network", cfg.FHEVM.Network).
		Str("contract", cfg.FHEVM.ContractAddress).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := fhevm.New(cfg.FHEVM.ClientConfig(),
		fhevm.WithLogger(log),
		fhevm.WithInitTimeout(cfg.FHEVM.InitTimeout),
	)
	defer client.Close()

	// requests arriving before the client is ready get 503
	go func() {
		if err := client.Init(ctx); err != nil {
			log.Error().Err(err).Msg("fhevm client initialization failed")
		}
	}()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(client, storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	limiter := security.NewRateLimiter(cfg.Server.RateLimitRequests, cfg.Server.RateLimitWindow)

	jobs := workers.NewWorkers(
		workers.NewJournalPruneWorker(services.OperationService, cfg.Workers.JournalRetention, cfg.Workers.CleanupInterval, log),
	)
	jobs.Start(ctx)
	defer jobs.Stop()

	handlers, err := handler.NewHandlers(services, client, limiter, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
