package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-fhevm/internal/config"
	"github.com/MKhiriev/go-fhevm/internal/handler"
	"github.com/MKhiriev/go-fhevm/internal/logger"
)

// server owns the configured transports and stops them together.
type server struct {
	transports []Server
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		gs, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		s.transports = append(s.transports, gs)
	}

	if len(s.transports) == 0 {
		return nil, errNoTransports
	}
	logger.Info().Int("transports", len(s.transports)).Msg("server created")

	return s, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	for _, t := range s.transports {
		t.Shutdown()
	}
}

// run returns once ctx is done and every transport has returned.
func (s *server) run(ctx context.Context) error {
	if len(s.transports) == 0 {
		return errNoTransports
	}

	var wg sync.WaitGroup
	for _, t := range s.transports {
		wg.Go(t.RunServer)
	}

	<-ctx.Done()
	s.Shutdown()
	wg.Wait()
	s.logger.Info().Msg("server stopped")

	return nil
}
