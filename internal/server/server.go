package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-autonav/internal/config"
	"github.com/MKhiriev/go-autonav/internal/handler"
	"github.com/MKhiriev/go-autonav/internal/logger"
)

type server struct {
	transports []transport
	logger     *logger.Logger
}

// NewServer creates the HTTP server and, when configured, the gRPC health
// server. The gRPC listener is bound immediately so address errors surface at
// startup.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcServer, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating gRPC server: %w", err)
		}
		s.transports = append(s.transports, grpcServer)
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("server stopped with error")
		return
	}
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	for _, t := range s.transports {
		t.shutdown()
	}
}

// run serves every transport until ctx is done or one of them fails, then
// shuts all of them down and waits for their serve loops to return.
func (s *server) run(ctx context.Context) error {
	errs := make(chan error, len(s.transports))
	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.name()).Msg("launching server")
		go func() {
			if err := t.serve(); err != nil {
				errs <- fmt.Errorf("%s: %w", t.name(), err)
				return
			}
			errs <- nil
		}()
	}

	var failure error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case failure = <-errs:
	}

	s.Shutdown()

	pending := len(s.transports)
	if failure != nil {
		pending--
	}
	for ; pending > 0; pending-- {
		if err := <-errs; err != nil && failure == nil {
			failure = err
		}
	}

	return failure
}
