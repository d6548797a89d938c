package server

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/handler"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
)

type server struct {
	transports []transport
	stopOnce   sync.Once

	logger *logger.Logger
}

// NewServer creates a transport for every handler enabled in cfg.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	var transports []transport
	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		transports = append(transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		transports = append(transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	return newServer(transports, logger)
}

func newServer(transports []transport, logger *logger.Logger) (*server, error) {
	if len(transports) == 0 {
		return nil, errNoServersAreCreated
	}
	return &server{transports: transports, logger: logger}, nil
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
		s.logger.Err(err).Msg("server stopped with error")
		return
	}
	s.logger.Info().Msg("server shut down gracefully")
}

// Shutdown is safe to call more than once.
func (s *server) Shutdown() {
	s.stopOnce.Do(func() {
		for _, t := range s.transports {
			s.logger.Info().Str("transport", t.Name()).Msg("shutting down")
			t.Shutdown()
		}
	})
}

// run serves every transport until ctx is done or one of them fails.
func (s *server) run(ctx context.Context) error {
	failed := make(chan error, len(s.transports))

	var wg sync.WaitGroup
	for _, t := range s.transports {
		wg.Add(1)
		go func() {
			defer wg.Done()

			s.logger.Info().Str("transport", t.Name()).Msg("launching")
			err := t.Serve()
			if err == nil {
				err = errTransportStopped
			}
			failed <- fmt.Errorf("%s: %w", t.Name(), err)
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-failed:
	}

	s.Shutdown()
	wg.Wait()

	return runErr
}
