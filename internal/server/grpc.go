package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-ledger-chat/internal/config"
	myGRPC "github.com/MKhiriev/go-ledger-chat/internal/handler/grpc"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) Name() string { return "grpc" }

func (g *grpcServer) Serve() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", g.address, err)
	}

	g.logger.Info().Str("address", g.address).Msg("gRPC server listening")
	if err = g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.handler.Shutdown()
	g.server.GracefulStop()
}
