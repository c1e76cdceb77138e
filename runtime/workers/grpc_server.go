package workers

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
)

// GRPCServerWorker serves a gRPC server on addr until the context ends.
// In-flight calls get shutdownTimeout to finish before the server is stopped hard.
type GRPCServerWorker struct {
	log             *slog.Logger
	addr            string
	server          *grpc.Server
	shutdownTimeout time.Duration
}

func NewGRPCServerWorker(log *slog.Logger, addr string, server *grpc.Server, shutdownTimeout time.Duration) *GRPCServerWorker {
	return &GRPCServerWorker{log: log, addr: addr, server: server, shutdownTimeout: shutdownTimeout}
}

func (w *GRPCServerWorker) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", w.addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() { errCh <- w.server.Serve(lis) }()
	w.log.Info("gRPC server listening", "addr", lis.Addr().String())

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
		stopped := make(chan struct{})
		go func() {
			w.server.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(w.shutdownTimeout):
			w.log.Warn("gRPC graceful stop timed out, forcing")
			w.server.Stop()
		}
		w.log.Info("gRPC server stopped")
		return nil
	}
}
