package workers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// HTTPServerWorker serves handler on addr until the context ends, then shuts down gracefully.
type HTTPServerWorker struct {
	log             *slog.Logger
	addr            string
	handler         http.Handler
	shutdownTimeout time.Duration
}

func NewHTTPServerWorker(log *slog.Logger, addr string, handler http.Handler, shutdownTimeout time.Duration) *HTTPServerWorker {
	return &HTTPServerWorker{log: log, addr: addr, handler: handler, shutdownTimeout: shutdownTimeout}
}

func (w *HTTPServerWorker) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", w.addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           w.handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(lis) }()
	w.log.Info("HTTP server listening", "addr", lis.Addr().String())

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()
		if err = srv.Shutdown(shutdownCtx); err != nil {
			w.log.Warn("HTTP server forced to close", "error", err)
			return srv.Close()
		}
		if err = <-errCh; !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		w.log.Info("HTTP server stopped")
		return nil
	}
}
