package fileserve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"pwna/internal/logging"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Options configures the static file server.
type Options struct {
	// Root is the HTTP root; the process working directory is changed to it.
	Root string
	// Bind is the listen host. Empty binds all interfaces.
	Bind string
	Port int
	// Stdout receives the startup banner. Nil discards it.
	Stdout io.Writer
	Logger *slog.Logger
}

// Server is a bound static file server.
type Server struct {
	listener net.Listener
	server   *http.Server
	logger   *slog.Logger
}

// ResolvePort picks the listen port. A non-zero CLI port overrides the
// configured one; zero counts as not supplied.
func ResolvePort(cliPort, configured int) int {
	if cliPort != 0 {
		return cliPort
	}
	return configured
}

// Listen changes the working directory to opts.Root and binds the listener.
func Listen(opts Options) (*Server, error) {
	logger := logging.NewComponentLogger(opts.Logger, "fileserve")

	if err := os.Chdir(opts.Root); err != nil {
		return nil, fmt.Errorf("change directory to http root: %w", err)
	}

	addr := net.JoinHostPort(opts.Bind, strconv.Itoa(opts.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &Server{
		listener: listener,
		logger:   logger,
		server: &http.Server{
			Handler:           accessLog(http.FileServer(http.Dir(".")), logger),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}

	if opts.Stdout != nil {
		host := displayHost(opts.Bind)
		port := srv.Port()
		fmt.Fprintf(opts.Stdout, "Serving HTTP on %s port %d (http://%s/) ...\n",
			host, port, net.JoinHostPort(host, strconv.Itoa(port)))
	}
	logger.Debug("http root bound",
		slog.String("root", opts.Root),
		slog.String("address", listener.Addr().String()),
	)
	return srv, nil
}

// Addr returns the bound listener address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Port returns the bound TCP port.
func (s *Server) Port() int {
	if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}

// Serve blocks until ctx is cancelled or the server fails. Cancellation shuts
// the server down gracefully and returns nil.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(s.listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		_ = s.server.Close()
		return fmt.Errorf("shutdown http server: %w", err)
	}
	<-errCh
	return nil
}

// Serve binds and runs the static file server described by opts.
func Serve(ctx context.Context, opts Options) error {
	srv, err := Listen(opts)
	if err != nil {
		return err
	}
	return srv.Serve(ctx)
}

func displayHost(bind string) string {
	if bind == "" {
		return "0.0.0.0"
	}
	return bind
}
