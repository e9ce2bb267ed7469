package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ochronus/goimgur/internal/app"
	"github.com/ochronus/goimgur/internal/config"
	"github.com/sirupsen/logrus"
)

// Server receives the OAuth redirect during login.
type Server struct {
	config  *config.Config
	handler *Handler
	logger  *logrus.Logger
	router  *gin.Engine
	srv     *http.Server
	addr    net.Addr
	ready   chan struct{}
}

// NewServer creates a callback server that accepts redirects carrying state.
func NewServer(container *app.Container, state string) *Server {
	cfg := container.Config

	// Set gin mode based on log level
	if cfg.Loglevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Add recovery middleware
	router.Use(gin.Recovery())

	handler := NewHandler(container, state)

	// Register routes
	router.GET("/callback", handler.Callback)

	return &Server{
		config:  cfg,
		handler: handler,
		logger:  container.Logger,
		router:  router,
		ready:   make(chan struct{}),
	}
}

// StartWithContext starts the HTTP server and shuts down gracefully when the context is canceled.
func (s *Server) StartWithContext(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Login.BindAddress, fmt.Sprint(s.config.Login.Port))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.addr = ln.Addr()
	s.logger.Debugf("Waiting for OAuth callback at %s", s.CallbackURL())

	s.srv = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	close(s.ready)

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		return err
	}
}

// Ready is closed once the server is listening.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// CallbackURL returns the redirect URL served by the listener, keeping the
// configured host so it matches the URL registered with Imgur. Only valid
// after Ready is closed.
func (s *Server) CallbackURL() string {
	port := fmt.Sprint(s.config.Login.Port)
	if tcp, ok := s.addr.(*net.TCPAddr); ok {
		port = fmt.Sprint(tcp.Port)
	}
	return fmt.Sprintf("http://%s/callback", net.JoinHostPort(s.config.Login.BindAddress, port))
}

// Results delivers the outcome of the first valid redirect.
func (s *Server) Results() <-chan CallbackResult {
	return s.handler.results
}

// GetRouter returns the underlying gin router (useful for testing)
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
