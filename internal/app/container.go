package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ochronus/goimgur/internal/config"
	"github.com/ochronus/goimgur/internal/services/imgur"
	"github.com/sirupsen/logrus"
)

// Container centralizes the core dependencies used across the application.
// It is intentionally small and uses interfaces so callers (and tests) can
// substitute implementations easily.
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	HTTPClient  *http.Client
	ImgurClient imgur.AccountAPI
}

// Option allows customizing the container during construction.
type Option func(*Container) error

// WithLogger overrides the default logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Container) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.Logger = logger
		return nil
	}
}

// WithImgurClient overrides the default Imgur client.
func WithImgurClient(client imgur.AccountAPI) Option {
	return func(c *Container) error {
		if client == nil {
			return fmt.Errorf("imgur client cannot be nil")
		}
		c.ImgurClient = client
		return nil
	}
}

// WithTransport sets the round tripper wrapped by the request logger.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Container) error {
		if transport == nil {
			return fmt.Errorf("transport cannot be nil")
		}
		c.HTTPClient = &http.Client{Transport: transport}
		return nil
	}
}

// NewContainer builds a Container with sensible defaults derived from cfg.
// Options can be supplied to override specific dependencies (useful in tests).
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	container := &Container{
		Config: cfg,
		Logger: buildDefaultLogger(cfg.Loglevel),
	}

	// Apply options early so tests can inject mocks before defaults are created.
	for _, opt := range opts {
		if err := opt(container); err != nil {
			return nil, err
		}
	}

	if container.HTTPClient == nil {
		container.HTTPClient = &http.Client{}
	}
	container.HTTPClient.Timeout = time.Duration(cfg.Timeout) * time.Second
	container.HTTPClient.Transport = NewLoggingTransport(container.HTTPClient.Transport, container.Logger)

	if container.ImgurClient == nil {
		container.ImgurClient = imgur.NewClient(imgur.WithHTTPClient(container.HTTPClient))
	}

	return container, nil
}

func buildDefaultLogger(levelStr string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
