package app

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingTransport logs each outbound request at debug level. Headers and
// bodies are never logged since they carry credentials.
type LoggingTransport struct {
	next   http.RoundTripper
	logger *logrus.Logger
}

// NewLoggingTransport wraps next, or http.DefaultTransport when next is nil.
func NewLoggingTransport(next http.RoundTripper, logger *logrus.Logger) *LoggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &LoggingTransport{next: next, logger: logger}
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	fields := logrus.Fields{
		"method":   req.Method,
		"url":      redactQuery(req),
		"duration": time.Since(start).Round(time.Millisecond),
	}
	if err != nil {
		t.logger.WithFields(fields).WithError(err).Debug("imgur request failed")
		return nil, err
	}

	fields["status"] = resp.StatusCode
	t.logger.WithFields(fields).Debug("imgur request")
	return resp, nil
}

// redactQuery drops the query string, which may hold an account id.
func redactQuery(req *http.Request) string {
	u := *req.URL
	u.RawQuery = ""
	return u.String()
}
