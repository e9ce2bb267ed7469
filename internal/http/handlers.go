package http

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/ochronus/goimgur/internal/app"
	"github.com/sirupsen/logrus"
)

// CallbackResult carries the authorization code, or the error Imgur
// redirected with.
type CallbackResult struct {
	Code string
	Err  error
}

// Handler contains the HTTP handler for the OAuth redirect.
type Handler struct {
	state   string
	logger  *logrus.Logger
	results chan CallbackResult
	once    sync.Once
}

// NewHandler creates a new HTTP handler.
func NewHandler(container *app.Container, state string) *Handler {
	return &Handler{
		state:   state,
		logger:  container.Logger,
		results: make(chan CallbackResult, 1),
	}
}

// Callback handles the redirect from the Imgur consent page.
func (h *Handler) Callback(c *gin.Context) {
	if subtle.ConstantTimeCompare([]byte(c.Query("state")), []byte(h.state)) != 1 {
		h.logger.Warn("Ignoring OAuth callback with mismatched state")
		c.String(http.StatusBadRequest, "invalid state")
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		h.deliver(CallbackResult{Err: fmt.Errorf("authorization denied: %s", errParam)})
		c.String(http.StatusBadRequest, "authorization failed: %s", errParam)
		return
	}

	code := c.Query("code")
	if code == "" {
		c.String(http.StatusBadRequest, "code is required")
		return
	}

	h.deliver(CallbackResult{Code: code})
	c.String(http.StatusOK, "Authorization complete. You can close this window.")
}

// deliver publishes only the first result.
func (h *Handler) deliver(result CallbackResult) {
	h.once.Do(func() {
		h.results <- result
	})
}
