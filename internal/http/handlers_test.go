package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ochronus/goimgur/internal/app"
	"github.com/ochronus/goimgur/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestContainer() *app.Container {
	cfg := config.DefaultConfig()
	cfg.Imgur.ClientID = "client"
	cfg.Imgur.ClientSecret = "secret"
	cfg.Login.Port = 0 // let the OS pick a free port

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel) // silence output in tests

	return &app.Container{
		Config:     cfg,
		Logger:     logger,
		HTTPClient: &http.Client{},
	}
}

func performCallback(router *gin.Engine, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/callback?"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newTestRouter(handler *Handler) *gin.Engine {
	router := gin.New()
	router.GET("/callback", handler.Callback)
	return router
}

func TestCallbackSuccess(t *testing.T) {
	handler := NewHandler(setupTestContainer(), "s1")
	router := newTestRouter(handler)

	w := performCallback(router, "state=s1&code=abc")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization complete")

	select {
	case result := <-handler.results:
		assert.Equal(t, "abc", result.Code)
		assert.NoError(t, result.Err)
	default:
		t.Fatal("expected a result")
	}
}

func TestCallbackStateMismatch(t *testing.T) {
	handler := NewHandler(setupTestContainer(), "s1")
	router := newTestRouter(handler)

	w := performCallback(router, "state=other&code=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, handler.results)
}

func TestCallbackMissingCode(t *testing.T) {
	handler := NewHandler(setupTestContainer(), "s1")
	router := newTestRouter(handler)

	w := performCallback(router, "state=s1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, handler.results)
}

func TestCallbackDenied(t *testing.T) {
	handler := NewHandler(setupTestContainer(), "s1")
	router := newTestRouter(handler)

	w := performCallback(router, "state=s1&error=access_denied")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.Len(t, handler.results, 1)
	result := <-handler.results
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "access_denied")
}

func TestCallbackDeliversOnce(t *testing.T) {
	handler := NewHandler(setupTestContainer(), "s1")
	router := newTestRouter(handler)

	performCallback(router, "state=s1&code=first")
	w := performCallback(router, "state=s1&code=second")
	assert.Equal(t, http.StatusOK, w.Code)

	require.Len(t, handler.results, 1)
	assert.Equal(t, "first", (<-handler.results).Code)
}
