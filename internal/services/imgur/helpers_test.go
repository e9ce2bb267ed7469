package imgur

import (
	"io"
	"net/http"
	"strings"
	"sync"
)

const okBody = `{"data": [], "status": 200, "success": true}`

type capturedRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   string
}

// recordingTransport answers every request with a canned body and keeps a
// copy of what was sent.
type recordingTransport struct {
	mu       sync.Mutex
	requests []capturedRequest
	status   int
	body     string
	err      error
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	captured := capturedRequest{
		Method: req.Method,
		URL:    req.URL.String(),
		Header: req.Header.Clone(),
	}
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		captured.Body = string(data)
	}

	rt.mu.Lock()
	rt.requests = append(rt.requests, captured)
	rt.mu.Unlock()

	if rt.err != nil {
		return nil, rt.err
	}

	status := rt.status
	if status == 0 {
		status = http.StatusOK
	}
	body := rt.body
	if body == "" {
		body = okBody
	}

	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

func (rt *recordingTransport) Requests() []capturedRequest {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return append([]capturedRequest(nil), rt.requests...)
}

func newTestClient() (*Client, *recordingTransport) {
	rt := &recordingTransport{}
	return NewClient(WithHTTPClient(&http.Client{Transport: rt})), rt
}
