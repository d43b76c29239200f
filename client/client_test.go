package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/startupops/api-smoke-tests/framework"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIClient(t *testing.T) {
	c, err := NewAPIClient("http://localhost:8000/", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", c.BaseURL())
	assert.Equal(t, DefaultTimeout, c.Timeout())
	assert.Equal(t, "http://localhost:8000/api/auth/me", c.URL("auth/me"))
	assert.Equal(t, "http://localhost:8000/api/auth/me", c.URL("/auth/me"))

	c, err = NewAPIClient("https://example.com", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, c.Timeout())
}

func TestNewAPIClientRejectsBadBaseURL(t *testing.T) {
	for _, u := range []string{"", "localhost:8000", "/api", "ftp://example.com", "http://"} {
		_, err := NewAPIClient(u, 0)
		assert.Error(t, err, u)
	}
}

func TestMergeHeaders(t *testing.T) {
	h := MergeHeaders("", nil)
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Empty(t, h.Values("Authorization"))

	h = MergeHeaders("abc", nil)
	assert.Equal(t, "Bearer abc", h.Get("Authorization"))

	h = MergeHeaders("abc", map[string]string{"Content-Type": "text/plain", "authorization": "Basic xyz", "X-Trace": "1"})
	assert.Equal(t, "text/plain", h.Get("Content-Type"))
	assert.Equal(t, []string{"Basic xyz"}, h.Values("Authorization"))
	assert.Equal(t, "1", h.Get("X-Trace"))
}

func withClient(t *testing.T, handler http.Handler, timeout time.Duration, action func(*APIClient)) {
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c, err := NewAPIClient(server.URL, timeout)
		require.NoError(t, err)
		action(c)
	})
}

func TestDoSendsJSONBody(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithJSONResponse(map[string]interface{}{"startup_id": "s1"}, nil))
	withClient(t, handler, 0, func(c *APIClient) {
		resp, err := c.Do(context.Background(), Request{
			Method: http.MethodPost,
			Path:   "startups",
			Body:   map[string]interface{}{"name": "Acme"},
		}, "tok", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "s1", resp.JSON().GetByKey("startup_id").StringValue())
	})

	require.Len(t, requestsCh, 1)
	r := <-requestsCh
	assert.Equal(t, http.MethodPost, r.Request.Method)
	assert.Equal(t, "/api/startups", r.Request.URL.Path)
	assert.Equal(t, "Bearer tok", r.Request.Header.Get("Authorization"))
	assert.Equal(t, "application/json", r.Request.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"name":"Acme"}`, string(r.Body))
}

func TestDoSendsNoBodyForGetAndDelete(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	withClient(t, handler, 0, func(c *APIClient) {
		for _, method := range []string{http.MethodGet, http.MethodDelete} {
			_, err := c.Do(context.Background(), Request{Method: method, Path: "auth/me", Body: map[string]string{"x": "y"}}, "", nil)
			require.NoError(t, err)
		}
	})

	require.Len(t, requestsCh, 2)
	for i := 0; i < 2; i++ {
		r := <-requestsCh
		assert.Empty(t, r.Body)
		assert.Empty(t, r.Request.Header.Values("Authorization"))
	}
}

func TestDoReturnsNonSuccessStatusWithoutError(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(500, nil, []byte(`{"detail":"boom"}`))
	withClient(t, handler, 0, func(c *APIClient) {
		resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "startups"}, "", nil)
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.Equal(t, `{"detail":"boom"}`, string(resp.Body))
	})
}

func TestDoRejectsUnsupportedMethod(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	withClient(t, handler, 0, func(c *APIClient) {
		_, err := c.Do(context.Background(), Request{Method: http.MethodPatch, Path: "startups"}, "", nil)
		assert.EqualError(t, err, `unsupported method "PATCH"`)
	})
	assert.Len(t, requestsCh, 0)
}

func TestDoTimesOut(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(5 * time.Second):
		case <-r.Context().Done():
		}
	})
	withClient(t, slow, 100*time.Millisecond, func(c *APIClient) {
		start := time.Now()
		resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "startups"}, "", nil)
		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Less(t, time.Since(start), 2*time.Second)
	})
}

func TestDoFailsWhenServerIsUnreachable(t *testing.T) {
	var url string
	httphelpers.WithServer(httphelpers.HandlerWithStatus(200), func(server *httptest.Server) {
		url = server.URL
	})
	c, err := NewAPIClient(url, time.Second)
	require.NoError(t, err)
	_, err = c.Do(context.Background(), Request{Method: http.MethodGet, Path: "auth/me"}, "", nil)
	assert.Error(t, err)
}

func TestDoLogsRequestWithoutCredentials(t *testing.T) {
	var logger framework.CapturingLogger
	withClient(t, httphelpers.HandlerWithJSONResponse(map[string]interface{}{"ok": true}, nil), 0, func(c *APIClient) {
		_, err := c.Do(context.Background(), Request{Method: http.MethodPut, Path: "startups/s1", Body: map[string]string{"vision": "v"}},
			"secret-token", &logger)
		require.NoError(t, err)
	})

	var messages []string
	for _, m := range logger.Output() {
		messages = append(messages, m.Message)
	}
	all := strings.Join(messages, "\n")
	assert.NotContains(t, all, "secret-token")
	assert.Contains(t, all, "Equivalent command: curl -sS -X PUT -H 'Authorization: Bearer <redacted>'")
	assert.Contains(t, all, "Status 200 after")
	assert.Contains(t, all, `Response: {"ok":true}`)
}

func TestDoEncodesStructBodies(t *testing.T) {
	type params struct {
		Rating int      `json:"rating"`
		Tags   []string `json:"tags"`
	}
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	withClient(t, handler, 0, func(c *APIClient) {
		_, err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "x", Body: params{5, []string{"a"}}}, "", nil)
		require.NoError(t, err)
	})
	r := <-requestsCh
	var decoded params
	require.NoError(t, json.Unmarshal(r.Body, &decoded))
	assert.Equal(t, params{5, []string{"a"}}, decoded)
}
