package smoketests

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/startupops/api-smoke-tests/client"
	"github.com/startupops/api-smoke-tests/framework"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/require"
)

const (
	fakeToken     = "tok-0123456789abcdefghij-rest"
	fakeUserID    = "user-1"
	fakeStartupID = "startup-1"
	fakeTaskID    = "task-1"
)

// mockBackend answers "METHOD /api/path" routes; anything unrouted gets a 404.
type mockBackend struct {
	routes map[string]http.Handler
}

func newMockBackend() *mockBackend {
	startup := "/api/startups/" + fakeStartupID
	object := func(props map[string]interface{}) http.Handler {
		return httphelpers.HandlerWithJSONResponse(props, nil)
	}
	emptyList := httphelpers.HandlerWithJSONResponse([]interface{}{}, nil)
	ok := httphelpers.HandlerWithStatus(http.StatusOK)

	m := &mockBackend{routes: make(map[string]http.Handler)}
	m.route("POST /api/auth/signup", object(map[string]interface{}{"token": fakeToken, "user_id": fakeUserID}))
	m.route("GET /api/auth/me", object(map[string]interface{}{"id": fakeUserID}))
	m.route("POST /api/startups", object(map[string]interface{}{"startup_id": fakeStartupID}))
	m.route("GET /api/startups", emptyList)
	m.route("GET "+startup, object(map[string]interface{}{"id": fakeStartupID}))
	m.route("PUT "+startup, ok)
	m.route("POST "+startup+"/tasks", object(map[string]interface{}{"task_id": fakeTaskID}))
	m.route("GET "+startup+"/tasks", emptyList)
	m.route("PUT "+startup+"/tasks/"+fakeTaskID, ok)
	m.route("GET "+startup+"/team", emptyList)
	m.route("POST "+startup+"/team/invite", ok)
	m.route("POST "+startup+"/feedback", ok)
	m.route("GET "+startup+"/feedback", emptyList)
	m.route("GET "+startup+"/analytics", object(map[string]interface{}{"tasks": 1, "feedback": 1}))
	m.route("POST "+startup+"/ai/chat", object(map[string]interface{}{"response": "Try content marketing."}))
	m.route("POST "+startup+"/ai/pitch", object(map[string]interface{}{"pitch_outline": "Problem, solution, market."}))
	m.route("POST /api/payments/checkout/session",
		object(map[string]interface{}{"url": "https://checkout.example.com/session/abc"}))
	return m
}

func (m *mockBackend) route(key string, h http.Handler) *mockBackend {
	m.routes[key] = h
	return m
}

func (m *mockBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h, ok := m.routes[r.Method+" "+r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	h.ServeHTTP(w, r)
}

func slowHandler(delay time.Duration, then http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
		then.ServeHTTP(w, r)
	})
}

type narrativeLogger struct {
	lines []string
}

func (l *narrativeLogger) Info(message string, args ...interface{}) {
	l.lines = append(l.lines, "INFO: "+fmt.Sprintf(message, args...))
}

func (l *narrativeLogger) Error(message string, args ...interface{}) {
	l.lines = append(l.lines, "ERROR: "+fmt.Sprintf(message, args...))
}

func (l *narrativeLogger) Banner(title string) {
	l.lines = append(l.lines, "=== "+title+" ===")
}

type suiteRun struct {
	results  framework.Results
	exitCode int
	requests []httphelpers.HTTPRequestInfo
	suite    *Suite
	log      *narrativeLogger
}

func (r suiteRun) requestKeys() []string {
	var keys []string
	for _, req := range r.requests {
		keys = append(keys, req.Request.Method+" "+req.Request.URL.Path)
	}
	return keys
}

func (r suiteRun) failureIDs() []string {
	var ids []string
	for _, f := range r.results.Failures {
		ids = append(ids, f.TestID.String())
	}
	return ids
}

func (r suiteRun) failure(id string) *framework.TestResult {
	for _, f := range r.results.Failures {
		if f.TestID.String() == id {
			f := f
			return &f
		}
	}
	return nil
}

type runConfig struct {
	options Options
	timeout time.Duration
	filter  framework.Filter
}

// runSuite runs the whole suite once against backend and returns everything it observed.
func runSuite(t *testing.T, backend http.Handler, config runConfig) suiteRun {
	handler, requestsCh := httphelpers.RecordingHandler(backend)
	var ret suiteRun
	ret.log = &narrativeLogger{}
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		ret.suite = NewSuite(mustClient(t, server.URL, config.timeout), ret.log, config.options)
		ret.exitCode = ret.suite.RunAll(context.Background(), config.filter, nil)
		ret.results = ret.suite.results
	})
	for len(requestsCh) > 0 {
		ret.requests = append(ret.requests, <-requestsCh)
	}
	return ret
}

func mustClient(t *testing.T, baseURL string, timeout time.Duration) *client.APIClient {
	apiClient, err := client.NewAPIClient(baseURL, timeout)
	require.NoError(t, err)
	return apiClient
}
