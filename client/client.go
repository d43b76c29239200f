package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/startupops/api-smoke-tests/framework"
)

const (
	// DefaultTimeout applies to each request individually, including reading the response body.
	DefaultTimeout = 30 * time.Second

	apiRoot = "/api"

	responseExcerptLength = 200
)

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// APIClient sends requests to the backend under test. All paths are relative to <base>/api.
type APIClient struct {
	baseURL string
	apiURL  string
	timeout time.Duration
	http    *http.Client
}

// Request describes one call to the backend.
type Request struct {
	Method string
	// Path is relative to the API root, for instance "startups/abc/tasks".
	Path string
	// Body is JSON-encoded if non-nil. It is only sent for POST and PUT.
	Body interface{}
	// Headers override the defaults computed by MergeHeaders.
	Headers map[string]string
}

// NewAPIClient creates a client for the deployment at baseURL, which must be an absolute http or
// https URL. A timeout of zero means DefaultTimeout.
func NewAPIClient(baseURL string, timeout time.Duration) (*APIClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be an absolute http or https URL", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	base := strings.TrimSuffix(baseURL, "/")
	return &APIClient{
		baseURL: base,
		apiURL:  base + apiRoot,
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

func (c *APIClient) BaseURL() string {
	return c.baseURL
}

func (c *APIClient) Timeout() time.Duration {
	return c.timeout
}

// URL returns the absolute URL for a path relative to the API root.
func (c *APIClient) URL(path string) string {
	return c.apiURL + "/" + strings.TrimPrefix(path, "/")
}

// MergeHeaders computes the request headers: Content-Type: application/json, then
// Authorization: Bearer <token> if token is non-empty, then the overrides, which win.
func MergeHeaders(token string, overrides map[string]string) http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	for k, v := range overrides {
		h.Set(k, v)
	}
	return h
}

// Do sends the request once, with no retries. A non-nil error means no usable response was
// received: the request could not be built or sent, it timed out, or the body could not be read.
// Any status code is a successful call as far as Do is concerned.
//
// The request, an equivalent curl command and the outcome are written to logger.
func (c *APIClient) Do(ctx context.Context, req Request, token string, logger framework.Logger) (*Response, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	if !allowedMethods[req.Method] {
		return nil, fmt.Errorf("unsupported method %q", req.Method)
	}

	var data []byte
	if req.Body != nil && (req.Method == http.MethodPost || req.Method == http.MethodPut) {
		var err error
		if data, err = json.Marshal(req.Body); err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.URL(req.Path)
	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header = MergeHeaders(token, req.Headers)

	logger.Printf("%s %s", req.Method, target)
	logger.Printf("Equivalent command: %s", CurlCommand(req.Method, target, httpReq.Header, data))

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		logger.Printf("Request failed after %s: %s", time.Since(start), err)
		return nil, err
	}
	defer resp.Body.Close()
	respData, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		logger.Printf("Reading response body failed: %s", err)
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	r := &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: respData}
	logger.Printf("Status %d after %s", r.StatusCode, time.Since(start))
	if len(respData) > 0 {
		logger.Printf("Response: %s", r.Excerpt(responseExcerptLength))
	}
	return r, nil
}
