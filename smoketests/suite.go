package smoketests

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/startupops/api-smoke-tests/client"
	"github.com/startupops/api-smoke-tests/framework"
)

// Logger receives the narrative output of a run. logging.Console implements it.
type Logger interface {
	Info(message string, args ...interface{})
	Error(message string, args ...interface{})
	Banner(title string)
}

type nullLogger struct{}

func (nullLogger) Info(string, ...interface{})  {}
func (nullLogger) Error(string, ...interface{}) {}
func (nullLogger) Banner(string)                {}

// Options configure a Suite.
type Options struct {
	// Package is the checkout package tier. Defaults to "pro".
	Package         string
	StrictResponses bool
	VerifyInvite    bool
	// Identity replaces the generated account and startup names.
	Identity *Identity
	// Catalog replaces DefaultCatalog. It is mostly useful for testing the orchestrator itself.
	Catalog []Phase
}

// Suite is the test orchestrator. It owns the session of the run, so separate Suite instances are
// fully independent. A Suite runs its cases strictly one after another.
type Suite struct {
	client  *client.APIClient
	logger  Logger
	options Options
	session *Session
	results framework.Results
	now     func() time.Time
}

func NewSuite(apiClient *client.APIClient, logger Logger, options Options) *Suite {
	if logger == nil {
		logger = nullLogger{}
	}
	if options.Package == "" {
		options.Package = "pro"
	}
	return &Suite{
		client:  apiClient,
		logger:  logger,
		options: options,
		session: NewSession(),
		now:     time.Now,
	}
}

// Session returns the session of the most recent run.
func (s *Suite) Session() *Session {
	return s.session
}

func (s *Suite) catalog() []Phase {
	if s.options.Catalog != nil {
		return s.options.Catalog
	}
	identity := NewIdentity(s.now())
	if s.options.Identity != nil {
		identity = *s.options.Identity
	}
	return DefaultCatalog(CatalogParams{
		Identity:        identity,
		OriginURL:       s.client.BaseURL(),
		Package:         s.options.Package,
		StrictResponses: s.options.StrictResponses,
		VerifyInvite:    s.options.VerifyInvite,
	})
}

// RunAll runs every phase, logs the report and returns the process exit code: 0 if every attempted
// test passed, 1 otherwise.
func (s *Suite) RunAll(ctx context.Context, filter framework.Filter, testLogger framework.TestLogger) int {
	report := framework.NewReport(s.Run(ctx, filter, testLogger))
	s.logger.Banner("TEST RESULTS")
	for _, line := range report.Summary() {
		s.logger.Info("%s", line)
	}
	if len(report.Failures) > 0 {
		s.logger.Banner("FAILED TESTS")
		for _, f := range report.Failures {
			s.logger.Info("❌ %s", f)
		}
	}
	if report.OK() {
		return 0
	}
	return 1
}

// Run runs every phase in order with a fresh session and returns the recorded results.
func (s *Suite) Run(ctx context.Context, filter framework.Filter, testLogger framework.TestLogger) framework.Results {
	s.session = NewSession()
	phases := s.catalog()

	s.logger.Info("Starting StartupOps API Test Suite")
	s.logger.Info("Testing against: %s", s.client.BaseURL())

	s.results = framework.Run(filter, testLogger, func(root *framework.Context) {
		for _, phase := range phases {
			s.logger.Banner(phase.Banner)
			if missing := s.session.Missing(phase.Requires...); len(missing) > 0 {
				s.logger.Info("Skipping %s tests: no %s", strings.ToLower(phase.Name), joinKeys(missing))
				continue
			}
			if !s.runPhase(ctx, root, phase) {
				return
			}
		}
	})
	return s.results
}

// runPhase returns false if a fatal case failed and the run must stop.
func (s *Suite) runPhase(ctx context.Context, root *framework.Context, phase Phase) bool {
	keepGoing := true
	root.Group(phase.Name, func(pc *framework.Context) {
		for _, tc := range phase.Cases {
			tc := tc
			if pc.Run(tc.Name, func(c *framework.Context) { s.runCase(ctx, c, tc) }) {
				continue
			}
			if tc.Fatal {
				s.logger.Error("❌ %s failed - stopping tests", tc.Name)
				pc.Abort(fmt.Sprintf("%s did not pass", tc.Name))
				keepGoing = false
				return
			}
			if tc.Gate {
				s.logger.Error("❌ %s failed - skipping dependent tests", tc.Name)
				return
			}
		}
	})
	return keepGoing
}

func (s *Suite) runCase(ctx context.Context, c *framework.Context, tc Case) {
	passed, resp := s.Execute(ctx, c, tc.Method, tc.Path, tc.ExpectedStatus, tc.Body, tc.Headers)
	if passed && tc.Check != nil {
		tc.Check(&T{context: c, suite: s}, resp)
	}
}

// Execute is the request/assert primitive. It sends one request for the test case c and compares
// the status with expectedStatus. Placeholders in path are resolved from the session first; if one
// cannot be, the case fails without any request being sent.
//
// Every fault is recorded on c rather than returned. On success the response is returned, and
// resp.JSON() gives the decoded body (an empty object if there is none). On failure resp is nil.
func (s *Suite) Execute(
	ctx context.Context,
	c *framework.Context,
	method, path string,
	expectedStatus int,
	body interface{},
	headers map[string]string,
) (passed bool, resp *client.Response) {
	resolved, err := s.session.ResolvePath(path)
	if err != nil {
		c.Fail(err)
		return false, nil
	}

	req := client.Request{Method: method, Path: resolved, Body: body, Headers: headers}
	resp, err = s.client.Do(ctx, req, s.session.Token(), c.DebugLogger())
	if err != nil {
		c.Fail(TransportError{Err: err})
		return false, nil
	}
	c.RecordResponse(expectedStatus, resp.StatusCode, resp.JSON())
	if resp.StatusCode != expectedStatus {
		c.Fail(StatusMismatchError{Expected: expectedStatus, Actual: resp.StatusCode})
		s.logger.Error("Response: %s", resp.Excerpt(200))
		return false, nil
	}
	return true, resp
}

func joinKeys(keys []SessionKey) string {
	ss := make([]string, 0, len(keys))
	for _, k := range keys {
		ss = append(ss, string(k))
	}
	return strings.Join(ss, ", ")
}
