package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is a single named test scope, similar to *testing.T. It implements require.TestingT, so
// the assert and require packages can be used against it directly.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	expected    int
	observed    int
	body        ldvalue.Value
	result      TestResult
}

// Run executes the root action of a test run and returns the accumulated results. The root scope
// itself is not recorded as a test; only scopes created with Context.Run are.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				c.record()
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		c.record()
	}()

	action(c)
}

func (c *Context) record() {
	if len(c.id.Path) == 0 {
		return
	}
	result := TestResult{
		TestID:         c.id,
		Errors:         c.errors,
		Failed:         c.failed && !c.skipped,
		Skipped:        c.skipped,
		ExpectedStatus: c.expected,
		ObservedStatus: c.observed,
		Body:           c.body,
	}
	c.result = result
	c.env.results.Tests = append(c.env.results.Tests, result)
	if result.Failed {
		c.env.results.Failures = append(c.env.results.Failures, result)
	}
}

// Run runs a named sub-scope and reports whether it passed. A sub-scope that was excluded by the
// filter, or that skipped itself, did not pass.
func (c *Context) Run(name string, action func(*Context)) bool {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		c.env.results.Tests = append(c.env.results.Tests, TestResult{TestID: id, Skipped: true})
		return false
	}
	c.env.testLogger.TestStarted(id)
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
		return false
	}
	c.env.testLogger.TestFinished(c1.result, c1.debugLogger.Output())
	return !c1.failed
}

// Group runs a named scope that only organizes other tests. It is never recorded as a test of its
// own, but its children carry its name in their IDs.
func (c *Context) Group(name string, action func(*Context)) {
	c1 := &Context{
		id:  TestID{Path: append(append([]string(nil), c.id.Path...), name)},
		env: c.env,
	}
	action(c1)
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := reformatError(fmt.Errorf(format, args...))
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// Fail records err as a failure of this test without stopping it.
func (c *Context) Fail(err error) {
	c.failed = true
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// RecordResponse stores the status this test expected along with the status and parsed body that
// the service returned. They end up in the TestResult.
func (c *Context) RecordResponse(expected, observed int, body ldvalue.Value) {
	c.expected = expected
	c.observed = observed
	c.body = body
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Abort marks the whole run as aborted. Tests already recorded are kept; the caller is expected to
// stop starting new ones.
func (c *Context) Abort(reason string) {
	c.env.results.Aborted = true
	c.env.results.AbortReason = reason
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// reformatError reduces the multi-line output of testify assertions to its "Error:" and
// "Messages:" sections, which is all a report line needs.
func reformatError(err error) error {
	s := err.Error()
	if !strings.Contains(s, "Error Trace:") {
		return err
	}
	var lines []string
	keep := false
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "Error Trace:"), strings.HasPrefix(trimmed, "Test:"):
			keep = false
		case strings.HasPrefix(trimmed, "Error:"), strings.HasPrefix(trimmed, "Messages:"):
			keep = true
		}
		if keep && trimmed != "" {
			lines = append(lines, strings.Join(strings.Fields(trimmed), " "))
		}
	}
	return errors.New(strings.Join(lines, "\n"))
}
