package smoketests

import (
	"github.com/startupops/api-smoke-tests/framework"
)

// T is the scope of one test case while its response is being checked.
//
// It implements the same basic functionality as Go's testing.T, so the assert and require packages
// can be used with it, and it gives the check access to the run's Session and narrative log.
type T struct {
	context *framework.Context
	suite   *Suite
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Fail records err as the reason this case failed, without stopping it.
func (t *T) Fail(err error) {
	t.context.Fail(err)
}

// Require records err, if non-nil, and stops the case.
func (t *T) Require(err error) {
	if err != nil {
		t.context.Fail(err)
		t.context.FailNow()
	}
}

func (t *T) Session() *Session {
	return t.suite.session
}

// Logf writes an INFO line to the run's narrative output.
func (t *T) Logf(format string, args ...interface{}) {
	t.suite.logger.Info(format, args...)
}

// Debug writes to the case's captured debug output.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}
