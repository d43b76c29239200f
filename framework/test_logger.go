package framework

// TestLogger receives notifications about the progress of a run, typically to print them.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(result TestResult, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                      {}
func (n nullTestLogger) TestError(TestID, error)                 {}
func (n nullTestLogger) TestFinished(TestResult, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)              {}
