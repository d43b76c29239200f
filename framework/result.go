package framework

import (
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type Results struct {
	Tests       []TestResult
	Failures    []TestResult
	Aborted     bool
	AbortReason string
}

// TestResult is the outcome of one test. ExpectedStatus, ObservedStatus and Body are only set if
// the test received a response; ObservedStatus is 0 otherwise.
type TestResult struct {
	TestID         TestID
	Errors         []error
	Failed         bool
	Skipped        bool
	ExpectedStatus int
	ObservedStatus int
	Body           ldvalue.Value
}

// OK is true if the run was not aborted and no attempted test failed.
func (r Results) OK() bool {
	return !r.Aborted && len(r.Failures) == 0
}

// Attempted returns the number of tests that actually ran.
func (r Results) Attempted() int {
	n := 0
	for _, t := range r.Tests {
		if !t.Skipped {
			n++
		}
	}
	return n
}

func (r Results) Passed() int {
	return r.Attempted() - len(r.Failures)
}

// Message describes a failed test as "name: error[; error...]".
func (t TestResult) Message() string {
	var ss []string
	for _, e := range t.Errors {
		ss = append(ss, e.Error())
	}
	if len(ss) == 0 {
		return t.TestID.Name()
	}
	return t.TestID.Name() + ": " + strings.Join(ss, "; ")
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Name is the last element of the path.
func (t TestID) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}
