package framework

import "fmt"

// Report is the final summary of a run. It is computed once from Results and not modified after.
type Report struct {
	TestsRun    int
	TestsPassed int
	Failures    []string
	Aborted     bool
	AbortReason string
}

func NewReport(results Results) Report {
	r := Report{
		TestsRun:    results.Attempted(),
		TestsPassed: results.Passed(),
		Aborted:     results.Aborted,
		AbortReason: results.AbortReason,
	}
	for _, f := range results.Failures {
		r.Failures = append(r.Failures, f.Message())
	}
	return r
}

func (r Report) TestsFailed() int {
	return r.TestsRun - r.TestsPassed
}

// SuccessRate returns passed/run*100. The second value is false if nothing ran.
func (r Report) SuccessRate() (float64, bool) {
	if r.TestsRun == 0 {
		return 0, false
	}
	return float64(r.TestsPassed) / float64(r.TestsRun) * 100, true
}

// OK is the overall outcome used for the process exit code.
func (r Report) OK() bool {
	return !r.Aborted && r.TestsPassed == r.TestsRun
}

// Summary renders the totals as the lines printed at the end of a run. Failures are listed
// separately by the caller.
func (r Report) Summary() []string {
	rate := "n/a"
	if pct, ok := r.SuccessRate(); ok {
		rate = fmt.Sprintf("%.1f%%", pct)
	}
	lines := []string{
		fmt.Sprintf("Tests Run: %d", r.TestsRun),
		fmt.Sprintf("Tests Passed: %d", r.TestsPassed),
		fmt.Sprintf("Tests Failed: %d", r.TestsFailed()),
		fmt.Sprintf("Success Rate: %s", rate),
	}
	if r.Aborted {
		lines = append(lines, fmt.Sprintf("Run aborted: %s", r.AbortReason))
	}
	return lines
}
