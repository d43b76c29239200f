package main

import (
	"errors"
	"strings"

	"github.com/startupops/api-smoke-tests/framework"
	"github.com/startupops/api-smoke-tests/logging"
	"github.com/startupops/api-smoke-tests/smoketests"
)

type ConsoleTestLogger struct {
	Console              *logging.Console
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	c.Console.Info("Testing %s...", id.Name())
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	level := logging.LevelFail
	var transportErr smoketests.TransportError
	if errors.As(err, &transportErr) {
		level = logging.LevelError
	}
	for _, line := range strings.Split(err.Error(), "\n") {
		c.Console.Log(level, "❌ %s - %s", id.Name(), line)
	}
}

func (c *ConsoleTestLogger) TestFinished(result framework.TestResult, debugOutput framework.CapturedOutput) {
	if !result.Failed {
		if result.ObservedStatus != 0 {
			c.Console.Pass("✅ %s - Status: %d", result.TestID.Name(), result.ObservedStatus)
		} else {
			c.Console.Pass("✅ %s", result.TestID.Name())
		}
	}
	if len(debugOutput) > 0 &&
		((result.Failed && c.DebugOutputOnFailure) || (!result.Failed && c.DebugOutputOnSuccess)) {
		for _, line := range debugOutput.Lines() {
			c.Console.Debug("    %s", line)
		}
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		c.Console.Info("SKIPPED: %s", id.Name())
	} else {
		c.Console.Info("SKIPPED: %s (%s)", id.Name(), reason)
	}
}
