package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedConsole(useColor bool) (*Console, *bytes.Buffer) {
	var buf bytes.Buffer
	c := NewConsole(&buf, useColor)
	c.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return c, &buf
}

func TestConsoleLevels(t *testing.T) {
	c, buf := fixedConsole(false)
	c.Info("Testing %s...", "Auth Me")
	c.Pass("✅ Auth Me")
	c.Fail("❌ %s - %s", "Auth Signup", "Expected 200, got 500")
	c.Error("Response: %s", "{}")
	c.Debug("detail")

	assert.Equal(t, "[12:00:00] INFO: Testing Auth Me...\n"+
		"[12:00:00] PASS: ✅ Auth Me\n"+
		"[12:00:00] FAIL: ❌ Auth Signup - Expected 200, got 500\n"+
		"[12:00:00] ERROR: Response: {}\n"+
		"[12:00:00] DEBUG: detail\n", buf.String())
}

func TestConsoleBanner(t *testing.T) {
	c, buf := fixedConsole(false)
	c.Banner("TEST RESULTS")
	assert.Equal(t, "\n[12:00:00] INFO: === TEST RESULTS ===\n", buf.String())
}

func TestConsoleColor(t *testing.T) {
	c, buf := fixedConsole(true)
	c.Pass("ok")
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "PASS")
	assert.Contains(t, buf.String(), ": ok\n")
}
