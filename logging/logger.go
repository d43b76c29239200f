// Package logging provides the leveled, timestamped console output of a smoke test run.
package logging

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

const timestampFormat = "15:04:05"

type Level string

const (
	LevelInfo  Level = "INFO"
	LevelPass  Level = "PASS"
	LevelFail  Level = "FAIL"
	LevelError Level = "ERROR"
	LevelDebug Level = "DEBUG"
)

// Console writes lines of the form "[15:04:05] LEVEL: message".
type Console struct {
	out    io.Writer
	now    func() time.Time
	colors map[Level]*color.Color
	lock   sync.Mutex
}

// NewConsole creates a Console. If useColor is false, level tags are written as plain text
// regardless of whether out is a terminal.
func NewConsole(out io.Writer, useColor bool) *Console {
	c := &Console{
		out: out,
		now: time.Now,
		colors: map[Level]*color.Color{
			LevelInfo:  color.New(color.FgCyan),
			LevelPass:  color.New(color.FgGreen, color.Bold),
			LevelFail:  color.New(color.FgRed, color.Bold),
			LevelError: color.New(color.FgRed),
			LevelDebug: color.New(color.FgHiBlack),
		},
	}
	for _, col := range c.colors {
		if useColor {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

func (c *Console) Log(level Level, message string, args ...interface{}) {
	text := message
	if len(args) > 0 {
		text = fmt.Sprintf(message, args...)
	}
	tag := string(level)
	if col, ok := c.colors[level]; ok {
		tag = col.Sprint(tag)
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	fmt.Fprintf(c.out, "[%s] %s: %s\n", c.now().Format(timestampFormat), tag, text)
}

func (c *Console) Info(message string, args ...interface{})  { c.Log(LevelInfo, message, args...) }
func (c *Console) Pass(message string, args ...interface{})  { c.Log(LevelPass, message, args...) }
func (c *Console) Fail(message string, args ...interface{})  { c.Log(LevelFail, message, args...) }
func (c *Console) Error(message string, args ...interface{}) { c.Log(LevelError, message, args...) }
func (c *Console) Debug(message string, args ...interface{}) { c.Log(LevelDebug, message, args...) }

// Banner writes an empty line followed by "=== TITLE ===" at INFO level.
func (c *Console) Banner(title string) {
	c.lock.Lock()
	fmt.Fprintln(c.out)
	c.lock.Unlock()
	c.Info("=== %s ===", title)
}
