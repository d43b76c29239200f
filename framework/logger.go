package framework

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const debugTimestampFormat = "15:04:05.000"

// Logger is the minimal logging interface used for debug output.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

type CapturedMessage struct {
	Time    time.Time
	Message string
}

type CapturedOutput []CapturedMessage

// CapturingLogger keeps everything logged to it so it can be shown later, for instance only if the
// test turns out to have failed.
type CapturingLogger struct {
	output []CapturedMessage
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	l.output = append(l.output, CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)})
	l.lock.Unlock()
}

func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append([]CapturedMessage(nil), l.output...)
	l.lock.Unlock()
	return ret
}

func (output CapturedOutput) Lines() []string {
	lines := make([]string, 0, len(output))
	for _, m := range output {
		lines = append(lines, fmt.Sprintf("[%s] %s", m.Time.Format(debugTimestampFormat), m.Message))
	}
	return lines
}

func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, line := range output.Lines() {
		fmt.Fprintf(dest, "%s%s\n", prefix, line)
	}
}
