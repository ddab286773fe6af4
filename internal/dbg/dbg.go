// Package dbg provides the logging and timing context threaded through
// the tessellate/boolean/offset pipeline. Its shape follows the
// teacher's BuildContext: logging and timers can each be switched on or
// off (NewContext starts with both on), messages accumulate in a bounded ring, and named timers accumulate
// duration across repeated Start/Stop pairs rather than resetting.
package dbg

import (
	"fmt"
	"time"
)

// LogCategory classifies a logged message.
type LogCategory int

const (
	Progress LogCategory = 1 + iota
	Warning
	Error
)

func (c LogCategory) String() string {
	switch c {
	case Progress:
		return "PROG"
	case Warning:
		return "WARN"
	case Error:
		return "ERR"
	default:
		return "?"
	}
}

// TimerLabel names one of the pipeline's accumulated timers.
type TimerLabel int

const (
	TimerTotal TimerLabel = iota
	TimerTessellate
	TimerFuse
	TimerRasterize
	TimerContourTrace
	TimerRegionLabel
	TimerInflate
	TimerArcRecovery
	TimerOffset
	maxTimers
)

const maxMessages = 1000

// Message is one accumulated log entry.
type Message struct {
	Category LogCategory
	Text     string
}

// Context accumulates log messages and timer durations for one pipeline
// run. The zero value has logging and timers disabled; use NewContext to
// get a context with both enabled.
type Context struct {
	logEnabled   bool
	timerEnabled bool

	messages []Message

	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration
}

// NewContext returns a Context with logging and timers enabled.
func NewContext() *Context {
	return &Context{logEnabled: true, timerEnabled: true}
}

// EnableLog enables or disables logging.
func (c *Context) EnableLog(state bool) { c.logEnabled = state }

// EnableTimer enables or disables the performance timers.
func (c *Context) EnableTimer(state bool) { c.timerEnabled = state }

// ResetLog clears all log entries. It does nothing while logging is disabled.
func (c *Context) ResetLog() {
	if c.logEnabled {
		c.messages = c.messages[:0]
	}
}

// ResetTimers clears all accumulated timer durations. It does nothing
// while timers are disabled.
func (c *Context) ResetTimers() {
	if c.timerEnabled {
		for i := range c.accTime {
			c.accTime[i] = 0
		}
	}
}

func (c *Context) Progressf(format string, v ...interface{}) { c.logf(Progress, format, v...) }
func (c *Context) Warningf(format string, v ...interface{})  { c.logf(Warning, format, v...) }
func (c *Context) Errorf(format string, v ...interface{})    { c.logf(Error, format, v...) }

func (c *Context) logf(cat LogCategory, format string, v ...interface{}) {
	if c.logEnabled && len(c.messages) < maxMessages {
		c.messages = append(c.messages, Message{Category: cat, Text: fmt.Sprintf(format, v...)})
	}
}

// Messages returns the accumulated log messages.
func (c *Context) Messages() []Message { return c.messages }

// DumpLog prints a header built from format and args, then every
// accumulated message, to standard output. Kept simple: callers that need structured output
// should read Messages() directly instead.
func (c *Context) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	for _, m := range c.messages {
		fmt.Printf("%s %s\n", m.Category, m.Text)
	}
}

// StartTimer starts the named timer.
func (c *Context) StartTimer(label TimerLabel) {
	if c.timerEnabled {
		c.startTime[label] = time.Now()
	}
}

// StopTimer stops the named timer and accumulates the elapsed duration.
func (c *Context) StopTimer(label TimerLabel) {
	if c.timerEnabled {
		c.accTime[label] += time.Since(c.startTime[label])
	}
}

// AccumulatedTime returns the total accumulated duration for the named
// timer, or 0 if timers are disabled.
func (c *Context) AccumulatedTime(label TimerLabel) time.Duration {
	if !c.timerEnabled {
		return 0
	}
	return c.accTime[label]
}
