// Package progress renders download progress on a terminal.
//
// New picks the Indicator once, when the download starts. A known response
// length gets a bounded Bar, otherwise a Spinner is shown. Quiet mode uses
// Hidden, which draws nothing.
package progress

import (
	"io"
	"os"
	"time"
)

// redrawInterval bounds how often a visible indicator repaints.
const redrawInterval = 100 * time.Millisecond

// Indicator is advanced once per received chunk and finished once at the end.
type Indicator interface {
	Advance(n int64)
	Finish()
}

// Config selects and configures an Indicator.
type Config struct {
	// Writer receives the rendering. Defaults to os.Stderr.
	Writer io.Writer
	// Prefix is drawn in front of the bar, usually the file name.
	Prefix string
	// Total is the expected number of bytes, negative when unknown.
	Total int64
	// Quiet hides the indicator entirely.
	Quiet bool
}

// New returns the Indicator matching cfg.
func New(cfg Config) Indicator {
	if cfg.Quiet {
		return &Hidden{}
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Total < 0 {
		return NewSpinner(cfg.Writer, cfg.Prefix)
	}
	return NewBar(cfg.Writer, cfg.Prefix, cfg.Total)
}

// Hidden draws nothing but still keeps count.
type Hidden struct {
	current  int64
	finished bool
}

func (h *Hidden) Advance(n int64) { h.current += n }

func (h *Hidden) Finish() { h.finished = true }

// Current returns the number of bytes advanced so far.
func (h *Hidden) Current() int64 { return h.current }

// Finished reports whether Finish was called.
func (h *Hidden) Finished() bool { return h.finished }
