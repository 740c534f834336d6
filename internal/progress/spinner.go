package progress

import (
	"io"

	"fortio.org/progressbar"
	"golang.org/x/time/rate"

	"github.com/accelara/rget/internal/utils"
)

// Spinner is used when the response carries no usable Content-Length. It
// shows the bytes received so far instead of a percentage.
type Spinner struct {
	bar     *progressbar.Bar
	current int64
	redraw  rate.Sometimes
}

func NewSpinner(w io.Writer, prefix string) *Spinner {
	bar := progressbar.NewBarWithWriter(w)
	bar.Prefix = prefix + " "
	bar.Spinner = true
	return &Spinner{
		bar:    bar,
		redraw: rate.Sometimes{Interval: redrawInterval},
	}
}

func (s *Spinner) Advance(n int64) {
	s.current += n
	s.redraw.Do(s.draw)
}

func (s *Spinner) Finish() {
	s.draw()
	s.bar.End()
}

// Current returns the number of bytes advanced so far.
func (s *Spinner) Current() int64 { return s.current }

// A negative percentage tells progressbar to skip the bar and keep the spinner.
func (s *Spinner) draw() {
	s.bar.Suffix = " " + utils.HumanBytes(s.current)
	s.bar.Progress(-1)
}
