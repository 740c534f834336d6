package progress

import (
	"io"

	"fortio.org/progressbar"
	"golang.org/x/time/rate"

	"github.com/accelara/rget/internal/utils"
)

// Bar is a bounded progress bar sized to the expected byte count.
type Bar struct {
	bar     *progressbar.Bar
	total   int64
	current int64
	redraw  rate.Sometimes
}

func NewBar(w io.Writer, prefix string, total int64) *Bar {
	bar := progressbar.NewBarWithWriter(w)
	bar.Prefix = prefix + " "
	return &Bar{
		bar:    bar,
		total:  total,
		redraw: rate.Sometimes{Interval: redrawInterval},
	}
}

func (b *Bar) Advance(n int64) {
	b.current += n
	b.redraw.Do(b.draw)
}

func (b *Bar) Finish() {
	b.draw()
	b.bar.End()
}

// Current returns the number of bytes advanced so far.
func (b *Bar) Current() int64 { return b.current }

func (b *Bar) draw() {
	b.bar.Suffix = " " + utils.HumanBytes(b.current) + "/" + utils.HumanBytes(b.total)
	b.bar.Progress(b.percent())
}

// percent never exceeds 100, even when the server sends more than it announced.
func (b *Bar) percent() float64 {
	if b.total <= 0 {
		return 100
	}
	p := 100 * float64(b.current) / float64(b.total)
	if p > 100 {
		p = 100
	}
	return p
}
