package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/progress"

	pstate "github.com/apiforge/cli/internal/progress"
)

// barWidth is the rendered width of the progress bar, excluding text.
const barWidth = 28

// BarSink redraws a single terminal line: "[bar] pct% -- label".
type BarSink struct {
	w   io.Writer
	bar progress.Model
}

// NewBarSink creates a sink drawing to w. w should be a terminal.
func NewBarSink(w io.Writer) *BarSink {
	bar := progress.New(
		progress.WithGradient(string(ColorCyan), string(ColorGreen)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	return &BarSink{w: w, bar: bar}
}

// Update redraws the line for s.
func (b *BarSink) Update(s pstate.State) {
	fmt.Fprintf(b.w, "\r\x1b[2K%s", b.line(s))
}

// Finish terminates the line so later output starts on a fresh one.
func (b *BarSink) Finish(pstate.State) {
	fmt.Fprintln(b.w)
}

func (b *BarSink) line(s pstate.State) string {
	return fmt.Sprintf("[%s] %3.0f%% -- %s", b.bar.ViewAs(s.Fraction()), s.Fraction()*100, s.Label)
}

// LogSink reports progress as info log lines, one per completed step.
// Label changes alone are not logged.
type LogSink struct {
	last int
}

// NewLogSink creates a headless progress sink.
func NewLogSink() *LogSink {
	return &LogSink{last: -1}
}

// Update logs s when a step has completed since the previous call.
func (l *LogSink) Update(s pstate.State) {
	if s.Completed == l.last {
		return
	}
	l.last = s.Completed
	if s.Completed == 0 {
		return
	}
	logger.Info(s.Label, "step", fmt.Sprintf("%d/%d", s.Completed, s.Total))
}

// NewProgressSink picks the bar when stdout is a terminal, the log sink
// otherwise.
func NewProgressSink() pstate.Sink {
	if IsTTY() {
		return NewBarSink(os.Stdout)
	}
	return NewLogSink()
}
