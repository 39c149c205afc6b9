// Package progress tracks a bounded, monotonic step counter with a
// human-readable label and forwards every change to a Sink.
package progress

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned when advancing past the fixed total.
var ErrOverflow = errors.New("progress: completed steps would exceed total")

// State is a snapshot of the reporter. Completed never exceeds Total.
type State struct {
	Completed int
	Total     int
	Label     string
}

// Fraction returns completion in [0, 1].
func (s State) Fraction() float64 {
	if s.Total == 0 {
		return 1
	}
	return float64(s.Completed) / float64(s.Total)
}

// Done reports whether every step has completed.
func (s State) Done() bool {
	return s.Completed >= s.Total
}

// String renders the state as "[completed/total] label".
func (s State) String() string {
	return fmt.Sprintf("[%d/%d] %s", s.Completed, s.Total, s.Label)
}

// Sink receives every state change.
type Sink interface {
	Update(State)
}

// Finisher is implemented by sinks that need to release the terminal
// once reporting ends.
type Finisher interface {
	Finish(State)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(State)

// Update calls f(s).
func (f SinkFunc) Update(s State) { f(s) }

// Discard drops every update.
var Discard Sink = SinkFunc(func(State) {})

// Reporter owns the progress state. It is not safe for concurrent use.
type Reporter struct {
	state State
	sink  Sink
}

// New creates a reporter with a fixed total. A nil sink discards updates.
func New(total int, sink Sink) (*Reporter, error) {
	if total < 0 {
		return nil, fmt.Errorf("progress: negative total %d", total)
	}
	if sink == nil {
		sink = Discard
	}
	return &Reporter{state: State{Total: total}, sink: sink}, nil
}

// SetLabel replaces the current label.
func (r *Reporter) SetLabel(label string) {
	r.state.Label = label
	r.sink.Update(r.state)
}

// Advance completes one step.
func (r *Reporter) Advance() error {
	if r.state.Completed >= r.state.Total {
		return ErrOverflow
	}
	r.state.Completed++
	r.sink.Update(r.state)
	return nil
}

// State returns the current snapshot.
func (r *Reporter) State() State {
	return r.state
}

// Finish tells the sink that no further updates follow.
func (r *Reporter) Finish() {
	if f, ok := r.sink.(Finisher); ok {
		f.Finish(r.state)
	}
}
