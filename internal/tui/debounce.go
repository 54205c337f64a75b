package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type debounceTickMsg struct {
	seq uint64
}

// Debouncer turns a burst of input changes into a single settled value.
// Every Observe restarts the quiet window; only the tick for the most recent
// observation resolves. Single-threaded, driven by the Bubble Tea loop.
type Debouncer struct {
	window  time.Duration
	seq     uint64
	value   string
	stopped bool
}

func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Observe records a new value and arms a tick carrying its sequence number.
// A tick whose sequence has been superseded resolves to nothing.
func (d *Debouncer) Observe(value string) tea.Cmd {
	if d.stopped {
		return nil
	}
	d.seq++
	d.value = value
	seq := d.seq
	return tea.Tick(d.window, func(time.Time) tea.Msg {
		return debounceTickMsg{seq: seq}
	})
}

// Resolve reports whether msg corresponds to the latest observation and, if
// so, the settled value.
func (d *Debouncer) Resolve(msg debounceTickMsg) (string, bool) {
	if d.stopped || msg.seq != d.seq {
		return "", false
	}
	return d.value, true
}

// Stop invalidates all pending ticks. Used on session teardown so nothing
// fires afterwards.
func (d *Debouncer) Stop() {
	d.stopped = true
}
