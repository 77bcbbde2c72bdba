package liststate

import (
	"sync"
	"time"
)

// DefaultDebounceWindow is the input-quiescence window before a free-text
// criterion is committed.
const DefaultDebounceWindow = 300 * time.Millisecond

// Debouncer decouples keystroke-rate local input from request-rate
// committed filter state: Update restarts the window, and only after the
// input has been stable for the whole window does the commit callback run.
// At most one commit is pending at a time, so fast typing cannot queue an
// unbounded backlog of requests.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	commit  func(value string)
	timer   *time.Timer
	pending string
	armed   bool
}

func NewDebouncer(window time.Duration, commit func(value string)) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{window: window, commit: commit}
}

// Update records the latest input value and restarts the quiescence window.
func (d *Debouncer) Update(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = value
	d.armed = true

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return
	}
	value := d.pending
	d.armed = false
	d.mu.Unlock()

	d.commit(value)
}

// Flush commits any pending value immediately. Used when the user confirms
// the input before the window elapses, and by tests for determinism.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	d.fire()
}

// Stop cancels any pending commit.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.armed = false
}
