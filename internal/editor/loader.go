package editor

import (
	"sync"
	"time"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/pdfdoc"
)

// LoadState : document load lifecycle of an editing session
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateReady
	StateErrored
)

func (s LoadState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

// LoadStatus : snapshot of the loader
type LoadStatus struct {
	State      LoadState
	Message    string
	Info       *pdfdoc.Info
	Generation uint64
}

// Timer is the part of *time.Timer the loader needs
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d; time.AfterFunc in production
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Loader guards one document load at a time. The render callback and the
// timeout guard race; whichever settles the current generation first wins and
// the other becomes a no-op.
type Loader struct {
	mu        sync.Mutex
	state     LoadState
	message   string
	info      *pdfdoc.Info
	gen       uint64
	timeout   time.Duration
	afterFunc AfterFunc
	timer     Timer
	settled   chan struct{}
}

func NewLoader(timeout time.Duration, afterFunc AfterFunc) *Loader {
	if afterFunc == nil {
		afterFunc = realAfterFunc
	}
	return &Loader{
		timeout:   timeout,
		afterFunc: afterFunc,
	}
}

// Select moves to loading for a newly selected file and returns its generation.
// Any load still in flight is superseded.
func (l *Loader) Select() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopLocked()
	l.gen++
	l.state = StateLoading
	l.message = ""
	l.info = nil
	l.settled = make(chan struct{})

	gen := l.gen
	if l.timeout > 0 {
		l.timer = l.afterFunc(l.timeout, func() {
			l.Fail(gen, pdfdoc.ErrLoadTimeout)
		})
	}
	return gen
}

// Succeed records the page layout reported by the renderer. It returns false
// when the callback is stale or the load already settled.
func (l *Loader) Succeed(gen uint64, info *pdfdoc.Info) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen || l.state != StateLoading {
		return false
	}
	l.stopTimerLocked()
	l.state = StateReady
	l.info = info
	close(l.settled)
	return true
}

// Fail records a load failure with a classified message
func (l *Loader) Fail(gen uint64, err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen || l.state != StateLoading {
		return false
	}
	l.stopTimerLocked()
	l.state = StateErrored
	l.message = pdfdoc.ClassifyLoadError(err)
	close(l.settled)
	return true
}

// Reset clears the loader back to idle
func (l *Loader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopLocked()
	l.gen++
	l.state = StateIdle
	l.message = ""
	l.info = nil
}

func (l *Loader) Status() LoadStatus {
	l.mu.Lock()
	defer l.mu.Unlock()

	return LoadStatus{State: l.state, Message: l.message, Info: l.info, Generation: l.gen}
}

// Settled returns a channel closed when generation gen leaves loading, or
// when it is superseded by a newer selection.
func (l *Loader) Settled(gen uint64) <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen || l.settled == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return l.settled
}

// stopLocked cancels the timeout guard and releases waiters of a load that
// never settled.
func (l *Loader) stopLocked() {
	l.stopTimerLocked()
	if l.state == StateLoading && l.settled != nil {
		close(l.settled)
	}
}

func (l *Loader) stopTimerLocked() {
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}
