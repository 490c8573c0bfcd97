package editor_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/editor"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/pdfdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock captures scheduled timeout callbacks so tests decide when they fire
type fakeClock struct {
	mu     sync.Mutex
	fns    []func()
	timers []*fakeTimer
}

type fakeTimer struct {
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (c *fakeClock) AfterFunc(_ time.Duration, f func()) editor.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{}
	c.fns = append(c.fns, f)
	c.timers = append(c.timers, t)
	return t
}

// fire runs the most recent callback regardless of Stop, like a timer whose
// Stop lost the race
func (c *fakeClock) fire() {
	c.mu.Lock()
	f := c.fns[len(c.fns)-1]
	c.mu.Unlock()
	f()
}

func (c *fakeClock) lastTimer() *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timers[len(c.timers)-1]
}

var twoPages = &pdfdoc.Info{Pages: []pdfdoc.PageSize{{Width: 612, Height: 792}, {Width: 612, Height: 792}}}

func TestLoader_SuccessBeforeTimeout(t *testing.T) {
	clock := &fakeClock{}
	l := editor.NewLoader(30*time.Second, clock.AfterFunc)

	gen := l.Select()
	assert.Equal(t, editor.StateLoading, l.Status().State)

	require.True(t, l.Succeed(gen, twoPages))
	assert.True(t, clock.lastTimer().stopped, "timeout guard cancelled")

	clock.fire()

	status := l.Status()
	assert.Equal(t, editor.StateReady, status.State)
	assert.Empty(t, status.Message)
	assert.Equal(t, 2, status.Info.PageCount())
}

func TestLoader_LateSuccessAfterTimeoutIgnored(t *testing.T) {
	clock := &fakeClock{}
	l := editor.NewLoader(30*time.Second, clock.AfterFunc)

	gen := l.Select()
	clock.fire()

	assert.False(t, l.Succeed(gen, twoPages))

	status := l.Status()
	assert.Equal(t, editor.StateErrored, status.State)
	assert.Equal(t, pdfdoc.MessageTimeout, status.Message)
	assert.Nil(t, status.Info)
}

func TestLoader_FailureClassified(t *testing.T) {
	clock := &fakeClock{}
	l := editor.NewLoader(30*time.Second, clock.AfterFunc)

	gen := l.Select()
	require.True(t, l.Fail(gen, errors.New("encrypted PDF: invalid password")))
	assert.True(t, clock.lastTimer().stopped)

	assert.Equal(t, editor.StateErrored, l.Status().State)
	assert.Equal(t, pdfdoc.MessagePassword, l.Status().Message)

	// terminal until the next selection
	assert.False(t, l.Succeed(gen, twoPages))
	assert.Equal(t, editor.StateErrored, l.Status().State)
}

func TestLoader_NewSelectionSupersedesOldCallbacks(t *testing.T) {
	clock := &fakeClock{}
	l := editor.NewLoader(30*time.Second, clock.AfterFunc)

	first := l.Select()
	firstSettled := l.Settled(first)
	second := l.Select()

	select {
	case <-firstSettled:
	default:
		t.Fatal("superseded load must release its waiters")
	}

	assert.False(t, l.Succeed(first, twoPages))
	assert.Equal(t, editor.StateLoading, l.Status().State)

	require.True(t, l.Succeed(second, twoPages))
	assert.Equal(t, editor.StateReady, l.Status().State)
}

func TestLoader_ResetReturnsToIdle(t *testing.T) {
	clock := &fakeClock{}
	l := editor.NewLoader(30*time.Second, clock.AfterFunc)

	gen := l.Select()
	l.Reset()

	assert.True(t, clock.lastTimer().stopped)
	assert.Equal(t, editor.StateIdle, l.Status().State)
	assert.False(t, l.Fail(gen, errors.New("late")))
	assert.Equal(t, "idle", l.Status().State.String())
}
