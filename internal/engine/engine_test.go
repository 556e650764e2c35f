package engine_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/stardrift/internal/clock"
	"github.com/talgya/stardrift/internal/engine"
)

// fakeClock drives the engine by hand: each send on ticks is one tick.
type fakeClock struct {
	ticks chan time.Time
}

func (f *fakeClock) Now() time.Time { return time.Unix(0, 0) }

func (f *fakeClock) NewTicker(time.Duration) clock.Ticker { return fakeTicker{f.ticks} }

type fakeTicker struct{ c chan time.Time }

func (t fakeTicker) C() <-chan time.Time { return t.c }
func (fakeTicker) Stop()                 {}

func newEngine(fc *fakeClock) *engine.Engine {
	e := engine.New()
	e.Clock = fc
	return e
}

func TestTickCallbackReceivesInterval(t *testing.T) {
	fc := &fakeClock{ticks: make(chan time.Time)}
	e := newEngine(fc)

	var ticks atomic.Int64
	var lastDelta atomic.Int64
	e.OnTick = func(delta time.Duration) {
		ticks.Add(1)
		lastDelta.Store(int64(delta))
	}

	go e.Run()
	for i := 0; i < 7; i++ {
		fc.ticks <- time.Time{}
	}
	assert.Eventually(t, func() bool { return ticks.Load() == 7 },
		time.Second, time.Millisecond)
	e.Stop()

	assert.Equal(t, uint64(7), e.Tick())
	assert.Equal(t, int64(engine.DefaultInterval), lastDelta.Load())
}

func TestSaveAndSummaryCadence(t *testing.T) {
	fc := &fakeClock{ticks: make(chan time.Time)}
	e := newEngine(fc)
	// Save every 4 ticks, summarize every 10.
	e.Interval = 50 * time.Millisecond
	e.SaveEvery = 200 * time.Millisecond
	e.SummaryEvery = 500 * time.Millisecond

	var ticks, saves, summaries atomic.Int64
	e.OnTick = func(time.Duration) { ticks.Add(1) }
	e.OnSave = func() { saves.Add(1) }
	e.OnSummary = func() { summaries.Add(1) }

	go e.Run()
	for i := 0; i < 20; i++ {
		fc.ticks <- time.Time{}
	}
	assert.Eventually(t, func() bool { return ticks.Load() == 20 },
		time.Second, time.Millisecond)
	e.Stop()

	assert.Equal(t, int64(5), saves.Load())
	assert.Equal(t, int64(2), summaries.Load())
}

func TestZeroCadenceDisablesLayer(t *testing.T) {
	fc := &fakeClock{ticks: make(chan time.Time)}
	e := newEngine(fc)
	e.SaveEvery = 0
	e.SummaryEvery = 0

	var ticks, saves atomic.Int64
	e.OnTick = func(time.Duration) { ticks.Add(1) }
	e.OnSave = func() { saves.Add(1) }

	go e.Run()
	for i := 0; i < 10; i++ {
		fc.ticks <- time.Time{}
	}
	assert.Eventually(t, func() bool { return ticks.Load() == 10 },
		time.Second, time.Millisecond)
	e.Stop()

	assert.Equal(t, int64(0), saves.Load())
}

func TestStopWithoutTicks(t *testing.T) {
	fc := &fakeClock{ticks: make(chan time.Time)}
	e := newEngine(fc)

	go e.Run()
	e.Stop()

	assert.Equal(t, uint64(0), e.Tick())
}

func TestNilCallbacksAreSafe(t *testing.T) {
	fc := &fakeClock{ticks: make(chan time.Time)}
	e := newEngine(fc)

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	fc.ticks <- time.Time{}
	e.Stop()
	<-done

	assert.Equal(t, uint64(1), e.Tick())
}
