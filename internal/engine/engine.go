// Package engine provides the fixed-period tick loop that drives the
// simulation. Every active process advances exactly once per tick; the
// engine is the single point where simulated time moves forward.
package engine

import (
	"log/slog"
	"time"

	"github.com/talgya/stardrift/internal/clock"
)

// Default cadences. The tick period is the resolution of every
// progress bar; save and summary run on multiples of it.
const (
	DefaultInterval     = 50 * time.Millisecond
	DefaultSaveEvery    = 30 * time.Second
	DefaultSummaryEvery = time.Minute
)

// Engine drives the simulation forward on a fixed wall-clock interval.
type Engine struct {
	Interval     time.Duration // Tick period
	SaveEvery    time.Duration // Autosave cadence (0 disables)
	SummaryEvery time.Duration // Summary log cadence (0 disables)

	// Callbacks for each cadence layer — populated during setup.
	OnTick    func(delta time.Duration) // Every tick
	OnSave    func()                    // Every SaveEvery
	OnSummary func()                    // Every SummaryEvery

	Clock clock.Clock

	tick uint64
	stop chan struct{}
	done chan struct{}
}

// New creates an engine with default cadences and the real clock.
func New() *Engine {
	return &Engine{
		Interval:     DefaultInterval,
		SaveEvery:    DefaultSaveEvery,
		SummaryEvery: DefaultSummaryEvery,
		Clock:        clock.Real{},
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Tick returns the number of ticks fired so far.
func (e *Engine) Tick() uint64 { return e.tick }

// Run starts the loop and blocks until Stop is called. A tick with no
// active processes is a no-op in the callback; the engine keeps firing
// regardless, which is cheap at the fixed rate and keeps the loop free
// of start/stop races between processes.
func (e *Engine) Run() {
	ticker := e.Clock.NewTicker(e.Interval)
	defer ticker.Stop()
	defer close(e.done)

	saveTicks := cadenceTicks(e.SaveEvery, e.Interval)
	summaryTicks := cadenceTicks(e.SummaryEvery, e.Interval)

	slog.Info("engine started", "interval", e.Interval, "save_every", e.SaveEvery)

	for {
		select {
		case <-e.stop:
			slog.Info("engine stopped", "tick", e.tick)
			return
		case <-ticker.C():
			e.step(saveTicks, summaryTicks)
		}
	}
}

// Stop halts the loop and waits for it to drain.
func (e *Engine) Stop() {
	close(e.stop)
	<-e.done
}

// step advances the simulation by one tick.
func (e *Engine) step(saveTicks, summaryTicks uint64) {
	e.tick++

	if e.OnTick != nil {
		e.OnTick(e.Interval)
	}
	if saveTicks > 0 && e.tick%saveTicks == 0 && e.OnSave != nil {
		e.OnSave()
	}
	if summaryTicks > 0 && e.tick%summaryTicks == 0 && e.OnSummary != nil {
		e.OnSummary()
	}
}

func cadenceTicks(every, interval time.Duration) uint64 {
	if every <= 0 || interval <= 0 {
		return 0
	}
	n := every / interval
	if n < 1 {
		n = 1
	}
	return uint64(n)
}
