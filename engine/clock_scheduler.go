package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/parameter"
)

// ClockScheduler drives the fixed stage at the rate held by FixedTimeResource
// The interval is re-read after every tick, so a pacing change takes effect on the next one
type ClockScheduler struct {
	fixed *FixedTimeResource
	step  func()

	nextTickDeadline time.Time // Next tick deadline for drift correction

	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler calling step once per tick
func NewClockScheduler(fixed *FixedTimeResource, step func()) *ClockScheduler {
	return &ClockScheduler{
		fixed:    fixed,
		step:     step,
		stopChan: make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for an in-flight tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns ticks executed so far
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.nextTickDeadline = time.Now().Add(cs.fixed.Interval())

	timer := time.NewTimer(time.Until(cs.nextTickDeadline))
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		cs.step()
		cs.tickCount.Add(1)

		interval := cs.fixed.Interval()
		now := time.Now()
		cs.nextTickDeadline = cs.nextTickDeadline.Add(interval)

		// Too far behind: resynchronize instead of bursting catch-up ticks
		if now.Sub(cs.nextTickDeadline) > interval*parameter.SchedulerMaxBehind {
			cs.nextTickDeadline = now.Add(interval)
		}

		sleep := cs.nextTickDeadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
