package engine

import (
	"sync"
	"time"
)

// PausableClock is game time that stands still while paused
// Run duration reported to the journal excludes pauses
type PausableClock struct {
	mu sync.RWMutex

	provider TimeProvider

	realStart time.Time     // provider reading at Reset
	paused    bool          // pause in progress
	pauseAt   time.Time     // provider reading when the current pause began
	pausedFor time.Duration // accumulated completed pauses
}

// NewPausableClock creates a running clock over provider
func NewPausableClock(provider TimeProvider) *PausableClock {
	pc := &PausableClock{provider: provider}
	pc.realStart = provider.Now()
	return pc
}

// Reset restarts the epoch and clears pause accounting
func (pc *PausableClock) Reset() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.realStart = pc.provider.Now()
	pc.paused = false
	pc.pauseAt = time.Time{}
	pc.pausedFor = 0
}

// Elapsed returns game time since the last Reset
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	end := pc.provider.Now()
	if pc.paused {
		end = pc.pauseAt
	}
	return end.Sub(pc.realStart) - pc.pausedFor
}

// Now returns the game time instant, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	start := pc.realStart
	pc.mu.RUnlock()
	return start.Add(pc.Elapsed())
}

// RealTime returns the provider reading, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.provider.Now()
}

// Pause stops game time; repeated calls are no-ops
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseAt = pc.provider.Now()
}

// Resume continues game time; repeated calls are no-ops
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.pausedFor += pc.provider.Now().Sub(pc.pauseAt)
	pc.paused = false
	pc.pauseAt = time.Time{}
}

// IsPaused reports whether the clock is stopped
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	total := pc.pausedFor
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseAt)
	}
	return total
}
