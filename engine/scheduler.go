package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// TickFunc runs once per frame with the current clock reading
type TickFunc func(now time.Time)

// FrameScheduler drives the animation on a fixed tick without busy-wait.
// One goroutine sleeps toward a drift-corrected deadline and invokes the
// tick callback; when the loop falls too far behind it re-anchors instead
// of bursting catch-up ticks
type FrameScheduler struct {
	clock    Clock
	interval time.Duration
	tick     TickFunc

	// Tick deadline for drift correction
	mu           sync.Mutex
	nextDeadline time.Time

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewFrameScheduler creates a scheduler with the specified tick interval
func NewFrameScheduler(clock Clock, interval time.Duration, tick TickFunc) *FrameScheduler {
	if interval <= 0 {
		interval = 33 * time.Millisecond
	}
	return &FrameScheduler{
		clock:    clock,
		interval: interval,
		tick:     tick,
		stopChan: make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (fs *FrameScheduler) Start() {
	if fs.running.CompareAndSwap(false, true) {
		fs.wg.Add(1)
		go fs.loop()
	}
}

// Stop halts the scheduler loop and waits for the final tick to return
func (fs *FrameScheduler) Stop() {
	fs.stopOnce.Do(func() {
		if fs.running.CompareAndSwap(true, false) {
			close(fs.stopChan)
			fs.wg.Wait()
		}
	})
}

// TickCount returns the number of ticks executed so far
func (fs *FrameScheduler) TickCount() uint64 {
	return fs.tickCount.Load()
}

func (fs *FrameScheduler) loop() {
	defer fs.wg.Done()

	fs.mu.Lock()
	fs.nextDeadline = fs.clock.Now().Add(fs.interval)
	fs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-fs.stopChan:
			return
		default:
		}

		now := fs.clock.Now()

		fs.mu.Lock()
		deadline := fs.nextDeadline
		fs.mu.Unlock()

		var sleep time.Duration
		if !now.Before(deadline) {
			fs.tick(now)
			fs.tickCount.Add(1)

			fs.mu.Lock()
			fs.nextDeadline = fs.nextDeadline.Add(fs.interval)

			// Re-anchor when more than two intervals behind
			if now.Sub(fs.nextDeadline) > fs.interval*2 {
				fs.nextDeadline = now.Add(fs.interval)
			}
			deadline = fs.nextDeadline
			fs.mu.Unlock()

			sleep = deadline.Sub(fs.clock.Now())
			if sleep < 0 {
				sleep = 0
			}
		} else {
			sleep = deadline.Sub(now)
		}

		if sleep > 0 {
			timer.Reset(sleep)
			select {
			case <-timer.C:
			case <-fs.stopChan:
				return
			}
		}
	}
}
