package wheel

import (
	"math"
	"math/rand"
	"time"

	"spinpick/events"
)

// Phase is the animation lifecycle state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSpinning
	PhaseDecelerating
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpinning:
		return "spinning"
	case PhaseDecelerating:
		return "decelerating"
	case PhaseSettled:
		return "settled"
	}
	return "unknown"
}

// Config bounds and shapes a spin run
type Config struct {
	MinDuration       time.Duration // Lower clamp for total and decel hints
	MaxDuration       time.Duration // Upper clamp for total and decel hints
	SpinUpFraction    float64       // Fraction of total spent ramping to cruise
	CruiseTurnsPerSec float64       // Steady angular speed in turns per second
	MinExtraTurns     int           // Whole turns always added to the deceleration path
}

// DefaultConfig returns the stock spin shape
func DefaultConfig() Config {
	return Config{
		MinDuration:       time.Second,
		MaxDuration:       60 * time.Second,
		SpinUpFraction:    0.15,
		CruiseTurnsPerSec: 2.5,
		MinExtraTurns:     1,
	}
}

func (c Config) normalized() Config {
	if c.MinDuration <= 0 {
		c.MinDuration = time.Second
	}
	if c.MaxDuration < c.MinDuration {
		c.MaxDuration = c.MinDuration
	}
	if c.SpinUpFraction <= 0 || c.SpinUpFraction > 1 {
		c.SpinUpFraction = 0.15
	}
	if c.CruiseTurnsPerSec <= 0 {
		c.CruiseTurnsPerSec = 2.5
	}
	if c.MinExtraTurns < 0 {
		c.MinExtraTurns = 0
	}
	return c
}

// Schedule is the effective clamped duration pair of one run
type Schedule struct {
	Total time.Duration
	Decel time.Duration
}

// Spinner drives the wheel rotation through Idle, Spinning,
// Decelerating and Settled. The winner is pre-committed at Start with a
// single weighted draw, then the deceleration curve is steered to land
// inside that entry's arc, so a stop request at any elapsed time never
// changes who wins. Every public method is a defined no-op outside its
// valid phase; nothing here returns an error or panics on bad input.
//
// Not goroutine-safe on its own: Tick, Start and RequestDecel are meant
// to run on the frame loop, the way engine.FrameScheduler drives them
type Spinner struct {
	wheel *Wheel
	cfg   Config
	rng   *rand.Rand
	queue *events.Queue

	phase     Phase
	schedule  Schedule
	startTime time.Time
	lastTick  time.Time
	cruiseVel float64 // rad/s

	// Pre-committed outcome, fixed at Start
	targetIndex  int
	landingAngle float64

	// Ease-out curve, re-parameterized at deceleration entry
	decelStart time.Time
	decelDur   time.Duration
	decelFrom  float64 // rotation when deceleration began
	decelDist  float64 // remaining radians including extra whole turns
}

// NewSpinner creates an idle spinner over the given wheel. The random
// source is injected so tests can pin the draw sequence; notifications
// are pushed onto queue
func NewSpinner(w *Wheel, cfg Config, rng *rand.Rand, queue *events.Queue) *Spinner {
	return &Spinner{
		wheel: w,
		cfg:   cfg.normalized(),
		rng:   rng,
		queue: queue,
		phase: PhaseIdle,
	}
}

// Phase returns the current lifecycle state
func (s *Spinner) Phase() Phase {
	return s.phase
}

// Active reports whether a run currently owns the wheel rotation
func (s *Spinner) Active() bool {
	return s.phase == PhaseSpinning || s.phase == PhaseDecelerating
}

// Rebuild replaces the wheel layout from a fresh entry snapshot.
// Rejected while a run is active: the Spinner owns rotation and
// segments between Start and settle. Returns whether the rebuild took
func (s *Spinner) Rebuild(entries []Entry) bool {
	if s.Active() {
		return false
	}
	s.wheel.Rebuild(entries)
	s.phase = PhaseIdle
	return true
}

// Start begins a run from Idle or Settled. The duration hints are
// clamped into the configured band with decel capped at total, and the
// effective schedule is returned so duration controls can reflect it.
// Two draws are taken up front: a weighted pick of the target entry
// over the segment widths, and a uniform landing angle inside the
// target arc. Without segments, or mid-run, nothing happens and ok is
// false
func (s *Spinner) Start(now time.Time, total, decel time.Duration) (Schedule, bool) {
	if s.phase != PhaseIdle && s.phase != PhaseSettled {
		return Schedule{}, false
	}
	if !s.wheel.HasSegments() {
		return Schedule{}, false
	}

	idx, err := WeightedIndex(s.wheel.SegmentWidths(), s.rng.Float64())
	if err != nil {
		// Unreachable with segments present, every arc has positive width
		return Schedule{}, false
	}
	target := s.wheel.segments[idx]

	s.targetIndex = idx
	s.landingAngle = target.Start + s.rng.Float64()*target.Width()
	s.schedule = s.clampSchedule(total, decel)
	s.startTime = now
	s.lastTick = now
	s.cruiseVel = FullTurn * s.cfg.CruiseTurnsPerSec
	s.phase = PhaseSpinning
	s.notifyState(now)

	return s.schedule, true
}

// RequestDecel begins deceleration early. Valid only while Spinning; at
// most one deceleration happens per run, so a second request, or one
// arriving after settle, is a no-op
func (s *Spinner) RequestDecel(now time.Time, decel time.Duration) {
	if s.phase != PhaseSpinning {
		return
	}
	s.beginDecel(now, s.clampDuration(decel))
}

// Tick advances rotation to the given time. Driven once per frame by
// the scheduler; no-op while Idle or Settled
func (s *Spinner) Tick(now time.Time) {
	switch s.phase {
	case PhaseSpinning:
		dt := now.Sub(s.lastTick)
		s.lastTick = now
		if dt < 0 {
			dt = 0
		}
		elapsed := now.Sub(s.startTime)
		s.wheel.SetRotation(s.wheel.Rotation() + s.velocityAt(elapsed)*dt.Seconds())

		// Hand over to deceleration so the run completes within Total
		if elapsed >= s.schedule.Total-s.schedule.Decel {
			s.beginDecel(now, s.schedule.Decel)
		}

	case PhaseDecelerating:
		s.lastTick = now
		t := now.Sub(s.decelStart)
		if t >= s.decelDur {
			s.finalize(now)
			return
		}
		f := float64(t) / float64(s.decelDur)
		s.wheel.SetRotation(s.decelFrom + s.decelDist*(1-(1-f)*(1-f)))
	}
}

// velocityAt returns the spin-up/cruise profile speed at elapsed time
func (s *Spinner) velocityAt(elapsed time.Duration) float64 {
	ramp := time.Duration(float64(s.schedule.Total) * s.cfg.SpinUpFraction)
	if ramp <= 0 || elapsed >= ramp {
		return s.cruiseVel
	}
	f := float64(elapsed) / float64(ramp)
	// Quadratic ramp, zero slope at the cruise handover
	return s.cruiseVel * f * (2 - f)
}

// beginDecel re-parameterizes the ease-out curve at entry: the distance
// is the minimal non-negative rotation reaching the landing angle, plus
// whole extra turns chosen so the curve's entry speed stays close to
// the current speed (never fewer than the configured minimum turns)
func (s *Spinner) beginDecel(now time.Time, dur time.Duration) {
	r := s.wheel.Rotation()
	base := NormalizeAngle(s.landingAngle - r)

	v := s.velocityAt(now.Sub(s.startTime))
	// A quadratic ease-out over distance D and time T starts at 2D/T,
	// so D near v*T/2 keeps the handover smooth
	ideal := v * dur.Seconds() / 2
	turns := math.Round((ideal - base) / FullTurn)
	if min := float64(s.cfg.MinExtraTurns); turns < min {
		turns = min
	}

	s.decelFrom = r
	s.decelDist = base + turns*FullTurn
	s.decelStart = now
	s.decelDur = dur
	s.phase = PhaseDecelerating
	s.notifyState(now)
}

// finalize snaps rotation exactly onto the pre-committed landing angle,
// resolves the winner and settles. The committed target is
// authoritative: if float drift ever resolved the snapped angle into a
// neighboring arc, the target entry is still the one reported
func (s *Spinner) finalize(now time.Time) {
	s.wheel.SetRotation(NormalizeAngle(s.landingAngle))

	winner := s.wheel.segments[s.targetIndex].Entry
	if idx, ok := s.wheel.ResolveIndex(s.wheel.Rotation()); ok && idx == s.targetIndex {
		winner = s.wheel.segments[idx].Entry
	}

	s.phase = PhaseSettled
	s.notifyState(now)
	s.queue.Push(events.Event{
		Type:      events.EventWinnerPicked,
		Payload:   &events.WinnerPayload{Name: winner.Name, Weight: winner.Weight},
		Timestamp: now,
	})
}

func (s *Spinner) clampSchedule(total, decel time.Duration) Schedule {
	sched := Schedule{
		Total: s.clampDuration(total),
		Decel: s.clampDuration(decel),
	}
	if sched.Decel > sched.Total {
		sched.Decel = sched.Total
	}
	return sched
}

func (s *Spinner) clampDuration(d time.Duration) time.Duration {
	if d < s.cfg.MinDuration {
		return s.cfg.MinDuration
	}
	if d > s.cfg.MaxDuration {
		return s.cfg.MaxDuration
	}
	return d
}

func (s *Spinner) notifyState(now time.Time) {
	s.queue.Push(events.Event{
		Type: events.EventSpinStateChanged,
		Payload: &events.SpinStatePayload{
			Running:     s.Active(),
			StopEnabled: s.phase == PhaseSpinning,
		},
		Timestamp: now,
	})
}
