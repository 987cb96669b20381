package launch

import (
	"fmt"
	"time"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Remaining is a duration split into display units.
type Remaining struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Decompose truncates d to whole milliseconds and splits it into days,
// hours-of-day, minutes-of-hour and seconds-of-minute. Negative durations
// decompose to zero.
func Decompose(d time.Duration) Remaining {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return Remaining{
		Days:    ms / msPerDay,
		Hours:   (ms / msPerHour) % 24,
		Minutes: (ms / msPerMinute) % 60,
		Seconds: (ms / msPerSecond) % 60,
	}
}

// Digits renders each unit zero padded to two digits. Days may run wider.
func (r Remaining) Digits() (days, hours, minutes, seconds string) {
	return pad2(r.Days), pad2(r.Hours), pad2(r.Minutes), pad2(r.Seconds)
}

func pad2(v int64) string {
	return fmt.Sprintf("%02d", v)
}

// State is the countdown engine state.
type State int

const (
	StateLoading State = iota
	StateCounting
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateCounting:
		return "counting"
	case StateExpired:
		return "expired"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// TickResult reports what a countdown tick should do.
type TickResult int

const (
	// TickStale means the tick belongs to a superseded timer and must not re-arm.
	TickStale TickResult = iota
	// TickCounting means render Remaining and schedule the next tick.
	TickCounting
	// TickExpired means the target passed; re-enter Loading.
	TickExpired
)

// Engine tracks the active target and which timer generation owns it.
type Engine struct {
	state      State
	target     Target
	generation uint64
}

// Begin enters Loading and invalidates every outstanding tick. The returned
// generation must accompany the resolved target and later ticks.
func (e *Engine) Begin() uint64 {
	e.state = StateLoading
	e.generation++
	return e.generation
}

// Arm installs target for generation gen and starts Counting. It reports
// false when gen is stale.
func (e *Engine) Arm(gen uint64, target Target) bool {
	if gen != e.generation || e.state != StateLoading {
		return false
	}
	e.target = target
	e.state = StateCounting
	return true
}

// Tick computes the remaining time at now for the timer of generation gen.
func (e *Engine) Tick(gen uint64, now time.Time) (Remaining, TickResult) {
	if gen != e.generation || e.state != StateCounting {
		return Remaining{}, TickStale
	}
	diff := e.target.At.Sub(now)
	if diff <= 0 {
		e.state = StateExpired
		return Remaining{}, TickExpired
	}
	return Decompose(diff), TickCounting
}

// State returns the current state.
func (e *Engine) State() State { return e.state }

// Target returns the active target; zero while nothing has been armed.
func (e *Engine) Target() Target { return e.target }

// Generation returns the current timer generation.
func (e *Engine) Generation() uint64 { return e.generation }
