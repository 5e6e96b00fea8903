// Package interp keeps a first-person view smooth when frames are rendered
// faster than the simulation ticks.
//
// A Controller double-buffers the view state captured at each tick. Around
// every rendered frame it temporarily replaces the live state with a blend
// of the last two ticks and then puts the true tick state back, so game
// logic never observes the cosmetic value. The host calls, in order:
//
//	OnTick()            zero or more times, once per simulation tick
//	Before(frameTime)   once, before the frame reads the view state
//	After()             once, after the frame is drawn
package interp

import (
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/automoto/fpinterp/shared/gamemath"
	"github.com/automoto/fpinterp/viewmodel"
)

// State is the blend state of a Controller.
type State int

const (
	// Idle means the live state holds true tick state.
	Idle State = iota
	// Blended means a Before is outstanding and the live state may hold a
	// blended value.
	Blended
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Blended:
		return "blended"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Options tune how a Controller blends.
type Options struct {
	// Enabled turns blending on. A disabled controller still tracks ticks
	// and enforces call ordering but never touches the live state in Before.
	Enabled bool

	// MaxAlpha is the upper clamp for the frame fraction. 1 restricts the
	// blend to the span between the last two ticks; larger values allow
	// extrapolating past the latest tick. Values below 1 are treated as 1.
	MaxAlpha float64

	AngleMode viewmodel.AngleMode

	// SkipDiscontinuous leaves the live state alone when the two buffered
	// ticks show different weapons, animations or node counts.
	SkipDiscontinuous bool

	// Strict panics with the *ProtocolError on a protocol violation
	// instead of logging it and returning it.
	Strict bool
}

// DefaultOptions returns pure interpolation with shortest-arc angles.
func DefaultOptions() Options {
	return Options{
		Enabled:           true,
		MaxAlpha:          1,
		AngleMode:         viewmodel.AngleShortest,
		SkipDiscontinuous: true,
	}
}

// Stats counts what a Controller has done since creation.
type Stats struct {
	Ticks      uint64
	Frames     uint64
	Blended    uint64 // frames drawn from a blend of two ticks
	Skipped    uint64 // frames drawn at the true state
	Violations uint64
	LastAlpha  float64
}

// Controller is the tick/frame interpolation state machine for one view.
// All methods are safe for concurrent use; ordering between them is still
// the caller's job and is checked.
type Controller struct {
	mu   sync.Mutex
	live LiveState
	opts Options

	previous viewmodel.Snapshot
	current  viewmodel.Snapshot
	blended  viewmodel.Snapshot

	ticks       uint64
	seeded      bool
	pendingSwap bool
	state       State
	overwrote   bool

	stats Stats
}

// New returns an Idle controller bound to live with no ticks captured.
func New(live LiveState, opts Options) *Controller {
	return &Controller{live: live, opts: opts}
}

// OnTick captures the live state as the newest tick and retires the oldest.
// The first capture after creation or Reset seeds both buffers, so there is
// no motion from an uninitialized previous tick.
func (c *Controller) OnTick() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Blended {
		return c.violation("OnTick", ErrTickDuringBlend)
	}

	if c.seeded {
		c.previous = c.current
		c.live.Load(&c.current)
	} else {
		c.live.Load(&c.current)
		c.previous = c.current
		c.seeded = true
	}
	c.ticks++
	c.stats.Ticks++
	c.pendingSwap = true
	return nil
}

// Before writes the blend of the last two ticks at frameTime into the live
// state. frameTime is the render frame's position between the previous tick
// (0) and the current tick (1); it is clamped to [0, MaxAlpha] and NaN
// counts as 1.
//
// When blending is disabled or the two ticks are discontinuous the live
// state is set to the current tick instead. Before the first tick it is
// left untouched. Either way the controller is Blended afterwards and After
// must follow.
func (c *Controller) Before(frameTime float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Blended {
		return c.violation("Before", ErrOverlappingBefore)
	}

	alpha := c.alpha(frameTime)
	c.state = Blended
	c.pendingSwap = false
	c.stats.Frames++
	c.stats.LastAlpha = alpha

	if !c.seeded {
		c.overwrote = false
		c.stats.Skipped++
		return nil
	}
	if !c.opts.Enabled ||
		(c.opts.SkipDiscontinuous && !viewmodel.Continuous(&c.previous, &c.current)) {
		c.live.Store(&c.current)
		c.overwrote = true
		c.stats.Skipped++
		return nil
	}

	viewmodel.Blend(&c.blended, &c.previous, &c.current, alpha, c.opts.AngleMode)
	c.live.Store(&c.blended)
	c.overwrote = true
	c.stats.Blended++
	return nil
}

// After restores the current tick state into the live state and returns
// the controller to Idle.
func (c *Controller) After() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Blended {
		return c.violation("After", ErrUnmatchedAfter)
	}

	if c.overwrote {
		c.live.Store(&c.current)
		c.overwrote = false
	}
	c.state = Idle
	return nil
}

// Reset forgets every captured tick, as on a level or session change. The
// next OnTick is treated as the first. An outstanding blend is undone first
// but the frame stays open, so the pending After still pairs up.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.overwrote {
		c.live.Store(&c.current)
		c.overwrote = false
	}
	c.previous = viewmodel.Snapshot{}
	c.current = viewmodel.Snapshot{}
	c.ticks = 0
	c.seeded = false
	c.pendingSwap = false
}

// Bind points the controller at a different live state location. Captured
// ticks are kept.
func (c *Controller) Bind(live LiveState) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Blended {
		return c.violation("Bind", ErrBindDuringBlend)
	}
	c.live = live
	return nil
}

// SetOptions replaces the blend options. It takes effect at the next
// Before.
func (c *Controller) SetOptions(opts Options) {
	c.mu.Lock()
	c.opts = opts
	c.mu.Unlock()
}

func (c *Controller) Options() Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opts
}

// Snapshots returns copies of the previous and current tick buffers.
func (c *Controller) Snapshots() (previous, current viewmodel.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.previous, c.current
}

// Ticks returns the number of ticks captured since creation or Reset.
func (c *Controller) Ticks() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// PendingSwap reports whether a tick arrived since the last Before.
func (c *Controller) PendingSwap() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingSwap
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Controller) alpha(frameTime float64) float64 {
	if math.IsNaN(frameTime) {
		return 1
	}
	return gamemath.Clamp(frameTime, 0, math.Max(1, c.opts.MaxAlpha))
}

// violation must be called with mu held. In strict mode the panic unwinds
// through the caller's deferred unlock.
func (c *Controller) violation(op string, err error) error {
	c.stats.Violations++
	pe := &ProtocolError{Op: op, State: c.state, Tick: c.ticks, Err: err}
	if c.opts.Strict {
		panic(pe)
	}
	log.Printf("[interp] %v", pe)
	return pe
}
