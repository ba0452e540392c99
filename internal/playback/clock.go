package playback

import (
	"sync"
	"time"
)

// Clock reports the current playback position.
type Clock interface {
	PositionMs() int64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() int64

// PositionMs returns f().
func (f ClockFunc) PositionMs() int64 { return f() }

// Simulated is a Clock that advances with wall-clock time while running.
// It is safe for concurrent use.
type Simulated struct {
	mu      sync.Mutex
	now     func() time.Time
	speed   float64
	base    int64
	anchor  time.Time
	running bool
}

// NewSimulated returns a paused clock at position zero. A nil now uses
// time.Now.
func NewSimulated(now func() time.Time) *Simulated {
	if now == nil {
		now = time.Now
	}
	return &Simulated{now: now, speed: 1}
}

// PositionMs implements Clock.
func (c *Simulated) PositionMs() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.positionLocked()
}

func (c *Simulated) positionLocked() int64 {
	if !c.running {
		return c.base
	}
	elapsed := c.now().Sub(c.anchor)
	return c.base + int64(float64(elapsed.Milliseconds())*c.speed)
}

// Start resumes advancing from the current position.
func (c *Simulated) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.anchor = c.now()
	c.running = true
}

// Pause freezes the position.
func (c *Simulated) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.base = c.positionLocked()
	c.running = false
}

// Seek jumps to ms. Negative positions are allowed and resolve to no line.
func (c *Simulated) Seek(ms int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.base = ms
	c.anchor = c.now()
}

// SetSpeed changes the playback rate. Non-positive values are ignored.
func (c *Simulated) SetSpeed(speed float64) {
	if speed <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.base = c.positionLocked()
	c.anchor = c.now()
	c.speed = speed
}

// Running reports whether the clock is advancing.
func (c *Simulated) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
