package scroll

import "time"

// Controller applies scroll events to a State.
type Controller struct {
	cfg Config
}

// NewController validates cfg and returns a Controller.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{cfg: cfg}, nil
}

// Config returns the controller settings.
func (c *Controller) Config() Config {
	return c.cfg
}

// Tick records the resolved active index. In ModeAuto a change to a real line
// yields an Effect; in ModeSuspended the index is tracked silently.
func (c *Controller) Tick(st *State, index int) (Effect, bool) {
	if index < 0 {
		index = None
	}
	if index == st.ActiveIndex {
		return Effect{}, false
	}
	st.ActiveIndex = index
	if st.Mode != ModeAuto || index == None {
		return Effect{}, false
	}
	return c.emit(st), true
}

// ManualScroll handles a scroll notification from the view. A token in
// (0, LastToken] echoes one of our own effects and is ignored; anything else
// is a user scroll that suspends auto-scroll and restarts the recovery
// countdown. It reports whether the notification was treated as manual.
func (c *Controller) ManualScroll(st *State, token uint64, now time.Time) bool {
	if token != 0 && token <= st.LastToken {
		return false
	}
	st.Mode = ModeSuspended
	st.LastManualAt = now
	return true
}

// RecoveryTick returns a suspended state to ModeAuto once RecoveryInterval has
// elapsed since the last manual scroll, emitting an Effect for the active line.
func (c *Controller) RecoveryTick(st *State, now time.Time) (Effect, bool) {
	if st.Mode != ModeSuspended {
		return Effect{}, false
	}
	if now.Sub(st.LastManualAt) < c.cfg.RecoveryInterval {
		return Effect{}, false
	}
	st.Mode = ModeAuto
	st.LastManualAt = time.Time{}
	if st.ActiveIndex == None {
		return Effect{}, false
	}
	return c.emit(st), true
}

func (c *Controller) emit(st *State) Effect {
	st.LastToken++
	return Effect{Index: st.ActiveIndex, Token: st.LastToken}
}
