package scroll

import (
	"fmt"
	"time"
)

// None marks the absence of an active line.
const None = -1

// Mode is the scroll ownership state.
type Mode int

const (
	// ModeAuto means the engine keeps the view on the active line.
	ModeAuto Mode = iota
	// ModeSuspended means the viewer scrolled manually and the engine stays out of the way.
	ModeSuspended
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeSuspended:
		return "suspended"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// State is the mutable data the Controller operates on.
type State struct {
	Mode         Mode
	ActiveIndex  int
	LastManualAt time.Time
	// LastToken is the token of the most recent Effect.
	LastToken uint64
}

// NewState returns the initial state: ModeAuto with no active line.
func NewState() State {
	return State{Mode: ModeAuto, ActiveIndex: None}
}

// Reset returns st to its initial values while keeping the token sequence.
func (st *State) Reset() {
	token := st.LastToken
	*st = NewState()
	st.LastToken = token
}

// Effect instructs the view to scroll to the line at Index.
type Effect struct {
	Index int    `json:"index"`
	Token uint64 `json:"token"`
}

func (e Effect) String() string {
	return fmt.Sprintf("ScrollTo(%d)#%d", e.Index, e.Token)
}
