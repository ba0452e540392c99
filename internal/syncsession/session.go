package syncsession

import (
	"fmt"
	"log/slog"
	"time"

	"lrcsync/internal/logging"
	"lrcsync/internal/lyrics"
	"lrcsync/internal/scroll"
)

// Clock supplies wall-clock time for stamping manual scrolls.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now returns f().
func (f ClockFunc) Now() time.Time { return f() }

// Observer receives every scroll effect a session emits.
type Observer func(scroll.Effect)

// Option customizes a Session.
type Option func(*Session)

// WithConfig sets the auto-scroll controller configuration.
func WithConfig(cfg scroll.Config) Option {
	return func(s *Session) { s.cfg = cfg }
}

// WithClock overrides the clock used to stamp manual scrolls.
func WithClock(clock Clock) Option {
	return func(s *Session) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger attaches a logger; transitions are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithOffset makes resolution honour the document's [offset:] tag.
func WithOffset(enabled bool) Option {
	return func(s *Session) { s.honorOffset = enabled }
}

// Session synchronizes one lyrics document with a playback position.
type Session struct {
	doc         *lyrics.Document
	state       scroll.State
	controller  *scroll.Controller
	cfg         scroll.Config
	clock       Clock
	logger      *slog.Logger
	honorOffset bool

	observers []observerEntry
	nextID    int
	last      scroll.Effect
	hasLast   bool
}

type observerEntry struct {
	id int
	fn Observer
}

// New creates a session for doc. A nil document behaves like an empty one.
func New(doc *lyrics.Document, opts ...Option) (*Session, error) {
	s := &Session{
		cfg:   scroll.DefaultConfig(),
		clock: ClockFunc(time.Now),
	}
	for _, opt := range opts {
		opt(s)
	}
	controller, err := scroll.NewController(s.cfg)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	s.controller = controller
	s.logger = logging.NewComponentLogger(s.logger, "session")
	s.load(doc)
	return s, nil
}

func (s *Session) load(doc *lyrics.Document) {
	if doc == nil {
		doc = &lyrics.Document{}
	}
	s.doc = doc
	s.state.Reset()
	s.hasLast = false
	s.logger.Debug("lyrics loaded",
		logging.Int("lines", doc.Len()),
		logging.Int("skipped_records", doc.Skipped()),
	)
}

// Replace swaps in the document for a new track and resets the scroll state.
func (s *Session) Replace(doc *lyrics.Document) {
	s.load(doc)
}

// Tick advances the session to playback position timeMs. It returns the
// scroll effect produced, if any.
func (s *Session) Tick(timeMs int64) (scroll.Effect, bool) {
	position := timeMs
	if s.honorOffset {
		position += s.doc.Metadata().OffsetMs
	}
	index, _ := lyrics.Resolve(s.doc, position)
	previous := s.state.ActiveIndex
	effect, ok := s.controller.Tick(&s.state, index)
	if previous != s.state.ActiveIndex {
		s.logger.Debug("active line changed",
			logging.Int64(logging.FieldPositionMs, timeMs),
			logging.Int(logging.FieldActiveIndex, s.state.ActiveIndex),
			logging.String(logging.FieldMode, s.state.Mode.String()),
		)
	}
	if ok {
		s.publish(effect)
	}
	return effect, ok
}

// ManualScroll reports a scroll of the lyrics view. Pass the token of the
// effect that caused a programmatic scroll, or zero for a user scroll.
func (s *Session) ManualScroll(token uint64) {
	wasMode := s.state.Mode
	if !s.controller.ManualScroll(&s.state, token, s.clock.Now()) {
		s.logger.Debug("ignored engine scroll echo", logging.Uint64(logging.FieldToken, token))
		return
	}
	if wasMode != s.state.Mode {
		s.logger.Debug("auto-scroll suspended", logging.Int(logging.FieldActiveIndex, s.state.ActiveIndex))
	}
}

// RecoveryCheck is called periodically by the owner's timer. Once the quiet
// interval has passed it resumes auto-scroll and returns the resync effect.
func (s *Session) RecoveryCheck(now time.Time) (scroll.Effect, bool) {
	wasMode := s.state.Mode
	effect, ok := s.controller.RecoveryTick(&s.state, now)
	if wasMode != s.state.Mode {
		s.logger.Debug("auto-scroll recovered", logging.Int(logging.FieldActiveIndex, s.state.ActiveIndex))
	}
	if ok {
		s.publish(effect)
	}
	return effect, ok
}

// Subscribe registers fn to receive every future effect. The returned function
// removes the registration.
func (s *Session) Subscribe(fn Observer) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observerEntry{id: id, fn: fn})
	return func() {
		for i, entry := range s.observers {
			if entry.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) publish(effect scroll.Effect) {
	s.last = effect
	s.hasLast = true
	for _, entry := range append([]observerEntry(nil), s.observers...) {
		entry.fn(effect)
	}
}

// ActiveIndex returns the active line index or lyrics.None.
func (s *Session) ActiveIndex() int {
	return s.state.ActiveIndex
}

// ActiveLine returns the active line, if any.
func (s *Session) ActiveLine() (lyrics.Line, bool) {
	return s.doc.Line(s.state.ActiveIndex)
}

// Mode returns the current auto-scroll mode.
func (s *Session) Mode() scroll.Mode {
	return s.state.Mode
}

// State returns a copy of the scroll state.
func (s *Session) State() scroll.State {
	return s.state
}

// LastEffect returns the most recent effect emitted for the current document.
func (s *Session) LastEffect() (scroll.Effect, bool) {
	return s.last, s.hasLast
}

// Document returns the session's lyrics.
func (s *Session) Document() *lyrics.Document {
	return s.doc
}

// Config returns the controller configuration in use.
func (s *Session) Config() scroll.Config {
	return s.controller.Config()
}
