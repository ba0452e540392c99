package playback

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"lrcsync/internal/logging"
	"lrcsync/internal/syncsession"
)

const (
	defaultTickInterval = 100 * time.Millisecond
	manualQueueSize     = 16
)

// DriverOptions configures a Driver. Zero values select defaults.
type DriverOptions struct {
	// TickInterval is how often the clock is sampled.
	TickInterval time.Duration
	// RecoveryPoll is how often the session's recovery check runs.
	// Defaults to TickInterval.
	RecoveryPoll time.Duration
	// EndMs stops Run once the clock reaches it. Zero means no end.
	EndMs int64
	// Now supplies the time passed to recovery checks. Defaults to time.Now.
	Now    func() time.Time
	Logger *slog.Logger
}

// Driver feeds a session from a clock.
type Driver struct {
	session      *syncsession.Session
	clock        Clock
	tickInterval time.Duration
	recoveryPoll time.Duration
	endMs        int64
	now          func() time.Time
	logger       *slog.Logger

	manual chan uint64
	done   chan struct{}
}

// NewDriver creates a driver for session reading positions from clock.
func NewDriver(session *syncsession.Session, clock Clock, opts DriverOptions) (*Driver, error) {
	if session == nil {
		return nil, errors.New("playback: session is required")
	}
	if clock == nil {
		return nil, errors.New("playback: clock is required")
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = defaultTickInterval
	}
	if opts.RecoveryPoll <= 0 {
		opts.RecoveryPoll = opts.TickInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Driver{
		session:      session,
		clock:        clock,
		tickInterval: opts.TickInterval,
		recoveryPoll: opts.RecoveryPoll,
		endMs:        opts.EndMs,
		now:          opts.Now,
		logger:       logging.NewComponentLogger(opts.Logger, "playback"),
		manual:       make(chan uint64, manualQueueSize),
		done:         make(chan struct{}),
	}, nil
}

// ManualScroll queues a scroll report for the run loop. It returns false if
// the driver has stopped.
func (d *Driver) ManualScroll(token uint64) bool {
	select {
	case <-d.done:
		return false
	default:
	}
	select {
	case d.manual <- token:
		return true
	case <-d.done:
		return false
	}
}

// Step samples the clock once, ticks the session, and runs a recovery check
// at now. It reports whether playback has reached the end position.
func (d *Driver) Step(now time.Time) bool {
	ended := d.tick()
	d.session.RecoveryCheck(now)
	return ended
}

func (d *Driver) tick() bool {
	position := d.clock.PositionMs()
	d.session.Tick(position)
	return d.endMs > 0 && position >= d.endMs
}

// Run drives the session until ctx is done or playback reaches EndMs. It must
// be called at most once; the session must not be used from other goroutines
// while it runs.
func (d *Driver) Run(ctx context.Context) error {
	defer close(d.done)

	tickTicker := time.NewTicker(d.tickInterval)
	defer tickTicker.Stop()
	recoveryTicker := time.NewTicker(d.recoveryPoll)
	defer recoveryTicker.Stop()

	d.logger.Debug("playback driver started",
		logging.Duration("tick_interval", d.tickInterval),
		logging.Duration("recovery_poll", d.recoveryPoll),
		logging.Int64("end_ms", d.endMs),
	)

	if d.Step(d.now()) {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tickTicker.C:
			if d.tick() {
				d.logger.Debug("playback reached end", logging.Int64(logging.FieldPositionMs, d.endMs))
				return nil
			}
		case <-recoveryTicker.C:
			d.session.RecoveryCheck(d.now())
		case token := <-d.manual:
			d.session.ManualScroll(token)
		}
	}
}
