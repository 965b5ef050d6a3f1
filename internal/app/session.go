// Package app ties the simulation, the gesture handoff and the round ledger
// into a session that a frontend drives.
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gesnake/internal/core"
	"github.com/vovakirdan/gesnake/internal/gesture"
	"github.com/vovakirdan/gesnake/internal/snake"
	"github.com/vovakirdan/gesnake/internal/storage"
)

// Frontend displays a session and drives its simulation clock.
type Frontend interface {
	// ID is the name used on the command line, e.g. "window".
	ID() string

	// Title is a human-readable name.
	Title() string

	// Run blocks until the user quits or the session is done.
	Run(ctx context.Context, s *Session) error
}

// Options configures a session.
type Options struct {
	Seed      int64   // Zero picks a time-based seed
	Threshold float64 // Gesture threshold; zero uses the default
	Ledger    *storage.Store
	Logger    *log.Logger
}

// View is a copy of everything a frontend needs to draw one frame.
type View struct {
	Size    int
	Body    []core.Point // Head first
	Fruit   core.Point
	State   core.GameState
	Gesture core.Gesture
	Best    int
	Round   int

	// Pause or game over message, empty while playing
	Message [2]string
}

// HasMessage reports whether an overlay message should be shown.
func (v View) HasMessage() bool {
	return v.Message[0] != ""
}

// Session is one run of the game. All methods are safe for concurrent use;
// the capture goroutine only ever touches the shared gesture.
type Session struct {
	mu       sync.Mutex
	game     *snake.Game
	shared   *gesture.Shared
	ledger   *storage.Store
	logger   *log.Logger
	seed     int64
	round    int
	best     int
	started  time.Time
	recorded bool

	ctx    context.Context
	cancel context.CancelCauseFunc
}

// NewSession starts the first round. The session is done when ctx is done
// or Stop is called.
func NewSession(ctx context.Context, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	ctx, cancel := context.WithCancelCause(ctx)
	s := &Session{
		game:   snake.New(),
		shared: gesture.NewShared(),
		ledger: opts.Ledger,
		logger: opts.Logger,
		seed:   opts.Seed,
		ctx:    ctx,
		cancel: cancel,
	}
	s.refreshBestLocked()
	s.resetLocked()
	return s
}

func (s *Session) resetLocked() {
	s.round++
	cfg := core.DefaultConfig()
	cfg.Seed = s.seed + int64(s.round-1)
	s.game.Reset(cfg)
	s.shared.Reset()
	s.started = time.Now()
	s.recorded = false
	s.logger.Info("round started", "round", s.round)
}

// Shared returns the gesture handoff the capture loop writes to.
func (s *Session) Shared() *gesture.Shared {
	return s.shared
}

// Tick advances the simulation one step using the latest gesture. A round is
// written to the ledger once, on the tick that ends it.
func (s *Session) Tick() core.StepResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.game.Step(s.shared.Latest())
	if res.Ate {
		s.logger.Debug("fruit eaten", "score", res.State.Score, "length", res.State.Length)
	}
	if res.State.GameOver && !s.recorded {
		s.recordLocked(res.State.Reason)
	}
	return res
}

// Restart begins a new round. It only works after game over.
func (s *Session) Restart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.game.State().GameOver {
		return false
	}
	s.resetLocked()
	return true
}

// TogglePause pauses or resumes the simulation.
func (s *Session) TogglePause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.TogglePause()
}

// Stop ends the session. A round still in progress is recorded as quit.
func (s *Session) Stop() {
	s.mu.Lock()
	if !s.recorded && s.game.Ticks() > 0 {
		s.recordLocked(core.ReasonQuit)
	}
	s.mu.Unlock()
	s.cancel(nil)
}

// fail ends the session with an error visible through Err.
func (s *Session) fail(err error) {
	s.cancel(err)
}

// Done is closed when the session ends.
func (s *Session) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Err returns the error that ended the session, or nil for a normal stop.
func (s *Session) Err() error {
	cause := context.Cause(s.ctx)
	if cause == nil || errors.Is(cause, context.Canceled) {
		return nil
	}
	return cause
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.State()
}

// Snapshot returns the current game snapshot.
func (s *Session) Snapshot() snake.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// View copies the drawable state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Render draws the field and any overlay into dst and returns the state it
// drew, both taken under one lock.
func (s *Session) Render(dst *core.Screen, cellW int) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Render(dst, cellW)
	s.game.RenderOverlay(dst)
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	v := View{
		Size:    s.game.Size(),
		Body:    s.game.Body(),
		Fruit:   s.game.Fruit(),
		State:   s.game.State(),
		Gesture: s.shared.Latest(),
		Best:    s.best,
		Round:   s.round,
	}
	if line1, line2, ok := s.game.OverlayLines(); ok {
		v.Message = [2]string{line1, line2}
	}
	return v
}

// refreshBestLocked reads the best score from the ledger.
func (s *Session) refreshBestLocked() {
	if s.ledger == nil {
		return
	}
	best, err := s.ledger.Best()
	if err != nil {
		s.logger.Warn("cannot read best score", "error", err)
		return
	}
	s.best = best
}

func (s *Session) recordLocked(reason core.EndReason) {
	s.recorded = true
	st := s.game.State()
	s.logger.Info("round over", "round", s.round, "score", st.Score,
		"length", st.Length, "reason", reason, "ticks", s.game.Ticks())

	if s.ledger == nil {
		s.best = max(s.best, st.Score)
		return
	}
	_, err := s.ledger.SaveRound(storage.Round{
		Score:     st.Score,
		Length:    st.Length,
		Ticks:     s.game.Ticks(),
		Reason:    reason,
		Gestures:  s.shared.Changes(),
		StartedAt: s.started,
		EndedAt:   time.Now(),
	})
	if err != nil {
		s.logger.Warn("cannot record round", "error", err)
		s.best = max(s.best, st.Score)
		return
	}
	s.refreshBestLocked()
}
