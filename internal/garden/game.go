// Package garden implements Pixel Bee Garden: a bee collects flowers while
// avoiding spiders that crawl in from the board edges.
//
// A Game is driven entirely by Tick(now); it has no dependency on any frame
// timer or UI, so a terminal, an SSH session or a test can host it.
package garden

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/bee-garden/internal/config"
	"github.com/vovakirdan/bee-garden/internal/core"
)

// Game is the whole simulation state of one player's garden.
type Game struct {
	cfg    config.GardenConfig
	board  core.Vec2
	clock  Clock
	rng    Source
	store  BestStore
	logger *log.Logger

	phase    Phase
	score    int
	best     int
	runID    string
	tick     uint64    // Running ticks since the last start
	lastTime time.Time // Integration baseline; zero until the first tick or start

	player  Player
	input   InputState
	pickups []Pickup
	hazards []Hazard
	spawner *Spawner
}

// Option customizes a Game.
type Option func(*Game)

// WithClock sets the clock used to stamp session starts.
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithSource sets the randomness used for spawning.
func WithSource(src Source) Option {
	return func(g *Game) { g.rng = src }
}

// WithSeed seeds spawning randomness. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = NewSource(seed) }
}

// WithStore sets where the best score is persisted.
func WithStore(s BestStore) Option {
	return func(g *Game) { g.store = s }
}

// WithLogger sets the logger for session events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates an idle game and loads the persisted best score.
// A missing or malformed stored best reads as 0.
func New(cfg config.GardenConfig, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		board: core.V(cfg.Board.Width, cfg.Board.Height),
		input: NewInputState(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = SystemClock{}
	}
	if g.rng == nil {
		g.rng = NewSource(0)
	}
	if g.store == nil {
		g.store = NewMemoryStore()
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.player = NewPlayer(cfg.Player, g.board)
	g.spawner = NewSpawner(g.rng, cfg.Pickups, cfg.Hazards)
	g.best = g.loadBest()
	return g
}

func (g *Game) loadBest() int {
	raw, ok, err := g.store.Get(g.cfg.Storage.BestKey)
	if err != nil {
		g.logger.Warn("could not read best score", "key", g.cfg.Storage.BestKey, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	best := ParseBest(raw)
	if FormatBest(best) != raw {
		g.logger.Warn("ignoring malformed best score", "key", g.cfg.Storage.BestKey, "value", raw)
	}
	return best
}

// Start begins a new run from the title screen or after a game over.
// Returns false (and does nothing) while a run is in progress.
func (g *Game) Start() bool {
	if g.phase == PhaseRunning {
		return false
	}
	g.reset()
	return true
}

// Restart begins a new run after a game over.
// Returns false (and does nothing) in any other phase.
func (g *Game) Restart() bool {
	if g.phase != PhaseEnded {
		return false
	}
	g.reset()
	return true
}

// reset clears the board for a new run.
func (g *Game) reset() {
	g.phase = PhaseRunning
	g.score = 0
	g.tick = 0
	g.pickups = g.pickups[:0]
	g.hazards = g.hazards[:0]
	g.player.Center(g.board)
	g.spawner.Reset()
	g.lastTime = g.clock.Now()
	g.runID = uuid.NewString()

	g.logger.Info("run started", "run", g.runID, "best", g.best)
}

// Tick advances the simulation to now and returns the frame to draw.
// Outside a run it only moves the time baseline forward.
func (g *Game) Tick(now time.Time) Snapshot {
	dt := 0.0
	if !g.lastTime.IsZero() {
		dt = now.Sub(g.lastTime).Seconds()
	}
	g.lastTime = now

	if dt < 0 {
		dt = 0
	}
	if g.cfg.Timing.MaxDelta > 0 && dt > g.cfg.Timing.MaxDelta {
		dt = g.cfg.Timing.MaxDelta
	}

	if g.phase == PhaseRunning {
		g.step(dt)
	}
	return g.Snapshot()
}

// step runs one frame: spawn, move the bee, move and prune spiders,
// collect flowers, then check for a spider hit.
func (g *Game) step(dt float64) {
	g.tick++
	fps := g.cfg.Timing.ReferenceFPS

	pickup, hazard := g.spawner.Advance(dt, g.board)
	if pickup != nil {
		g.pickups = append(g.pickups, *pickup)
	}
	if hazard != nil {
		g.hazards = append(g.hazards, *hazard)
	}

	g.player.Integrate(dt, fps, g.board)

	for i := range g.pickups {
		g.pickups[i].Age += dt
	}

	g.moveHazards(dt, fps)

	if n := g.collectPickups(); n > 0 {
		g.score += n * g.cfg.Pickups.Reward
	}

	if g.hitHazard() >= 0 {
		g.end()
	}
}

// moveHazards integrates every spider, then drops the ones that wandered
// past the prune margin. Iterates backwards so removal is safe.
func (g *Game) moveHazards(dt, fps float64) {
	margin := g.cfg.Hazards.PruneMargin
	for i := len(g.hazards) - 1; i >= 0; i-- {
		h := &g.hazards[i]
		h.Pos = h.Pos.Add(h.Vel.Scale(dt * fps))
		if outsideBoard(h.Pos, g.board, margin) {
			g.hazards = append(g.hazards[:i], g.hazards[i+1:]...)
		}
	}
}

// end finishes the run. Only the first call per run has any effect.
func (g *Game) end() {
	if g.phase != PhaseRunning {
		return
	}
	g.phase = PhaseEnded

	newBest := g.score > g.best
	if newBest {
		g.best = g.score
		if err := g.store.Set(g.cfg.Storage.BestKey, FormatBest(g.best)); err != nil {
			g.logger.Warn("could not persist best score", "best", g.best, "error", err)
		}
	}

	g.logger.Info("run ended", "run", g.runID, "score", g.score, "best", g.best, "new_best", newBest, "ticks", g.tick)
}

// Press marks a movement key as held and updates the bee's direction.
// Returns false for keys that do not move the bee.
func (g *Game) Press(key string) bool {
	if !g.input.Press(key) {
		return false
	}
	g.player.SetIntent(g.input.Intent())
	return true
}

// Release marks a movement key as released.
func (g *Game) Release(key string) {
	g.input.Release(key)
	g.player.SetIntent(g.input.Intent())
}

// SetIntent sets the bee's direction directly, bypassing key tracking.
func (g *Game) SetIntent(dx, dy int) {
	g.player.SetIntent(dx, dy)
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current run's score.
func (g *Game) Score() int {
	return g.score
}

// Best returns the best score seen by this process or loaded from the store.
func (g *Game) Best() int {
	return g.best
}

// RunID returns the identifier of the current or last run.
func (g *Game) RunID() string {
	return g.runID
}

// FinalScore returns the score of the run that just ended.
// ok is false unless the game is over.
func (g *Game) FinalScore() (score int, ok bool) {
	if g.phase != PhaseEnded {
		return 0, false
	}
	return g.score, true
}

// ShareText returns the share message for the finished run.
func (g *Game) ShareText() string {
	return ShareText(g.cfg.Share.Message, g.score)
}

// ShareURL returns a tweet-intent link for the finished run.
func (g *Game) ShareURL() string {
	return ShareURL(g.ShareText(), g.cfg.Share.URL)
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.GardenConfig {
	return g.cfg
}
