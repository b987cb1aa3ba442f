// Package tower adapts the stacking simulation to the arcade platform:
// input actions, the gate flow, persistence of results and rendering into a
// character screen.
package tower

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stack-tower/internal/config"
	"github.com/vovakirdan/stack-tower/internal/core"
	"github.com/vovakirdan/stack-tower/internal/games/tower/progress"
	"github.com/vovakirdan/stack-tower/internal/games/tower/sim"
	"github.com/vovakirdan/stack-tower/internal/storage"
)

// Store persists the profile record and run history.
type Store interface {
	progress.RecordStore
	SaveRun(run storage.RunEntry) (string, error)
}

// Sink receives simulation events, e.g. to play sounds.
type Sink interface {
	Play(ev sim.Event)
}

// Options configure a Game. Only Tower and Content are required.
type Options struct {
	Tower   config.TowerConfig
	Content config.ContentConfig
	Store   Store
	Gate    Gate
	Sound   Sink
	Logger  *log.Logger
}

// Game runs Stack Tower sessions for one player.
type Game struct {
	cfg     config.TowerConfig
	catalog *progress.Catalog
	store   Store
	gate    Gate
	sound   Sink
	logger  *log.Logger

	runtime core.RuntimeConfig
	session *sim.Session
	fx      *sim.RNG
	ledger  progress.Ledger
	profile progress.Profile
	result  *progress.Result
	runRow  string // run history id of the current run
	tickets map[sim.Effect]sim.Ticket
	paused  bool
	pal     *palette
}

// New creates a game and loads the player profile.
func New(opts Options) *Game {
	g := &Game{
		cfg:     opts.Tower,
		catalog: progress.NewCatalog(opts.Content),
		store:   opts.Store,
		gate:    opts.Gate,
		sound:   opts.Sound,
		logger:  opts.Logger,
		tickets: make(map[sim.Effect]sim.Ticket),
	}
	if g.gate == nil {
		g.gate = &InstantGate{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.profile = g.loadProfile()
	return g
}

func (g *Game) loadProfile() progress.Profile {
	if g.store == nil {
		return progress.DefaultProfile(g.catalog)
	}
	p, err := progress.LoadProfile(g.store, g.catalog)
	if err != nil {
		g.logger.Warn("profile unreadable, using defaults", "error", err)
	}
	return p
}

// ID returns the game identifier used for storage and the CLI.
func (g *Game) ID() string { return "tower" }

// Title returns the display name.
func (g *Game) Title() string { return "Stack Tower" }

// Reset starts a fresh session and its first run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.session = sim.NewSession(g.cfg, cfg.Seed)
	g.fx = sim.NewRNG(cfg.Seed ^ 0x5f3759df)
	g.ledger = progress.Ledger{}
	g.result = nil
	g.runRow = ""
	clear(g.tickets)
	g.paused = false
	g.dispatch(g.session.Start())
}

// Step advances one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(g.runtime)
	}
	dt := sim.NormalizeDelta(in.Elapsed, g.cfg.Timing.MaxDelta)

	if in.Has(core.ActionPause) && g.pausable() {
		g.paused = !g.paused
	}
	if g.paused {
		if in.Has(core.ActionBack) {
			g.paused = false
			g.toMenu()
		}
		return core.StepResult{State: g.State()}
	}

	if g.interstitial() {
		if in.Has(core.ActionBack) {
			for _, t := range g.tickets {
				g.gate.Cancel(t)
			}
		}
	} else {
		g.handleInput(in)
	}

	g.resolveGate(dt)
	if !g.interstitial() {
		g.dispatch(g.session.Update(dt))
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	s := g.session
	switch s.State() {
	case sim.StateMenu:
		if in.Has(core.ActionDrop) || in.Has(core.ActionConfirm) {
			g.startRun()
		}
		return
	case sim.StateGameOver:
		switch {
		case in.Has(core.ActionRevive):
			g.request(sim.EffectRevive)
		case in.Has(core.ActionBack):
			g.toMenu()
		case s.Finished() && (in.Has(core.ActionRestart) || in.Has(core.ActionDrop)):
			g.startRun()
		}
		return
	}

	if in.Has(core.ActionSlowMotion) {
		g.request(sim.EffectSlowMotion)
	}
	if in.Has(core.ActionHint) {
		g.request(sim.EffectHint)
	}
	if in.Has(core.ActionDrop) {
		g.dispatch(s.Tap())
	}
	if in.Has(core.ActionRestart) {
		g.startRun()
	}
}

func (g *Game) startRun() {
	g.result = nil
	g.runRow = ""
	g.dispatch(g.session.Start())
}

func (g *Game) toMenu() {
	g.result = nil
	g.session.ToMenu()
}

func (g *Game) pausable() bool {
	switch g.session.State() {
	case sim.StateReady, sim.StatePlaying, sim.StateFalling:
		return true
	}
	return false
}

// request opens a ticket and hands it to the gate.
func (g *Game) request(e sim.Effect) {
	t, err := g.session.Request(e)
	if err != nil {
		if !errors.Is(err, sim.ErrNotAvailable) && !errors.Is(err, sim.ErrGatePending) {
			g.logger.Warn("power-up request failed", "effect", e, "error", err)
		}
		return
	}
	g.tickets[e] = t
	g.gate.Begin(t, e)
}

func (g *Game) resolveGate(dt float64) {
	for _, r := range g.gate.Poll(dt) {
		for e, t := range g.tickets {
			if t == r.Ticket {
				delete(g.tickets, e)
			}
		}
		evs, err := g.session.Resolve(r.Ticket, r.Decision)
		if err != nil {
			g.logger.Warn("gate resolution rejected", "ticket", r.Ticket, "error", err)
			continue
		}
		g.dispatch(evs)
	}
}

// interstitial reports whether a gate overlay is covering the game.
func (g *Game) interstitial() bool {
	_, _, active := g.Interstitial()
	return active
}

func (g *Game) dispatch(evs []sim.Event) {
	for _, ev := range evs {
		if g.sound != nil {
			g.sound.Play(ev)
		}
		if ev.Kind == sim.EventGameOver {
			g.commit(ev.Summary)
		}
	}
}

// commit folds a finished run into the profile and history. Persistence is
// best effort: failures are logged and the game goes on.
func (g *Game) commit(run sim.RunSummary) {
	res := g.ledger.Commit(&g.profile, run, g.catalog)
	result := progress.NewResult(run, res, g.profile, g.catalog)
	g.result = &result

	if len(res.NewThemes) > 0 || len(res.NewBadges) > 0 {
		g.logger.Info("unlocked", "themes", res.NewThemes, "badges", res.NewBadges)
	}
	if g.store == nil {
		return
	}
	if err := progress.SaveProfile(g.store, g.profile); err != nil {
		g.logger.Warn("cannot save profile", "error", err)
	}
	id, err := g.store.SaveRun(storage.RunEntry{
		ID:         g.runRow,
		Floor:      run.Floor,
		Score:      run.Score,
		Perfects:   run.Perfects,
		BestStreak: run.BestStreak,
		Theme:      g.profile.Theme,
	})
	if err != nil {
		g.logger.Warn("cannot save run", "error", err)
		return
	}
	g.runRow = id
}

// State returns the coarse state the platform needs.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Phase: core.PhaseMenu}
	}
	phase := core.PhaseRun
	switch g.session.State() {
	case sim.StateMenu:
		phase = core.PhaseMenu
	case sim.StateGameOver:
		phase = core.PhaseGameOver
	}
	return core.GameState{
		Phase:  phase,
		Score:  g.session.Score(),
		Floor:  g.session.Floor(),
		Paused: g.paused,
	}
}

// Frame composes the render snapshot for the current tick.
func (g *Game) Frame() sim.Frame { return g.session.Snapshot(g.fx) }

// Paused reports whether the game is paused.
func (g *Game) Paused() bool { return g.paused }

// Interstitial returns the gate overlay currently covering the game, if any.
func (g *Game) Interstitial() (e sim.Effect, secs int, ok bool) {
	o, isOverlay := g.gate.(overlayGate)
	if !isOverlay {
		return 0, 0, false
	}
	return o.Active()
}

// Session exposes the running session.
func (g *Game) Session() *sim.Session { return g.session }

// Profile returns the loaded profile.
func (g *Game) Profile() progress.Profile { return g.profile }

// Catalog returns the content tables.
func (g *Game) Catalog() *progress.Catalog { return g.catalog }

// Result returns the last game-over summary, or nil during a run.
func (g *Game) Result() *progress.Result { return g.result }

// Theme returns the selected theme.
func (g *Game) Theme() config.ThemeConfig { return g.catalog.Theme(g.profile.Theme) }

// SelectTheme switches to an unlocked theme and saves the profile.
func (g *Game) SelectTheme(id string) error {
	if err := g.profile.SelectTheme(id); err != nil {
		return err
	}
	if g.store == nil {
		return nil
	}
	return progress.SaveProfile(g.store, g.profile)
}
