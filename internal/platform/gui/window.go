// Package gui runs Stack Tower in a desktop window with ebiten.
package gui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/stack-tower/internal/core"
	"github.com/vovakirdan/stack-tower/internal/games/tower"
)

// keyBindings maps window keys to game actions.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionDrop},
	{ebiten.KeyArrowUp, core.ActionDrop},
	{ebiten.KeyArrowDown, core.ActionDrop},
	{ebiten.KeyEnter, core.ActionDrop},
	{ebiten.KeyDigit1, core.ActionSlowMotion},
	{ebiten.KeyDigit2, core.ActionHint},
	{ebiten.KeyV, core.ActionRevive},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyB, core.ActionBack},
	{ebiten.KeyEscape, core.ActionBack},
	{ebiten.KeyQ, core.ActionQuit},
}

// Window adapts a tower game to ebiten.Game.
type Window struct {
	game   *tower.Game
	input  core.InputFrame
	last   time.Time
	colors colorCache
	width  int
	height int
}

// NewWindow wraps game; Reset must already have been called.
func NewWindow(game *tower.Game) *Window {
	f := game.Frame()
	return &Window{
		game:   game,
		input:  core.NewInputFrame(),
		colors: make(colorCache),
		width:  int(f.FrameW),
		height: int(f.FrameH),
	}
}

// Update collects input and advances the game by the wall-clock time since
// the previous update.
func (w *Window) Update() error {
	now := time.Now()
	if !w.last.IsZero() {
		w.input.Elapsed = now.Sub(w.last)
	}
	w.last = now

	for _, b := range keyBindings {
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		if b.action == core.ActionQuit {
			return ebiten.Termination
		}
		w.input.Set(b.action)
	}
	// A click or touch anywhere is a tap
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		w.input.Set(core.ActionDrop)
	}

	w.game.Step(w.input)
	w.input.Clear()
	return nil
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	f := w.game.Frame()
	d := &drawer{
		screen: screen,
		colors: w.colors,
		theme:  w.game.Theme(),
		f:      f,
		camY:   f.CameraY + f.ShakeY,
		shakeX: f.ShakeX,
	}
	d.draw(w.game.Profile().Stats.MaxFloor)

	if title, lines, ok := w.game.Overlay(); ok {
		d.panel(title, lines)
	}
}

// Layout keeps the logical play field; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until it is closed.
func Run(game *tower.Game, cfg core.RuntimeConfig) error {
	cfg = cfg.Resolve(time.Now())
	game.Reset(cfg)
	w := NewWindow(game)

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	return ebiten.RunGame(w)
}
