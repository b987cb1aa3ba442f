package tower

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/stack-tower/internal/config"
	"github.com/vovakirdan/stack-tower/internal/core"
	"github.com/vovakirdan/stack-tower/internal/games/tower/progress"
	"github.com/vovakirdan/stack-tower/internal/games/tower/sim"
)

// Terminal cells are about twice as tall as wide.
const cellAspect = 2.0

// Visual characters
const (
	BlockChar   = '█'
	FlashChar   = '▓'
	PieceChar   = '▒'
	GlowChar    = '░'
	HintChar    = '┊'
	StarChar    = '·'
	MoteChar    = '.'
	SquareChar  = '▪'
	SparkleChar = '✦'
	PulseChar   = '∘'
)

const gridColor = "#3a3a4a"

// palette maps hex colours of one theme to screen palette indices.
type palette struct {
	themeID string
	colors  core.Palette
	index   map[string]core.Color
	text    core.Color
	grid    core.Color
}

func newPalette(t config.ThemeConfig) *palette {
	p := &palette{themeID: t.ID, index: make(map[string]core.Color)}
	text := t.TextColor
	if text == "" {
		text = "#ffffff"
	}
	p.text = p.color(text)
	p.grid = p.color(gridColor)
	for _, c := range t.Colors {
		p.color(c)
	}
	return p
}

func (p *palette) color(hex string) core.Color {
	if hex == "" {
		return core.ColorDefault
	}
	if c, ok := p.index[hex]; ok {
		return c
	}
	c := p.colors.Add(hex)
	p.index[hex] = c
	return c
}

// renderer draws frames for one screen.
type renderer struct {
	dst   *core.Screen
	vp    core.Viewport
	pal   *palette
	theme config.ThemeConfig
	f     sim.Frame
	camY  float64 // camera plus shake, in logical units
	shake float64
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	theme := g.Theme()
	if g.pal == nil || g.pal.themeID != theme.ID {
		g.pal = newPalette(theme)
	}

	f := g.Frame()
	r := &renderer{
		dst:   dst,
		vp:    core.NewViewport(f.FrameW, f.FrameH, dst.Width(), max(dst.Height()-2, 1), cellAspect),
		pal:   g.pal,
		theme: theme,
		f:     f,
		camY:  f.CameraY + f.ShakeY,
		shake: f.ShakeX,
	}
	r.vp.OffsetY++ // HUD row

	r.background()
	if f.State != sim.StateMenu {
		r.hint()
		r.stack()
		r.piece()
	}
	r.particles()
	r.flash()
	r.feedback()
	r.hud(g.profile)

	if title, lines, ok := g.overlay(f); ok {
		r.box(title, lines)
	}
	dst.SetPalette(g.pal.colors)
}

// world converts a logical rectangle in world space to cells.
func (r *renderer) world(x, y, w, h float64) core.Rect {
	return r.vp.CellRect(x+r.shake, y+r.camY, w, h)
}

func (r *renderer) background() {
	f := r.f
	if r.theme.Stars {
		for i := range 60 {
			x := math.Mod(float64(i*97+13), f.FrameW)
			y := math.Mod(float64(i*137+29)+f.CameraY*0.2, f.FrameH)
			if y < 0 {
				y += f.FrameH
			}
			r.set(r.vp.Col(x), r.vp.Row(y), StarChar, r.pal.grid)
		}
	} else {
		off := math.Mod(f.CameraY, 40)
		for gy := off; gy < f.FrameH; gy += 40 {
			for gx := 0.0; gx < f.FrameW; gx += 40 {
				r.set(r.vp.Col(gx), r.vp.Row(gy), StarChar, r.pal.grid)
			}
		}
	}
	for _, m := range f.Motes {
		if m.Alpha < 0.35 {
			continue
		}
		r.set(r.vp.Col(m.X), r.vp.Row(m.Y), MoteChar, r.pal.text)
	}
}

func (r *renderer) stack() {
	f := r.f
	for i, b := range f.Stack {
		top := i == len(f.Stack)-1 && f.Moving == nil
		r.block(b, top)
	}
	if f.Moving != nil {
		r.block(*f.Moving, true)
	}
}

func (r *renderer) block(b sim.Block, top bool) {
	c := r.pal.color(progress.BlockColor(r.theme, b.Color))
	rect := r.world(b.X, b.Y, b.W, b.H)
	ch := BlockChar
	if b.Flash > 0.1 {
		ch = FlashChar
	}
	if r.theme.Glow && top {
		r.set(rect.X-1, rect.Y, GlowChar, c)
		r.set(rect.Right(), rect.Y, GlowChar, c)
	}
	r.dst.FillRect(rect, core.Cell{Rune: ch, Color: c})
}

func (r *renderer) piece() {
	p := r.f.Piece
	if p == nil {
		return
	}
	c := r.pal.color(progress.BlockColor(r.theme, p.Color))
	r.dst.FillRect(r.world(p.X, p.Y, p.W, p.H), core.Cell{Rune: PieceChar, Color: c})
}

func (r *renderer) hint() {
	h := r.f.Hint
	if h == nil {
		return
	}
	c := r.pal.color(sim.ColorHint)
	top := r.vp.Row(h.Top + r.camY)
	bottom := r.vp.Row(h.Bottom + r.camY)
	for _, x := range []float64{h.Left, h.Right} {
		col := r.vp.Col(x + r.shake)
		for row := top; row <= bottom; row++ {
			r.set(col, row, HintChar, c)
		}
	}
}

func (r *renderer) particles() {
	for _, p := range r.f.Particles {
		if p.Alpha() < 0.15 {
			continue
		}
		switch p := p.(type) {
		case sim.Square:
			r.point(p.X, p.Y, SquareChar, p.Color)
		case sim.Sparkle:
			r.point(p.X, p.Y, SparkleChar, p.Color)
		case sim.Pulse:
			rad := p.Radius()
			for k := range 12 {
				a := float64(k) * math.Pi / 6
				r.point(p.X+math.Cos(a)*rad, p.Y+math.Sin(a)*rad, PulseChar, p.Color)
			}
		case sim.Text:
			col := r.vp.Col(p.X+r.shake) - len(p.Text)/2
			r.dst.DrawTextColor(col, r.vp.Row(p.Y+r.camY), p.Text, r.pal.color(p.Color))
		}
	}
}

func (r *renderer) point(x, y float64, ch rune, hex string) {
	r.set(r.vp.Col(x+r.shake), r.vp.Row(y+r.camY), ch, r.pal.color(hex))
}

func (r *renderer) flash() {
	if r.f.Flash < 0.1 {
		return
	}
	frame := r.vp.Frame()
	r.dst.DrawBoxColor(frame, r.pal.color(sim.ColorPerfect))
}

func (r *renderer) feedback() {
	fb := r.f.Feedback
	if fb == nil || fb.Alpha() < 0.2 {
		return
	}
	text := fb.Text
	if fb.Size >= 32 {
		text = spaced(text)
	}
	r.centered(r.vp.Row(fb.Y), text, r.pal.color(fb.Color))
}

func (r *renderer) hud(p progress.Profile) {
	f := r.f
	frame := r.vp.Frame()
	left := fmt.Sprintf(" FLOOR %d  SCORE %d", f.Floor, f.Score)
	right := fmt.Sprintf("BEST %d ", p.Stats.MaxFloor)
	r.dst.DrawTextColor(0, 0, left, r.pal.text)
	r.dst.DrawTextColor(r.dst.Width()-len(right), 0, right, r.pal.text)

	if f.ShowCombo() {
		combo := fmt.Sprintf("%dx COMBO", f.Combo)
		r.dst.DrawTextColor(frame.Right()-len(combo)-1, frame.Y+1, combo, r.pal.color(sim.ColorBonus))
	}
	if f.SlowMotion > 0 {
		slow := fmt.Sprintf("SLOW (%ds)", f.SlowSeconds)
		r.dst.DrawTextColor(frame.X+1, frame.Y+1, slow, r.pal.color(sim.ColorSlow))
	}

	help := "SPACE drop  1 slow  2 hint  P pause  Q quit"
	r.dst.DrawTextCenteredColor(r.dst.Height()-1, help, r.pal.grid)
}

// Overlay returns the message box covering the current frame, if any.
func (g *Game) Overlay() (title string, lines []string, ok bool) {
	if g.session == nil {
		return "", nil, false
	}
	return g.overlay(g.session.Snapshot(nil))
}

func (g *Game) overlay(f sim.Frame) (string, []string, bool) {
	switch {
	case g.interstitial():
		e, secs, _ := g.Interstitial()
		return "SPONSOR BREAK", []string{
			fmt.Sprintf("%s in %ds", effectLabel(e), secs),
			"",
			"ESC skip (no reward)",
		}, true
	case g.paused:
		return "PAUSED", []string{"", "P resume  B menu"}, true
	case f.State == sim.StateMenu:
		return "S T A C K   T O W E R", menuLines(g.profile, g.catalog), true
	case f.State == sim.StateReady:
		return "READY", []string{"", "SPACE to start"}, true
	case f.State == sim.StateGameOver && f.Finished && g.result != nil:
		return "GAME OVER", resultLines(g.result, f.ReviveAvailable), true
	}
	return "", nil, false
}

func menuLines(p progress.Profile, cat *progress.Catalog) []string {
	title := cat.TitleFor(p.Stats.MaxFloor)
	return []string{
		fmt.Sprintf("%s %s", title.Emoji, title.Name),
		fmt.Sprintf("Best floor %d   Games %d", p.Stats.MaxFloor, p.Stats.TotalGames),
		"",
		"SPACE to play",
	}
}

func resultLines(res *progress.Result, revive bool) []string {
	floor := fmt.Sprintf("Floor %d", res.Run.Floor)
	if res.NewBest {
		floor += "  NEW BEST!"
	}
	lines := []string{
		floor,
		fmt.Sprintf("Score %d   Perfects %d", res.Run.Score, res.Run.Perfects),
		fmt.Sprintf("%s %s", res.Title.Emoji, res.Title.Name),
	}
	for _, id := range res.NewThemes {
		lines = append(lines, "Theme unlocked: "+id)
	}
	if n := len(res.NewBadges); n > 0 {
		lines = append(lines, fmt.Sprintf("%d new badge(s)", n))
	}
	lines = append(lines, "")
	keys := "R retry  B menu"
	if revive {
		keys = "R retry  V revive  B menu"
	}
	return append(lines, keys)
}

// box draws a framed message in the middle of the screen.
func (r *renderer) box(title string, lines []string) {
	w := r.dst.Width()
	h := r.dst.Height()

	width := runeLen(title)
	for _, l := range lines {
		width = max(width, runeLen(l))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	rect := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	r.dst.DrawRect(rect, ' ')
	r.dst.DrawBoxColor(rect, r.pal.text)
	r.dst.DrawTextColor(rect.X+(boxW-runeLen(title))/2, rect.Y+1, title, r.pal.color(sim.ColorBonus))
	for i, l := range lines {
		r.dst.DrawTextColor(rect.X+(boxW-runeLen(l))/2, rect.Y+3+i, l, r.pal.text)
	}
}

// centered writes text centred on the frame.
func (r *renderer) centered(row int, text string, c core.Color) {
	frame := r.vp.Frame()
	col := frame.X + (frame.W-runeLen(text))/2
	r.dst.DrawTextColor(col, row, text, c)
}

func (r *renderer) set(x, y int, ch rune, c core.Color) {
	if y < 1 || y >= r.dst.Height()-1 {
		return
	}
	r.dst.SetCell(x, y, core.Cell{Rune: ch, Color: c})
}

func effectLabel(e sim.Effect) string {
	switch e {
	case sim.EffectSlowMotion:
		return "Slow motion"
	case sim.EffectHint:
		return "Hint"
	case sim.EffectRevive:
		return "Revive"
	}
	return e.String()
}

// spaced widens a short word for emphasis.
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

func runeLen(s string) int {
	return len([]rune(s))
}
