package gui

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/stack-tower/internal/config"
	"github.com/vovakirdan/stack-tower/internal/games/tower/progress"
	"github.com/vovakirdan/stack-tower/internal/games/tower/sim"
)

// Debug font cell size
const (
	glyphW = 6
	glyphH = 16
)

// colorCache memoizes parsed hex colours.
type colorCache map[string]color.NRGBA

func (c colorCache) get(hex string) color.NRGBA {
	if v, ok := c[hex]; ok {
		return v
	}
	v := parseHex(hex)
	c[hex] = v
	return v
}

// parseHex parses "#rrggbb". Anything else is white.
func parseHex(hex string) color.NRGBA {
	white := color.NRGBA{0xff, 0xff, 0xff, 0xff}
	if len(hex) != 7 || hex[0] != '#' {
		return white
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return white
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// fade scales a colour's alpha.
func fade(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(float64(c.A) * math.Max(0, math.Min(1, alpha)))
	return c
}

// lerp blends two colours.
func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 0xff}
}

type drawer struct {
	screen *ebiten.Image
	colors colorCache
	theme  config.ThemeConfig
	f      sim.Frame
	camY   float64
	shakeX float64
}

func (d *drawer) draw(best int) {
	d.background()
	if d.f.State != sim.StateMenu {
		d.hint()
		d.stack()
		d.piece()
	}
	d.particles()
	d.flash()
	d.feedback()
	d.hud(best)
}

func (d *drawer) rect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(d.screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (d *drawer) background() {
	f := d.f
	top := d.colors.get(d.theme.Background)
	bottom := top
	if g := d.theme.BackgroundGradient; len(g) == 2 {
		top, bottom = d.colors.get(g[0]), d.colors.get(g[1])
	}
	const bands = 32
	bandH := f.FrameH / bands
	for i := range bands {
		d.rect(0, float64(i)*bandH, f.FrameW, bandH+1, lerp(top, bottom, float64(i)/(bands-1)))
	}

	text := d.colors.get(d.textColor())
	if d.theme.Stars {
		for i := range 60 {
			x := math.Mod(float64(i*97+13), f.FrameW)
			y := math.Mod(float64(i*137+29)+f.CameraY*0.2, f.FrameH)
			if y < 0 {
				y += f.FrameH
			}
			vector.DrawFilledCircle(d.screen, float32(x), float32(y), 1, fade(text, 0.6), false)
		}
	}
	for _, m := range f.Motes {
		vector.DrawFilledCircle(d.screen, float32(m.X), float32(m.Y), float32(m.Size), fade(text, m.Alpha), false)
	}
}

func (d *drawer) textColor() string {
	if d.theme.TextColor == "" {
		return "#ffffff"
	}
	return d.theme.TextColor
}

func (d *drawer) stack() {
	f := d.f
	for i, b := range f.Stack {
		d.block(b, i == len(f.Stack)-1 && f.Moving == nil)
	}
	if f.Moving != nil {
		d.block(*f.Moving, true)
	}
}

func (d *drawer) block(b sim.Block, top bool) {
	c := d.colors.get(progress.BlockColor(d.theme, b.Color))

	// Landing squash: wider and flatter, anchored at the bottom
	w := b.W * (1 + 0.08*b.Squash)
	h := b.H * (1 - 0.15*b.Squash)
	x := b.X + d.shakeX - (w-b.W)/2
	y := b.Y + d.camY + (b.H - h)

	if d.theme.Glow && top {
		d.rect(x-3, y-3, w+6, h+6, fade(c, 0.3))
	}
	d.rect(x, y, w, h, c)
	if !d.theme.Pixelated {
		// top highlight
		d.rect(x, y, w, 3, fade(color.NRGBA{0xff, 0xff, 0xff, 0xff}, 0.25))
	}
	if b.Flash > 0.05 {
		vector.StrokeRect(d.screen, float32(x), float32(y), float32(w), float32(h), 2, fade(color.NRGBA{0xff, 0xff, 0xff, 0xff}, b.Flash), false)
	}
}

func (d *drawer) piece() {
	p := d.f.Piece
	if p == nil {
		return
	}
	c := d.colors.get(progress.BlockColor(d.theme, p.Color))
	d.rect(p.X+d.shakeX, p.Y+d.camY, p.W, p.H, fade(c, 0.8))
}

func (d *drawer) hint() {
	h := d.f.Hint
	if h == nil {
		return
	}
	c := fade(d.colors.get(sim.ColorHint), 0.6)
	top := float32(h.Top + d.camY)
	bottom := float32(h.Bottom + d.camY)
	for _, x := range []float64{h.Left, h.Right} {
		// dashed guide
		for y := top; y < bottom; y += 10 {
			vector.StrokeLine(d.screen, float32(x+d.shakeX), y, float32(x+d.shakeX), min(y+5, bottom), 2, c, false)
		}
	}
}

func (d *drawer) particles() {
	for _, p := range d.f.Particles {
		switch p := p.(type) {
		case sim.Square:
			c := fade(d.colors.get(p.Color), p.Alpha())
			d.rect(p.X+d.shakeX-p.Size/2, p.Y+d.camY-p.Size/2, p.Size, p.Size, c)
		case sim.Sparkle:
			c := fade(d.colors.get(p.Color), p.Alpha())
			x, y := float32(p.X+d.shakeX), float32(p.Y+d.camY)
			s := float32(p.Size)
			vector.StrokeLine(d.screen, x-s, y, x+s, y, 1, c, false)
			vector.StrokeLine(d.screen, x, y-s, x, y+s, 1, c, false)
		case sim.Pulse:
			c := fade(d.colors.get(p.Color), p.Alpha())
			vector.StrokeCircle(d.screen, float32(p.X+d.shakeX), float32(p.Y+d.camY), float32(p.Radius()), 2, c, false)
		case sim.Text:
			if p.Alpha() > 0.2 {
				x := int(p.X+d.shakeX) - len(p.Text)*glyphW/2
				ebitenutil.DebugPrintAt(d.screen, p.Text, x, int(p.Y+d.camY))
			}
		}
	}
}

func (d *drawer) flash() {
	if d.f.Flash < 0.05 {
		return
	}
	c := fade(d.colors.get(sim.ColorPerfect), d.f.Flash)
	vector.StrokeRect(d.screen, 2, 2, float32(d.f.FrameW-4), float32(d.f.FrameH-4), 4, c, false)
}

func (d *drawer) feedback() {
	fb := d.f.Feedback
	if fb == nil || fb.Alpha() < 0.2 {
		return
	}
	d.centered(fb.Text, int(fb.Y))
}

func (d *drawer) hud(best int) {
	f := d.f
	ebitenutil.DebugPrintAt(d.screen, fmt.Sprintf("FLOOR %d  SCORE %d", f.Floor, f.Score), 8, 6)
	bestText := fmt.Sprintf("BEST %d", best)
	ebitenutil.DebugPrintAt(d.screen, bestText, int(f.FrameW)-8-len(bestText)*glyphW, 6)

	if f.ShowCombo() {
		combo := fmt.Sprintf("%dx COMBO", f.Combo)
		ebitenutil.DebugPrintAt(d.screen, combo, int(f.FrameW)-8-len(combo)*glyphW, 6+glyphH)
	}
	if f.SlowMotion > 0 {
		d.rect(0, 0, f.FrameW, f.FrameH, fade(d.colors.get(sim.ColorSlow), 0.12))
		ebitenutil.DebugPrintAt(d.screen, fmt.Sprintf("SLOW (%ds)", f.SlowSeconds), 8, 6+glyphH)
	}
}

// panel draws a dimmed backdrop and a centred message box.
func (d *drawer) panel(title string, lines []string) {
	f := d.f
	d.rect(0, 0, f.FrameW, f.FrameH, color.NRGBA{0, 0, 0, 0x99})

	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := float64(width*glyphW + 32)
	boxH := float64((len(lines)+2)*glyphH + 24)
	x := (f.FrameW - boxW) / 2
	y := (f.FrameH - boxH) / 2

	d.rect(x, y, boxW, boxH, color.NRGBA{0x10, 0x10, 0x1a, 0xee})
	vector.StrokeRect(d.screen, float32(x), float32(y), float32(boxW), float32(boxH), 2, d.colors.get(d.textColor()), false)

	row := int(y) + 12
	d.centered(title, row)
	row += 2 * glyphH
	for _, l := range lines {
		d.centered(l, row)
		row += glyphH
	}
}

func (d *drawer) centered(text string, y int) {
	x := (int(d.f.FrameW) - len([]rune(text))*glyphW) / 2
	ebitenutil.DebugPrintAt(d.screen, text, x, y)
}
