package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/cursor-light/internal/config"
	"github.com/iburimskiy/cursor-light/internal/proximity"
	"github.com/iburimskiy/cursor-light/internal/scene"
)

const (
	shadowLayers = 4
	glowRadius   = 140
	glowLayers   = 6
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func (g *Game) Draw(screen *ebiten.Image) {
	pal := palettes[g.theme]

	g.drawBackground(screen, pal)
	g.drawLight(screen, pal)

	g.scene.Walk(func(n *scene.Node, _ int) {
		g.drawNode(screen, n, pal)
	})

	if g.debug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawBackground(screen *ebiten.Image, pal palette) {
	w, h := g.scene.Width, g.scene.Height
	for y := 0; y < int(h); y++ {
		ratio := float64(y) / h
		vector.DrawFilledRect(screen, 0, float32(y), float32(w), 1, lerpColor(pal.bgTop, pal.bgBottom, ratio), false)
	}
}

// drawLight paints a soft glow around the pointer, the light source the
// shadows are cast from.
func (g *Game) drawLight(screen *ebiten.Image, pal palette) {
	p := g.pointerPos()
	for i := glowLayers; i >= 1; i-- {
		r := float32(glowRadius * float64(i) / glowLayers)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, withAlpha(pal.accent, 0.025), true)
	}
}

func (g *Game) drawNode(screen *ebiten.Image, n *scene.Node, pal palette) {
	st := n.Style()
	switch n.Tag {
	case "header":
		fillRect(screen, n.Rect, pal.header)
	case "div":
		if st.BoxShadow != nil {
			drawBoxShadow(screen, n.Rect, *st.BoxShadow)
		}
		fillRect(screen, n.Rect, pal.panel)
		strokeRect(screen, n.Rect, pal.panelBorder)
		if st.BoxShadow != nil && st.BoxShadow.Ring > 0 {
			strokeRect(screen, inset(n.Rect, 1), withAlpha(white, st.BoxShadow.Ring))
		}
	case "button":
		g.drawButton(screen, n, pal)
		return
	}

	if n.Text == "" {
		return
	}
	scale := textScale(n.Tag)
	x, y := g.textOrigin(n, scale)
	if n.HasClass(scene.GradientTextClass) {
		g.drawGradientText(screen, n.Text, x, y, scale)
		return
	}
	if st.TextShadow != nil {
		g.drawTextShadow(screen, n.Text, x, y, scale, *st.TextShadow)
	}
	g.drawText(screen, n.Text, x, y, scale, pal.text)
}

func (g *Game) drawButton(screen *ebiten.Image, n *scene.Node, pal palette) {
	st := n.Style()
	r := n.VisualRect()
	if st.BoxShadow != nil {
		drawBoxShadow(screen, r, *st.BoxShadow)
	}

	fill := pal.button
	if g.pressed == n {
		fill = lerpColor(fill, pal.accent, 0.35)
	}
	fillRect(screen, r, fill)
	border := pal.accent
	if n.HasClass("btn-neon-outline") {
		border = withAlpha(pal.accent, 0.6)
	}
	strokeRect(screen, r, border)

	if n.Text != "" {
		w, h := text.Measure(n.Text, g.face, 0)
		g.drawText(screen, n.Text, r.X+(r.W-w)/2, r.Y+(r.H-h)/2, 1, pal.buttonText)
	}
}

func textScale(tag string) float64 {
	switch tag {
	case "h1":
		return 3
	case "h2":
		return 2
	}
	return 1.5
}

// textOrigin vertically centres a line of text in the node's box.
func (g *Game) textOrigin(n *scene.Node, scale float64) (float64, float64) {
	_, h := text.Measure(n.Text, g.face, 0)
	return n.Rect.X, n.Rect.Y + (n.Rect.H-h*scale)/2
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}

// drawTextShadow approximates the blur with a few faint copies spread around
// the offset.
func (g *Game) drawTextShadow(screen *ebiten.Image, s string, x, y, scale float64, sh proximity.Shadow) {
	spread := sh.Blur / 10
	offsets := []proximity.Vec{{}, {X: -spread}, {X: spread}, {Y: -spread}, {Y: spread}}
	c := withAlpha(sh.Tint, sh.Alpha/float64(len(offsets))*2)
	for _, o := range offsets {
		g.drawText(screen, s, x+sh.Offset.X+o.X, y+sh.Offset.Y+o.Y, scale, c)
	}
}

// drawGradientText colours each rune along a hue sweep.
func (g *Game) drawGradientText(screen *ebiten.Image, s string, x, y, scale float64) {
	runes := []rune(s)
	for i, r := range runes {
		hue := 280 + 80*float64(i)/float64(len(runes)) + g.time*20
		cr, cg, cb := hsvToRgb(hue, 0.8, 1)
		ch := string(r)
		g.drawText(screen, ch, x, y, scale, color.NRGBA{R: cr, G: cg, B: cb, A: 255})
		x += text.Advance(ch, g.face) * scale
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	p := g.pointerPos()
	st := g.engine.LastTick()
	msg := fmt.Sprintf("tick %d  applied %d  cleared %d  skipped %d  pointer (%.0f, %.0f)  nodes %d  theme %s",
		g.engine.Ticks(), st.Applied, st.Cleared, st.Skipped, p.X, p.Y, g.scene.Len(), palettes[g.theme].name)
	if g.lastErr != nil {
		msg += "\nError: " + g.lastErr.Error()
	}
	msg += "\nN add card  Backspace remove  T theme  D debug  Esc quit"
	ebitenutil.DebugPrintAt(screen, msg, config.DebugX, config.DebugY+int(g.scene.Height)-60)
}

// drawBoxShadow draws a shadow as stacked translucent rects growing with the
// blur radius.
func drawBoxShadow(dst *ebiten.Image, r proximity.Rect, sh proximity.Shadow) {
	c := withAlpha(sh.Tint, sh.Alpha/shadowLayers)
	for i := shadowLayers; i >= 1; i-- {
		spread := sh.Blur * float64(i) / shadowLayers / 2
		box := proximity.Rect{
			X: r.X + sh.Offset.X - spread,
			Y: r.Y + sh.Offset.Y - spread,
			W: r.W + 2*spread,
			H: r.H + 2*spread,
		}
		fillRect(dst, box, c)
	}
}

func fillRect(dst *ebiten.Image, r proximity.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, true)
}

func strokeRect(dst *ebiten.Image, r proximity.Rect, c color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, true)
}

func inset(r proximity.Rect, d float64) proximity.Rect {
	return proximity.Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}
