package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/Garsondee/void-magi/internal/geom"
	"github.com/Garsondee/void-magi/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hintPeriod    = 0.8 // seconds per half bob
	hintBob       = 10
	statusSeconds = 2
)

var (
	groundColor = color.RGBA{R: 0x2c, G: 0x26, B: 0x30, A: 0xff}
	wallColor   = color.RGBA{R: 0x5a, G: 0x50, B: 0x62, A: 0xff}
	rockColor   = color.RGBA{R: 0x7a, G: 0x6a, B: 0x58, A: 0xff}
	boxColor    = color.RGBA{R: 0xa0, G: 0x78, B: 0x48, A: 0xff}
	zoneColor   = color.NRGBA{R: 0x60, G: 0xc0, B: 0xff, A: 0x40}
	barrierRim  = color.RGBA{R: 0x60, G: 0xc0, B: 0xff, A: 0xff}
	orbColor    = color.RGBA{R: 0xf0, G: 0xd8, B: 0x60, A: 0xff}
	walkColor   = color.RGBA{R: 0xb0, G: 0xb0, B: 0xc0, A: 0xff}
	attackColor = color.RGBA{R: 0xd0, G: 0x46, B: 0x46, A: 0xff}
	frozenColor = color.RGBA{R: 0x80, G: 0x70, B: 0xd0, A: 0xff}
	playerColor = color.NRGBA{R: 0x5a, G: 0xc8, B: 0x78, A: 0xff}
	heartColor  = color.RGBA{R: 0xe0, G: 0x40, B: 0x60, A: 0xff}
	voidColor   = color.RGBA{R: 0x04, G: 0x02, B: 0x08, A: 0xff}
	rimColor    = color.RGBA{R: 0x9a, G: 0x5a, B: 0xe0, A: 0xff}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	w := g.world
	ox := -w.Scroll

	vector.FillRect(screen, 0, float32(w.Cfg.Floor()), float32(g.width), float32(w.Cfg.GroundHeight), groundColor, false)

	for _, z := range w.Zones {
		drawZone(screen, z, ox)
	}
	for _, o := range w.Obstacles {
		drawObstacle(screen, o, ox)
	}
	for _, o := range w.Orbs {
		vector.FillCircle(screen, float32(o.Pos.X+ox), float32(o.Pos.Y), float32(o.Radius), orbColor, true)
	}
	for _, s := range w.Soldiers {
		drawSoldier(screen, s, ox)
	}
	g.drawPlayer(screen, ox)
	g.drawLetters(screen, ox)
	g.drawAttractor(screen, ox)

	if w.Director.HintVisible {
		g.drawHint(screen, ox)
	}
	if w.Director.Overlay > 0 {
		a := uint8(math.Round(math.Min(w.Director.Overlay, 1) * 255))
		vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), color.RGBA{A: a}, false)
	}

	if g.showHUD {
		g.drawHUD(screen)
	}
	if g.showLog {
		g.eventLog.Draw(screen, g.width-logPanelWidth, g.height)
	}
}

func drawZone(screen *ebiten.Image, z *sim.ShrinkZone, ox float64) {
	x, y := float32(z.X+ox), float32(z.Y)
	vector.FillRect(screen, x, y, float32(z.W), float32(z.H), zoneColor, false)
	// Shimmer line sweeping down the barrier.
	sweep := math.Mod(z.Elapsed*60, z.H)
	vector.StrokeLine(screen, x, y+float32(sweep), x+float32(z.W), y+float32(sweep), 2, color.NRGBA{R: 0xa0, G: 0xe0, B: 0xff, A: 0x90}, false)
}

func drawObstacle(screen *ebiten.Image, o *sim.Obstacle, ox float64) {
	col := boxColor
	switch {
	case !o.Caps.Has(sim.CapMagnetizable):
		col = wallColor
	case !o.Caps.Has(sim.CapGravity):
		col = rockColor
	}
	x, y := float32(o.X+ox), float32(o.Y)
	vector.FillRect(screen, x, y, float32(o.W), float32(o.H), col, false)
	vector.StrokeRect(screen, x, y, float32(o.W), float32(o.H), 1, color.RGBA{A: 0x60}, false)
	if o.UnderInfluence {
		vector.StrokeRect(screen, x-1, y-1, float32(o.W)+2, float32(o.H)+2, 1, rimColor, false)
	}
}

func drawSoldier(screen *ebiten.Image, s *sim.Soldier, ox float64) {
	col := walkColor
	switch {
	case s.Frozen:
		col = frozenColor
	case s.State == sim.SoldierStateAttack:
		col = attackColor
	}
	x, y := float32(s.X+ox), float32(s.Y)
	vector.FillRect(screen, x, y, float32(s.W), float32(s.H), col, false)

	// Facing marker on the leading edge.
	lead := x + float32(s.W) - 4
	if s.Direction == sim.DirLeft {
		lead = x
	}
	vector.FillRect(screen, lead, y, 4, float32(s.H), color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}, false)

	if s.State == sim.SoldierStateAttack {
		ab := s.AttackBox()
		vector.StrokeRect(screen, float32(ab.X+ox), float32(ab.Y), float32(ab.W), float32(ab.H), 1, attackColor, false)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, ox float64) {
	p := g.world.Player
	x, y := float32(p.X+ox), float32(p.Y)
	col := playerColor
	// Blink while invincible.
	if p.Invincible() && g.world.Tick/6%2 == 0 {
		col.A = 0x60
	}
	vector.FillRect(screen, x, y, float32(p.W), float32(p.H), col, false)

	if p.ShowWand {
		wx := x + float32(p.W)
		if p.Facing == sim.DirLeft {
			wx = x - 12
		}
		vector.StrokeLine(screen, wx, y+20, wx+12, y+8, 3, rimColor, true)
	}
}

func (g *Game) drawLetters(screen *ebiten.Image, ox float64) {
	for _, l := range g.world.Narrative.Letters() {
		if l.Opacity <= 0 || l.Box.Consumed() {
			continue
		}
		op := &text.DrawOptions{}
		// Swallowed letters shrink with their box.
		scale := l.Box.W / g.cfg.Font.CharWidth
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(l.Box.X+ox, l.Box.Y+l.OffsetY)
		op.ColorScale.ScaleAlpha(float32(l.Opacity))
		text.Draw(screen, string(l.Char), g.face, op)
	}
}

func (g *Game) drawAttractor(screen *ebiten.Image, ox float64) {
	a := g.world.Attractor
	if a.Radius <= 0 {
		return
	}
	cx, cy := float32(a.Pos.X+ox), float32(a.Pos.Y)
	vector.FillCircle(screen, cx, cy, float32(a.Radius), voidColor, true)

	rim := rimColor
	if a.Shrinking {
		rim = barrierRim
	}
	pulse := 1.5 + math.Sin(a.Pulse*4)
	vector.StrokeCircle(screen, cx, cy, float32(a.Radius), float32(pulse+1), rim, true)

	if a.Pointer.Visible {
		tip := a.PointerTip()
		base := a.Pos.Add(tip.Sub(a.Pos).Scale(a.Radius / (a.Radius + sim.PointerMargin)))
		vector.StrokeLine(screen, float32(base.X+ox), float32(base.Y), float32(tip.X+ox), float32(tip.Y), 2, rimColor, true)
	}
	if ok, drag := g.world.Dragging(); ok && drag.Len() > 0 {
		mx, my := ebiten.CursorPosition()
		start := geom.Vec2{X: float64(mx), Y: float64(my)}.Sub(drag)
		vector.StrokeLine(screen, float32(start.X), float32(start.Y), float32(mx), float32(my), 1, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x50}, true)
	}
}

// drawHint bobs an arrow over the void while the drag prompt is shown.
func (g *Game) drawHint(screen *ebiten.Image, ox float64) {
	a := g.world.Attractor
	x := float32(a.Pos.X + ox)
	y := float32(a.Pos.Y-a.Radius-30) - float32(g.hintY*hintBob)
	vector.StrokeLine(screen, x, y-14, x, y, 2, color.White, true)
	vector.StrokeLine(screen, x-6, y-6, x, y, 2, color.White, true)
	vector.StrokeLine(screen, x+6, y-6, x, y, 2, color.White, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	w := g.world
	p := w.Player
	for i := range p.MaxHearts {
		x := float32(12 + i*18)
		if i < p.Hearts {
			vector.FillCircle(screen, x, 14, 6, heartColor, true)
		} else {
			vector.StrokeCircle(screen, x, 14, 6, 1, heartColor, true)
		}
	}

	a := w.Attractor
	line := fmt.Sprintf("T=%d  %s  void r=%.1f/%.1f  x=%.0f  orbs=%d knights=%d",
		w.Tick, w.Director.Phase, a.Radius, a.TargetRadius, p.X, w.Stats.OrbsAbsorbed, w.Stats.SoldiersAbsorbed)
	if g.paused {
		line += "  PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, line, 8, 26)
	ebitenutil.DebugPrintAt(screen, "[P] pause  [L] log  [H] hud  [C] copy report", 8, g.height-18)

	if g.status != "" && float64(w.Tick-g.statusTick) < statusSeconds*float64(ebiten.TPS()) {
		ebitenutil.DebugPrintAt(screen, g.status, 8, 42)
	}
	if o := sim.DetermineOutcome(w); o.Outcome == sim.OutcomeCleared {
		ebitenutil.DebugPrintAt(screen, "THE VOID RESTS", g.width/2-42, g.height/2)
	}
}
