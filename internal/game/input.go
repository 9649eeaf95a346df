package game

import (
	"log"

	"github.com/Garsondee/void-magi/internal/geom"
	"github.com/Garsondee/void-magi/internal/sim"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyState is the subset of keyboard state that drives the player.
type keyState struct {
	left, right bool
	jump        bool // edge-triggered
	nudge       bool
}

// movementInput maps key state to simulation intents. Pressing both
// directions cancels out.
func movementInput(ks keyState) sim.Input {
	in := sim.Input{Jump: ks.jump, Nudge: ks.nudge}
	switch {
	case ks.right && !ks.left:
		in.Move = sim.MoveRight
	case ks.left && !ks.right:
		in.Move = sim.MoveLeft
	}
	return in
}

// handleInput processes toggles (edge-triggered) and builds this frame's
// simulation input.
func (g *Game) handleInput() sim.Input {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	// P: pause / resume.
	if pressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	// L: toggle event log panel.
	if pressed(ebiten.KeyL) {
		g.showLog = !g.showLog
	}
	// H: toggle HUD.
	if pressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	// C: copy a debug report to the clipboard.
	if pressed(ebiten.KeyC) {
		g.copyReport()
	}

	ks := keyState{
		left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		nudge: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
	jumpW := pressed(ebiten.KeyW)
	jumpUp := pressed(ebiten.KeyArrowUp)
	jumpSpace := pressed(ebiten.KeySpace)
	ks.jump = jumpW || jumpUp || jumpSpace
	g.prevKeys = currentKeys

	in := movementInput(ks)
	g.pointerInput(&in)
	return in
}

// pointerInput translates the left mouse button into a drag gesture.
func (g *Game) pointerInput(in *sim.Input) {
	mx, my := ebiten.CursorPosition()
	in.Point = geom.Vec2{X: float64(mx), Y: float64(my)}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		in.Drag = sim.DragBegin
		g.dragging = true
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.dragging:
		in.Drag = sim.DragRelease
		g.dragging = false
	case g.dragging:
		in.Drag = sim.DragMove
	}
}

func (g *Game) copyReport() {
	report := g.debugReport()
	if err := clipboard.WriteAll(report); err != nil {
		log.Printf("copy report: %v", err)
		g.setStatus("clipboard unavailable")
		return
	}
	g.setStatus("report copied")
}
