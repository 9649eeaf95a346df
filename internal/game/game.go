// Package game is the Ebiten frontend: it turns keyboard and mouse state into
// simulation intents, steps the world, and draws it.
package game

import (
	"image/color"
	"time"

	"github.com/Garsondee/void-magi/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

// reportInterval is how often the reporter samples the world (~1s at 60TPS).
const reportInterval = 60

var skyColor = color.RGBA{R: 0x18, G: 0x16, B: 0x22, A: 0xff}

// Game implements ebiten.Game for a single session.
type Game struct {
	cfg   sim.Config
	world *sim.World

	width, height int

	face     text.Face
	eventLog *EventLog
	reporter *sim.SimReporter
	logged   int // SimLog entries already mirrored into eventLog

	prevKeys map[ebiten.Key]bool
	dragging bool
	paused   bool
	showLog  bool
	showHUD  bool

	lastFrame time.Time
	hint      *gween.Tween
	hintDown  bool
	hintY     float64

	status     string
	statusTick int
}

// New creates a session with the shipped level.
func New(cfg sim.Config) *Game {
	g := &Game{
		cfg:      cfg,
		width:    int(cfg.CanvasWidth),
		height:   int(cfg.CanvasHeight),
		eventLog: NewEventLog(),
		reporter: sim.NewSimReporter(0),
		prevKeys: map[ebiten.Key]bool{},
		showHUD:  true,
	}
	g.world = sim.NewWorld(cfg, sim.NewSimLog(false))
	sim.BuildLevel(g.world)

	g.face = text.NewGoXFace(basicfont.Face7x13)
	g.world.Narrative.MarkReady()

	g.hint = gween.New(0, 1, hintPeriod, ease.InOutCubic)
	return g
}

// World exposes the running simulation.
func (g *Game) World() *sim.World { return g.world }

func (g *Game) Update() error {
	// Handle input every frame regardless of pause.
	in := g.handleInput()

	now := time.Now()
	delta := 1.0 / float64(ebiten.TPS())
	if !g.lastFrame.IsZero() {
		delta = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now

	if g.paused {
		return nil
	}
	g.simTick(delta, in)
	g.stepHint(delta)
	return nil
}

// simTick runs one simulation step and mirrors its events into the on-screen log.
func (g *Game) simTick(delta float64, in sim.Input) {
	g.world.Step(delta, in)

	entries := g.world.SimLog.Entries()
	for _, e := range entries[g.logged:] {
		g.eventLog.AddEntry(e)
	}
	g.logged = len(entries)

	if g.world.Tick%reportInterval == 0 {
		g.reporter.Collect(g.world)
	}
}

// stepHint bobs the "click and drag" arrow up and down.
func (g *Game) stepHint(delta float64) {
	v, done := g.hint.Update(float32(delta))
	g.hintY = float64(v)
	if !done {
		return
	}
	g.hintDown = !g.hintDown
	if g.hintDown {
		g.hint = gween.New(1, 0, hintPeriod, ease.InOutCubic)
	} else {
		g.hint = gween.New(0, 1, hintPeriod, ease.InOutCubic)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// setStatus shows a short message in the HUD for a couple of seconds.
func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTick = g.world.Tick
}
