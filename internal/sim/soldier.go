package sim

import (
	"fmt"
	"math"

	"github.com/Garsondee/void-magi/internal/geom"
)

// SoldierState is the soldier's behaviour state.
type SoldierState int

const (
	SoldierStateWalk   SoldierState = iota // patrolling
	SoldierStateAttack                     // swinging at the player
)

func (ss SoldierState) String() string {
	switch ss {
	case SoldierStateWalk:
		return "walk"
	case SoldierStateAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// Direction is the way a soldier faces.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

func (d Direction) String() string {
	if d == DirRight {
		return "right"
	}
	return "left"
}

// Sign is -1 for left and +1 for right.
func (d Direction) Sign() float64 {
	if d == DirRight {
		return 1
	}
	return -1
}

func (d Direction) Opposite() Direction {
	if d == DirRight {
		return DirLeft
	}
	return DirRight
}

// Soldier is a patrolling knight that attacks the player on contact.
type Soldier struct {
	Body
	id    int
	label string

	Direction      Direction
	State          SoldierState
	TravelDistance float64
	StartX         float64 // x of the last patrol reversal
	Scale          float64
	Mass           float64

	// AttackPermitted is true while the attack animation is in its strike
	// window. AttackFinished is set when an attack animation completes.
	AttackPermitted bool
	AttackFinished  bool

	// Frozen is set while the attractor holds the soldier in the air.
	Frozen bool

	Frame      int
	frames     int
	maxFrames  int
	frameDelay int
}

// NewSoldier creates a walking soldier at (x, y). The footprint height
// scales with scale.
func NewSoldier(x, y float64, dir Direction, travel, scale float64) *Soldier {
	s := &Soldier{
		Body: Body{Rect: geom.Rect{
			X: x, Y: y,
			W: SoldierWidth, H: SoldierHeight * scale,
		}},
		Direction:      dir,
		TravelDistance: travel,
		StartX:         x,
		Scale:          scale,
		Mass:           SoldierMass,
	}
	s.setWalk()
	return s
}

func (s *Soldier) Label() string { return s.label }

// Footprint exposes the soldier to the attractor's magnetize pass.
func (s *Soldier) Footprint() *geom.Rect { return &s.Rect }

// HitBox is the footprint shrunk away from the back of the soldier. Touching
// it starts an attack.
func (s *Soldier) HitBox() geom.Rect {
	inset := math.Min(SoldierHitInset, s.W/2)
	r := s.Rect
	r.W -= inset
	if s.Direction == DirRight {
		r.X += inset
	}
	return r
}

// AttackBox is the footprint pushed forward by the weapon's reach.
func (s *Soldier) AttackBox() geom.Rect {
	r := s.Rect
	r.X += SoldierAttackReach * s.Direction.Sign()
	return r
}

// soldierEnv is what a soldier reads from the world during its update.
type soldierEnv struct {
	player    *Player
	attractor *Attractor
	floor     float64
	broad     *Broadphase
	active    bool
}

// Update advances the soldier by one tick and reports whether it struck the
// player.
func (s *Soldier) Update(delta float64, env soldierEnv) bool {
	s.fall(delta, env)
	if !env.active {
		return false
	}
	s.animate()
	struck := s.strike(env.player)

	touching := geom.AABBOverlap(s.HitBox(), env.player.Rect)
	switch {
	case touching && s.State == SoldierStateWalk:
		s.setAttack()
	case !touching && s.State == SoldierStateAttack && s.AttackFinished:
		s.setWalk()
	case s.State == SoldierStateWalk:
		s.patrol(delta)
	}
	return struck
}

// fall integrates gravity unless the attractor is both near enough and large
// enough to hold the soldier.
func (s *Soldier) fall(delta float64, env soldierEnv) {
	a := env.attractor
	s.Frozen = a.CanEngulf(s.Rect) && geom.Dist(s.Center(), a.Pos) < SoldierInfluenceRadius
	if s.Frozen {
		return
	}
	prevBottom := s.Bottom()
	s.ApplyGravity(delta)
	s.Y += s.Vel.Y * delta
	if s.LandOnFloor(env.floor, 1) {
		return
	}
	s.landOn(prevBottom, env.broad.Query(s.Rect), nil)
}

func (s *Soldier) animate() {
	s.frames++
	if s.frames%s.frameDelay == 0 {
		s.Frame++
	}
	s.AttackPermitted = s.State == SoldierStateAttack &&
		s.Frame > soldierStrikeFrom && s.Frame < soldierStrikeTo
	if s.Frame >= s.maxFrames {
		s.frames = 0
		s.Frame = 0
		if s.State == SoldierStateAttack {
			s.AttackFinished = true
		}
	}
}

func (s *Soldier) strike(p *Player) bool {
	if !s.AttackPermitted || p.Invincible() {
		return false
	}
	if !geom.AABBOverlap(s.AttackBox(), p.Rect) {
		return false
	}
	return p.LoseHeart()
}

// patrol walks along the facing direction and turns around once the soldier
// has walked TravelDistance past the last turning point.
func (s *Soldier) patrol(delta float64) {
	s.Vel.X = SoldierSpeed * s.Direction.Sign()
	s.X += s.Vel.X * delta
	if (s.X-s.StartX)*s.Direction.Sign() >= s.TravelDistance {
		s.X = s.StartX + s.TravelDistance*s.Direction.Sign()
		s.Direction = s.Direction.Opposite()
		s.StartX = s.X
	}
}

func (s *Soldier) setAttack() {
	s.resetAnimation(soldierAttackFrame, soldierAttackDelay)
	s.State = SoldierStateAttack
	s.Vel.X = 0
	s.AttackFinished = false
	s.AttackPermitted = false
}

func (s *Soldier) setWalk() {
	s.resetAnimation(soldierWalkFrames, soldierWalkDelay)
	s.State = SoldierStateWalk
	s.Vel.X = SoldierSpeed * s.Direction.Sign()
	s.AttackFinished = false
	s.AttackPermitted = false
}

func (s *Soldier) resetAnimation(maxFrames, delay int) {
	s.frames = 0
	s.Frame = 0
	s.maxFrames = maxFrames
	s.frameDelay = delay
}

func soldierLabel(id int) string { return fmt.Sprintf("K%d", id) }
