package sim

// Physics.
const (
	Gravity        = 2000.0 // px/s²
	GroundFriction = 0.98   // cross-axis damping on contact with a bound
)

// Attractor.
const (
	AttractorBaseRadius = 20.0 // shrink zones collapse the void to this size
	AttractorGrowthRate = 0.1  // radius per tick, not scaled by delta
	AttractorShrinkRate = 0.1  // radius per tick, not scaled by delta
	AttractorBounce     = -0.2 // velocity multiplier on the hit axis
	AttractorStartX     = 0.5  // fraction of canvas width
	AttractorStartY     = 150.0
	IntroGrowth         = 23.0

	LaunchReduction = 1.0
	PointerMargin   = 14.0 // gap between the rim and the pointer tip

	MagnetizeMinRadius    = 5.0
	MagnetizeReach        = 1.5 // candidates farther than reach×radius are ignored
	MagnetizeStrength     = 100.0
	MagnetizeStepDivisor  = 10.0 // step cap is radius / divisor
	MagnetizeShrinkFactor = 0.9

	growthSnapTolerance = 1e-9
)

// Influence radii: within these distances of the attractor, gravity stops
// integrating for the body.
const (
	ObstacleInfluenceRadius = 100.0
	SoldierInfluenceRadius  = 200.0
)

// Player.
const (
	PlayerWidth        = 45.0
	PlayerHeight       = 54.0
	PlayerSpeed        = 400.0
	PlayerJumpPower    = 450.0
	PlayerMaxJumps     = 2
	PlayerHearts       = 3
	PlayerDeceleration = 0.87
	InvincibleSeconds  = 2.0
	ScrollSpeed        = 265.0
	ScrollBuffer       = 10.0
	playerStartLift    = 37.0
	playerObstacleGap  = 0.01 // keeps a blocked player from touching the box it was pushed off
)

// Soldier.
const (
	SoldierWidth       = 125.0
	SoldierHeight      = 27.0 // multiplied by the soldier's scale
	SoldierSpeed       = 40.0
	SoldierMass        = 10.0
	SoldierHitInset    = 30.0
	SoldierAttackReach = 40.0

	soldierWalkFrames  = 8
	soldierWalkDelay   = 12
	soldierAttackFrame = 5
	soldierAttackDelay = 22
	// Damage is only possible while the attack animation is strictly inside
	// this frame window.
	soldierStrikeFrom = 1
	soldierStrikeTo   = 3
)

// Orb.
const (
	OrbRadius         = 7.0
	OrbReach          = 2.5 // × attractor radius
	OrbPull           = 1.4 // × attractor radius
	OrbStepCap        = 10.0
	OrbShrinkDistance = 30.0
	OrbShrinkRate     = 0.5 // radius per tick
	OrbGrowth         = 0.75
	OrbWobble         = 2.0
	OrbWobbleSpeed    = 2.0
)

// ObstacleMass is the growth an absorbed obstacle feeds the attractor.
const ObstacleMass = 1.0

// landingTolerance lets a falling body settle on a surface it was resting on
// last tick despite float error.
const landingTolerance = 1.0
