package sim

const (
	boxSize     = 48.0
	orbSpacing  = 30.0
	soldierLift = 10.0
)

const (
	capLooseBox = CapMagnetizable | CapGravity | CapCollidable
	capWall     = CapCollidable
	capRock     = CapMagnetizable | CapCollidable
)

// BuildLevel populates w with the shipped level: a stack of loose boxes, a
// walled corridor guarded by a barrier and a knight, and a long block of
// rock to carve through with more knights and orbs beyond it.
func BuildLevel(w *World) {
	for _, y := range []float64{375, 307, 247} {
		w.AddObstacle(NewObstacle(1220, y, boxSize, boxSize, capLooseBox))
	}
	addOrbGrid(w, 1420, 100, 5, 5)
	addOrbGrid(w, 3100, 380, 5, 5)

	buildCorridor(w, 2000, 158)
	buildQuarry(w, 3700, 17)
}

func addOrbGrid(w *World, x, y float64, cols, rows int) {
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			w.AddOrb(NewOrb(x+float64(i)*orbSpacing, y+float64(j)*orbSpacing, OrbRadius))
		}
	}
}

// buildCorridor lays a ceiling of walls ending in a wall column with two
// breakable boxes at its foot, and a barrier at the entrance.
func buildCorridor(w *World, x0, y0 float64) {
	for i := 0; i < 22; i++ {
		w.AddObstacle(NewObstacle(x0+float64(i)*boxSize, y0, boxSize, boxSize, capWall))
	}
	colX := x0 + 21*boxSize
	for i := 0; i < 6; i++ {
		w.AddObstacle(NewObstacle(colX, y0+boxSize*float64(i), boxSize, boxSize, capWall))
	}
	for i := 6; i < 8; i++ {
		w.AddObstacle(NewObstacle(colX, y0+boxSize*float64(i), boxSize, boxSize, capRock))
	}

	w.AddZone(NewShrinkZone(x0, 198, 48, 346))
	w.AddSoldier(NewSoldier(x0+900, w.Cfg.CanvasHeight-SoldierHeight, DirLeft, 200, 3))
}

func inBlock(i, j, i0, i1, j0, j1 int) bool {
	return i > i0 && i < i1 && j > j0 && j < j1
}

// buildQuarry lays a 62×11 block: rock the void can eat on the left, a
// pillar of walls through it, and orbs filling the right part.
func buildQuarry(w *World, x0, y0 float64) {
	for i := 0; i < 62; i++ {
		for j := 0; j < 11; j++ {
			if inBlock(i, j, 5, 9, 7, 11) || inBlock(i, j, 5, 9, 2, 6) || inBlock(i, j, 13, 19, 5, 11) {
				continue
			}
			x := x0 + float64(i)*boxSize
			y := y0 + float64(j)*boxSize
			pillar := i > 23 && i < 26
			if pillar && j < 5 {
				w.AddObstacle(NewObstacle(x, y, boxSize, boxSize, capWall))
			}
			if pillar && j >= 9 {
				continue
			}
			if i < 32 {
				w.AddObstacle(NewObstacle(x, y, boxSize, boxSize, capRock))
				continue
			}
			if inBlock(i, j, 50, 60, 3, 11) {
				continue
			}
			w.AddOrb(NewOrb(x+boxSize/2, y+boxSize/2, OrbRadius))
		}
	}
	addOrbGrid(w, x0+315, 190, 4, 4)

	y := w.Cfg.CanvasHeight - SoldierHeight - soldierLift
	for _, k := range []struct{ dx, travel, scale float64 }{
		{333, 50, 5},
		{743, 60, 8},
		{1183, 25, 3},
		{2643, 105, 12},
	} {
		w.AddSoldier(NewSoldier(x0+k.dx, y, DirLeft, k.travel, k.scale))
	}
}
