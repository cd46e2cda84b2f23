package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/garden/component"
	"github.com/milk9111/garden/levels"
	"github.com/milk9111/garden/physics"
)

type cellKind uint8

const (
	kindEmpty cellKind = iota
	kindSolid
	kindUpdraft
	kindDamage
	kindCheer
	kindEnemy
	kindEffect
	kindCharacter
)

type cell struct {
	r    rune
	kind cellKind
}

// viewport maps terminal cells onto the level slice around center. Terminal
// cells are about twice as tall as wide, so unitsZ is usually 2*unitsX.
type viewport struct {
	w, h           int
	unitsX, unitsZ float64
	center         mgl64.Vec3
}

func (v viewport) world(col, row int) (x, z float64) {
	x = v.center.X() + (float64(col)-float64(v.w)/2+0.5)*v.unitsX
	z = v.center.Z() + (float64(v.h)/2-float64(row)-0.5)*v.unitsZ
	return x, z
}

func (v viewport) cell(x, z float64) (col, row int, ok bool) {
	col = int(math.Floor((x-v.center.X())/v.unitsX + float64(v.w)/2))
	row = int(math.Floor(float64(v.h)/2 - (z-v.center.Z())/v.unitsZ))
	return col, row, col >= 0 && col < v.w && row >= 0 && row < v.h
}

// scene is everything rasterize draws for one frame.
type scene struct {
	level      *levels.Level
	enemies    []*physics.Enemy
	effects    []*physics.Effect
	pos        mgl64.Vec3
	halfHeight float64
	radius     float64
}

func rasterize(sc scene, v viewport) [][]cell {
	grid := make([][]cell, v.h)
	for row := range grid {
		grid[row] = make([]cell, v.w)
		for col := range grid[row] {
			x, z := v.world(col, row)
			grid[row][col] = levelCell(sc.level, x, z, v.unitsX/2)
		}
	}

	for row := range grid {
		for col := range grid[row] {
			x, z := v.world(col, row)
			for _, e := range sc.enemies {
				if e.Defeated() {
					continue
				}
				p := e.Position()
				if math.Hypot(x-p.X(), z-p.Z()) <= math.Max(e.Radius(), v.unitsX/2) {
					grid[row][col] = cell{'o', kindEnemy}
				}
			}
			if math.Abs(x-sc.pos.X()) <= math.Max(sc.radius, v.unitsX/2) && math.Abs(z-sc.pos.Z()) <= sc.halfHeight {
				grid[row][col] = cell{'@', kindCharacter}
			}
		}
	}

	for _, fx := range sc.effects {
		col, row, ok := v.cell(fx.Pos.X(), fx.Pos.Z())
		if !ok {
			continue
		}
		r := 'x'
		if fx.Kind == component.EffectCheerItem {
			r = '!'
		}
		grid[row][col] = cell{r, kindEffect}
	}
	return grid
}

func levelCell(lvl *levels.Level, x, z, slack float64) cell {
	for _, b := range lvl.Boxes {
		if inBox(x, z, b.Center, b.Width, b.Height) {
			return cell{'#', kindSolid}
		}
	}
	for _, s := range lvl.Segments {
		if segmentDistance(x, z, s.A, s.B) <= math.Max(s.Radius, slack) {
			return cell{'/', kindSolid}
		}
	}
	for _, t := range lvl.Triggers {
		if !inBox(x, z, t.Center, t.Width, t.Height) {
			continue
		}
		switch t.Kind {
		case levels.TriggerUpdraft:
			return cell{'^', kindUpdraft}
		case levels.TriggerDamage:
			return cell{'*', kindDamage}
		default:
			return cell{'+', kindCheer}
		}
	}
	return cell{' ', kindEmpty}
}

func inBox(x, z float64, c levels.Vec2, w, h float64) bool {
	return math.Abs(x-c.X) <= w/2 && math.Abs(z-c.Z) <= h/2
}

func segmentDistance(x, z float64, a, b levels.Vec2) float64 {
	dx, dz := b.X-a.X, b.Z-a.Z
	t := ((x-a.X)*dx + (z-a.Z)*dz) / (dx*dx + dz*dz)
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(x-(a.X+t*dx), z-(a.Z+t*dz))
}

func lines(grid [][]cell) []string {
	out := make([]string, len(grid))
	for i, row := range grid {
		rs := make([]rune, len(row))
		for j, c := range row {
			rs[j] = c.r
		}
		out[i] = string(rs)
	}
	return out
}
