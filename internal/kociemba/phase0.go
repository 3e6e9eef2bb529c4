package kociemba

import (
	"github.com/ehrlich-b/kociemba/internal/cube"
)

// Phase0Coord is the coordinate triple driving the phase 0 search. A
// cube is in G1 exactly when all three are zero.
type Phase0Coord struct {
	eo  int
	co  int
	ud1 int
}

// NewPhase0Coord computes the phase 0 coordinates of a cube.
func NewPhase0Coord(c *cube.Cube) Phase0Coord {
	return Phase0Coord{
		eo:  eoCoord{}.getCoord(c),
		co:  coCoord{}.getCoord(c),
		ud1: ud1Coord{}.getCoord(c),
	}
}

// IsSolved reports whether the cube behind the coordinates is in G1.
func (p Phase0Coord) IsSolved() bool {
	return p.eo == 0 && p.co == 0 && p.ud1 == 0
}

// Phase0Tables bundles the transition and prune tables phase 0 searches
// against. Once built the tables are read-only.
type Phase0Tables struct {
	EOTrans  [][6]int
	COTrans  [][6]int
	UD1Trans [][6]int
	EOPrune  []int
	COPrune  []int
	UD1Prune []int
}

// NewPhase0Tables builds the phase 0 transition and prune tables.
func NewPhase0Tables() *Phase0Tables {
	eoTrans := GetEOTransitionTable()
	coTrans := GetCOTransitionTable()
	ud1Trans := GetUD1TransitionTable()
	return &Phase0Tables{
		EOTrans:  eoTrans,
		COTrans:  coTrans,
		UD1Trans: ud1Trans,
		EOPrune:  GetEOPruneTable(eoTrans),
		COPrune:  GetCOPruneTable(coTrans),
		UD1Prune: GetUD1PruneTable(ud1Trans),
	}
}

// transition returns the coordinates after a quarter turn of face.
func (t *Phase0Tables) transition(p Phase0Coord, f cube.Face) Phase0Coord {
	return Phase0Coord{
		eo:  t.EOTrans[p.eo][f],
		co:  t.COTrans[p.co][f],
		ud1: t.UD1Trans[p.ud1][f],
	}
}

// pruneDepth returns a lower bound on the moves left to reach G1.
func (t *Phase0Tables) pruneDepth(p Phase0Coord) int {
	d := t.EOPrune[p.eo]
	if cd := t.COPrune[p.co]; cd > d {
		d = cd
	}
	if ud := t.UD1Prune[p.ud1]; ud > d {
		d = ud
	}
	return d
}

// skipFace reports whether turning face would produce a sequence that a
// differently ordered, no longer, sequence already covers: a repeat of
// the previous face, or the far side of an opposite pair reordered as
// A B A.
func skipFace(solution []cube.Move, face cube.Face) bool {
	n := len(solution)
	if n > 0 && solution[n-1].Face == face {
		return true
	}
	if n > 1 && solution[n-2].Face == face && solution[n-1].Face == face.Opposite() {
		return true
	}
	return false
}

// phase0SolutionCheck rejects complete phase 0 solutions whose tail
// would be redundant against the phase 1 move set: a final U/D turn or
// half turn belongs to G1, and a half turn of the opposite face second
// to last could be reordered past the final move.
func phase0SolutionCheck(solution []cube.Move) bool {
	n := len(solution)
	if n == 0 {
		return true
	}
	last := solution[n-1]
	if last.Face == cube.Up || last.Face == cube.Down {
		return false
	}
	if last.Turns == 2 {
		return false
	}
	if n > 1 {
		prev := solution[n-2]
		if prev.Turns == 2 && prev.Face.Opposite() == last.Face {
			return false
		}
	}
	return true
}

// Phase0 searches for a move sequence of exactly depthRemaining moves
// reducing coord to G1, using quarter turns on all six faces. On
// success it appends the sequence to solution and returns true; on
// failure solution is left unchanged. Callers iterate over increasing
// depths for iterative deepening.
func Phase0(coord Phase0Coord, depthRemaining int, tables *Phase0Tables, solution *[]cube.Move) bool {
	if depthRemaining == 0 {
		return phase0SolutionCheck(*solution) && coord.IsSolved()
	}
	if depthRemaining < tables.pruneDepth(coord) {
		return false
	}

	for _, f := range faceOrder {
		if skipFace(*solution, f) {
			continue
		}
		next := coord
		for i := 1; i <= 3; i++ {
			next = tables.transition(next, f)
			*solution = append(*solution, cube.Move{Face: f, Turns: i})
			if Phase0(next, depthRemaining-1, tables, solution) {
				return true
			}
			*solution = (*solution)[:len(*solution)-1]
		}
	}
	return false
}
