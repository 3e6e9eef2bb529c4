package kociemba

import (
	"github.com/ehrlich-b/kociemba/internal/cube"
)

// Phase1Coord is the coordinate triple driving the phase 1 search. All
// three are zero exactly on the solved cube.
type Phase1Coord struct {
	ep  int
	cp  int
	ud2 int
}

// NewPhase1Coord computes the phase 1 coordinates of a cube. The cube
// must be in G1 for the coordinates to be meaningful.
func NewPhase1Coord(c *cube.Cube) Phase1Coord {
	return Phase1Coord{
		ep:  epCoord{}.getCoord(c),
		cp:  cpCoord{}.getCoord(c),
		ud2: ud2Coord{}.getCoord(c),
	}
}

// IsSolved reports whether the cube behind the coordinates is solved.
func (p Phase1Coord) IsSolved() bool {
	return p.ep == 0 && p.cp == 0 && p.ud2 == 0
}

// Phase1Tables bundles the transition and prune tables phase 1 searches
// against. Once built the tables are read-only.
type Phase1Tables struct {
	EPTrans  [][6]int
	CPTrans  [][6]int
	UD2Trans [][6]int
	EPPrune  []int
	CPPrune  []int
	UD2Prune []int
}

// NewPhase1Tables builds the phase 1 transition and prune tables.
func NewPhase1Tables() *Phase1Tables {
	epTrans := GetEPTransitionTable()
	cpTrans := GetCPTransitionTable()
	ud2Trans := GetUD2TransitionTable()
	return &Phase1Tables{
		EPTrans:  epTrans,
		CPTrans:  cpTrans,
		UD2Trans: ud2Trans,
		EPPrune:  GetEPPruneTable(epTrans),
		CPPrune:  GetCPPruneTable(cpTrans),
		UD2Prune: GetUD2PruneTable(ud2Trans),
	}
}

// transition returns the coordinates after the face's canonical G1
// step: a quarter turn for U/D, a half turn for F/B/R/L.
func (t *Phase1Tables) transition(p Phase1Coord, f cube.Face) Phase1Coord {
	return Phase1Coord{
		ep:  t.EPTrans[p.ep][f],
		cp:  t.CPTrans[p.cp][f],
		ud2: t.UD2Trans[p.ud2][f],
	}
}

// pruneDepth returns a lower bound on the moves left to solve.
func (t *Phase1Tables) pruneDepth(p Phase1Coord) int {
	d := t.EPPrune[p.ep]
	if cd := t.CPPrune[p.cp]; cd > d {
		d = cd
	}
	if ud := t.UD2Prune[p.ud2]; ud > d {
		d = ud
	}
	return d
}

// Phase1 searches for a move sequence of exactly depthRemaining moves
// solving coord within G1: quarter turns on U/D, half turns only on
// F/B/R/L. On success it appends the sequence to solution and returns
// true; on failure solution is left unchanged. Callers iterate over
// increasing depths for iterative deepening.
func Phase1(coord Phase1Coord, depthRemaining int, tables *Phase1Tables, solution *[]cube.Move) bool {
	if depthRemaining == 0 {
		return coord.IsSolved()
	}
	if depthRemaining < tables.pruneDepth(coord) {
		return false
	}

	for _, f := range faceOrder {
		if skipFace(*solution, f) {
			continue
		}
		turnCounts := fbrlTurnCounts
		if f == cube.Up || f == cube.Down {
			turnCounts = udTurnCounts
		}
		next := coord
		for _, q := range turnCounts {
			next = tables.transition(next, f)
			*solution = append(*solution, cube.Move{Face: f, Turns: q})
			if Phase1(next, depthRemaining-1, tables, solution) {
				return true
			}
			*solution = (*solution)[:len(*solution)-1]
		}
	}
	return false
}

// Turn counts pushed per successive transition-table application.
var (
	udTurnCounts   = []int{1, 2, 3}
	fbrlTurnCounts = []int{2}
)
