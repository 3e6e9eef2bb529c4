package kociemba

import (
	"testing"

	"github.com/ehrlich-b/kociemba/internal/cube"
)

func checkPhase1Solved(t *testing.T, c cube.Cube, solution []cube.Move) {
	t.Helper()
	solved := c.ApplyMoves(solution)
	if !NewPhase1Coord(&solved).IsSolved() {
		t.Errorf("solution %q does not solve the cube", cube.FormatMoves(solution))
	}
}

func TestPhase1Basic(t *testing.T) {
	_, p1 := testTables()

	var solution []cube.Move
	c := cube.Solved()
	if !Phase1(NewPhase1Coord(&c), 0, p1, &solution) {
		t.Error("solved cube not accepted at depth 0")
	}
	checkPhase1Solved(t, c, solution)

	solution = nil
	c = cube.Solved().ApplyMove(cube.Move{Face: cube.Up, Turns: 1})
	if Phase1(NewPhase1Coord(&c), 0, p1, &solution) {
		t.Error("U state accepted at depth 0")
	}
	if !Phase1(NewPhase1Coord(&c), 1, p1, &solution) {
		t.Fatal("U state not solved at depth 1")
	}
	if got := cube.FormatMoves(solution); got != "U'" {
		t.Errorf("solution = %q, want %q", got, "U'")
	}
	checkPhase1Solved(t, c, solution)

	solution = nil
	c = cube.Solved().ApplyMove(cube.Move{Face: cube.Right, Turns: 2})
	if Phase1(NewPhase1Coord(&c), 0, p1, &solution) {
		t.Error("R2 state accepted at depth 0")
	}
	if Phase1(NewPhase1Coord(&c), 2, p1, &solution) {
		t.Error("R2 state solved at depth 2")
	}
	if !Phase1(NewPhase1Coord(&c), 1, p1, &solution) {
		t.Fatal("R2 state not solved at depth 1")
	}
	if got := cube.FormatMoves(solution); got != "R2" {
		t.Errorf("solution = %q, want %q", got, "R2")
	}
	checkPhase1Solved(t, c, solution)

	solution = nil
	c = cube.Solved().ApplyMoves(mustParseMoves("R2 F2"))
	if Phase1(NewPhase1Coord(&c), 0, p1, &solution) {
		t.Error("R2 F2 state accepted at depth 0")
	}
	if Phase1(NewPhase1Coord(&c), 1, p1, &solution) {
		t.Error("R2 F2 state solved at depth 1")
	}
	if !Phase1(NewPhase1Coord(&c), 2, p1, &solution) {
		t.Fatal("R2 F2 state not solved at depth 2")
	}
	if got := cube.FormatMoves(solution); got != "F2 R2" {
		t.Errorf("solution = %q, want %q", got, "F2 R2")
	}
	checkPhase1Solved(t, c, solution)
}

// Phase 1 only ever pushes moves from the restricted G1 move set.
func TestPhase1MoveSet(t *testing.T) {
	_, p1 := testTables()

	c := cube.Solved().ApplyMoves(mustParseMoves("U R2 D' B2 U2 L2 F2 D"))
	var solution []cube.Move
	found := false
	for depth := 0; depth <= maxPhase1Depth; depth++ {
		if Phase1(NewPhase1Coord(&c), depth, p1, &solution) {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("no phase 1 solution found")
	}
	for _, move := range solution {
		if move.Face != cube.Up && move.Face != cube.Down && move.Turns != 2 {
			t.Errorf("move %s is outside the G1 move set", move)
		}
	}
	checkPhase1Solved(t, c, solution)
}
