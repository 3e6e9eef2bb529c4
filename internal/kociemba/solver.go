package kociemba

import (
	"time"

	"github.com/pkg/errors"

	"github.com/ehrlich-b/kociemba/internal/cube"
)

// Depth budgets for iterative deepening. Any cube reaches G1 within 12
// face turns, and any G1 cube solves within 18 of the restricted moves.
const (
	maxPhase0Depth = 12
	maxPhase1Depth = 18
)

// SolverResult represents the result of a solve attempt
type SolverResult struct {
	Solution []cube.Move
	Steps    int
	Duration time.Duration
}

// Solver runs Kociemba's two-phase algorithm. The tables are built once
// and shared read-only by every solve.
type Solver struct {
	phase0 *Phase0Tables
	phase1 *Phase1Tables
}

// NewSolver builds the transition and prune tables for both phases.
func NewSolver() *Solver {
	return &Solver{
		phase0: NewPhase0Tables(),
		phase1: NewPhase1Tables(),
	}
}

// Solve returns a move sequence bringing the cube to the solved state,
// chaining an iterative-deepening phase 0 search into phase 1. Phase 1
// starts from an empty solution; the phase 0 terminal restrictions
// already keep the concatenation free of cross-boundary redundancy.
func (s *Solver) Solve(c cube.Cube) (*SolverResult, error) {
	start := time.Now()
	if err := c.Verify(); err != nil {
		return nil, errors.Wrap(err, "unsolvable cube")
	}

	var reduction []cube.Move
	p0 := NewPhase0Coord(&c)
	found := false
	for depth := 0; depth <= maxPhase0Depth; depth++ {
		if Phase0(p0, depth, s.phase0, &reduction) {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.Errorf("no phase 0 solution within %d moves", maxPhase0Depth)
	}

	g1 := c.ApplyMoves(reduction)
	p1 := NewPhase1Coord(&g1)
	var finish []cube.Move
	found = false
	for depth := 0; depth <= maxPhase1Depth; depth++ {
		if Phase1(p1, depth, s.phase1, &finish) {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.Errorf("no phase 1 solution within %d moves", maxPhase1Depth)
	}

	solution := append(reduction, finish...)
	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}
