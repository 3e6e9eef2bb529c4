package kociemba

import (
	"math/rand"
	"sync"

	"github.com/ehrlich-b/kociemba/internal/cube"
)

// Table construction is the expensive part of every test in this
// package, so the fixtures are built once and shared read-only.
var (
	tablesOnce sync.Once
	p0Fixture  *Phase0Tables
	p1Fixture  *Phase1Tables
)

func testTables() (*Phase0Tables, *Phase1Tables) {
	tablesOnce.Do(func() {
		p0Fixture = NewPhase0Tables()
		p1Fixture = NewPhase1Tables()
	})
	return p0Fixture, p1Fixture
}

func mustParseMoves(s string) []cube.Move {
	moves, err := cube.ParseMoves(s)
	if err != nil {
		panic(err)
	}
	return moves
}

func randomCube(rng *rand.Rand) cube.Cube {
	return cube.Solved().ApplyMoves(cube.NewScramble(rng, 30))
}

// randomG1Cube scrambles with the G1 move set only: quarter turns of
// U/D, half turns of F/B/R/L.
func randomG1Cube(rng *rand.Rand) cube.Cube {
	c := cube.Solved()
	for i := 0; i < 30; i++ {
		f := cube.Face(rng.Intn(6))
		turns := 2
		if f == cube.Up || f == cube.Down {
			turns = 1 + rng.Intn(3)
		}
		c = c.ApplyMove(cube.Move{Face: f, Turns: turns})
	}
	return c
}
