package kociemba

import (
	"fmt"

	"github.com/ehrlich-b/kociemba/internal/cube"
)

// A coordinate compresses one invariant of a cube state into a dense
// integer in [0, numElems). setCoord and getCoord are inverse bijections
// on that range; setCoord expects a solved cube and must leave it in a
// solvable state.
type coordinate interface {
	numElems() int
	group() group
	setCoord(c *cube.Cube, v int)
	getCoord(c *cube.Cube) int
}

// group selects the move set a coordinate is built with. G0 coordinates
// see quarter turns on every face; G1 coordinates see quarter turns on
// U/D and half turns on F/B/R/L.
type group int

const (
	g0 group = iota
	g1
)

// turns returns the quarter-turn count of the group's canonical single
// step on the given face.
func (g group) turns(f cube.Face) int {
	if g == g1 && f != cube.Up && f != cube.Down {
		return 2
	}
	return 1
}

func assertCoord(v, n int) {
	if v < 0 || v >= n {
		panic(fmt.Sprintf("coordinate %d out of range [0, %d)", v, n))
	}
}

// eoCoord is the G0 edge orientation coordinate: an 11-bit number where
// the bit for slot i has place value 2^(10-i). The 12th orientation is
// forced by the flip-parity constraint.
type eoCoord struct{}

func (eoCoord) numElems() int { return 2048 }
func (eoCoord) group() group  { return g0 }

func (eoCoord) setCoord(c *cube.Cube, v int) {
	assertCoord(v, 2048)
	for i := 10; i >= 0; i-- {
		c.EO[i] = uint8(v & 1)
		c.EO[11] ^= uint8(v & 1)
		v >>= 1
	}
}

func (eoCoord) getCoord(c *cube.Cube) int {
	v := 0
	for i := 0; i < 11; i++ {
		v = v<<1 | int(c.EO[i])
	}
	return v
}

// coCoord is the G0 corner orientation coordinate: the first seven
// twists as a base-3 number, slot i contributing 3^(6-i). The 8th twist
// is forced by the twist-sum constraint.
type coCoord struct{}

func (coCoord) numElems() int { return 2187 }
func (coCoord) group() group  { return g0 }

func (coCoord) setCoord(c *cube.Cube, v int) {
	assertCoord(v, 2187)
	var sum uint8
	for i := 6; i >= 0; i-- {
		c.CO[i] = uint8(v % 3)
		sum += c.CO[i]
		v /= 3
	}
	c.CO[7] = (3 - sum%3) % 3
}

func (coCoord) getCoord(c *cube.Cube) int {
	v := 0
	for i := 0; i < 7; i++ {
		v = v*3 + int(c.CO[i])
	}
	return v
}

// ud1Coord is the G0 coordinate giving which 4 of the 12 edge slots hold
// an E-slice edge, as a combinadic rank over C(12,4) position sets.
type ud1Coord struct{}

func (ud1Coord) numElems() int { return 495 }
func (ud1Coord) group() group  { return g0 }

func (ud1Coord) setCoord(c *cube.Cube, v int) {
	assertCoord(v, 495)
	var slice [cube.NumEdges]bool
	k := 3
	for i := cube.NumEdges - 1; i >= 0 && k >= 0; i-- {
		if b := binomial(i, k); v >= b {
			v -= b
		} else {
			slice[i] = true
			k--
		}
	}
	// Slice slots take FR..BR in order, the rest UR..DB in order.
	nonSlice, sliceEdge := 0, int(cube.FR)
	for i := range c.EP {
		if slice[i] {
			c.EP[i] = cube.Edge(sliceEdge)
			sliceEdge++
		} else {
			c.EP[i] = cube.Edge(nonSlice)
			nonSlice++
		}
	}
	fixCornerParity(c)
}

func (ud1Coord) getCoord(c *cube.Cube) int {
	v, k := 0, 3
	for i := cube.NumEdges - 1; i >= 0 && k >= 0; i-- {
		if isSliceEdge(c.EP[i]) {
			k--
		} else {
			v += binomial(i, k)
		}
	}
	return v
}

func isSliceEdge(e cube.Edge) bool {
	return e >= cube.FR
}

// epCoord is the G1 permutation coordinate of the eight U/D-layer edges.
type epCoord struct{}

func (epCoord) numElems() int { return 40320 }
func (epCoord) group() group  { return g1 }

func (epCoord) setCoord(c *cube.Cube, v int) {
	assertCoord(v, 40320)
	var perm [8]int
	permUnrank(v, perm[:])
	for i, p := range perm {
		c.EP[i] = cube.Edge(p)
	}
	fixCornerParity(c)
}

func (epCoord) getCoord(c *cube.Cube) int {
	var perm [8]int
	for i := range perm {
		perm[i] = int(c.EP[i])
	}
	return permRank(perm[:])
}

// cpCoord is the G1 permutation coordinate of the eight corners.
type cpCoord struct{}

func (cpCoord) numElems() int { return 40320 }
func (cpCoord) group() group  { return g1 }

func (cpCoord) setCoord(c *cube.Cube, v int) {
	assertCoord(v, 40320)
	var perm [8]int
	permUnrank(v, perm[:])
	for i, p := range perm {
		c.CP[i] = cube.Corner(p)
	}
	fixEdgeParity(c)
}

func (cpCoord) getCoord(c *cube.Cube) int {
	var perm [8]int
	for i := range perm {
		perm[i] = int(c.CP[i])
	}
	return permRank(perm[:])
}

// ud2Coord is the G1 permutation coordinate of the four E-slice edges.
type ud2Coord struct{}

func (ud2Coord) numElems() int { return 24 }
func (ud2Coord) group() group  { return g1 }

func (ud2Coord) setCoord(c *cube.Cube, v int) {
	assertCoord(v, 24)
	var perm [4]int
	permUnrank(v, perm[:])
	for i, p := range perm {
		c.EP[int(cube.FR)+i] = cube.Edge(int(cube.FR) + p)
	}
	fixCornerParity(c)
}

func (ud2Coord) getCoord(c *cube.Cube) int {
	var perm [4]int
	for i := range perm {
		perm[i] = int(c.EP[int(cube.FR)+i]) - int(cube.FR)
	}
	return permRank(perm[:])
}

// permRank returns the factorial-base rank of a permutation of 0..n-1:
// the sum over positions i of digit_i * i!, where digit_i counts the
// earlier elements larger than the element at i.
func permRank(perm []int) int {
	v := 0
	for i := len(perm) - 1; i >= 1; i-- {
		s := 0
		for j := 0; j < i; j++ {
			if perm[j] > perm[i] {
				s++
			}
		}
		v = (v + s) * i
	}
	return v
}

// permUnrank writes the permutation with factorial-base rank v into
// perm, inverting permRank.
func permUnrank(v int, perm []int) {
	n := len(perm)
	digits := make([]int, n)
	for i := 1; i < n; i++ {
		digits[i] = v % (i + 1)
		v /= i + 1
	}
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	// The element at position i is the (digit_i+1)-th largest of the
	// values not yet placed after it.
	for i := n - 1; i >= 1; i-- {
		idx := i - digits[i]
		perm[i] = values[idx]
		values = append(values[:idx], values[idx+1:]...)
	}
	perm[0] = values[0]
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	v := 1
	for i := 0; i < k; i++ {
		v = v * (n - i) / (i + 1)
	}
	return v
}

// fixCornerParity swaps the first two corners when the corner and edge
// permutation parities disagree. Used by the encoders that rearrange
// edges without constraining corners.
func fixCornerParity(c *cube.Cube) {
	if permParity(edgePerm(c)) != permParity(cornerPerm(c)) {
		c.CP[0], c.CP[1] = c.CP[1], c.CP[0]
	}
}

// fixEdgeParity is the edge-side counterpart for the corner permutation
// encoder.
func fixEdgeParity(c *cube.Cube) {
	if permParity(edgePerm(c)) != permParity(cornerPerm(c)) {
		c.EP[0], c.EP[1] = c.EP[1], c.EP[0]
	}
}

func cornerPerm(c *cube.Cube) []int {
	perm := make([]int, cube.NumCorners)
	for i, cn := range c.CP {
		perm[i] = int(cn)
	}
	return perm
}

func edgePerm(c *cube.Cube) []int {
	perm := make([]int, cube.NumEdges)
	for i, e := range c.EP {
		perm[i] = int(e)
	}
	return perm
}

func permParity(perm []int) int {
	num := 0
	for i := 0; i < len(perm)-1; i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				num++
			}
		}
	}
	return num % 2
}
