package cube

import (
	"fmt"
	"strings"
)

// Face represents a face of the cube
type Face int

const (
	Up Face = iota
	Right
	Front
	Down
	Back
	Left
)

func (f Face) String() string {
	return []string{"U", "R", "F", "D", "B", "L"}[f]
}

// Opposite returns the face on the other side of the cube
func (f Face) Opposite() Face {
	return []Face{Down, Left, Back, Up, Front, Right}[f]
}

// Corner represents one of the eight corner cubies
type Corner int

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

func (c Corner) String() string {
	return []string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}[c]
}

// Edge represents one of the twelve edge cubies. The first eight live in
// the U and D layers; FR through BR are the E-slice edges.
type Edge int

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

func (e Edge) String() string {
	return []string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}[e]
}

// NumCorners is the number of corners on a 3x3x3 cube.
const NumCorners = 8

// NumEdges is the number of edges on a 3x3x3 cube.
const NumEdges = 12

// CubeStateErr describes the ways a cube state can be unsolvable
type CubeStateErr int

const (
	ErrEO CubeStateErr = iota
	ErrCO
	ErrEP
	ErrCP
	ErrParity
)

func (e CubeStateErr) Error() string {
	return []string{
		"edge orientation is out of range or its sum is not a multiple of 2",
		"corner orientation is out of range or its sum is not a multiple of 3",
		"edge permutation is not a permutation",
		"corner permutation is not a permutation",
		"corner parity does not match edge parity",
	}[e]
}

// Cube models a 3x3x3 cube as a permutation and orientation of its
// corner and edge cubies. Slot i of CP holds the corner currently in
// position i; CO[i] is that corner's twist in {0,1,2}. EP/EO do the
// same for edges with flips in {0,1}.
type Cube struct {
	CP [NumCorners]Corner
	CO [NumCorners]uint8
	EP [NumEdges]Edge
	EO [NumEdges]uint8
}

// Solved returns a cube in the solved state
func Solved() Cube {
	return Cube{
		CP: [NumCorners]Corner{URF, UFL, ULB, UBR, DFR, DLF, DBL, DRB},
		EP: [NumEdges]Edge{UR, UF, UL, UB, DR, DF, DL, DB, FR, FL, BL, BR},
	}
}

// New creates a cube with the given permutations and orientations,
// verifying that the state is solvable.
func New(cp [NumCorners]Corner, co [NumCorners]uint8, ep [NumEdges]Edge, eo [NumEdges]uint8) (Cube, error) {
	c := Cube{CP: cp, CO: co, EP: ep, EO: eo}
	if err := c.Verify(); err != nil {
		return Cube{}, err
	}
	return c, nil
}

// NewUnchecked creates a cube with the given permutations and
// orientations without checking that the state is solvable.
func NewUnchecked(cp [NumCorners]Corner, co [NumCorners]uint8, ep [NumEdges]Edge, eo [NumEdges]uint8) Cube {
	return Cube{CP: cp, CO: co, EP: ep, EO: eo}
}

// IsSolved checks if the cube is in the solved state
func (c Cube) IsSolved() bool {
	return c == Solved()
}

// Verify checks that the cube is in a solvable state
func (c Cube) Verify() error {
	var edges uint16
	for _, e := range c.EP {
		edges |= 1 << uint(e)
	}
	if edges != 0b111111111111 {
		return ErrEP
	}

	var eoSum uint8
	for _, eo := range c.EO {
		if eo > 1 {
			return ErrEO
		}
		eoSum += eo
	}
	if eoSum%2 != 0 {
		return ErrEO
	}

	var corners uint8
	for _, cn := range c.CP {
		corners |= 1 << uint(cn)
	}
	if corners != 0b11111111 {
		return ErrCP
	}

	var coSum uint8
	for _, co := range c.CO {
		if co > 2 {
			return ErrCO
		}
		coSum += co
	}
	if coSum%3 != 0 {
		return ErrCO
	}

	if c.edgeParity() != c.cornerParity() {
		return ErrParity
	}
	return nil
}

func (c Cube) cornerParity() bool {
	perm := make([]int, NumCorners)
	for i, cn := range c.CP {
		perm[i] = int(cn)
	}
	return numInversions(perm)%2 != 0
}

func (c Cube) edgeParity() bool {
	perm := make([]int, NumEdges)
	for i, e := range c.EP {
		perm[i] = int(e)
	}
	return numInversions(perm)%2 != 0
}

// numInversions counts the inversions in a permutation
func numInversions(perm []int) int {
	num := 0
	for i := 0; i < len(perm)-1; i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				num++
			}
		}
	}
	return num
}

// String returns a readable dump of the cube state
func (c Cube) String() string {
	var sb strings.Builder
	sb.WriteString("CP:")
	for _, cn := range c.CP {
		fmt.Fprintf(&sb, " %s", cn)
	}
	sb.WriteString("\nCO:")
	for _, co := range c.CO {
		fmt.Fprintf(&sb, " %d", co)
	}
	sb.WriteString("\nEP:")
	for _, e := range c.EP {
		fmt.Fprintf(&sb, " %s", e)
	}
	sb.WriteString("\nEO:")
	for _, eo := range c.EO {
		fmt.Fprintf(&sb, " %d", eo)
	}
	return sb.String()
}
