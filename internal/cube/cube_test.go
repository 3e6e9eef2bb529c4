package cube

import (
	"testing"
)

func TestSolvedCube(t *testing.T) {
	solved, err := New(
		[NumCorners]Corner{URF, UFL, ULB, UBR, DFR, DLF, DBL, DRB},
		[NumCorners]uint8{},
		[NumEdges]Edge{UR, UF, UL, UB, DR, DF, DL, DB, FR, FL, BL, BR},
		[NumEdges]uint8{},
	)
	if err != nil {
		t.Fatalf("New(solved state) error = %v", err)
	}
	if solved != Solved() {
		t.Errorf("Solved() = %v, want %v", Solved(), solved)
	}
	if !Solved().IsSolved() {
		t.Error("Solved().IsSolved() = false, want true")
	}
}

func TestVerifyInvalidStates(t *testing.T) {
	solvedCP := [NumCorners]Corner{URF, UFL, ULB, UBR, DFR, DLF, DBL, DRB}
	solvedEP := [NumEdges]Edge{UR, UF, UL, UB, DR, DF, DL, DB, FR, FL, BL, BR}

	tests := []struct {
		name string
		cube Cube
		want CubeStateErr
	}{
		{
			"repeated edge",
			NewUnchecked(solvedCP, [NumCorners]uint8{},
				[NumEdges]Edge{UF, UF, UF, UF, UF, UF, UF, UF, UF, UF, UF, UF},
				[NumEdges]uint8{}),
			ErrEP,
		},
		{
			"edge orientation out of range",
			NewUnchecked(solvedCP, [NumCorners]uint8{}, solvedEP,
				[NumEdges]uint8{3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}),
			ErrEO,
		},
		{
			"odd edge orientation sum",
			NewUnchecked(solvedCP, [NumCorners]uint8{}, solvedEP,
				[NumEdges]uint8{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}),
			ErrEO,
		},
		{
			"repeated corner",
			NewUnchecked(
				[NumCorners]Corner{URF, URF, URF, URF, URF, URF, URF, URF},
				[NumCorners]uint8{}, solvedEP, [NumEdges]uint8{}),
			ErrCP,
		},
		{
			"corner orientation sum not multiple of 3",
			NewUnchecked(solvedCP, [NumCorners]uint8{1, 0, 0, 0, 0, 0, 0, 0},
				solvedEP, [NumEdges]uint8{}),
			ErrCO,
		},
		{
			"corner orientation out of range",
			NewUnchecked(solvedCP, [NumCorners]uint8{3, 0, 0, 0, 0, 0, 0, 0},
				solvedEP, [NumEdges]uint8{}),
			ErrCO,
		},
		{
			"edge parity without corner parity",
			NewUnchecked(solvedCP, [NumCorners]uint8{},
				[NumEdges]Edge{UF, UR, UL, UB, DR, DF, DL, DB, FR, FL, BL, BR},
				[NumEdges]uint8{}),
			ErrParity,
		},
		{
			"corner parity without edge parity",
			NewUnchecked(
				[NumCorners]Corner{UFL, URF, ULB, UBR, DFR, DLF, DBL, DRB},
				[NumCorners]uint8{}, solvedEP, [NumEdges]uint8{}),
			ErrParity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cube.Verify()
			if err != tt.want {
				t.Errorf("Verify() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewRejectsUnsolvable(t *testing.T) {
	_, err := New(
		[NumCorners]Corner{UFL, URF, ULB, UBR, DFR, DLF, DBL, DRB},
		[NumCorners]uint8{},
		[NumEdges]Edge{UR, UF, UL, UB, DR, DF, DL, DB, FR, FL, BL, BR},
		[NumEdges]uint8{},
	)
	if err != ErrParity {
		t.Errorf("New(swapped corners) error = %v, want %v", err, ErrParity)
	}
}

func TestFaceOpposite(t *testing.T) {
	tests := []struct {
		face Face
		want Face
	}{
		{Up, Down},
		{Down, Up},
		{Front, Back},
		{Back, Front},
		{Right, Left},
		{Left, Right},
	}

	for _, tt := range tests {
		t.Run(tt.face.String(), func(t *testing.T) {
			if got := tt.face.Opposite(); got != tt.want {
				t.Errorf("%s.Opposite() = %s, want %s", tt.face, got, tt.want)
			}
		})
	}
}
