package cube

import (
	"math/rand"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		notation string
		want     Move
		wantErr  bool
	}{
		{"R", Move{Right, 1}, false},
		{"R'", Move{Right, 3}, false},
		{"R2", Move{Right, 2}, false},
		{"U", Move{Up, 1}, false},
		{"U'", Move{Up, 3}, false},
		{"F2", Move{Front, 2}, false},
		{"D", Move{Down, 1}, false},
		{"B'", Move{Back, 3}, false},
		{"L2", Move{Left, 2}, false},
		{"", Move{}, true},
		{"X", Move{}, true},
		{"R3", Move{}, true},
		{"Rw", Move{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			got, err := ParseMove(tt.notation)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseMove(%q) error = %v, wantErr %v", tt.notation, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMove(%q) = %v, want %v", tt.notation, got, tt.want)
			}
		})
	}
}

func TestParseMoves(t *testing.T) {
	tests := []struct {
		sequence string
		wantLen  int
		wantErr  bool
	}{
		{"", 0, false},
		{"R", 1, false},
		{"R U R' U'", 4, false},
		{"R U2 R' D'", 4, false},
		{"R X", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.sequence, func(t *testing.T) {
			got, err := ParseMoves(tt.sequence)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseMoves(%q) error = %v, wantErr %v", tt.sequence, err, tt.wantErr)
				return
			}
			if !tt.wantErr && len(got) != tt.wantLen {
				t.Errorf("ParseMoves(%q) length = %d, want %d", tt.sequence, len(got), tt.wantLen)
			}
		})
	}
}

func TestMoveStringRoundTrip(t *testing.T) {
	for f := Up; f <= Left; f++ {
		for turns := 1; turns <= 3; turns++ {
			move := Move{f, turns}
			parsed, err := ParseMove(move.String())
			if err != nil {
				t.Fatalf("ParseMove(%q) error = %v", move.String(), err)
			}
			if parsed != move {
				t.Errorf("ParseMove(%q) = %v, want %v", move.String(), parsed, move)
			}
		}
	}
}

func TestFormatMoves(t *testing.T) {
	moves := []Move{{Right, 1}, {Up, 2}, {Front, 3}}
	if got, want := FormatMoves(moves), "R U2 F'"; got != want {
		t.Errorf("FormatMoves() = %q, want %q", got, want)
	}
}

func TestNewScramble(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		moves := NewScramble(rng, 25)
		if len(moves) != 25 {
			t.Fatalf("NewScramble() length = %d, want 25", len(moves))
		}
		for i, move := range moves {
			if move.Turns < 1 || move.Turns > 3 {
				t.Errorf("move %d has turns %d", i, move.Turns)
			}
			if i > 0 && moves[i-1].Face == move.Face {
				t.Errorf("moves %d and %d repeat face %s", i-1, i, move.Face)
			}
			if i > 1 && moves[i-2].Face == move.Face && moves[i-1].Face == move.Face.Opposite() {
				t.Errorf("moves %d..%d form an opposite-face sandwich", i-2, i)
			}
		}
		if err := Solved().ApplyMoves(moves).Verify(); err != nil {
			t.Errorf("scrambled cube Verify() = %v", err)
		}
	}
}
