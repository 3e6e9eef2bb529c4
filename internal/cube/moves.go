package cube

// Move represents a clockwise turn of a face repeated Turns quarter
// turns. Turns is 1, 2 or 3; 3 is the counter-clockwise turn.
type Move struct {
	Face  Face
	Turns int
}

// movePerm holds the permutation and orientation deltas of a single
// clockwise quarter turn. cp[i]/ep[i] name the slot whose cubie lands
// in slot i; co[i]/eo[i] are the twist and flip picked up at slot i.
type movePerm struct {
	cp [NumCorners]int
	co [NumCorners]uint8
	ep [NumEdges]int
	eo [NumEdges]uint8
}

// movePerms contains the six basic quarter turns, indexed by Face.
var movePerms = [6]movePerm{
	Up: {
		cp: [NumCorners]int{3, 0, 1, 2, 4, 5, 6, 7},
		ep: [NumEdges]int{3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11},
	},
	Right: {
		cp: [NumCorners]int{4, 1, 2, 0, 7, 5, 6, 3},
		co: [NumCorners]uint8{1, 0, 0, 2, 2, 0, 0, 1},
		ep: [NumEdges]int{8, 1, 2, 3, 11, 5, 6, 7, 4, 9, 10, 0},
	},
	Front: {
		cp: [NumCorners]int{1, 5, 2, 3, 0, 4, 6, 7},
		co: [NumCorners]uint8{2, 1, 0, 0, 1, 2, 0, 0},
		ep: [NumEdges]int{0, 9, 2, 3, 4, 8, 6, 7, 1, 5, 10, 11},
		eo: [NumEdges]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	Down: {
		cp: [NumCorners]int{0, 1, 2, 3, 5, 6, 7, 4},
		ep: [NumEdges]int{0, 1, 2, 3, 5, 6, 7, 4, 8, 9, 10, 11},
	},
	Back: {
		cp: [NumCorners]int{0, 1, 3, 7, 4, 5, 2, 6},
		co: [NumCorners]uint8{0, 0, 2, 1, 0, 0, 1, 2},
		ep: [NumEdges]int{0, 1, 2, 11, 4, 5, 6, 10, 8, 9, 3, 7},
		eo: [NumEdges]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
	Left: {
		cp: [NumCorners]int{0, 2, 6, 3, 4, 1, 5, 7},
		co: [NumCorners]uint8{0, 2, 1, 0, 0, 1, 2, 0},
		ep: [NumEdges]int{0, 1, 10, 3, 4, 5, 9, 7, 8, 2, 6, 11},
	},
}

// ApplyMove returns the cube after applying the given move
func (c Cube) ApplyMove(move Move) Cube {
	mp := &movePerms[move.Face]
	for i := 0; i < move.Turns; i++ {
		c = c.applyMovePerm(mp)
	}
	return c
}

// ApplyMoves returns the cube after applying a sequence of moves
func (c Cube) ApplyMoves(moves []Move) Cube {
	for _, move := range moves {
		c = c.ApplyMove(move)
	}
	return c
}

func (c Cube) applyMovePerm(mp *movePerm) Cube {
	var n Cube
	for i, j := range mp.cp {
		n.CP[i] = c.CP[j]
		n.CO[i] = (c.CO[j] + mp.co[i]) % 3
	}
	for i, j := range mp.ep {
		n.EP[i] = c.EP[j]
		n.EO[i] = c.EO[j] ^ mp.eo[i]
	}
	return n
}
