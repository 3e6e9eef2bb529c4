package kociemba

import (
	"github.com/ehrlich-b/kociemba/internal/cube"
)

// faceOrder is the order faces are expanded in, everywhere. Keeping it
// fixed makes table construction and search deterministic.
var faceOrder = [6]cube.Face{cube.Up, cube.Down, cube.Front, cube.Back, cube.Right, cube.Left}

// initTransitionTable builds the numElems x 6 table mapping a coordinate
// and a face to the coordinate after one canonical step of that face
// (quarter turn in G0; quarter for U/D and half for F/B/R/L in G1).
// Entries are indexed by the face's integer value.
func initTransitionTable(co coordinate) [][6]int {
	t := make([][6]int, co.numElems())
	for i := range t {
		c := cube.Solved()
		co.setCoord(&c, i)
		for _, f := range faceOrder {
			nc := c.ApplyMove(cube.Move{Face: f, Turns: co.group().turns(f)})
			v := co.getCoord(&nc)
			assertCoord(v, co.numElems())
			t[i][f] = v
		}
	}
	return t
}

// GetEOTransitionTable returns the G0 EO transition table.
func GetEOTransitionTable() [][6]int {
	return initTransitionTable(eoCoord{})
}

// GetCOTransitionTable returns the G0 CO transition table.
func GetCOTransitionTable() [][6]int {
	return initTransitionTable(coCoord{})
}

// GetUD1TransitionTable returns the G0 UD1 transition table.
func GetUD1TransitionTable() [][6]int {
	return initTransitionTable(ud1Coord{})
}

// GetEPTransitionTable returns the G1 EP transition table.
func GetEPTransitionTable() [][6]int {
	return initTransitionTable(epCoord{})
}

// GetCPTransitionTable returns the G1 CP transition table.
func GetCPTransitionTable() [][6]int {
	return initTransitionTable(cpCoord{})
}

// GetUD2TransitionTable returns the G1 UD2 transition table.
func GetUD2TransitionTable() [][6]int {
	return initTransitionTable(ud2Coord{})
}
