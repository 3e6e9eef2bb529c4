package kociemba

// initPruneTable builds a table of the number of moves needed to bring
// each coordinate to 0, by breadth-first relaxation from 0 over the
// transition table. Only depths below maxDepth are stored: coordinates
// maxDepth or more moves away keep the sentinel value len(trans).
func initPruneTable(trans [][6]int, maxDepth int) []int {
	table := make([]int, len(trans))
	for i := range table {
		table[i] = len(trans)
	}
	table[0] = 0

	frontier := []int{0}
	for depth := 1; depth < maxDepth && len(frontier) > 0; depth++ {
		var next []int
		for _, c := range frontier {
			for _, f := range faceOrder {
				nc := c
				for i := 0; i < 3; i++ {
					nc = trans[nc][f]
					if table[nc] > depth {
						table[nc] = depth
						next = append(next, nc)
					}
				}
			}
		}
		frontier = next
	}
	return table
}

// GetCOPruneTable returns the G0 CO prune table.
func GetCOPruneTable(coTrans [][6]int) []int {
	return initPruneTable(coTrans, 7)
}

// GetEOPruneTable returns the G0 EO prune table.
func GetEOPruneTable(eoTrans [][6]int) []int {
	return initPruneTable(eoTrans, 8)
}

// GetUD1PruneTable returns the G0 UD1 prune table.
func GetUD1PruneTable(ud1Trans [][6]int) []int {
	return initPruneTable(ud1Trans, 6)
}

// GetCPPruneTable returns the G1 CP prune table.
func GetCPPruneTable(cpTrans [][6]int) []int {
	return initPruneTable(cpTrans, 14)
}

// GetEPPruneTable returns the G1 EP prune table.
func GetEPPruneTable(epTrans [][6]int) []int {
	return initPruneTable(epTrans, 9)
}

// GetUD2PruneTable returns the G1 UD2 prune table.
func GetUD2PruneTable(ud2Trans [][6]int) []int {
	return initPruneTable(ud2Trans, 5)
}
