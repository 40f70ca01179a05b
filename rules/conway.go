package rules

/*
ApplyConwayRules reports whether a cell is alive in the next generation.

A live cell survives with two or three live neighbors, a dead cell is born with
exactly three. Every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
