package rules

// IsUnderpopulated reports whether a cell with n live neighbors dies of loneliness
func IsUnderpopulated(n int) bool {
	return n < 2
}

// IsOverpopulated reports whether a cell with n live neighbors dies of crowding
func IsOverpopulated(n int) bool {
	return n > 3
}

// CanReproduce reports whether a dead cell with n live neighbors comes to life
func CanReproduce(n int, alive bool) bool {
	return !alive && n == 3
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

The checks run in order and the first match wins:
underpopulation, overpopulation, reproduction, otherwise the cell keeps its state.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case IsUnderpopulated(neighbors), IsOverpopulated(neighbors):
		return false
	case CanReproduce(neighbors, alive):
		return true
	default:
		return alive
	}
}
