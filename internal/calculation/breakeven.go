package calculation

// FindBreakevenAge scans start ages from youngest to oldest and returns the first one whose
// difference (TVC minus non-TVC) is non-negative. It returns nil when TVC never catches up,
// which callers must treat as a valid outcome rather than an error.
// startAges and difference must be index-aligned; extra entries in either are ignored.
func FindBreakevenAge(startAges []int, difference []float64) *int {
	n := len(startAges)
	if len(difference) < n {
		n = len(difference)
	}

	for i := 0; i < n; i++ {
		if difference[i] >= 0 {
			age := startAges[i]
			return &age
		}
	}

	// No crossover found
	return nil
}

// BreakevenIndex returns the position of the breakeven age within startAges, or -1
func BreakevenIndex(startAges []int, breakevenAge *int) int {
	if breakevenAge == nil {
		return -1
	}
	for i, a := range startAges {
		if a == *breakevenAge {
			return i
		}
	}
	return -1
}
