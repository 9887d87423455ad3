package placement

// Wirelength computes the total Manhattan (L1) length over all edges:
// Σ |Δx| + |Δy|, resolving each endpoint by the global-index convention
// (indices below len(static) are static, the rest index into floating).
//
// Pure function: no state, identical inputs yield identical results.
// Assumes indices were validated upstream; self-loops contribute zero.
// Complexity: O(E).
func Wirelength(edges []Edge, static, floating []Coordinate) int {
	var total int
	for _, e := range edges {
		ca := resolve(e.A, static, floating)
		cb := resolve(e.B, static, floating)
		total += absInt(ca.X-cb.X) + absInt(ca.Y-cb.Y)
	}

	return total
}

// resolve maps a global node index to its coordinate.
func resolve(idx int, static, floating []Coordinate) Coordinate {
	if idx < len(static) {
		return static[idx]
	}

	return floating[idx-len(static)]
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
