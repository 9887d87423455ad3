package placement_test

import (
	"testing"

	"github.com/katalvlaran/qplace/placement"
	"github.com/stretchr/testify/assert"
)

// TestWirelength_KnownValues checks L1 totals over mixed endpoint kinds.
func TestWirelength_KnownValues(t *testing.T) {
	static := []placement.Coordinate{{X: 0, Y: 0}, {X: 4, Y: 0}}
	floating := []placement.Coordinate{{X: 2, Y: 3}}

	cases := []struct {
		name  string
		edges []placement.Edge
		want  int
	}{
		{"Empty", nil, 0},
		{"StaticStatic", []placement.Edge{{A: 0, B: 1}}, 4},
		{"StaticFloating", []placement.Edge{{A: 0, B: 2}}, 5},
		{"AllEdges", []placement.Edge{{A: 0, B: 1}, {A: 0, B: 2}, {A: 1, B: 2}}, 14},
		{"SelfLoop", []placement.Edge{{A: 2, B: 2}}, 0},
		{"DuplicatedEdgeCountsTwice", []placement.Edge{{A: 0, B: 1}, {A: 0, B: 1}}, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, placement.Wirelength(tc.edges, static, floating))
		})
	}
}

// TestWirelength_NegativeCoordinates verifies absolute distances with
// cells in negative quadrants.
func TestWirelength_NegativeCoordinates(t *testing.T) {
	static := []placement.Coordinate{{X: -3, Y: -4}}
	floating := []placement.Coordinate{{X: 2, Y: 1}}

	got := placement.Wirelength([]placement.Edge{{A: 0, B: 1}}, static, floating)
	assert.Equal(t, 10, got)
}

// TestWirelength_Idempotent verifies the evaluator is a pure function.
func TestWirelength_Idempotent(t *testing.T) {
	static := []placement.Coordinate{{X: 0, Y: 0}, {X: 7, Y: 2}}
	floating := []placement.Coordinate{{X: 3, Y: 1}, {X: 5, Y: 5}}
	edges := []placement.Edge{{A: 0, B: 2}, {A: 2, B: 3}, {A: 3, B: 1}}

	first := placement.Wirelength(edges, static, floating)
	second := placement.Wirelength(edges, static, floating)
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 0)
}
