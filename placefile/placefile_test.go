package placefile_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/qplace/placefile"
	"github.com/katalvlaran/qplace/placement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

// TestParseFile_Anchor reads the two-anchor fixture and checks every field.
func TestParseFile_Anchor(t *testing.T) {
	p, err := placefile.ParseFile(fixture("anchor.place"))
	require.NoError(t, err)

	assert.Equal(t, 0.001, p.Tolerance)
	assert.Equal(t, 1, p.NumFloating)
	assert.Equal(t, []placement.Coordinate{{X: 0, Y: 0}, {X: 4, Y: 0}}, p.Static)
	assert.Equal(t, []placement.Edge{{A: 0, B: 2}, {A: 1, B: 2}}, p.Edges)
}

// TestParseFile_EndToEnd runs the full pipeline over each fixture and
// checks the resulting wirelength.
func TestParseFile_EndToEnd(t *testing.T) {
	cases := []struct {
		name string
		file string
		want int
	}{
		{"Anchor", "anchor.place", 4},
		{"Chain", "chain.place", 6},
		{"Triangle", "triangle.place", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := placefile.ParseFile(fixture(tc.file))
			require.NoError(t, err)

			cells, err := placement.Place(p, placement.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tc.want, placement.Wirelength(p.Edges, p.Static, cells))
		})
	}
}

// TestParse_SyntaxErrors covers the parse failure taxonomy.
func TestParse_SyntaxErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"Empty", "", placefile.ErrTruncated},
		{"MissingCounts", "0.001\n", placefile.ErrTruncated},
		{"MissingStaticLine", "0.001\n2 1 2\n0 0\n", placefile.ErrTruncated},
		{"MissingEdgeLine", "0.001\n1 1 1\n0 0\n", placefile.ErrTruncated},
		{"BadTolerance", "abc\n1 1 1\n", placefile.ErrBadField},
		{"ShortCountLine", "0.001\n2 1\n", placefile.ErrBadField},
		{"NonNumericCount", "0.001\n2 1 two\n", placefile.ErrBadField},
		{"NegativeStaticCount", "0.001\n-1 1 0\n", placefile.ErrBadField},
		{"ThreeFieldCell", "0.001\n1 1 1\n0 0 0\n1 1\n", placefile.ErrBadField},
		{"NonNumericEdge", "0.001\n1 1 1\n0 0\nx y\n", placefile.ErrBadField},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := placefile.Parse(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse_StructuralErrors verifies validation is delegated to
// placement.NewProblem with its sentinels intact.
func TestParse_StructuralErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"ZeroTolerance", "0\n1 1 1\n0 0\n0 1\n", placement.ErrBadTolerance},
		{"NegativeFloatingCount", "0.001\n1 -1 0\n0 0\n", placement.ErrBadCellCount},
		{"EdgeOutOfRange", "0.001\n1 1 1\n0 0\n0 5\n", placement.ErrEdgeOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := placefile.Parse(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse_TrailingContentIgnored: the reader consumes exactly the
// lines the header announces and ignores the rest.
func TestParse_TrailingContentIgnored(t *testing.T) {
	input := "0.001\n1 1 1\n0 0\n0 1\nleftover garbage\n"
	p, err := placefile.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, p.NumFloating)
}

// TestParse_LineNumberInError checks diagnostics carry the offending line.
func TestParse_LineNumberInError(t *testing.T) {
	_, err := placefile.Parse(strings.NewReader("0.001\n1 1 1\n0 zero\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

// TestParseFile_Missing verifies a useful error for a nonexistent path.
func TestParseFile_Missing(t *testing.T) {
	_, err := placefile.ParseFile(fixture("no_such_file.place"))
	assert.Error(t, err)
}

// TestParseFile_IsolatedCellSolveFails: the fixture parses cleanly but
// the isolated floating cell must fail the solve as a singular system.
func TestParseFile_IsolatedCellSolveFails(t *testing.T) {
	p, err := placefile.ParseFile(fixture("isolated.place"))
	require.NoError(t, err)

	_, err = placement.Place(p, placement.DefaultOptions())
	assert.Error(t, err)
}
