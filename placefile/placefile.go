package placefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/qplace/placement"
)

var (
	// ErrTruncated indicates the input ended before a required line.
	ErrTruncated = errors.New("placefile: unexpected end of input")
	// ErrBadField indicates a wrong field count or a non-numeric field.
	ErrBadField = errors.New("placefile: malformed field")
)

// Header field counts of the format.
const (
	countFields = 3 // numStatic numFloating numEdges
	pairFields  = 2 // "x y" / "a b"
)

// lineReader yields whitespace-trimmed lines with 1-based numbering.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

// next returns the next line, or ErrTruncated when the input is exhausted.
func (lr *lineReader) next() (string, error) {
	if !lr.scanner.Scan() {
		if err := lr.scanner.Err(); err != nil {
			return "", fmt.Errorf("placefile: line %d: %w", lr.line+1, err)
		}

		return "", fmt.Errorf("line %d: %w", lr.line+1, ErrTruncated)
	}
	lr.line++

	return strings.TrimSpace(lr.scanner.Text()), nil
}

// ints parses a line of exactly want integer fields.
func (lr *lineReader) ints(want int) ([]int, error) {
	raw, err := lr.next()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(raw)
	if len(fields) != want {
		return nil, fmt.Errorf("line %d: expected %d fields, got %d: %w", lr.line, want, len(fields), ErrBadField)
	}

	values := make([]int, want)
	for i, f := range fields {
		values[i], err = strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", lr.line, f, ErrBadField)
		}
	}

	return values, nil
}

// Parse reads one placement problem from r and validates it through
// placement.NewProblem. Complexity: O(S + E).
func Parse(r io.Reader) (*placement.Problem, error) {
	lr := &lineReader{scanner: bufio.NewScanner(r)}

	rawTol, err := lr.next()
	if err != nil {
		return nil, err
	}
	tol, err := strconv.ParseFloat(strings.TrimSpace(rawTol), 64)
	if err != nil {
		return nil, fmt.Errorf("line %d: %q: %w", lr.line, rawTol, ErrBadField)
	}

	counts, err := lr.ints(countFields)
	if err != nil {
		return nil, err
	}
	numStatic, numFloating, numEdges := counts[0], counts[1], counts[2]
	if numStatic < 0 || numEdges < 0 {
		return nil, fmt.Errorf("line %d: negative count: %w", lr.line, ErrBadField)
	}

	static := make([]placement.Coordinate, 0, numStatic)
	for i := 0; i < numStatic; i++ {
		xy, err := lr.ints(pairFields)
		if err != nil {
			return nil, err
		}
		static = append(static, placement.Coordinate{X: xy[0], Y: xy[1]})
	}

	edges := make([]placement.Edge, 0, numEdges)
	for i := 0; i < numEdges; i++ {
		ab, err := lr.ints(pairFields)
		if err != nil {
			return nil, err
		}
		edges = append(edges, placement.Edge{A: ab[0], B: ab[1]})
	}

	return placement.NewProblem(tol, numFloating, static, edges)
}

// ParseFile opens path and parses it via Parse.
func ParseFile(path string) (*placement.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("placefile: %w", err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}
