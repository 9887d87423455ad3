// Package placefile reads placement problems from the flat text format
// consumed by the qplace command line tool.
//
// Format (newline-delimited, fields separated by whitespace):
//
//	line 1:                tolerance        (float, > 0)
//	line 2:                numStatic numFloating numEdges
//	next numStatic lines:  "x y"            (one static cell per line)
//	next numEdges lines:   "a b"            (global node indices)
//
// The parser handles syntax only: field counts and numeric conversion.
// Structural validation (index ranges, tolerance sign) is delegated to
// placement.NewProblem so there is a single malformed-problem boundary.
// Content past the last edge line is ignored: the reader consumes
// exactly the lines the header announces.
//
// Errors:
//
//   - ErrTruncated: the input ended before a required line.
//   - ErrBadField: a line had the wrong field count or a non-numeric field.
//   - placement sentinels (ErrBadTolerance, ErrEdgeOutOfRange, ...) for
//     structural violations.
//
// All parse errors carry the 1-based line number for diagnostics.
package placefile
