// Package cli implements the qplace command-line interface.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qplace/placefile"
	"github.com/katalvlaran/qplace/placement"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for the command tree.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. qplace takes exactly one
// positional argument, the problem file, and prints the total Manhattan
// wirelength of the solved placement to stdout.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		maxSweeps   int
		printCoords bool
	)

	root := &cobra.Command{
		Use:   "qplace <file>",
		Short: "qplace computes an analytical quadratic placement",
		Long: `qplace reads a placement problem (static cells, floating cells, and
connectivity edges) from a flat text file, solves the quadratic placement
by Gauss-Seidel relaxation, and prints the total Manhattan wirelength.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlace(cmd.OutOrStdout(), args[0], maxSweeps, printCoords)
		},
	}

	root.Flags().IntVar(&maxSweeps, "max-sweeps", placement.DefaultMaxSweeps,
		"relaxation sweep cap per axis")
	root.Flags().BoolVar(&printCoords, "coords", false,
		"also print the solved floating-cell coordinates")

	return root
}

// runPlace executes the full pipeline for one problem file.
// The core packages never log or print; all presentation lives here.
func (c *CLI) runPlace(out io.Writer, path string, maxSweeps int, printCoords bool) error {
	prob, err := placefile.ParseFile(path)
	if err != nil {
		return err
	}
	c.Logger.Debug("parsed problem",
		"file", path,
		"tolerance", prob.Tolerance,
		"static", prob.NumStatic(),
		"floating", prob.NumFloating,
		"edges", len(prob.Edges))

	start := time.Now()
	cells, err := placement.Place(prob, placement.Options{MaxSweeps: maxSweeps})
	if err != nil {
		return err
	}
	c.Logger.Debug("placement solved", "elapsed", time.Since(start))

	if printCoords {
		for i, cell := range cells {
			fmt.Fprintf(out, "%d: (%d, %d)\n", prob.NumStatic()+i, cell.X, cell.Y)
		}
	}
	fmt.Fprintln(out, placement.Wirelength(prob.Edges, prob.Static, cells))

	return nil
}
