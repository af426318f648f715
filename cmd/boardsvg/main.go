/*

	main.go - SVG renderer for a Sweeper probability board, grounded on
	the dungeon generator's pkg/export SVG visualizer

*/

// Command boardsvg renders one calculate_board() snapshot to an SVG
// file: a grid of cells colored by their marking ("S" safe, "B/R"
// certain bomb, one shared colour for percentages and revealed labels,
// another for empty cells), for visual debugging of the probability
// board. The colour does not vary with the percentage value.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/pocomotech/sweeper/config"
	"github.com/pocomotech/sweeper/sweeper"
)

// Options configures the SVG export.
type Options struct {
	CellSize int
	Margin   int
	Title    string
}

// DefaultOptions returns sensible default export options.
func DefaultOptions() Options {
	return Options{CellSize: 40, Margin: 30, Title: "Sweeper board"}
}

func main() {
	version := flag.String("version", config.VersionClassic, "classic or variant")
	difficulty := flag.String("difficulty", "easy", "easy, medium or hard")
	out := flag.String("out", "board.svg", "output SVG path")
	flag.Parse()

	cfg := config.Default()
	preset, ok := cfg.Preset(*version, *difficulty)
	if !ok {
		fmt.Fprintf(os.Stderr, "boardsvg: unknown %s/%s preset\n", *version, *difficulty)
		os.Exit(1)
	}

	s := sweeper.New(cfg, *version, preset.Height, preset.Width, preset.Bombs)
	s.IntegrateNewInfo(preset.Height/2, preset.Width/2, firstLabel(*version))
	s.CalculateBoard()

	data := render(s, preset.Height, preset.Width, DefaultOptions())
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "boardsvg: ", err)
		os.Exit(1)
	}
}

func firstLabel(version string) string {
	if version == config.VersionVariant {
		return "Green"
	}
	return "0"
}

func render(s *sweeper.Sweeper, rows, cols int, opts Options) []byte {
	width := cols*opts.CellSize + 2*opts.Margin
	height := rows*opts.CellSize + 2*opts.Margin + 40

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")
	canvas.Text(width/2, 25, opts.Title, "text-anchor:middle;font-size:18px;fill:#e2e8f0;font-family:sans-serif")

	board := s.Board()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := opts.Margin + c*opts.CellSize
			y := opts.Margin + 40 + r*opts.CellSize
			label := board[r][c]
			canvas.Rect(x, y, opts.CellSize, opts.CellSize, fmt.Sprintf("fill:%s;stroke:#4a5568;stroke-width:1", cellColor(label)))
			if label != "" {
				canvas.Text(x+opts.CellSize/2, y+opts.CellSize/2+4, label,
					"text-anchor:middle;font-size:11px;font-family:monospace;fill:#0f0f1a")
			}
		}
	}

	if msg := s.Message(); msg != "" {
		canvas.Text(width/2, height-10, msg, "text-anchor:middle;font-size:12px;fill:#f56565;font-family:monospace")
	}

	canvas.End()
	return buf.Bytes()
}

func cellColor(label string) string {
	switch label {
	case "":
		return "#2d3748"
	case "S":
		return "#48bb78"
	case "B/R":
		return "#f56565"
	default:
		return "#ecc94b"
	}
}
