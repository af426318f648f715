/*

	main.go - interactive console driver, adapted from msgame.Game

	mike@pocomotech.com

*/

// Command sweepercli plays classic Minesweeper or the colour-banded
// variant interactively, printing the Sweeper's advice alongside the
// game board after every move. Input convention matches the teacher's
// console loop: digits pick the row, letters pick the column, in
// whatever order the player types them.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/pocomotech/sweeper/config"
	"github.com/pocomotech/sweeper/internal/classicgame"
	"github.com/pocomotech/sweeper/internal/geom"
	"github.com/pocomotech/sweeper/internal/log"
	"github.com/pocomotech/sweeper/internal/variantgame"
	"github.com/pocomotech/sweeper/sweeper"
)

func main() {
	log.Initialize(log.DefaultConfig())
	if err := runConsole(os.Stdin, os.Stdout, time.Now().UnixNano()); err != nil {
		fmt.Fprintln(os.Stderr, "sweepercli: ", err)
		os.Exit(1)
	}
}

func runConsole(cin io.Reader, cout io.Writer, seed int64) error {
	rand.Seed(seed)
	fmt.Fprintf(os.Stderr, "{ starting with random seed %d }\n\n", seed)

	in := bufio.NewScanner(cin)
	out := bufio.NewWriter(cout)
	cfg := config.Default()

	for {
		fmt.Fprintln(cout, "Choose ruleset: [C]lassic [V]ariant   or   [Q]uit")
		ruleset, err := readOneCharacter(in)
		if err != nil {
			continue
		}

		version := ""
		switch ruleset {
		case "c":
			version = config.VersionClassic
		case "v":
			version = config.VersionVariant
		case "q":
			return nil
		default:
			continue
		}

		fmt.Fprintln(cout, "Choose difficulty: [E]asy [M]edium [H]ard")
		difficulty, err := readOneCharacter(in)
		if err != nil {
			continue
		}
		switch difficulty {
		case "e":
			difficulty = "easy"
		case "m":
			difficulty = "medium"
		case "h":
			difficulty = "hard"
		default:
			continue
		}

		if err := playOneGame(in, out, cfg, version, difficulty); err != nil {
			fmt.Fprintln(os.Stderr, "sweepercli: game loop error: ", err)
		}
	}
}

// boardAdapter is the narrow surface sweepercli needs from either game
// board, so playOneGame doesn't need to branch on ruleset beyond setup.
type boardAdapter interface {
	Initialize(safespot geom.Tile) error
	Dimensions() (rows, cols, mines int)
	ValidLocation(l geom.Tile) bool
	MineHit() bool
	SafeRemaining() int
	Click(l geom.Tile) bool
	ToggleFlag(l geom.Tile)
	Label(l geom.Tile) string
	ConsoleRender(w io.Writer) error
}

func playOneGame(in *bufio.Scanner, out *bufio.Writer, cfg config.Config, version, difficulty string) error {
	var board boardAdapter
	switch version {
	case config.VersionClassic:
		board = classicgame.NewBoard(cfg, difficulty)
	case config.VersionVariant:
		board = variantgame.NewBoard(cfg, difficulty)
	}

	rows, cols, mines := board.Dimensions()
	board.Initialize(geom.Tile{Row: 0, Col: 0})
	advisor := sweeper.New(cfg, version, rows, cols, mines)

	gameInit := false
	for !board.MineHit() && board.SafeRemaining() > 0 {
		if !gameInit {
			fmt.Fprint(out, "\nChoose starting cell location:  ")
		} else {
			fmt.Fprint(out, "\nChoose command (s,f) & location :  ")
		}
		out.Flush()

		cmd, loc, err := readNextMove(in)
		if err != nil {
			fmt.Fprintln(os.Stderr, "readNextMove() failure: cmd ", cmd, " location ", loc, " err ", err)
			continue
		}

		if !board.ValidLocation(loc) {
			fmt.Fprint(out, "Invalid board location selected, please retry: ", loc)
			continue
		}

		if !gameInit {
			board.Initialize(loc)
			advisor.Reset()
			gameInit = true
		}

		switch cmd {
		case "s":
			board.Click(loc)
		case "f":
			board.ToggleFlag(loc)
		default:
			fmt.Fprintf(out, "Invalid command selection %q\n", cmd)
		}

		syncAdvisor(board, advisor, rows, cols)
		board.ConsoleRender(out)
		renderAdvice(out, advisor, rows, cols)
	}

	return nil
}

// syncAdvisor feeds every newly-revealed label into the advisor and
// recomputes the probability board.
func syncAdvisor(board boardAdapter, advisor *sweeper.Sweeper, rows, cols int) {
	current := advisor.Board()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			label := board.Label(geom.Tile{Row: r, Col: c})
			if label == "" || current[r][c] == label {
				continue
			}
			advisor.IntegrateNewInfo(r, c, label)
		}
	}
	advisor.CalculateBoard()
}

func renderAdvice(out *bufio.Writer, advisor *sweeper.Sweeper, rows, cols int) {
	if msg := advisor.Message(); msg != "" {
		fmt.Fprintln(out, "advisor: ", msg)
		return
	}
	board := advisor.Board()
	for r := 0; r < rows; r++ {
		line := ""
		for c := 0; c < cols; c++ {
			if c != 0 {
				line += "  "
			}
			cell := board[r][c]
			if cell == "" {
				cell = "."
			}
			line += cell
		}
		fmt.Fprintln(out, line)
	}
}

func readNextMove(in *bufio.Scanner) (string, geom.Tile, error) {
	inLine, err := readInput(in)
	if err != nil {
		return "", geom.Tile{Row: -1, Col: -1}, err
	}
	digits := ""
	letters := make([]rune, 0)
	inputRunes := []rune(inLine)
	for i := 0; i < len(inputRunes); i++ {
		if unicode.IsDigit(inputRunes[i]) {
			digits += string(inputRunes[i])
		} else if unicode.IsLetter(inputRunes[i]) {
			letters = append(letters, inputRunes[i])
		}
	}

	userRow, err := strconv.Atoi(digits)
	if err != nil {
		userRow = -1
	}
	userRow--

	// With two or more letters the first is the command (s or f) and the
	// next is the column; a lone letter is a column with the default "s".
	cmd := "s"
	if len(letters) > 1 {
		cmd = string(letters[0])
		letters = letters[1:]
	}

	userCol := -1
	if len(letters) > 0 {
		userCol = int(letters[0]) - int('a')
	}

	return cmd, geom.Tile{Row: userRow, Col: userCol}, err
}

func readOneCharacter(in *bufio.Scanner) (string, error) {
	inLine, err := readInput(in)
	if err != nil {
		return "", err
	}
	return inLine[0:1], nil
}

func readInput(in *bufio.Scanner) (string, error) {
	if !in.Scan() {
		return "", fmt.Errorf("error or EOF during console read")
	}
	line := strings.Trim(in.Text(), " \n")
	line = strings.ToLower(line)
	return line, nil
}
