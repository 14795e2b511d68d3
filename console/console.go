// Package console is the interactive text menu over a loaded dataset. It reads one answer per line from its
// input and writes menus and results to its output, so a session can be scripted.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/landstat/dataset"
	"github.com/gostonefire/landstat/landunit"
	"github.com/gostonefire/landstat/tree"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// errQuit - Input ended, leave every menu
var errQuit = errors.New("input closed")

// Console - One interactive session
type Console struct {
	ds     *dataset.Dataset
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
	cursor *tree.Cursor[*landunit.LandUnit]
}

// New - Returns a console over ds. Logger may be nil.
func New(ds *dataset.Dataset, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}

	return &Console{
		ds:     ds,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
		cursor: ds.Cursor(),
	}
}

// Run - Shows the main menu until the user exits or the input ends
func (C *Console) Run() (err error) {
	for {
		C.printf("== MENU ==\n")
		C.printf("[1] tree tools\n")
		C.printf("[2] tables\n")
		C.printf("[3] table statistics\n")
		C.printf("[0] exit\n")

		var choice int
		choice, err = C.choice(0, 1, 2, 3)
		if err != nil {
			break
		}

		switch choice {
		case 0:
			C.printf("Bye\n")
			return
		case 1:
			err = C.treeMenu()
		case 2:
			err = C.tablesMenu()
		case 3:
			C.printStats()
		}
		if err != nil {
			break
		}

		C.printf("----------------------\n")
	}

	if errors.Is(err, errQuit) {
		err = nil
	}

	return
}

// printf - Writes to the output, the console has no use for write errors
func (C *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(C.out, format, args...)
}

// line - Prompts and returns the next trimmed input line
func (C *Console) line(prompt string) (text string, err error) {
	C.printf("%s:: ", prompt)

	if !C.in.Scan() {
		err = C.in.Err()
		if err == nil {
			err = errQuit
		}
		return
	}

	text = strings.TrimSpace(C.in.Text())
	C.printf("\n")

	return
}

// number - Prompts until an integer is entered
func (C *Console) number(prompt string) (n int, err error) {
	for {
		var text string
		text, err = C.line(prompt)
		if err != nil {
			return
		}

		n, err = strconv.Atoi(text)
		if err == nil {
			return
		}
		C.printf("Not a number: %s\n", text)
	}
}

// choice - Prompts until one of valid is entered
func (C *Console) choice(valid ...int) (choice int, err error) {
	for {
		choice, err = C.number("")
		if err != nil {
			return
		}

		if slices.Contains(valid, choice) {
			return
		}
		C.printf("Unknown choice: %d\n", choice)
	}
}

// printUnit - Writes one unit with its population per tracked year
func (C *Console) printUnit(unit *landunit.LandUnit) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [ %s ] |", unit.Name, unit.ID)
	for i := 0; i < landunit.PopulationCount; i++ {
		fmt.Fprintf(&b, " %d: ( %d : %d )", landunit.IndexYear(i), unit.Male[i], unit.Female[i])
	}
	C.printf("%s\n", b.String())
}

// printStats - Writes usage statistics of the lookup tables
func (C *Console) printStats() {
	for _, ts := range C.ds.Stats() {
		s := ts.Stat
		C.printf("%-10s records %6d  deleted %4d  capacity %6d  fill %.2f  resizes %2d\n",
			ts.Name, s.Records, s.DeletedRecords, s.Capacity, s.FillRatio, s.Resizes)
	}
}
