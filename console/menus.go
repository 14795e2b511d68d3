package console

import (
	"github.com/gostonefire/landstat/algorithms"
	"github.com/gostonefire/landstat/dataset"
	"github.com/gostonefire/landstat/landunit"
	"github.com/gostonefire/landstat/tree"
	"github.com/xlab/treeprint"
	"golang.org/x/text/language"
)

// subtreeDepth - Levels shown below the cursor when printing the subtree
const subtreeDepth = 2

// treeMenu - Moves the cursor around and selects units from the walk starting at it
func (C *Console) treeMenu() (err error) {
	for {
		C.printf("== TREE ==\n")
		C.printf("Cursor: %s\n\n", C.cursor.Item())
		C.printf("[1] move up\n")
		C.printf("[2] move down by name\n")
		C.printf("[3] move down by id\n")
		C.printf("[4] reset cursor\n")
		C.printf("[5] select from cursor\n")
		C.printf("[6] show subtree\n")
		C.printf("[0] back\n")

		var choice int
		if choice, err = C.choice(0, 1, 2, 3, 4, 5, 6); err != nil {
			return
		}

		switch choice {
		case 0:
			return
		case 1:
			if C.cursor.MoveToParent() {
				C.printf("Moved to the parent\n")
			} else {
				C.printf("No parent\n")
			}
		case 2, 3:
			var target string
			if choice == 2 {
				target, err = C.line("name ")
			} else {
				target, err = C.line("id ")
			}
			if err != nil {
				return
			}

			moved := C.cursor.MoveToChildren(func(l *landunit.LandUnit) bool {
				if choice == 2 {
					return l.Name == target
				}
				return l.ID == target
			})
			if moved {
				C.printf("Moved to the child\n")
			} else {
				C.printf("No such child: %s\n", target)
			}
		case 4:
			C.cursor.Reset()
		case 5:
			if err = C.selectMenu(); err != nil {
				return
			}
		case 6:
			C.printf("%s", Subtree(C.ds, C.cursor.Node(), subtreeDepth))
		}

		C.printf("----------------------\n")
	}
}

// selectMenu - Filters the units reached by a breadth-first walk from the cursor, then sorts and prints them
func (C *Console) selectMenu() (err error) {
	C.printf("== SELECT ==\n")
	C.printf("[0] all units\n")
	C.printf("[1] name contains text\n")
	C.printf("[2] at most this many residents in a year\n")
	C.printf("[3] at least this many residents in a year\n")
	C.printf("[4] unit level is\n")

	choice, err := C.choice(0, 1, 2, 3, 4)
	if err != nil {
		return
	}

	pred, err := C.predicate(choice)
	if err != nil {
		return
	}

	// Walk a copy so the menu cursor keeps its place
	walk, ok := C.ds.Tree.CursorAt(C.cursor.Node())
	if !ok {
		return
	}

	out := make(algorithms.Slice[*landunit.LandUnit], C.ds.Tree.Len())
	n, err := algorithms.Select(walk.All(), out, 0, algorithms.Predicate[*landunit.LandUnit](pred))
	if err != nil {
		return
	}
	selected := out[:n]

	if err = C.sortMenu(selected); err != nil {
		return
	}

	C.printf("Selected %d units:\n", n)
	for _, unit := range selected {
		C.printUnit(unit)
	}

	return
}

// predicate - Asks for the parameters of the chosen predicate
func (C *Console) predicate(choice int) (pred landunit.Predicate, err error) {
	switch choice {
	case 0:
		pred = landunit.AlwaysTrue
	case 1:
		var text string
		if text, err = C.line("text "); err != nil {
			return
		}
		pred = landunit.ContainsFoldedInName(text)
	case 2, 3:
		var year, limit int
		if year, err = C.year(); err != nil {
			return
		}
		if limit, err = C.number("limit "); err != nil {
			return
		}
		if choice == 2 {
			pred = landunit.HasMaxResidentsInYear(year, limit)
		} else {
			pred = landunit.HasMinResidentsInYear(year, limit)
		}
	case 4:
		var level int
		if level, err = C.number("level "); err != nil {
			return
		}
		pred = landunit.UnitLevelIs(level)
	}

	return
}

// sortMenu - Optionally sorts units in place
func (C *Console) sortMenu(units algorithms.Slice[*landunit.LandUnit]) (err error) {
	C.printf("== SORT ==\n")
	C.printf("[0] keep walk order\n")
	C.printf("[1] by name\n")
	C.printf("[2] by name, Slovak collation\n")
	C.printf("[3] by population in a year\n")

	choice, err := C.choice(0, 1, 2, 3)
	if err != nil {
		return
	}

	var cmp landunit.Comparator
	switch choice {
	case 0:
		return
	case 1:
		cmp = landunit.CompareAlphabetical
	case 2:
		cmp = landunit.CompareCollated(language.Slovak)
	case 3:
		for cmp == nil {
			var year int
			if year, err = C.year(); err != nil {
				return
			}

			var text string
			if text, err = C.line("male, female or both "); err != nil {
				return
			}

			category, parseErr := landunit.ParseCategory(text)
			if parseErr == nil {
				cmp, parseErr = landunit.ComparePopulationInYear(year, category)
			}
			if parseErr != nil {
				C.printf("%s\n", parseErr)
			}
		}
	}

	err = algorithms.QuickSort(units, 0, units.Len(), algorithms.Comparator[*landunit.LandUnit](cmp))

	return
}

// year - Prompts until a tracked year is entered
func (C *Console) year() (year int, err error) {
	for {
		if year, err = C.number("year "); err != nil {
			return
		}

		if _, yearErr := landunit.YearIndex(year); yearErr == nil {
			return
		}
		C.printf("Tracked years are %d to %d\n", landunit.IndexYear(landunit.PopulationCount-1), landunit.BaseYear)
	}
}

// tablesMenu - Looks units up by level and name
func (C *Console) tablesMenu() (err error) {
	for {
		C.printf("== TABLES ==\n")
		C.printf("Level of the unit (1-%d)\n", C.ds.LevelCount())

		levels := make([]int, C.ds.LevelCount())
		for i := range levels {
			levels[i] = i + 1
		}

		var level int
		if level, err = C.choice(levels...); err != nil {
			return
		}

		var name string
		if name, err = C.line("name "); err != nil {
			return
		}

		units, lookupErr := C.ds.Lookup(level, name)
		if lookupErr != nil {
			C.logger.Debug("lookup failed", "level", level, "name", name, "error", lookupErr)
			C.printf("No unit named %s on level %d\n", name, level)
		}
		for _, unit := range units {
			C.printUnit(unit)
		}

		C.printf("\nDone? [0 yes] [1 no]\n")
		var choice int
		if choice, err = C.choice(0, 1); err != nil || choice == 0 {
			return
		}
	}
}

// Subtree - Renders the node id of ds and its descendants down to depth levels below it
func Subtree(ds *dataset.Dataset, id tree.NodeID, depth int) string {
	unit, err := ds.Tree.Item(id)
	if err != nil {
		return ""
	}

	tp := treeprint.NewWithRoot(unit.String())
	addChildren(ds, tp, id, depth)

	return tp.String()
}

// addChildren - Adds the children of id as branches of tp
func addChildren(ds *dataset.Dataset, tp treeprint.Tree, id tree.NodeID, depth int) {
	if depth == 0 {
		return
	}

	for child := range ds.Tree.Children(id) {
		unit, _ := ds.Tree.Item(child)
		if depth == 1 {
			tp.AddNode(unit.String())
			continue
		}

		branch := tp.AddBranch(unit.String())
		addChildren(ds, branch, child, depth-1)
	}
}
