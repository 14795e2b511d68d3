// Package dataset builds the land unit hierarchy from delimited files and answers lookups on it.
//
// A Dataset owns every LandUnit in Units. The tree, the id table and the per-level name tables hold
// pointers into Units, which never move for the life of the Dataset.
package dataset

import (
	"errors"
	"fmt"
	"github.com/gostonefire/landstat/crt"
	"github.com/gostonefire/landstat/csvline"
	"github.com/gostonefire/landstat/dserr"
	"github.com/gostonefire/landstat/hashmap"
	"github.com/gostonefire/landstat/landunit"
	"github.com/gostonefire/landstat/linkedlist"
	"github.com/gostonefire/landstat/tree"
)

// TableStat - Usage statistics of one lookup table
type TableStat struct {
	Name string
	Stat hashmap.HashMapStat
}

// Dataset - The loaded hierarchy
type Dataset struct {
	Units  *linkedlist.List[landunit.LandUnit]
	Tree   *tree.Tree[*landunit.LandUnit]
	ByID   *hashmap.HashMap[string, tree.NodeID]
	Levels []*hashmap.HashMap[string, *landunit.LandUnit]
	Towns  *hashmap.HashMap[string, *linkedlist.List[*landunit.LandUnit]]
}

// New - Returns a dataset holding only the root unit.
//   - rootID is the restricted identifier of the root
//   - levels is the number of levels below the root, at least 1
//   - technique is the crt constant used for the tables by name
func New(rootName, rootID string, levels, technique int) (ds *Dataset, err error) {
	if levels < 1 {
		err = dserr.NewOutOfRange(levels, 1)
		return
	}

	ds = &Dataset{Units: linkedlist.New[landunit.LandUnit]()}

	root := ds.Units.PushBack(landunit.New(rootName, rootID, 0))
	ds.Tree = tree.New(root)

	ds.ByID, err = hashmap.NewStringMap[tree.NodeID](crt.LinearProbing)
	if err != nil {
		return
	}
	if err = ds.ByID.Insert(rootID, ds.Tree.Root()); err != nil {
		return
	}

	// The last level is keyed by town name, which repeats
	ds.Levels = make([]*hashmap.HashMap[string, *landunit.LandUnit], levels-1)
	for i := range ds.Levels {
		ds.Levels[i], err = hashmap.NewStringMap[*landunit.LandUnit](technique)
		if err != nil {
			return
		}
	}

	ds.Towns, err = hashmap.NewStringMap[*linkedlist.List[*landunit.LandUnit]](technique)

	return
}

// Root - Returns the root unit
func (D *Dataset) Root() *landunit.LandUnit {
	root, _ := D.Tree.Item(D.Tree.Root())
	return root
}

// LevelCount - Returns the number of levels below the root
func (D *Dataset) LevelCount() int {
	return len(D.Levels) + 1
}

// Cursor - Returns a tree cursor at the root
func (D *Dataset) Cursor() *tree.Cursor[*landunit.LandUnit] {
	return D.Tree.Cursor()
}

// errDuplicateName - The unit was added but its name was already taken on its level
var errDuplicateName = errors.New("duplicate unit name")

// AddUnit - Creates a unit at level below the unit with restricted identifier parentID. An empty parentID
// is derived from id by dropping its last character. The parent must already be in the dataset.
// It returns:
//   - unit is a pointer to the new unit, stable for the life of the dataset
//   - err is of type dserr.KeyNotFound for an unknown parent, dserr.DuplicateKey for a known id or
//     dserr.OutOfRange for a bad level, dserr.InvalidRange when level is not one below the parent's
//     level; on any of these nothing is changed. When the name is already used on a level other than
//     the last the unit is still added and the error wraps dserr.DuplicateKey as well.
func (D *Dataset) AddUnit(level int, name, id, parentID string) (unit *landunit.LandUnit, err error) {
	if level < 1 || level > D.LevelCount() {
		err = dserr.NewOutOfRange(level, D.LevelCount()+1)
		return
	}

	if parentID == "" {
		parentID = csvline.ParentID(id)
	}

	parent, err := D.ByID.Get(parentID)
	if err != nil {
		err = fmt.Errorf("parent %q of %q: %w", parentID, id, err)
		return
	}

	parentUnit, err := D.Tree.Item(parent)
	if err != nil {
		return
	}
	if level != parentUnit.Level+1 {
		err = fmt.Errorf("level %d of %q does not follow level %d of parent %q: %w",
			level, id, parentUnit.Level, parentID, dserr.InvalidRange{})
		return
	}

	if D.ByID.Contains(id) {
		err = dserr.NewDuplicateKey(id)
		return
	}

	unit = D.Units.PushBack(landunit.New(name, id, level))

	node, err := D.Tree.AppendChild(parent, unit)
	if err != nil {
		return
	}

	if err = D.ByID.Insert(id, node); err != nil {
		return
	}

	if level == D.LevelCount() {
		towns := D.Towns.Ref(name)
		if *towns == nil {
			*towns = linkedlist.New[*landunit.LandUnit]()
		}
		(*towns).PushBack(unit)
		return
	}

	if err = D.Levels[level-1].Insert(name, unit); err != nil {
		err = fmt.Errorf("%w: %w", errDuplicateName, err)
	}

	return
}

// Unit - Returns the unit with restricted identifier id, or dserr.KeyNotFound
func (D *Dataset) Unit(id string) (unit *landunit.LandUnit, err error) {
	node, err := D.ByID.Get(id)
	if err != nil {
		return
	}

	return D.Tree.Item(node)
}

// AddPopulation - Adds male and female to the counts at index of the unit with restricted identifier id and
// of every one of its ancestors up to the root.
// It returns:
//   - err is of type dserr.KeyNotFound for an unknown id, dserr.OutOfRange for a bad index or
//     dserr.InvalidRange for a negative delta; on error nothing is changed
func (D *Dataset) AddPopulation(id string, index, male, female int) (err error) {
	node, err := D.ByID.Get(id)
	if err != nil {
		return
	}

	unit, err := D.Tree.Item(node)
	if err != nil {
		return
	}
	if err = unit.AddPopulation(index, male, female); err != nil {
		return
	}

	// Same index and deltas, cannot fail
	for ancestor := range D.Tree.Ancestors(node) {
		a, _ := D.Tree.Item(ancestor)
		_ = a.AddPopulation(index, male, female)
	}

	return
}

// Lookup - Returns the units named name at level, 1 being the level below the root. Only the last level
// can return more than one unit.
// It returns:
//   - units found
//   - err is of type dserr.OutOfRange for a bad level or dserr.KeyNotFound if no unit has the name
func (D *Dataset) Lookup(level int, name string) (units []*landunit.LandUnit, err error) {
	if level < 1 || level > D.LevelCount() {
		err = fmt.Errorf("level %d: %w", level, dserr.NewOutOfRange(level, D.LevelCount()+1))
		return
	}

	if level == D.LevelCount() {
		var towns *linkedlist.List[*landunit.LandUnit]
		towns, err = D.Towns.Get(name)
		if err != nil {
			return
		}
		units = towns.Slice()
		return
	}

	unit, err := D.Levels[level-1].Get(name)
	if err != nil {
		return
	}
	units = []*landunit.LandUnit{unit}

	return
}

// Stats - Returns usage statistics of every lookup table
func (D *Dataset) Stats() (stats []TableStat) {
	stats = append(stats, TableStat{Name: "by id", Stat: D.ByID.Stat()})
	for i, level := range D.Levels {
		stats = append(stats, TableStat{Name: fmt.Sprintf("level %d", i+1), Stat: level.Stat()})
	}
	stats = append(stats, TableStat{Name: fmt.Sprintf("level %d", D.LevelCount()), Stat: D.Towns.Stat()})

	return
}
