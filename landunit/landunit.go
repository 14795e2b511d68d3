// Package landunit holds the administrative area entity and the comparators and predicates used to sort
// and filter it.
package landunit

import (
	"fmt"
	"github.com/gostonefire/landstat/dserr"
)

// PopulationCount - Number of tracked years
const PopulationCount = 5

// BaseYear - The year at population index 0. Index i holds year BaseYear - i.
const BaseYear = 2020

// LandUnit - A named administrative area with its level in the hierarchy and population counts per tracked
// year. Level is 0 for the root and a child is always one level below its parent.
type LandUnit struct {
	Name   string
	ID     string
	Level  int
	Male   [PopulationCount]int
	Female [PopulationCount]int
}

// New - Returns a LandUnit with all population counts at zero
func New(name, id string, level int) LandUnit {
	return LandUnit{Name: name, ID: id, Level: level}
}

// YearIndex - Translates a year into a population index.
// It returns:
//   - index is BaseYear - year
//   - err is of type dserr.OutOfRange if the year is not tracked
func YearIndex(year int) (index int, err error) {
	index = BaseYear - year
	if err = checkIndex(index); err != nil {
		err = fmt.Errorf("year %d is not tracked: %w", year, err)
	}

	return
}

// IndexYear - Translates a population index into its year
func IndexYear(index int) int {
	return BaseYear - index
}

// MaleAt - Returns the male population at index, or dserr.OutOfRange
func (L *LandUnit) MaleAt(index int) (count int, err error) {
	if err = checkIndex(index); err != nil {
		return
	}

	count = L.Male[index]

	return
}

// FemaleAt - Returns the female population at index, or dserr.OutOfRange
func (L *LandUnit) FemaleAt(index int) (count int, err error) {
	if err = checkIndex(index); err != nil {
		return
	}

	count = L.Female[index]

	return
}

// TotalAt - Returns male plus female population at index, or dserr.OutOfRange
func (L *LandUnit) TotalAt(index int) (count int, err error) {
	if err = checkIndex(index); err != nil {
		return
	}

	count = L.Male[index] + L.Female[index]

	return
}

// PopulationAt - Returns the population of category at index.
// It returns:
//   - count of the category
//   - err is of type dserr.OutOfRange for a bad index or dserr.InvalidCategory for an unknown category
func (L *LandUnit) PopulationAt(index int, category Category) (count int, err error) {
	if err = checkIndex(index); err != nil {
		return
	}

	switch category {
	case Male:
		count = L.Male[index]
	case Female:
		count = L.Female[index]
	case Both:
		count = L.Male[index] + L.Female[index]
	default:
		err = dserr.NewInvalidCategory(category)
	}

	return
}

// AddPopulation - Increments the counts at index. Counts only ever grow.
// It returns:
//   - err is of type dserr.OutOfRange for a bad index or dserr.InvalidRange for a negative delta, in both
//     cases nothing is changed
func (L *LandUnit) AddPopulation(index, male, female int) (err error) {
	if err = checkIndex(index); err != nil {
		return
	}

	if male < 0 || female < 0 {
		err = dserr.InvalidRange{}
		return
	}

	L.Male[index] += male
	L.Female[index] += female

	return
}

func (L *LandUnit) String() string {
	return fmt.Sprintf("%s (%s)", L.Name, L.ID)
}

// checkIndex - Returns dserr.OutOfRange if index is not a population index
func checkIndex(index int) error {
	if index < 0 || index >= PopulationCount {
		return dserr.NewOutOfRange(index, PopulationCount)
	}

	return nil
}
