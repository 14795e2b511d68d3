package landunit

import (
	"github.com/gostonefire/landstat/dserr"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"strings"
)

// Comparator - Three-way comparison of two land units
type Comparator func(a, b *LandUnit) int

// CompareAlphabetical - Orders by name, byte by byte
func CompareAlphabetical(a, b *LandUnit) int {
	return strings.Compare(a.Name, b.Name)
}

// CompareCollated - Orders by name using the collation rules of lang, so that for example Slovak names with
// diacritics sort next to their plain letters
func CompareCollated(lang language.Tag) Comparator {
	c := collate.New(lang)

	return func(a, b *LandUnit) int {
		return c.CompareString(a.Name, b.Name)
	}
}

// ComparePopulation - Orders by the population of category at index.
// It returns:
//   - cmp is the comparator
//   - err is of type dserr.OutOfRange for a bad index or dserr.InvalidCategory for an unknown category
func ComparePopulation(index int, category Category) (cmp Comparator, err error) {
	if err = checkIndex(index); err != nil {
		return
	}

	var count func(*LandUnit) int
	switch category {
	case Male:
		count = func(l *LandUnit) int { return l.Male[index] }
	case Female:
		count = func(l *LandUnit) int { return l.Female[index] }
	case Both:
		count = func(l *LandUnit) int { return l.Male[index] + l.Female[index] }
	default:
		err = dserr.NewInvalidCategory(category)
		return
	}

	cmp = func(a, b *LandUnit) int {
		return count(a) - count(b)
	}

	return
}

// ComparePopulationInYear - As ComparePopulation with the index given as a year
func ComparePopulationInYear(year int, category Category) (cmp Comparator, err error) {
	index, err := YearIndex(year)
	if err != nil {
		return
	}

	return ComparePopulation(index, category)
}

// Reverse - Returns a comparator with the opposite order of cmp
func Reverse(cmp Comparator) Comparator {
	return func(a, b *LandUnit) int {
		return cmp(b, a)
	}
}
