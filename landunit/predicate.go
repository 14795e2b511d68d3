package landunit

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"strings"
	"unicode"
)

// Predicate - Tests one land unit
type Predicate func(l *LandUnit) bool

// AlwaysTrue - Matches every unit
func AlwaysTrue(*LandUnit) bool {
	return true
}

// ContainsSubstringInName - Matches units whose name contains s, case and diacritics included
func ContainsSubstringInName(s string) Predicate {
	return func(l *LandUnit) bool {
		return strings.Contains(l.Name, s)
	}
}

// ContainsFoldedInName - Matches units whose name contains s when both are lower-cased and stripped of
// diacritics, so "zilina" matches "Žilina"
func ContainsFoldedInName(s string) Predicate {
	needle := Fold(s)

	return func(l *LandUnit) bool {
		return strings.Contains(Fold(l.Name), needle)
	}
}

// Fold - Lower-cases text and removes combining marks
func Fold(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}

	return strings.ToLower(folded)
}

// HasMaxResidents - Matches units whose total population at index is at most limit.
// An index outside the tracked years matches nothing.
func HasMaxResidents(index, limit int) Predicate {
	return func(l *LandUnit) bool {
		total, err := l.TotalAt(index)
		return err == nil && total <= limit
	}
}

// HasMinResidents - Matches units whose total population at index is at least limit.
// An index outside the tracked years matches nothing.
func HasMinResidents(index, limit int) Predicate {
	return func(l *LandUnit) bool {
		total, err := l.TotalAt(index)
		return err == nil && total >= limit
	}
}

// HasMaxResidentsInYear - As HasMaxResidents with the index given as a year
func HasMaxResidentsInYear(year, limit int) Predicate {
	return HasMaxResidents(BaseYear-year, limit)
}

// HasMinResidentsInYear - As HasMinResidents with the index given as a year
func HasMinResidentsInYear(year, limit int) Predicate {
	return HasMinResidents(BaseYear-year, limit)
}

// UnitLevelIs - Matches units at level
func UnitLevelIs(level int) Predicate {
	return func(l *LandUnit) bool {
		return l.Level == level
	}
}

// And - Matches units that satisfy every one of preds
func And(preds ...Predicate) Predicate {
	return func(l *LandUnit) bool {
		for _, p := range preds {
			if !p(l) {
				return false
			}
		}
		return true
	}
}
