package landunit

import (
	"github.com/gostonefire/landstat/dserr"
	"strings"
)

// Category - Which part of the population a comparator or predicate looks at
type Category int

const (
	Male   Category = 0
	Female Category = 1
	Both   Category = 2
)

func (C Category) String() string {
	switch C {
	case Male:
		return "male"
	case Female:
		return "female"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// ParseCategory - Accepts male, female, both or total, in any case
func ParseCategory(name string) (category Category, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "male", "m":
		category = Male
	case "female", "f":
		category = Female
	case "both", "total", "b":
		category = Both
	default:
		err = dserr.NewInvalidCategory(name)
	}

	return
}
