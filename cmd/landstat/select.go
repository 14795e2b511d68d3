package main

import (
	"fmt"

	"github.com/gostonefire/landstat/algorithms"
	"github.com/gostonefire/landstat/landunit"
	"github.com/urfave/cli/v2"
)

func runSelect(cctx *cli.Context) error {
	year := cctx.Int("year")
	if _, err := landunit.YearIndex(year); err != nil {
		return err
	}

	category, err := landunit.ParseCategory(cctx.String("category"))
	if err != nil {
		return err
	}

	cmp, err := landunit.ComparePopulationInYear(year, category)
	if err != nil {
		return err
	}

	ds, err := loadDataset(cctx)
	if err != nil {
		return err
	}

	pred := landunit.HasMinResidentsInYear(year, cctx.Int("min"))
	if level := cctx.Int("level"); level > 0 {
		pred = landunit.And(landunit.UnitLevelIs(level), pred)
	}

	units := algorithms.Slice[*landunit.LandUnit](algorithms.Filter(ds.Units.Refs(), algorithms.Predicate[*landunit.LandUnit](pred)))
	if err = algorithms.SortAll(units, algorithms.Comparator[*landunit.LandUnit](landunit.Reverse(cmp))); err != nil {
		return err
	}

	if limit := cctx.Int("limit"); limit > 0 && limit < len(units) {
		units = units[:limit]
	}

	fmt.Printf("%d units by %s population in %d\n", len(units), category, year)
	for _, unit := range units {
		printUnit(unit)
	}

	return nil
}
