package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gostonefire/landstat/dataset"
	"github.com/urfave/cli/v2"
)

type generatedUnit struct {
	name string
	id   string
}

// runGenerate - Writes unit and population files with made up names and counts. Every unit has fanout
// children and only the last level gets population rows; the loader sums them up the hierarchy.
func runGenerate(cctx *cli.Context) (err error) {
	logger, err := setupLogger(cctx.String("log-level"), cctx.String("log-format"))
	if err != nil {
		return
	}

	fanout := cctx.Int("fanout")
	if fanout < 1 || fanout > 9 {
		err = fmt.Errorf("fanout must be between 1 and 9")
		return
	}

	dir := cctx.String("data-dir")
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	cfg := dataset.DefaultConfig(dir)
	faker := gofakeit.New(int64(cctx.Int("seed")))

	parents := []generatedUnit{{name: cfg.RootName, id: cfg.RootID}}
	for i, file := range cfg.UnitFiles {
		last := i == len(cfg.UnitFiles)-1
		used := make(map[string]bool)

		var units []generatedUnit
		for _, parent := range parents {
			for c := 0; c < fanout; c++ {
				name := faker.City()
				// Town names may repeat, names on the other levels may not
				for n := 2; !last && used[name]; n++ {
					name = fmt.Sprintf("%s %d", faker.City(), n)
				}
				used[name] = true
				units = append(units, generatedUnit{name: name, id: parent.id + strconv.Itoa(c)})
			}
		}

		rows := [][]string{{"name", "id"}}
		for _, u := range units {
			rows = append(rows, []string{u.name, "<" + u.id + ">"})
		}
		if err = writeCSV(file, cfg.Delimiter, rows); err != nil {
			return
		}
		logger.Info("generated units", "file", file, "units", len(units))

		parents = units
	}

	for year, file := range cfg.PopulationFiles {
		rows := [][]string{{"name", "id", "male", "", "female"}}
		for _, town := range parents {
			rows = append(rows, []string{
				town.name,
				"<" + town.id + ">",
				strconv.Itoa(faker.IntRange(50, 20000)),
				"",
				strconv.Itoa(faker.IntRange(50, 20000)),
			})
		}
		if err = writeCSV(file, cfg.Delimiter, rows); err != nil {
			return
		}
		logger.Info("generated population", "year", year, "file", file)
	}

	slog.Info("data set written", "dir", filepath.Clean(dir))

	return
}

// writeCSV - Writes rows to file, replacing it
func writeCSV(file string, delimiter rune, rows [][]string) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	w := csv.NewWriter(f)
	w.Comma = delimiter
	if err = w.WriteAll(rows); err != nil {
		err = fmt.Errorf("error while writing %s: %w", file, err)
	}

	return
}
