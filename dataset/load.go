package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"github.com/gostonefire/landstat/csvline"
	"github.com/gostonefire/landstat/dserr"
	"github.com/gostonefire/landstat/landunit"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"time"
)

// Load - Reads every unit file, level by level, and then every population file.
// A unit row whose parent has not been loaded fails the load; a population row for an unknown unit is
// logged and skipped.
// It returns:
//   - ds is a pointer to the loaded Dataset
//   - err is a normal go Error which should be nil if everything went ok
func Load(cfg Config) (ds *Dataset, err error) {
	if err = cfg.validate(); err != nil {
		err = fmt.Errorf("invalid configuration: %w", err)
		return
	}

	start := time.Now()

	ds, err = New(cfg.RootName, cfg.RootID, len(cfg.UnitFiles), cfg.Technique)
	if err != nil {
		err = fmt.Errorf("error while creating dataset: %w", err)
		return
	}

	for i, file := range cfg.UnitFiles {
		level := i + 1
		var n int
		n, err = readFile(cfg, file, func(fields []string) error {
			return ds.addUnit(cfg.Logger, level, fields)
		})
		if err != nil {
			err = fmt.Errorf("error while loading level %d from %s: %w", level, file, err)
			return
		}
		cfg.Logger.Info("loaded units", "level", level, "file", file, "rows", n)
	}

	for _, year := range slices.Sorted(maps.Keys(cfg.PopulationFiles)) {
		var index int
		index, err = landunit.YearIndex(year)
		if err != nil {
			return
		}

		file := cfg.PopulationFiles[year]
		var n int
		n, err = readFile(cfg, file, func(fields []string) error {
			return ds.addPopulationRow(cfg.Logger, index, fields)
		})
		if err != nil {
			err = fmt.Errorf("error while loading population of %d from %s: %w", year, file, err)
			return
		}
		cfg.Logger.Info("loaded population", "year", year, "file", file, "rows", n)
	}

	cfg.Logger.Info("dataset loaded", "units", ds.Units.Len(), "duration", time.Since(start))

	return
}

// readFile - Decodes file with the configured encoding and passes each row to handle
func readFile(cfg Config, file string, handle func(fields []string) error) (rows int, err error) {
	enc, err := htmlindex.Get(cfg.Encoding)
	if err != nil {
		err = fmt.Errorf("unknown encoding %s: %w", cfg.Encoding, err)
		return
	}

	f, err := os.Open(file)
	if err != nil {
		return
	}
	defer func() {
		_ = f.Close()
	}()

	// A byte order mark overrides the configured encoding
	r := csv.NewReader(transform.NewReader(f, unicode.BOMOverride(enc.NewDecoder())))
	r.Comma = cfg.Delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.ReuseRecord = true

	skip := cfg.SkipHeader
	var fields []string
	for {
		fields, err = r.Read()
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}

		if skip {
			skip = false
			continue
		}

		if len(fields) == 0 || (len(fields) == 1 && fields[0] == "") {
			continue
		}

		if err = handle(fields); err != nil {
			line, _ := r.FieldPos(0)
			err = fmt.Errorf("line %d: %w", line, err)
			return
		}
		rows++
	}
}

// addUnit - Creates the unit of one unit row under its parent and registers it in the tables
func (D *Dataset) addUnit(logger *slog.Logger, level int, fields []string) (err error) {
	var name, id, parentID string
	err = csvline.New(fields).
		Handle(csvline.String(&name)).
		Handle(csvline.String(&id)).
		Optional(csvline.String(&parentID)).
		Err()
	if err != nil {
		return
	}

	if parentID != "" {
		parentID = csvline.Restrict(parentID)
	}

	_, err = D.AddUnit(level, name, csvline.Restrict(id), parentID)
	if errors.Is(err, errDuplicateName) {
		// Names within a level are unique in the source data, the first one wins otherwise
		logger.Warn("duplicate unit name", "level", level, "name", name, "id", csvline.Restrict(id))
		err = nil
	}

	return
}

// addPopulationRow - Adds the counts of one population row to its unit and the unit's ancestors
func (D *Dataset) addPopulationRow(logger *slog.Logger, index int, fields []string) (err error) {
	var id string
	var male, female int
	err = csvline.New(fields).
		Skip().
		Handle(csvline.String(&id)).
		Handle(csvline.Count(&male)).
		Skip().
		Handle(csvline.Count(&female)).
		Err()
	if err != nil {
		return
	}

	restricted := csvline.Restrict(id)
	err = D.AddPopulation(restricted, index, male, female)
	if errors.Is(err, dserr.KeyNotFound{}) {
		logger.Warn("population for unknown unit", "id", restricted)
		err = nil
	}

	return
}
