package dataset

import (
	"fmt"
	"github.com/gostonefire/landstat/crt"
	"log/slog"
	"path/filepath"
)

// Config - Everything Load needs to know about the data files
//   - RootName and RootID describe the root unit, which no file lists. RootID is already restricted.
//   - UnitFiles holds one file per level, level 1 first. Rows are name;identifier[;parent identifier].
//   - PopulationFiles maps a tracked year to its file. Rows are name;identifier;male;<ignored>;female.
//   - Encoding is any name known to the WHATWG encoding index, e.g. utf-8 or windows-1250
//   - Delimiter separates fields
//   - SkipHeader drops the first row of every file
//   - Technique is the crt constant used for the lookup tables by name
//   - Logger receives progress and skipped rows, slog.Default() if nil
type Config struct {
	RootName        string
	RootID          string
	UnitFiles       []string
	PopulationFiles map[int]string
	Encoding        string
	Delimiter       rune
	SkipHeader      bool
	Technique       int
	Logger          *slog.Logger
}

// DefaultConfig - Returns the configuration for the standard file set in dir
func DefaultConfig(dir string) Config {
	populations := make(map[int]string)
	for year := 2016; year <= 2020; year++ {
		populations[year] = filepath.Join(dir, fmt.Sprintf("population_%d.csv", year))
	}

	return Config{
		RootName: "Slovensko",
		RootID:   "SK",
		UnitFiles: []string{
			filepath.Join(dir, "areas.csv"),
			filepath.Join(dir, "republics.csv"),
			filepath.Join(dir, "regions.csv"),
			filepath.Join(dir, "towns.csv"),
		},
		PopulationFiles: populations,
		Encoding:        "utf-8",
		Delimiter:       ';',
		SkipHeader:      true,
		Technique:       crt.SeparateChaining,
	}
}

// validate - Checks the configuration and fills in the logger
func (C *Config) validate() (err error) {
	if len(C.UnitFiles) == 0 {
		err = fmt.Errorf("no unit files configured")
		return
	}

	if C.Delimiter == 0 {
		err = fmt.Errorf("no delimiter configured")
		return
	}

	if C.Technique != crt.SeparateChaining && C.Technique != crt.LinearProbing {
		err = crt.UnknownTechnique{}
		return
	}

	if C.Encoding == "" {
		C.Encoding = "utf-8"
	}

	if C.Logger == nil {
		C.Logger = slog.Default()
	}

	return
}
