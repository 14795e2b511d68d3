// landstat browses Slovak land unit population statistics loaded from delimited files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/gostonefire/landstat/console"
	"github.com/gostonefire/landstat/crt"
	"github.com/gostonefire/landstat/dataset"
	"github.com/gostonefire/landstat/landunit"
	"github.com/urfave/cli/v2"
)

func main() {
	newApp().RunAndExitOnError()
}

// newApp - Returns the command line application
func newApp() *cli.App {
	app := &cli.App{
		Name:    "landstat",
		Usage:   "browse land unit population statistics",
		Version: versioninfo.Short(),
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "data-dir",
			Usage:   "directory holding the unit and population files",
			Value:   "data",
			EnvVars: []string{"LANDSTAT_DATA_DIR"},
		},
		&cli.StringFlag{
			Name:    "encoding",
			Usage:   "character encoding of the data files",
			Value:   "utf-8",
			EnvVars: []string{"LANDSTAT_ENCODING"},
		},
		&cli.StringFlag{
			Name:    "technique",
			Usage:   "collision resolution of the lookup tables: chaining or linear",
			Value:   "chaining",
			EnvVars: []string{"LANDSTAT_TECHNIQUE"},
		},
		&cli.BoolFlag{
			Name:  "no-header",
			Usage: "data files have no header row",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			Value:   "warn",
			EnvVars: []string{"LANDSTAT_LOG_LEVEL", "LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "log output format: text or json",
			Value:   "text",
			EnvVars: []string{"LANDSTAT_LOG_FORMAT"},
		},
	}

	app.Commands = []*cli.Command{
		&cli.Command{
			Name:   "menu",
			Usage:  "interactive menu on standard input",
			Action: runMenu,
		},
		&cli.Command{
			Name:      "lookup",
			Usage:     "print the units with a name on a level",
			ArgsUsage: "<level> <name>",
			Action:    runLookup,
		},
		&cli.Command{
			Name:   "select",
			Usage:  "print units by level and residents, sorted by population",
			Action: runSelect,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "level",
					Usage: "unit level, 0 for all",
				},
				&cli.IntFlag{
					Name:  "year",
					Usage: "tracked year",
					Value: landunit.BaseYear,
				},
				&cli.IntFlag{
					Name:  "min",
					Usage: "least number of residents",
				},
				&cli.StringFlag{
					Name:  "category",
					Usage: "population to sort by: male, female or both",
					Value: "both",
				},
				&cli.IntFlag{
					Name:    "limit",
					Aliases: []string{"n"},
					Usage:   "number of units to print, 0 for all",
					Value:   20,
				},
			},
		},
		&cli.Command{
			Name:      "tree",
			Usage:     "print the hierarchy below a unit",
			ArgsUsage: "[unit id]",
			Action:    runTree,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "depth",
					Aliases: []string{"d"},
					Usage:   "levels to print below the unit",
					Value:   1,
				},
			},
		},
		&cli.Command{
			Name:   "stats",
			Usage:  "print usage statistics of the lookup tables",
			Action: runStats,
		},
		&cli.Command{
			Name:   "generate",
			Usage:  "write a synthetic data set to the data directory",
			Action: runGenerate,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "seed",
					Usage: "random seed",
					Value: 1,
				},
				&cli.IntFlag{
					Name:  "fanout",
					Usage: "children per unit",
					Value: 4,
				},
			},
		},
	}
	app.DefaultCommand = "menu"

	return app
}

// loadDataset - Builds the loader configuration from the global flags and loads the data
func loadDataset(cctx *cli.Context) (ds *dataset.Dataset, err error) {
	logger, err := setupLogger(cctx.String("log-level"), cctx.String("log-format"))
	if err != nil {
		return
	}

	technique, err := crt.Parse(cctx.String("technique"))
	if err != nil {
		return
	}

	cfg := dataset.DefaultConfig(cctx.String("data-dir"))
	cfg.Encoding = cctx.String("encoding")
	cfg.SkipHeader = !cctx.Bool("no-header")
	cfg.Technique = technique
	cfg.Logger = logger

	return dataset.Load(cfg)
}

func runMenu(cctx *cli.Context) error {
	ds, err := loadDataset(cctx)
	if err != nil {
		return err
	}

	return console.New(ds, os.Stdin, os.Stdout, slog.Default()).Run()
}

func runLookup(cctx *cli.Context) error {
	if cctx.Args().Len() < 2 {
		return fmt.Errorf("need a level and a name")
	}

	var level int
	if _, err := fmt.Sscanf(cctx.Args().First(), "%d", &level); err != nil {
		return fmt.Errorf("invalid level %q: %w", cctx.Args().First(), err)
	}
	name := strings.Join(cctx.Args().Tail(), " ")

	ds, err := loadDataset(cctx)
	if err != nil {
		return err
	}

	units, err := ds.Lookup(level, name)
	if err != nil {
		return err
	}

	for _, unit := range units {
		printUnit(unit)
	}

	return nil
}

func runTree(cctx *cli.Context) error {
	ds, err := loadDataset(cctx)
	if err != nil {
		return err
	}

	node := ds.Tree.Root()
	if id := cctx.Args().First(); id != "" {
		node, err = ds.ByID.Get(id)
		if err != nil {
			return fmt.Errorf("unit %s: %w", id, err)
		}
	}

	fmt.Print(console.Subtree(ds, node, cctx.Int("depth")))

	return nil
}

func runStats(cctx *cli.Context) error {
	ds, err := loadDataset(cctx)
	if err != nil {
		return err
	}

	for _, ts := range ds.Stats() {
		s := ts.Stat
		fmt.Printf("%-10s records %6d  deleted %4d  capacity %6d  fill %.2f  resizes %2d\n",
			ts.Name, s.Records, s.DeletedRecords, s.Capacity, s.FillRatio, s.Resizes)
	}

	return nil
}

func printUnit(unit *landunit.LandUnit) {
	fmt.Printf("%s [ %s ] level %d |", unit.Name, unit.ID, unit.Level)
	for i := 0; i < landunit.PopulationCount; i++ {
		fmt.Printf(" %d: ( %d : %d )", landunit.IndexYear(i), unit.Male[i], unit.Female[i])
	}
	fmt.Println()
}
