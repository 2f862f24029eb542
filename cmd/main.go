package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/richard-senior/standings/internal/logger"
	"github.com/richard-senior/standings/pkg/autocomplete"
	"github.com/richard-senior/standings/pkg/series"
	"github.com/richard-senior/standings/pkg/util"
)

func main() {
	// Configure logging
	logger.SetShowDateTime(false)
	logger.SetLogOutput('c')

	file := flag.String("f", "table.csv", "path of the table csv file")
	dbPath := flag.String("db", "", "optional sqlite database to mirror the table into")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	table := series.NewTable()
	if err := table.Load(*file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("Table file does not exist yet, starting empty:", *file)
		} else {
			logger.Fatal("Failed to load table:", err)
		}
	}

	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	var err error
	mutated := false

	switch cmd {
	case "show":
		table.Sort()
		fmt.Print(table)
	case "add":
		err = runAdd(table, args)
		mutated = err == nil
	case "edit":
		err = runEdit(table, args)
		mutated = err == nil
	case "game":
		err = runGame(table, args)
		mutated = err == nil
	case "complete":
		if len(args) != 1 {
			err = fmt.Errorf("usage: complete <query>")
			break
		}
		fmt.Println(autocomplete.Complete(args[0], table.Names()))
	case "import-html":
		table, err = runImportHTML(args)
		mutated = err == nil
	case "archive":
		if len(args) != 1 {
			err = fmt.Errorf("usage: archive <file>")
			break
		}
		table.Sort()
		err = series.WriteArchive(args[0], table)
		if err == nil {
			logger.Info("Archived table to", args[0])
		}
	default:
		logger.Error("Unknown command:", cmd)
		usage()
		os.Exit(1)
	}

	if err != nil {
		logger.Fatal("Command failed:", err)
	}

	if mutated {
		table.Sort()
		if err := table.Save(*file); err != nil {
			logger.Fatal("Failed to save table:", err)
		}
		if *dbPath != "" {
			if err := mirrorToDatabase(table, *dbPath); err != nil {
				logger.Fatal("Failed to mirror table to database:", err)
			}
		}
		fmt.Print(table)
	}
}

// runAdd creates a new team, either blank or with a full stat tuple
func runAdd(table *series.Table, args []string) error {
	if len(args) != 1 && len(args) != 6 {
		return fmt.Errorf("usage: add <name> [wins draws losses scored conceded]")
	}
	name := args[0]
	if !util.NonEmpty(args...) {
		return fmt.Errorf("all entries must be filled")
	}
	if len(args) == 1 {
		return table.Add(name)
	}
	if !util.IsNonNegativeInt(args[1:]...) {
		return fmt.Errorf("stat fields must be non-negative integers")
	}
	return table.Add(name, args[1], args[2], args[3], args[4], args[5])
}

// runEdit replaces an existing team's stats in place
func runEdit(table *series.Table, args []string) error {
	if len(args) != 6 {
		return fmt.Errorf("usage: edit <name> <wins> <draws> <losses> <scored> <conceded>")
	}
	if !util.NonEmpty(args...) {
		return fmt.Errorf("all entries must be filled")
	}
	if !util.IsNonNegativeInt(args[1:]...) {
		return fmt.Errorf("stat fields must be non-negative integers")
	}
	return table.Replace(args[0], args[1], args[2], args[3], args[4], args[5])
}

// runGame records a final score between two teams in the table
func runGame(table *series.Table, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: game <home> <away> <home-goals> <away-goals>")
	}
	if !util.NonEmpty(args...) {
		return fmt.Errorf("all entries must be filled")
	}
	if args[0] == args[1] {
		return fmt.Errorf("a team can't play against itself")
	}
	if !util.IsNonNegativeInt(args[2], args[3]) {
		return fmt.Errorf("goal fields must be non-negative integers")
	}
	homeGoals, _ := strconv.Atoi(args[2])
	awayGoals, _ := strconv.Atoi(args[3])
	if err := series.ApplyGame(table, args[0], args[1], homeGoals, awayGoals); err != nil {
		return err
	}
	logger.Info("Added game:", args[0], homeGoals, "-", awayGoals, args[1])
	return nil
}

// runImportHTML replaces the table with one parsed from a saved HTML page
func runImportHTML(args []string) (*series.Table, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("usage: import-html <file>")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open html file: %w", err)
	}
	defer f.Close()
	table, err := series.ImportHTML(f)
	if err != nil {
		return nil, err
	}
	logger.Info("Imported teams from", args[0], table.Len())
	return table, nil
}

// mirrorToDatabase rewrites the sqlite copy of the standings
func mirrorToDatabase(table *series.Table, path string) error {
	store, err := series.OpenStore(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.SaveTable(table)
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: standings [-f table.csv] [-db standings.db] <command> [args]

commands:
  show                                        print the ranked table
  add <name> [w d l scored conceded]          create a team
  edit <name> <w> <d> <l> <scored> <conceded> replace a team's stats
  game <home> <away> <hg> <ag>                record a final score
  complete <query>                            complete a partial team name
  import-html <file>                          build the table from a saved HTML page
  archive <file>                              write a compressed snapshot`)
}
