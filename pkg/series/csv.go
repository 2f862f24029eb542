package series

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/richard-senior/standings/internal/logger"
)

// Persisted format, one team per line with a trailing newline:
//
//	<name>,<wins>,<draws>,<losses>,<scored>-<conceded>
//
// No header row and no quoting; a name containing a comma would corrupt
// parsing, which is a documented limitation of the format. The field list
// is explicit here rather than derived from the struct, so the schema is
// pinned by this file alone.

// Load replaces the table contents with the teams parsed from path.
// A malformed row aborts the whole load and the previous contents are
// retained, so the table is never left partially populated.
func (t *Table) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open table file: %w", err)
	}
	defer f.Close()

	teams, err := decode(f)
	if err != nil {
		return err
	}
	t.teams = teams
	logger.Debug("Loaded table", path, len(teams))
	return nil
}

// Save rewrites the whole file with the current contents in current
// (possibly sorted) order, overwriting whatever was there.
func (t *Table) Save(path string) error {
	var sb strings.Builder
	if err := encode(t, &sb); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write table file: %w", err)
	}
	logger.Debug("Saved table", path, t.Len())
	return nil
}

// encode writes the delimited form of every team in table order
func encode(t *Table, w io.Writer) error {
	for _, team := range t.teams {
		line := fmt.Sprintf("%s,%d,%d,%d,%s\n",
			team.Name, team.Wins, team.Draws, team.Losses, team.GoalsString())
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("failed to write table row: %w", err)
		}
	}
	return nil
}

// decode parses the delimited form into a fresh team list
func decode(r io.Reader) ([]*Team, error) {
	teams := make([]*Team, 0)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		team, err := parseLine(line, lineno)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table data: %w", err)
	}
	return teams, nil
}

// parseLine parses a single persisted row
func parseLine(line string, lineno int) (*Team, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 5 {
		return nil, fmt.Errorf("%w: line %d has %d fields, want 5", ErrParse, lineno, len(fields))
	}
	scored, conceded, err := parseGoals(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrParse, lineno, err)
	}
	team, err := NewTeam(fields[0], fields[1], fields[2], fields[3], scored, conceded)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrParse, lineno, err)
	}
	return team, nil
}

// parseGoals splits a "scored-conceded" field into its two counters
func parseGoals(field string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(field), "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("goals field %q is not of the form scored-conceded", field)
	}
	scored, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("goals field %q: scored is not an integer", field)
	}
	conceded, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("goals field %q: conceded is not an integer", field)
	}
	return scored, conceded, nil
}
