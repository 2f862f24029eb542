package series

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/richard-senior/standings/pkg/util"
)

// Table is the ordered collection of teams representing the standings.
// It exclusively owns its teams; lookups hand out transient references.
// Construction never performs I/O: call Load explicitly to read a file.
type Table struct {
	teams []*Team
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{teams: make([]*Team, 0)}
}

// Len returns the number of teams in the table
func (t *Table) Len() int {
	return len(t.teams)
}

/////////////////////////////////////////////////////////////////////////
////// Lookup and Mutation
/////////////////////////////////////////////////////////////////////////

// Add appends a new team built from name and an optional stat tuple.
// Names are unique (case-sensitive); a collision leaves the table unchanged.
func (t *Table) Add(name string, stats ...any) error {
	if t.Contains(name) {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	team, err := NewTeam(name, stats...)
	if err != nil {
		return err
	}
	t.teams = append(t.teams, team)
	return nil
}

// Find returns the team whose name matches exactly (case-sensitive)
func (t *Table) Find(name string) (*Team, error) {
	for _, team := range t.teams {
		if team.Name == name {
			return team, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Contains reports whether a team with the given name exists
func (t *Table) Contains(name string) bool {
	_, err := t.Find(name)
	return err == nil
}

// Replace overwrites an existing team's stats in place, keeping its
// position in the current order. Used by edit mode.
func (t *Table) Replace(name string, stats ...any) error {
	team, err := t.Find(name)
	if err != nil {
		return err
	}
	edited, err := NewTeam(name, stats...)
	if err != nil {
		return err
	}
	*team = *edited
	return nil
}

/////////////////////////////////////////////////////////////////////////
////// Iteration
/////////////////////////////////////////////////////////////////////////

// Names yields all team names in current table order.
// The sequence is lazy and restartable; re-ranging reflects current state.
func (t *Table) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, team := range t.teams {
			if !yield(team.Name) {
				return
			}
		}
	}
}

// Teams yields all teams in current table order
func (t *Table) Teams() iter.Seq[*Team] {
	return func(yield func(*Team) bool) {
		for _, team := range t.teams {
			if !yield(team) {
				return
			}
		}
	}
}

/////////////////////////////////////////////////////////////////////////
////// Ranking
/////////////////////////////////////////////////////////////////////////

// Sort reorders the table in place by the ranking rule:
// points, goal difference and scored goals descending, then name
// ascending as the final tie-break. The chain is a total order, so no
// insertion-order fallback remains.
func (t *Table) Sort() {
	sort.Slice(t.teams, func(i, j int) bool {
		a, b := t.teams[i], t.teams[j]
		if a.Points() != b.Points() {
			return a.Points() > b.Points()
		}
		if a.GoalDiff() != b.GoalDiff() {
			return a.GoalDiff() > b.GoalDiff()
		}
		if a.Scored != b.Scored {
			return a.Scored > b.Scored
		}
		return a.Name < b.Name
	})
}

// String renders the whole table with a header row, one display line per
// team, in current order
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString(util.Center("Team", 20))
	sb.WriteString(util.Center("Played", 6))
	sb.WriteString(util.Center("Won", 5))
	sb.WriteString(util.Center("Draw", 5))
	sb.WriteString(util.Center("Lost", 5))
	sb.WriteString(util.Center("Goals", 7))
	sb.WriteString(util.Center("Pts", 5))
	sb.WriteString("\n")
	for _, team := range t.teams {
		sb.WriteString(team.FormatLine())
		sb.WriteString("\n")
	}
	return sb.String()
}
