package series

import (
	"fmt"
	"strconv"

	"github.com/richard-senior/standings/pkg/util"
)

// Team represents one participant's cumulative standing in the series.
// Games, points and goal difference are always derived from the four
// base counters and never stored.
type Team struct {
	Name     string `json:"name"`
	Wins     int    `json:"wins"`
	Draws    int    `json:"draws"`
	Losses   int    `json:"losses"`
	Scored   int    `json:"scored"`
	Conceded int    `json:"conceded"`
}

// Outcome is the result of a single game from one team's perspective
type Outcome int

const (
	Win Outcome = iota
	Draw
	Loss
)

// NewTeam creates a team from a name and optionally a full stat tuple of
// wins, draws, losses, scored and conceded. Stat values may be given as
// any integer-like type (raw form input arrives as strings); each one is
// coerced and must be non-negative.
func NewTeam(name string, stats ...any) (*Team, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: team name must not be empty", ErrInvalidStat)
	}
	t := &Team{Name: name}
	if len(stats) == 0 {
		return t, nil
	}
	if len(stats) != 5 {
		return nil, fmt.Errorf("%w: want 5 stat values (wins draws losses scored conceded), got %d", ErrInvalidStat, len(stats))
	}
	vals := make([]int, 5)
	for i, s := range stats {
		v, err := util.GetAsNonNegativeInt(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStat, err)
		}
		vals[i] = v
	}
	t.Wins, t.Draws, t.Losses, t.Scored, t.Conceded = vals[0], vals[1], vals[2], vals[3], vals[4]
	return t, nil
}

// Games returns the number of games played
func (t *Team) Games() int {
	return t.Wins + t.Draws + t.Losses
}

// Points returns the league points: 3 per win, 1 per draw
func (t *Team) Points() int {
	return t.Wins*3 + t.Draws
}

// GoalDiff returns scored minus conceded goals
func (t *Team) GoalDiff() int {
	return t.Scored - t.Conceded
}

// ApplyResult records one finished game: exactly one of the win/draw/loss
// counters is bumped and the goal counters are credited both ways.
// Goals are not clamped.
func (t *Team) ApplyResult(ownGoals, oppGoals int, outcome Outcome) {
	switch outcome {
	case Win:
		t.Wins++
	case Draw:
		t.Draws++
	case Loss:
		t.Losses++
	}
	t.Scored += ownGoals
	t.Conceded += oppGoals
}

// GoalsString returns the goals in the form "scored-conceded"
func (t *Team) GoalsString() string {
	return fmt.Sprintf("%d-%d", t.Scored, t.Conceded)
}

// FormatLine returns a fixed-width display row for this team.
// Display only; persistence uses the csv codec.
func (t *Team) FormatLine() string {
	return fmt.Sprintf("%-20s", t.Name) +
		util.Center(strconv.Itoa(t.Games()), 6) +
		util.Center(strconv.Itoa(t.Wins), 5) +
		util.Center(strconv.Itoa(t.Draws), 5) +
		util.Center(strconv.Itoa(t.Losses), 5) +
		util.Center(t.GoalsString(), 7) +
		util.Center(strconv.Itoa(t.Points()), 5)
}
