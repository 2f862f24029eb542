package series

import (
	"fmt"

	"github.com/richard-senior/standings/internal/logger"
)

// ApplyGame records a final score between two teams already present in
// the table. Both teams are resolved before anything is touched, so a
// lookup miss aborts the whole operation with neither team mutated.
// A team cannot play itself; that would double-update a single team's
// counters, so the guard lives here rather than only in the caller.
func ApplyGame(t *Table, homeName, awayName string, homeGoals, awayGoals int) error {
	if homeName == awayName {
		return fmt.Errorf("%w: %s cannot play itself", ErrInvalidStat, homeName)
	}
	home, err := t.Find(homeName)
	if err != nil {
		return err
	}
	away, err := t.Find(awayName)
	if err != nil {
		return err
	}

	switch {
	case homeGoals == awayGoals:
		home.ApplyResult(homeGoals, awayGoals, Draw)
		away.ApplyResult(awayGoals, homeGoals, Draw)
	case homeGoals > awayGoals:
		home.ApplyResult(homeGoals, awayGoals, Win)
		away.ApplyResult(awayGoals, homeGoals, Loss)
	default:
		home.ApplyResult(homeGoals, awayGoals, Loss)
		away.ApplyResult(awayGoals, homeGoals, Win)
	}

	logger.Debug("Applied game", homeName, homeGoals, awayName, awayGoals)
	return nil
}
