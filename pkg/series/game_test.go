package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTwoTeamTable(t *testing.T) *Table {
	t.Helper()
	table := NewTable()
	require.NoError(t, table.Add("Liverpool"))
	require.NoError(t, table.Add("Chelsea"))
	return table
}

func TestApplyGameHomeWin(t *testing.T) {
	table := newTwoTeamTable(t)
	require.NoError(t, ApplyGame(table, "Liverpool", "Chelsea", 1, 0))

	home, err := table.Find("Liverpool")
	require.NoError(t, err)
	assert.Equal(t, 1, home.Wins)
	assert.Equal(t, 3, home.Points())
	assert.Equal(t, 1, home.Scored)
	assert.Equal(t, 0, home.Conceded)

	away, err := table.Find("Chelsea")
	require.NoError(t, err)
	assert.Equal(t, 1, away.Losses)
	assert.Equal(t, 0, away.Points())
	assert.Equal(t, 0, away.Scored)
	assert.Equal(t, 1, away.Conceded)
}

func TestApplyGameAwayWin(t *testing.T) {
	table := newTwoTeamTable(t)
	require.NoError(t, ApplyGame(table, "Liverpool", "Chelsea", 0, 2))

	home, _ := table.Find("Liverpool")
	away, _ := table.Find("Chelsea")
	assert.Equal(t, 1, home.Losses)
	assert.Equal(t, 1, away.Wins)
	assert.Equal(t, 2, away.Scored)
	assert.Equal(t, 2, home.Conceded)
}

func TestApplyGameDraw(t *testing.T) {
	table := newTwoTeamTable(t)
	require.NoError(t, ApplyGame(table, "Liverpool", "Chelsea", 2, 2))

	for name := range table.Names() {
		team, err := table.Find(name)
		require.NoError(t, err)
		assert.Equal(t, 1, team.Draws)
		assert.Equal(t, 1, team.Points())
		assert.Equal(t, 2, team.Scored)
		assert.Equal(t, 2, team.Conceded)
	}
}

func TestApplyGameUnknownTeamMutatesNothing(t *testing.T) {
	table := newTwoTeamTable(t)

	err := ApplyGame(table, "Liverpool", "Arsenal", 3, 0)
	assert.ErrorIs(t, err, ErrNotFound)

	// The operation aborts before either team is touched
	home, _ := table.Find("Liverpool")
	assert.Equal(t, 0, home.Games())
	assert.Equal(t, 0, home.Scored)

	err = ApplyGame(table, "Arsenal", "Chelsea", 3, 0)
	assert.ErrorIs(t, err, ErrNotFound)
	away, _ := table.Find("Chelsea")
	assert.Equal(t, 0, away.Games())
}

func TestApplyGameRejectsSelfPlay(t *testing.T) {
	table := newTwoTeamTable(t)

	err := ApplyGame(table, "Liverpool", "Liverpool", 1, 1)
	assert.ErrorIs(t, err, ErrInvalidStat)

	team, _ := table.Find("Liverpool")
	assert.Equal(t, 0, team.Games())
}
