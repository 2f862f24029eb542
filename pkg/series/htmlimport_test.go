package series

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStandingsHTML = `<!DOCTYPE html>
<html><body>
<h1>League table</h1>
<table>
  <tr><th>Team</th><th>Won</th><th>Draw</th><th>Lost</th><th>Goals</th></tr>
  <tr><td>Arsenal</td><td>2</td><td>1</td><td>0</td><td>6-2</td></tr>
  <tr><td>Chelsea</td><td>1</td><td>1</td><td>1</td><td>4-4</td></tr>
  <tr><td>Blackpool</td><td>0</td><td>0</td><td>3</td><td>1-9</td></tr>
</table>
</body></html>`

func TestImportHTML(t *testing.T) {
	table, err := ImportHTML(strings.NewReader(sampleStandingsHTML))
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	assert.Equal(t, []string{"Arsenal", "Chelsea", "Blackpool"}, slices.Collect(table.Names()))

	team, err := table.Find("Arsenal")
	require.NoError(t, err)
	assert.Equal(t, 7, team.Points())
	assert.Equal(t, "6-2", team.GoalsString())
}

func TestImportHTMLRejectsWrongRowShape(t *testing.T) {
	html := `<table><tr><td>Arsenal</td><td>2</td><td>1</td><td>0</td></tr></table>`
	_, err := ImportHTML(strings.NewReader(html))
	assert.ErrorIs(t, err, ErrParse)
}

func TestImportHTMLRejectsBadGoalsCell(t *testing.T) {
	html := `<table><tr><td>Arsenal</td><td>2</td><td>1</td><td>0</td><td>six</td></tr></table>`
	_, err := ImportHTML(strings.NewReader(html))
	assert.ErrorIs(t, err, ErrParse)
}

func TestImportHTMLRequiresATable(t *testing.T) {
	_, err := ImportHTML(strings.NewReader(`<html><body><p>no table here</p></body></html>`))
	assert.ErrorIs(t, err, ErrParse)
}
