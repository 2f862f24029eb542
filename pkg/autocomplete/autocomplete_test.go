package autocomplete

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func complete(query string, names ...string) string {
	return Complete(query, slices.Values(names))
}

func TestReturnsEmptyIfNoMatch(t *testing.T) {
	assert.Equal(t, "", complete("k", "arsenal", "blackpool"))
}

func TestReturnsEntireNameIfOnlyMatch(t *testing.T) {
	assert.Equal(t, "arsenal", complete("a", "arsenal", "blackpool", "southampton"))
}

func TestReturnsSharedPrefixForMultipleMatches(t *testing.T) {
	assert.Equal(t, "black", complete("b", "blackburn", "blackpool", "arsenal"))
}

func TestTakesNamesWithSpaces(t *testing.T) {
	assert.Equal(t, "man utd", complete("m", "man utd", "Arsenal", "Blackpool"))
}

func TestKeepsCaseFormatting(t *testing.T) {
	assert.Equal(t, "Man Utd", complete("m", "Man Utd"))
}

func TestNameIsPrefixOfOtherName(t *testing.T) {
	// The shortest candidate is itself the shared prefix
	assert.Equal(t, "Black", complete("b", "Black", "Blackpool", "Arsenal"))
}

func TestFilterIgnoresCaseButResultKeepsIt(t *testing.T) {
	assert.Equal(t, "Black", complete("B", "blackBURN", "Blackpool"))
}

func TestResultDoesNotDependOnCandidateOrder(t *testing.T) {
	names := []string{"blackpool", "blackburn", "arsenal"}
	want := complete("b", names...)
	for range 3 {
		slices.Reverse(names)
		assert.Equal(t, want, complete("b", names...))
	}
}

func TestEmptyCandidates(t *testing.T) {
	assert.Equal(t, "", complete("a"))
}
