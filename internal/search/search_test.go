package search

import (
	"testing"

	"personal-crm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contact(first, last, phone string) models.Contact {
	return models.Contact{FirstName: first, LastName: last, Phone1: phone}
}

func names(contacts []models.Contact) []string {
	var out []string
	for _, c := range contacts {
		out = append(out, c.FullName())
	}
	return out
}

func TestRankPrefixBeforeSubstring(t *testing.T) {
	candidates := []models.Contact{
		contact("Alpidio", "User", "04141111111"),
		contact("Piter", "Pan", "04142222222"),
	}

	ranked := Rank(candidates, "Pi")

	require.Len(t, ranked, 2)
	assert.Equal(t, "Piter Pan", ranked[0].FullName())
	assert.Equal(t, "Alpidio User", ranked[1].FullName())
}

func TestRankFiltersNonMatches(t *testing.T) {
	candidates := []models.Contact{
		contact("Juan", "Perez", "04141111111"),
		contact("Maria", "Gomez", "04142222222"),
	}

	ranked := Rank(candidates, "juan")

	require.Len(t, ranked, 1)
	assert.Equal(t, "Juan Perez", ranked[0].FullName())
}

func TestRankMatchesPhone(t *testing.T) {
	candidates := []models.Contact{
		contact("Juan", "Perez", "04141111111"),
		contact("Maria", "Gomez", "02121111111"),
	}

	ranked := Rank(candidates, "0212")

	require.Len(t, ranked, 1)
	assert.Equal(t, "Maria Gomez", ranked[0].FullName())
}

func TestRankLastNamePrefixCountsAsTierZero(t *testing.T) {
	candidates := []models.Contact{
		contact("Alpidio", "User", ""), // substring only
		contact("Zoe", "Pimentel", ""), // last name prefix
		contact("Piter", "Pan", ""),    // first name prefix
	}

	ranked := Rank(candidates, "pi")

	require.Len(t, ranked, 3)
	// Tier 0 sorted by first name: Piter before Zoe; tier 1 last.
	assert.Equal(t, []string{"Piter Pan", "Zoe Pimentel", "Alpidio User"}, names(ranked))
}

func TestRankDeterministicTieBreak(t *testing.T) {
	candidates := []models.Contact{
		contact("Ana", "Zapata", ""),
		contact("Ana", "Arias", ""),
	}

	for i := 0; i < 5; i++ {
		ranked := Rank(candidates, "an")
		require.Len(t, ranked, 2)
		assert.Equal(t, "Arias", ranked[0].LastName)
		assert.Equal(t, "Zapata", ranked[1].LastName)
	}
}

func TestRankPage(t *testing.T) {
	candidates := []models.Contact{
		contact("Ana", "Arias", ""),
		contact("Anabel", "Blanco", ""),
		contact("Anais", "Castro", ""),
	}

	page := RankPage(candidates, "ana", 1, 1)
	require.Len(t, page, 1)
	assert.Equal(t, "Anabel Blanco", page[0].FullName())

	assert.Empty(t, RankPage(candidates, "ana", 10, 5))
	assert.Len(t, RankPage(candidates, "ana", 0, 0), 3)
}

func TestPageWindowsRankedList(t *testing.T) {
	ranked := Rank([]models.Contact{
		contact("Ana", "Arias", ""),
		contact("Anabel", "Blanco", ""),
		contact("Anais", "Castro", ""),
	}, "ana")

	page := Page(ranked, 1, 1)
	require.Len(t, page, 1)
	assert.Equal(t, "Anabel Blanco", page[0].FullName())

	assert.Len(t, Page(ranked, 0, 0), 3)
	assert.Empty(t, Page(ranked, 5, 2))
	assert.Len(t, Page(ranked, -1, 2), 2)
}
