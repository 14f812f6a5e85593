package logic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"snipman/internal/domain"
)

func snippet(desc string, tags []string, code string) domain.Snippet {
	return domain.Snippet{ID: desc, Description: desc, Tags: tags, Code: code}
}

func TestScoreMatchesAnyField(t *testing.T) {
	s := snippet("read file", []string{"fs", "io"}, "fs.readFile(path)")

	_, ok := Score("read", s)
	require.True(t, ok, "should match the description")

	_, ok = Score("fs io", s)
	require.True(t, ok, "should match the joined tags")

	_, ok = Score("readFile", s)
	require.True(t, ok, "should match the code body")
}

func TestScoreNoMatchExcludes(t *testing.T) {
	s := snippet("read file", []string{"fs", "io"}, "fs.readFile(path)")

	_, ok := Score("zzz", s)
	require.False(t, ok, "a query matching no field must yield no score at all")
}

func TestScoreTakesBestField(t *testing.T) {
	s := snippet("read file", []string{"fs", "io"}, "fs.readFile(path)")

	best, ok := Score("file", s)
	require.True(t, ok)

	descOnly, ok := Score("file", snippet("read file", nil, ""))
	require.True(t, ok)
	require.GreaterOrEqual(t, best, descOnly)
}

func TestRankExcludesNonMatching(t *testing.T) {
	corpus := []domain.Snippet{
		snippet("copy io stream", nil, "io.Copy(dst, src)"),
		snippet("sort numbers", nil, "sort.Ints(xs)"),
	}

	order := Rank("io", corpus)
	require.Equal(t, []int{0}, order)
}

func TestRankStableForTies(t *testing.T) {
	// Identical snippets score identically; corpus order must break the tie
	corpus := []domain.Snippet{
		snippet("copy io stream", []string{"io"}, "io.Copy(dst, src)"),
		snippet("copy io stream", []string{"io"}, "io.Copy(dst, src)"),
	}

	order := Rank("io", corpus)
	require.Equal(t, []int{0, 1}, order)
}

func TestRankDescendingScores(t *testing.T) {
	corpus := []domain.Snippet{
		snippet("xzreadx", nil, ""),
		snippet("read", nil, ""),
	}

	order := Rank("read", corpus)
	require.Len(t, order, 2)

	first, _ := Score("read", corpus[order[0]])
	second, _ := Score("read", corpus[order[1]])
	require.GreaterOrEqual(t, first, second)
}

func TestIdentityOrder(t *testing.T) {
	require.Equal(t, []int{0, 1, 2}, IdentityOrder(3))
	require.Empty(t, IdentityOrder(0))
}
