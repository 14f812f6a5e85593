package logic

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"snipman/internal/domain"
)

// Score returns the best fuzzy match score of query against a snippet's
// description, tags (joined by a single space), and code body. ok is false
// when no field matches at all; such a snippet is excluded from the visible
// list rather than ranked last. Callers must not pass an empty query — an
// empty query means "show everything unranked", not "everything ties".
func Score(query string, s domain.Snippet) (score int, ok bool) {
	fields := [3]string{s.Description, strings.Join(s.Tags, " "), s.Code}
	for _, field := range fields {
		matches := fuzzy.Find(query, []string{field})
		if len(matches) == 0 {
			continue
		}
		if !ok || matches[0].Score > score {
			score = matches[0].Score
			ok = true
		}
	}
	return score, ok
}

// Rank returns the indices of corpus entries matching query, ordered by
// descending score. The sort is stable so tied snippets keep their corpus
// order, which makes ranking deterministic.
func Rank(query string, corpus []domain.Snippet) []int {
	type scored struct {
		index int
		score int
	}

	matched := make([]scored, 0, len(corpus))
	for i, s := range corpus {
		if score, ok := Score(query, s); ok {
			matched = append(matched, scored{index: i, score: score})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	order := make([]int, len(matched))
	for i, m := range matched {
		order[i] = m.index
	}
	return order
}

// IdentityOrder returns all corpus indices in their original order,
// used when the query is empty.
func IdentityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
