package engine

import (
	"sort"

	"spread-optimizer/internal/models"
)

// quoteGroup is one (underlying, expiry, option type) bucket. Spreads
// only ever combine quotes from the same group.
type quoteGroup struct {
	Underlying string
	Expiry     string
	Type       models.OptionType
	Quotes     []*models.OptionQuote
}

// pairable reports whether the group can produce at least one pair.
func (g *quoteGroup) pairable() bool {
	return len(g.Quotes) >= 2
}

// groupQuotes buckets a table by (underlying, expiry, option type) and
// sorts each bucket by strike ascending. Group order is deterministic.
func groupQuotes(table *models.QuoteTable) []*quoteGroup {
	type key struct {
		underlying string
		expiry     string
		typ        models.OptionType
	}
	byKey := make(map[key]*quoteGroup)
	var order []key

	for i := range table.Quotes {
		q := &table.Quotes[i]
		if q.Type != models.OptionCall && q.Type != models.OptionPut {
			continue
		}
		k := key{q.Underlying, q.ExpiryKey(), q.Type}
		g, ok := byKey[k]
		if !ok {
			g = &quoteGroup{Underlying: k.underlying, Expiry: k.expiry, Type: k.typ}
			byKey[k] = g
			order = append(order, k)
		}
		g.Quotes = append(g.Quotes, q)
	}

	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.underlying != b.underlying {
			return a.underlying < b.underlying
		}
		if a.expiry != b.expiry {
			return a.expiry < b.expiry
		}
		return a.typ < b.typ
	})

	groups := make([]*quoteGroup, 0, len(order))
	for _, k := range order {
		g := byKey[k]
		sort.Slice(g.Quotes, func(i, j int) bool {
			return g.Quotes[i].Strike < g.Quotes[j].Strike
		})
		groups = append(groups, g)
	}
	return groups
}

// forEachPair visits every unordered strike pair (low, high) with
// low.Strike < high.Strike exactly once: C(n,2) pairs for n quotes.
// Equal strikes never pair. Groups with fewer than two quotes yield
// nothing.
func (g *quoteGroup) forEachPair(visit func(low, high *models.OptionQuote)) {
	for i := 0; i < len(g.Quotes); i++ {
		for j := i + 1; j < len(g.Quotes); j++ {
			low, high := g.Quotes[i], g.Quotes[j]
			if low.Strike == high.Strike {
				continue
			}
			visit(low, high)
		}
	}
}

// enumerateGroup builds every candidate the group yields for the allowed
// strategy kinds. Kinds whose option type does not match the group are
// skipped. Pairs that fail the width check are dropped.
func enumerateGroup(g *quoteGroup, kinds []models.StrategyKind, cost CostModel) []*models.SpreadCandidate {
	var out []*models.SpreadCandidate
	g.forEachPair(func(low, high *models.OptionQuote) {
		for _, kind := range kinds {
			if kind.OptionType() != g.Type {
				continue
			}
			c, err := BuildCandidate(kind, low, high, cost)
			if err != nil {
				continue
			}
			out = append(out, c)
		}
	})
	return out
}
