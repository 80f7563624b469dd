package almanac

import (
	"fmt"
	"math"

	"seed-almanac/category"
	"seed-almanac/internal/diagnostic"
)

// Validate checks tables against chain. It never changes resolution
// behaviour: overlapping rules are reported as warnings because first-match
// still gives a defined answer, while tables the engine cannot place are
// errors.
func Validate(chain category.Chain, tables Tables) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if tables == nil {
		res.AddError("tables_are_nil", "no tables given", "", "")
		return res
	}

	byDest := map[category.Category]Pair{}
	bySource := map[category.Category]Pair{}

	for _, p := range tables.Pairs() {
		name := p.String()

		if prev, dup := byDest[p.To]; dup {
			res.AddError("duplicate_dest_table",
				fmt.Sprintf("%s and %s both lead to %s", prev, p, p.To), name, "")
		} else {
			byDest[p.To] = p
		}

		if prev, dup := bySource[p.From]; dup {
			res.AddError("duplicate_source_table",
				fmt.Sprintf("%s and %s both start at %s", prev, p, p.From), name, "")
		} else {
			bySource[p.From] = p
		}

		switch {
		case !chain.Contains(p.From) || !chain.Contains(p.To):
			res.AddError("category_not_in_chain",
				fmt.Sprintf("table %s uses a category outside chain %s", p, chain), name, "")
		case !chain.Adjacent(p.From, p.To):
			res.AddError("non_adjacent_table",
				fmt.Sprintf("%s does not immediately follow %s in chain %s", p.To, p.From, chain), name, "")
		}

		validateRules(res, name, tables[p])
	}

	order := chain.Categories()
	for i := 1; i < len(order); i++ {
		if _, ok := byDest[order[i]]; !ok {
			hop := Pair{From: order[i-1], To: order[i]}
			res.AddWarning("missing_hop",
				fmt.Sprintf("no table leads to %s; values cannot be resolved across %s", order[i], hop), hop.String(), "")
		}
	}

	return res
}

func validateRules(res *diagnostic.Diagnostics, table string, rules Rules) {
	if len(rules) == 0 {
		res.AddInfo("empty_table", "table has no rules; every value maps to itself", table, "")
		return
	}

	for i, r := range rules {
		ref := fmt.Sprintf("#%d", i)

		if r.Length <= 0 {
			res.AddError("non_positive_length", fmt.Sprintf("rule %s has length %d", r, r.Length), table, ref)
			continue
		}

		if overflows(r) {
			res.AddError("range_overflow", fmt.Sprintf("rule %s overflows int64", r), table, ref)
			continue
		}

		for j := range i {
			prev := rules[j]
			if prev.Length <= 0 || overflows(prev) {
				continue
			}

			if overlaps(prev.Dest, prev.Length, r.Dest, r.Length) {
				res.AddWarning("overlapping_dest",
					fmt.Sprintf("destination window of %s overlaps #%d (%s); #%d wins", r, j, prev, j), table, ref)
			}

			if overlaps(prev.Source, prev.Length, r.Source, r.Length) {
				res.AddWarning("overlapping_source",
					fmt.Sprintf("source window of %s overlaps #%d (%s); #%d wins", r, j, prev, j), table, ref)
			}
		}
	}
}

func overflows(r Rule) bool {
	return r.Dest > math.MaxInt64-r.Length || r.Source > math.MaxInt64-r.Length
}

func overlaps(aStart, aLen, bStart, bLen int64) bool {
	return max(aStart, bStart) < min(aStart+aLen, bStart+bLen)
}
