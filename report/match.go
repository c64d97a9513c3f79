package report

import (
	"slices"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/lprof/tracer"
)

// matchTargets filters targets to those whose qualified names
// fuzzy-match the query, preserving the given identity order.
func matchTargets(targets []tracer.Target, query string) []tracer.Target {
	if query == "" {
		return targets
	}

	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name
	}

	keep := []int{}
	for _, m := range fuzzy.Find(query, names) {
		keep = append(keep, m.Index)
	}

	slices.Sort(keep)

	matched := make([]tracer.Target, 0, len(keep))
	for _, i := range keep {
		matched = append(matched, targets[i])
	}

	return matched
}
