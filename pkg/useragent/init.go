package useragent

import "sort"

func init() {
	// Longer literals are more specific ("PlayStation 5" before "PlayStation").
	// The sort is stable so equal-length entries keep their declared order.
	sort.SliceStable(modelPatterns, func(i, j int) bool {
		return len(modelPatterns[i].Literal) > len(modelPatterns[j].Literal)
	})
}
