package score

import (
	"github.com/agnivade/levenshtein"
)

// Similarity returns a score in [0, 1] for two strings: 1 minus the edit
// distance divided by the longer normalized length. Identical normalized
// strings score exactly 1; completely disjoint strings approach 0.
func Similarity(a, b string) float64 {
	na := NormalizeTitle(a)
	nb := NormalizeTitle(b)

	if na == nb {
		return 1
	}

	maxLen := len([]rune(na))
	if l := len([]rune(nb)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}

	dist := levenshtein.ComputeDistance(na, nb)
	return 1 - float64(dist)/float64(maxLen)
}
