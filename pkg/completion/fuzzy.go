package completion

import "unicode"

// fuzzyMatch scores candidate against fragment using subsequence matching:
// every rune of fragment must appear in candidate in order (case-
// insensitively), or the match fails. Score rewards contiguous runs,
// matches at the candidate's start, exact-case matches, and matches that
// land right after a word-boundary separator ('_', '-', '.', or a
// lower-to-upper transition), reimplemented as a self-contained scorer
// rather than pulled in from a dependency.
//
// Returns (score, matchIndices, ok). ok is false if fragment is not a
// subsequence of candidate.
func fuzzyMatch(candidate, fragment string) (int, []int, bool) {
	if fragment == "" {
		return 0, nil, true
	}

	c := []rune(candidate)
	f := []rune(fragment)

	indices := make([]int, 0, len(f))
	score := 0
	ci := 0
	prevMatched := -2 // index of previous match, for contiguity bonus

	for _, fr := range f {
		found := false
		for ; ci < len(c); ci++ {
			if !runeEqualFold(c[ci], fr) {
				continue
			}
			found = true
			points := 1
			if ci == 0 {
				points += 8 // start-of-string bonus
			}
			if ci == prevMatched+1 {
				points += 5 // contiguous-match bonus
			}
			if c[ci] == fr {
				points += 2 // exact-case bonus
			}
			if ci > 0 && isWordBoundary(c[ci-1], c[ci]) {
				points += 4 // word-boundary bonus
			}
			score += points
			indices = append(indices, ci)
			prevMatched = ci
			ci++
			break
		}
		if !found {
			return 0, nil, false
		}
	}
	return score, indices, true
}

func runeEqualFold(a, b rune) bool {
	return unicode.ToLower(a) == unicode.ToLower(b)
}

func isWordBoundary(prev, cur rune) bool {
	return prev == '_' || prev == '-' || prev == '.' || (unicode.IsLower(prev) && unicode.IsUpper(cur))
}

// longestCommonPrefix returns the longest string every element of strs
// begins with (empty slice or any non-shared prefix yields "").
func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	prefix := strs[0]
	for _, s := range strs[1:] {
		n := 0
		for n < len(prefix) && n < len(s) && prefix[n] == s[n] {
			n++
		}
		prefix = prefix[:n]
		if prefix == "" {
			break
		}
	}
	return prefix
}
