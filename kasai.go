// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixlcp

// lcpFromRank derives the LCP array from the suffix array and its inverse
// rank table using Kasai's algorithm. lcp[0] is 0 by convention; for i >= 1,
// lcp[i] is the length of the longest common prefix between the suffixes
// starting at sa[i-1] and sa[i].
//
// The pass runs over original positions, not sa order, carrying the match
// length h: dropping the first symbol of a suffix shrinks its LCP with the
// predecessor by at most one, so h never restarts from zero and the total
// work is O(n).
func lcpFromRank(text, sa, rank []int32) []int32 {
	n := len(text)
	lcp := make([]int32, n)
	h := 0
	for i := 0; i < n; i++ {
		r := rank[i]
		if r == 0 {
			// Smallest suffix has no predecessor; h still lower-bounds the
			// match at the next position.
			continue
		}
		prev := int(sa[r-1])
		for i+h < n && prev+h < n && text[i+h] == text[prev+h] {
			h++
		}
		lcp[r] = int32(h)
		if h > 0 {
			h--
		}
	}
	return lcp
}
