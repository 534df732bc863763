// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixlcp

import "sort"

// sortSuffixes builds the suffix array for the given text by prefix doubling
// and returns it together with the final rank table. On return the rank table
// is the inverse permutation of the suffix array: rank[sa[i]] == i.
//
// Each doubling pass re-sorts the whole array with a comparator, so
// construction takes O(n log^2 n) time and O(n) space. After the pass for a
// given gap, ranks order suffixes by their first 2*gap symbols.
func sortSuffixes(text []int32) (sa, rank []int32) {
	n := len(text)
	sa, rank = make([]int32, n), make([]int32, n)
	if n == 0 {
		return sa, rank
	}
	for i := 0; i < n; i++ {
		sa[i] = int32(i)
		rank[i] = text[i] // Symbols are code points, so initial ranks are non-negative.
	}
	next := make([]int32, n)
	for gap := int32(1); ; gap *= 2 {
		sort.Slice(sa, func(i, j int) bool {
			return less(rank, gap, sa[i], sa[j])
		})
		// Walk sa in order and regroup: a new rank starts wherever the
		// comparator still distinguishes adjacent suffixes.
		next[sa[0]] = 0
		for i := 1; i < n; i++ {
			next[sa[i]] = next[sa[i-1]]
			if less(rank, gap, sa[i-1], sa[i]) {
				next[sa[i]]++
			}
		}
		rank, next = next, rank
		// Every suffix distinguished: sa is final and rank is its inverse.
		if rank[sa[n-1]] == int32(n-1) {
			return sa, rank
		}
	}
}

// less orders positions i and j by rank, breaking ties with the rank gap
// symbols ahead. A suffix ending within the next gap symbols takes the
// sentinel -1 there, so a strict prefix sorts before the longer suffix.
func less(rank []int32, gap, i, j int32) bool {
	if rank[i] != rank[j] {
		return rank[i] < rank[j]
	}
	ri, rj := int32(-1), int32(-1)
	if int(i+gap) < len(rank) {
		ri = rank[i+gap]
	}
	if int(j+gap) < len(rank) {
		rj = rank[j+gap]
	}
	return ri < rj
}
