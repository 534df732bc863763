// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package suffixlcp builds suffix arrays and LCP arrays.
//
// The suffix array is constructed by prefix doubling and the LCP array is
// derived from it with Kasai's algorithm. Symbols are int32 code points and
// compare by ordinal value.
package suffixlcp

// Build computes the suffix array and LCP array for the given text.
// sa is the permutation of 0..n-1 that sorts all suffixes of text
// lexicographically. lcp[0] is 0; for i >= 1, lcp[i] is the length of the
// longest common prefix between the suffixes starting at sa[i-1] and sa[i].
// Both results have length len(text) and are empty for empty text.
func Build(text []int32) (sa, lcp []int32) {
	sa, rank := sortSuffixes(text)
	lcp = lcpFromRank(text, sa, rank)
	return sa, lcp
}

// SuffixLCP holds a text together with its suffix array and LCP array.
type SuffixLCP struct {
	text, sa, lcp []int32
}

// New builds the suffix array and LCP array for the given text.
func New(text []int32) *SuffixLCP {
	sa, lcp := Build(text)
	return &SuffixLCP{text, sa, lcp}
}

// NewString builds the index over the code points of s.
func NewString(s string) *SuffixLCP {
	return New([]int32(s))
}

// Len returns the length of the indexed text.
func (s *SuffixLCP) Len() int {
	return len(s.text)
}

// SA returns the suffix array: the starting positions of all suffixes of the
// text in lexicographical order.
func (s *SuffixLCP) SA() []int32 {
	return s.sa
}

// LCP returns the LCP array aligned with SA.
func (s *SuffixLCP) LCP() []int32 {
	return s.lcp
}

// Suffix returns the i-th suffix in lexicographical order.
func (s *SuffixLCP) Suffix(i int) []int32 {
	return s.text[s.sa[i]:]
}
