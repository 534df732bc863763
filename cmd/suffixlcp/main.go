// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Command suffixlcp prints the suffix array and LCP array of a text
// alongside its suffixes in lexicographical order.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nekitakamenev/suffixlcp"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: suffixlcp <text>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	text := flag.Arg(0)
	s := suffixlcp.NewString(text)
	sa, lcp := s.SA(), s.LCP()

	fmt.Printf("text: %q (n=%d)\n", text, s.Len())
	for i := range sa {
		fmt.Printf("SA[%d]=%d\tLCP[%d]=%d\t%s\n", i, sa[i], i, lcp[i], string(s.Suffix(i)))
	}
}
