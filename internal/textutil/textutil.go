// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil normalizes cell and line values shared by every
// conversion: whitespace trimming, line-ending unification, and splitting
// multi-line cells into lists.
package textutil

import "strings"

// Clean trims surrounding whitespace and unifies \r\n and \r line endings
// to \n. Empty or whitespace-only input becomes "".
func Clean(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// SplitList splits a multi-line cell value into its non-empty trimmed
// lines. A blank or whitespace-only value yields nil.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// JoinList joins list entries with newlines, the inverse of SplitList for
// already-trimmed entries. An empty list yields "".
func JoinList(lines []string) string {
	return strings.Join(lines, "\n")
}
