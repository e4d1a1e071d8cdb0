// Package textutils provides text normalization helpers shared by the store,
// the catalog and the shopping list.
package textutils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the case-folded, NFC-normalized, trimmed form of s. Two names are
// the same recipe or ingredient when their folded forms are equal. A Caser keeps
// state between calls, so each call builds its own.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// EqualFold reports whether a and b are equal under Fold.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// SplitTrimmed splits s on sep, trims every piece and drops the empty ones.
func SplitTrimmed(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
