package drive

import (
	"strings"
	"unicode"
)

// NaturalLess compares filenames case-insensitively with embedded numbers
// ordered by value, so "infografis-2.png" sorts before "infografis-10.png".
func NaturalLess(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	for len(a) > 0 && len(b) > 0 {
		if isDigit(rune(a[0])) && isDigit(rune(b[0])) {
			na, restA := takeNumber(a)
			nb, restB := takeNumber(b)
			if na != nb {
				// Compare by numeric value: shorter digit run (after
				// stripping leading zeros) is smaller, same length falls
				// back to lexicographic.
				ta, tb := strings.TrimLeft(na, "0"), strings.TrimLeft(nb, "0")
				if len(ta) != len(tb) {
					return len(ta) < len(tb)
				}
				if ta != tb {
					return ta < tb
				}
				// Equal values, differing zero padding: fewer zeros first.
				return len(na) < len(nb)
			}
			a, b = restA, restB
			continue
		}

		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func isDigit(r rune) bool {
	return unicode.IsDigit(r)
}

func takeNumber(s string) (digits, rest string) {
	i := 0
	for i < len(s) && isDigit(rune(s[i])) {
		i++
	}
	return s[:i], s[i:]
}
