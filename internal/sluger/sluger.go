package sluger

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

const maxLen = 200

// Slugify turns free text into a [a-z0-9-] slug: diacritics stripped,
// runs of other characters collapsed to a single "-", trimmed at both
// ends. Empty input falls back to "item".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// Strip diacritics (é → e)
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		s = "item"
	}
	if len(s) > maxLen {
		s = strings.Trim(s[:maxLen], "-")
	}
	return s
}

// TakenFunc reports whether a candidate slug is already in use.
type TakenFunc func(ctx context.Context, slug string) (bool, error)

// Unique returns base if free, otherwise base-1, base-2, ... until a free
// candidate is found.
func Unique(ctx context.Context, base string, taken TakenFunc) (string, error) {
	candidate := base
	for i := 0; ; i++ {
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		inUse, err := taken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !inUse {
			return candidate, nil
		}
		if i >= 10000 {
			return "", fmt.Errorf("could not find a free slug for %q", base)
		}
	}
}
