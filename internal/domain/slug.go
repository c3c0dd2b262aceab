package domain

import (
	"regexp"
	"strings"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from s: lowercase, every run of
// characters outside [a-z0-9] collapsed to a single hyphen, and no leading
// or trailing hyphen.
func Slugify(s string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}
