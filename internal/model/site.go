package model

import (
	"strings"
	"unicode"
)

// Site is one project folder under the portfolio root.
type Site struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Metrics     []Metric `json:"metrics"`
}

// Suffixes removed from folder names before display.
var siteNameSuffixes = []string{"_LLC", "_Power"}

// CleanSiteName turns a folder name like "Sunny_Ridge_Solar_LLC" into "Sunny Ridge Solar".
func CleanSiteName(id string) string {
	name := id
	for _, s := range siteNameSuffixes {
		name = strings.ReplaceAll(name, s, "")
	}
	name = strings.ReplaceAll(name, "_", " ")
	return titleCase(name)
}

// titleCase upper-cases a letter that follows a non-letter and lower-cases the rest.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
