package importer

import (
	"regexp"
	"strings"
)

var crossRefSeparator = regexp.MustCompile(` *, *`)

// ParseRelatedEntries splits a legacy cross-reference field such as
// "foo, bar and baz." into its entry names, in order. Names are not resolved.
func ParseRelatedEntries(text string) []string {
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, ".")
	text = strings.TrimSuffix(text, ",")
	text = strings.ReplaceAll(text, " and ", ",")

	var names []string
	for _, part := range crossRefSeparator.Split(text, -1) {
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}
