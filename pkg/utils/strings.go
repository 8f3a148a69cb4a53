package utils

import "strings"

// SplitList splits a comma separated value, trimming each item and
// dropping empty ones. It returns nil when nothing remains.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
