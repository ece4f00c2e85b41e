package widgets

import (
	"strings"
)

// FindDuplicateURLs compares the textarea content (one URL per line) with the
// collection's existing URLs and returns the existing URLs that would be
// overwritten. Matching ignores trailing slashes and surrounding whitespace;
// each duplicate is reported once, in the order the existing list has it.
func FindDuplicateURLs(input string, existingURLs []string) []string {
	entered := make(map[string]bool)
	for _, line := range splitLines(input) {
		entered[strings.TrimSuffix(line, "/")] = true
	}

	var duplicates []string
	seen := make(map[string]bool)
	for _, existing := range existingURLs {
		normalized := strings.TrimSuffix(strings.TrimSpace(existing), "/")
		if normalized == "" || seen[normalized] {
			continue
		}
		if entered[normalized] {
			duplicates = append(duplicates, existing)
			seen[normalized] = true
		}
	}

	return duplicates
}

// splitLines splits textarea content into trimmed, non-empty lines.
func splitLines(input string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// SplitURLLines is the shared line parsing the add-urls form handler uses:
// trimmed lines with empties dropped, slashes kept as entered.
func SplitURLLines(input string) []string {
	return splitLines(input)
}
