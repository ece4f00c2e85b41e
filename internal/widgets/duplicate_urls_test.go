package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindDuplicateURLs_ExactMatch(t *testing.T) {
	existing := []string{"https://example.com/a", "https://example.com/b"}

	duplicates := FindDuplicateURLs("https://example.com/a", existing)

	assert.Equal(t, []string{"https://example.com/a"}, duplicates)
}

func TestFindDuplicateURLs_TrailingSlashInsensitive(t *testing.T) {
	existing := []string{"https://example.com/a/"}

	duplicates := FindDuplicateURLs("https://example.com/a", existing)
	assert.Equal(t, []string{"https://example.com/a/"}, duplicates)

	duplicates = FindDuplicateURLs("https://example.com/a/", []string{"https://example.com/a"})
	assert.Equal(t, []string{"https://example.com/a"}, duplicates)
}

func TestFindDuplicateURLs_ListedExactlyOnce(t *testing.T) {
	// the same URL twice in the input, and slash variants in the existing list
	existing := []string{"https://example.com/a", "https://example.com/a/"}
	input := "https://example.com/a\nhttps://example.com/a/"

	duplicates := FindDuplicateURLs(input, existing)

	assert.Equal(t, []string{"https://example.com/a"}, duplicates)
}

func TestFindDuplicateURLs_NoDuplicatesClearsWarning(t *testing.T) {
	existing := []string{"https://example.com/a"}

	duplicates := FindDuplicateURLs("https://example.com/new", existing)

	assert.Empty(t, duplicates)
}

func TestFindDuplicateURLs_IgnoresBlankLines(t *testing.T) {
	existing := []string{"https://example.com/a"}

	duplicates := FindDuplicateURLs("\n\n  \nhttps://example.com/a\n\n", existing)

	assert.Equal(t, []string{"https://example.com/a"}, duplicates)
}

func TestSplitURLLines(t *testing.T) {
	input := "https://example.com/a\r\n  https://example.com/b  \n\nhttps://example.com/c"

	lines := SplitURLLines(input)

	assert.Equal(t, []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	}, lines)
}
