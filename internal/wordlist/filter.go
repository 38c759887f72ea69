package wordlist

import "strings"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLength keeps ASCII words of exactly n letters.
func FilterForLength(n int) FilterFunc {
	return func(word string) bool {
		return len(word) == n && filterEnglishASCII(word)
	}
}

func filterEnglishASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

// normalize lowercases and trims a raw line. Comments and blanks become "".
func normalize(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ""
	}
	return strings.ToLower(line)
}
