package littlesearch

import "strings"

// NoiseWords is the set of words that are never indexed.
type NoiseWords map[string]struct{}

func NewNoiseWords(words []string) NoiseWords {
	n := make(NoiseWords, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		n[w] = struct{}{}
	}
	return n
}

func (n NoiseWords) Contains(word string) bool {
	_, ok := n[word]
	return ok
}

// Normalize maps a raw token to its keyword. The second return value is false
// when the token is not a keyword: it is empty after trailing punctuation is
// stripped, contains anything other than the letters a-z, or is a noise word.
func Normalize(token string, noise NoiseWords) (string, bool) {
	word := trimTrailingPunctuation(strings.ToLower(token))
	if !isAlphabetic(word) {
		return "", false
	}
	if noise.Contains(word) {
		return "", false
	}
	return word, true
}

func trimTrailingPunctuation(s string) string {
	end := len(s)
	for end > 0 && isPunctuation(s[end-1]) {
		end--
	}
	return s[:end]
}

// 句読点として扱うのはこの6文字のみ
func isPunctuation(c byte) bool {
	switch c {
	case '.', ',', '?', ':', ';', '!':
		return true
	}
	return false
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
