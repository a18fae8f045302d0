package littlesearch

import "strings"

type CharFilter interface {
	Filter(string) string
}

// MappingCharFilter replaces every key of the mapping with its value.
type MappingCharFilter struct {
	replacer *strings.Replacer
}

func NewMappingCharFilter(mapper map[string]string) *MappingCharFilter {
	pairs := make([]string, 0, len(mapper)*2)
	for k, v := range mapper {
		if k == "" {
			continue
		}
		pairs = append(pairs, k, v)
	}
	return &MappingCharFilter{replacer: strings.NewReplacer(pairs...)}
}

func (c *MappingCharFilter) Filter(s string) string {
	return c.replacer.Replace(s)
}

// FullwidthPunctuationMapping maps full-width punctuation to the ASCII
// characters recognized as trailing punctuation.
var FullwidthPunctuationMapping = map[string]string{
	"。": ".", "．": ".", "、": ",", "，": ",",
	"？": "?", "：": ":", "；": ";", "！": "!",
}
