package littlesearch

import (
	"fmt"
	"strings"
)

// Query is a disjunction of at most two keywords.
type Query struct {
	Keyword1 string
	Keyword2 string
}

func NewQuery(kw1, kw2 string) Query {
	return Query{
		Keyword1: strings.ToLower(kw1),
		Keyword2: strings.ToLower(kw2),
	}
}

// ParseQuery accepts "kw", "kw1 kw2" and "kw1 or kw2".
func ParseQuery(s string) (Query, error) {
	words := strings.Fields(s)
	if len(words) == 3 && strings.EqualFold(words[1], "or") {
		words = []string{words[0], words[2]}
	}
	switch len(words) {
	case 1:
		return NewQuery(words[0], ""), nil
	case 2:
		if strings.EqualFold(words[0], "or") || strings.EqualFold(words[1], "or") {
			return Query{}, fmt.Errorf("%w: dangling OR in %q", ErrInvalidQuery, s)
		}
		return NewQuery(words[0], words[1]), nil
	case 0:
		return Query{}, fmt.Errorf("%w: empty query", ErrInvalidQuery)
	default:
		return Query{}, fmt.Errorf("%w: at most two keywords are supported, got %q", ErrInvalidQuery, s)
	}
}

func (q Query) String() string {
	if q.Keyword2 == "" {
		return q.Keyword1
	}
	return q.Keyword1 + " or " + q.Keyword2
}
