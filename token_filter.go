package littlesearch

import (
	"github.com/kljensen/snowball/english"
	"github.com/kotaroooo0/gojaconv/jaconv"
)

type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

// KeywordFilter replaces every token by its keyword and drops tokens that are
// not keywords.
type KeywordFilter struct {
	noiseWords NoiseWords
}

func NewKeywordFilter(noiseWords NoiseWords) KeywordFilter {
	return KeywordFilter{
		noiseWords: noiseWords,
	}
}

func (f KeywordFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		keyword, ok := Normalize(token.Term, f.noiseWords)
		if !ok {
			continue
		}
		r = append(r, NewToken(keyword, SetKana(token.Kana)))
	}
	return NewTokenStream(r)
}

type StemmerFilter struct{}

func NewStemmerFilter() StemmerFilter {
	return StemmerFilter{}
}

func (f StemmerFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		stemmed := english.Stem(token.Term, false)
		r[i] = NewToken(stemmed, SetKana(token.Kana))
	}
	return NewTokenStream(r)
}

// RomajiReadingformFilter rewrites tokens with a reading to its Hepburn
// romanization so that Japanese words can pass the keyword test.
type RomajiReadingformFilter struct{}

func NewRomajiReadingformFilter() RomajiReadingformFilter {
	return RomajiReadingformFilter{}
}

func (f RomajiReadingformFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		if token.Kana == "" || token.Kana == token.Term {
			r[i] = token
			continue
		}
		r[i] = NewToken(jaconv.ToHebon(jaconv.KatakanaToHiragana(token.Kana)), SetKana(token.Kana))
	}
	return NewTokenStream(r)
}
