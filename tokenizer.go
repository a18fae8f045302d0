package littlesearch

import (
	"strings"

	"github.com/kotaroooo0/littlesearch/morphology"
)

type Tokenizer interface {
	Tokenize(string) TokenStream
}

// WhitespaceTokenizer splits text on white space only, leaving punctuation
// attached to the tokens.
type WhitespaceTokenizer struct{}

func NewWhitespaceTokenizer() *WhitespaceTokenizer {
	return &WhitespaceTokenizer{}
}

func (t *WhitespaceTokenizer) Tokenize(s string) TokenStream {
	terms := strings.Fields(s)
	tokens := make([]Token, len(terms))
	for i, term := range terms {
		tokens[i] = NewToken(term)
	}
	return NewTokenStream(tokens)
}

// MorphologicalTokenizer splits text into morphemes, keeping each reading in
// Token.Kana.
type MorphologicalTokenizer struct {
	morphology morphology.Morphology
}

func NewMorphologicalTokenizer(morphology morphology.Morphology) *MorphologicalTokenizer {
	return &MorphologicalTokenizer{
		morphology: morphology,
	}
}

func (t *MorphologicalTokenizer) Tokenize(s string) TokenStream {
	morphemes := t.morphology.Analyze(s)
	tokens := make([]Token, len(morphemes))
	for i, m := range morphemes {
		tokens[i] = NewToken(m.Surface, SetKana(m.Reading))
	}
	return NewTokenStream(tokens)
}
