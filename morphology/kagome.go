package morphology

import (
	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// github.com/ikawaha/kagomeに直接依存しないようにラップする
type Kagome struct {
	kagome *tokenizer.Tokenizer
	mode   tokenizer.TokenizeMode
}

func NewKagome() (*Kagome, error) {
	t, err := tokenizer.New(ipaneologd.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Kagome{
		kagome: t,
		mode:   tokenizer.Search,
	}, nil
}

// Analyze splits text into morphemes, dropping whitespace. Unknown words are
// read as their surface form.
func (k *Kagome) Analyze(text string) []Morpheme {
	tokens := k.kagome.Analyze(text, k.mode)
	morphemes := make([]Morpheme, 0, len(tokens))
	for _, token := range tokens {
		features := token.Features()
		if len(features) > 1 && features[1] == "空白" {
			continue
		}
		reading := token.Surface
		if len(features) >= 8 {
			reading = features[7]
		}
		morphemes = append(morphemes, NewMorpheme(token.Surface, reading))
	}
	return morphemes
}
