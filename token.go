package littlesearch

type Token struct {
	Term string
	Kana string // 形態素解析で得た読み(カタカナ)
}

type TokenOption func(*Token)

func NewToken(term string, options ...TokenOption) Token {
	token := Token{Term: term}
	for _, option := range options {
		option(&token)
	}
	return token
}

func SetKana(kana string) TokenOption {
	return func(t *Token) {
		t.Kana = kana
	}
}

type TokenStream struct {
	Tokens []Token
}

func NewTokenStream(tokens []Token) TokenStream {
	return TokenStream{
		Tokens: tokens,
	}
}

func (ts TokenStream) Size() int {
	return len(ts.Tokens)
}

func (ts TokenStream) Terms() []string {
	terms := make([]string, ts.Size())
	for i, t := range ts.Tokens {
		terms[i] = t.Term
	}
	return terms
}

// Frequencies counts how many times each term occurs in the stream.
func (ts TokenStream) Frequencies() map[string]int {
	freqs := make(map[string]int)
	for _, t := range ts.Tokens {
		freqs[t.Term]++
	}
	return freqs
}
