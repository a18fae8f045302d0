package morphology

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKagomeAnalyze(t *testing.T) {
	cases := []struct {
		text     string
		expected []Morpheme
	}{
		{
			text: "今日は天気が良い",
			expected: []Morpheme{
				NewMorpheme("今日", "キョウ"),
				NewMorpheme("は", "ハ"),
				NewMorpheme("天気", "テンキ"),
				NewMorpheme("が", "ガ"),
				NewMorpheme("良い", "ヨイ"),
			},
		},
		{
			text: "白馬",
			expected: []Morpheme{
				NewMorpheme("白馬", "ハクバ"),
			},
		},
		{
			text: "Ishiuchi Maruyama",
			expected: []Morpheme{
				NewMorpheme("Ishiuchi", "Ishiuchi"),
				NewMorpheme("Maruyama", "Maruyama"),
			},
		},
	}

	kagome, err := NewKagome()
	if err != nil {
		t.Fatal("error: fail to initialize kagome tokenizer")
	}

	for _, tt := range cases {
		t.Run(fmt.Sprintf("text = %v, expected = %v", tt.text, tt.expected), func(t *testing.T) {
			if diff := cmp.Diff(kagome.Analyze(tt.text), tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}
