package morphology

type Morphology interface {
	Analyze(string) []Morpheme
}

// Morpheme is a surface form with its katakana reading.
type Morpheme struct {
	Surface string
	Reading string
}

func NewMorpheme(surface, reading string) Morpheme {
	return Morpheme{
		Surface: surface,
		Reading: reading,
	}
}
