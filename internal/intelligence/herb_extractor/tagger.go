package herb_extractor

import "context"

// Entity is one labelled span reported by a Tagger.  Offsets are byte
// offsets into the NFC-normalised text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Tagger is an optional sentence tagger.  Its output is reported alongside
// the lexicon matches and never alters them.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]Entity, error)
}

// TaggerFunc adapts a function to the Tagger interface.
type TaggerFunc func(ctx context.Context, text string) ([]Entity, error)

func (f TaggerFunc) Tag(ctx context.Context, text string) ([]Entity, error) { return f(ctx, text) }

type nopTagger struct{}

func (nopTagger) Tag(context.Context, string) ([]Entity, error) { return nil, nil }

// NopTagger returns the default Tagger, which finds nothing.
func NopTagger() Tagger { return nopTagger{} }

//Personal.AI order the ending
