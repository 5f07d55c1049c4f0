package engine

// Model is an opaque, immutable tokenizer instance. Implementations must be
// safe for concurrent use once constructed.
type Model interface {
	// Encode turns text into an ordered sequence of token ids. When
	// addSpecialTokens is false the output is the raw segmentation, with no
	// begin/end markers inserted.
	Encode(text string, addSpecialTokens bool) ([]uint32, error)
}

// Loader builds Model instances from serialized tokenizer definitions.
type Loader interface {
	LoadFromFile(path string) (Model, error)
	LoadFromText(definition []byte) (Model, error)
}
