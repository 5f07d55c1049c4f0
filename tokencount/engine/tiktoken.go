package engine

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// NewTiktoken builds a Model over an OpenAI BPE encoding addressed by name
// (e.g. "cl100k_base"), for hosts that count against tiktoken vocabularies
// rather than a tokenizer.json artifact.
func NewTiktoken(encoding string) (Model, error) {
	inner, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encoding, err)
	}
	return &tiktokenModel{inner: inner}, nil
}

type tiktokenModel struct {
	inner *tiktoken.Tiktoken
}

// Encode ignores addSpecialTokens: tiktoken never inserts special tokens
// unless they are explicitly allowed in the input.
func (m *tiktokenModel) Encode(text string, _ bool) ([]uint32, error) {
	raw := m.inner.Encode(text, nil, nil)
	ids := make([]uint32, len(raw))
	for i, id := range raw {
		ids[i] = uint32(id)
	}
	return ids, nil
}
