package engine

import (
	"fmt"
	"os"

	tk "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// HuggingFace loads HuggingFace tokenizer.json definitions using the pure-Go
// sugarme tokenizer.
type HuggingFace struct{}

func NewHuggingFace() HuggingFace { return HuggingFace{} }

func (HuggingFace) LoadFromFile(path string) (Model, error) {
	inner, err := pretrained.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer from %s: %w", path, err)
	}
	return &hfModel{inner: inner}, nil
}

// LoadFromText stages the definition in a temporary file: sugarme only
// exposes a file-based loader.
func (h HuggingFace) LoadFromText(definition []byte) (Model, error) {
	tmp, err := os.CreateTemp("", "tokencount-*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to stage tokenizer definition: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(definition); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to stage tokenizer definition: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to stage tokenizer definition: %w", err)
	}
	return h.LoadFromFile(tmp.Name())
}

type hfModel struct {
	inner *tk.Tokenizer
}

func (m *hfModel) Encode(text string, addSpecialTokens bool) ([]uint32, error) {
	encoding, err := m.inner.EncodeSingle(text, addSpecialTokens)
	if err != nil {
		return nil, err
	}
	ids := make([]uint32, len(encoding.Ids))
	for i, id := range encoding.Ids {
		ids[i] = uint32(id)
	}
	return ids, nil
}
