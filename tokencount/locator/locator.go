package locator

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DefinitionFileName is the only filename recognized inside a model bundle
// directory. No recursive search, no alternate names.
const DefinitionFileName = "tokenizer.json"

var (
	ErrNotFound          = errors.New("model path not found")
	ErrUnsupportedFormat = errors.New("unsupported model format")
)

// DefinitionFile is a concrete file path known to contain a complete
// tokenizer definition.
type DefinitionFile string

// Locator classifies user-supplied filesystem paths into loadable tokenizer
// definitions. It never parses or loads a model.
type Locator struct {
	fs afero.Fs
}

// New returns a Locator over the operating system filesystem.
func New() *Locator { return NewWithFs(afero.NewOsFs()) }

// NewWithFs returns a Locator over the given filesystem.
func NewWithFs(fs afero.Fs) *Locator { return &Locator{fs: fs} }

// Resolve turns path into a definite, loadable model source.
//   - A directory resolves to the tokenizer.json directly inside it.
//   - A regular file resolves to itself when its extension is json
//     (case-insensitive).
//
// Resolve is a pure function of the filesystem state at call time: read-only
// stat calls, no caching, no global state.
func (l *Locator) Resolve(path string) (DefinitionFile, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: path does not exist: %s", ErrNotFound, path)
	}

	if info.IsDir() {
		candidate := filepath.Join(path, DefinitionFileName)
		if ci, err := l.fs.Stat(candidate); err == nil && ci.Mode().IsRegular() {
			return DefinitionFile(candidate), nil
		}
		return "", fmt.Errorf("%w: no %s found in directory %s; convert legacy single-file models (e.g. .model) to %s first",
			ErrNotFound, DefinitionFileName, path, DefinitionFileName)
	}

	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: path does not exist: %s", ErrNotFound, path)
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if strings.EqualFold(ext, "json") {
		return DefinitionFile(path), nil
	}
	return "", fmt.Errorf("%w: %s is not a recognized tokenizer definition file", ErrUnsupportedFormat, path)
}
