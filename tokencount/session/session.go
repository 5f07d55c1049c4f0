package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/sourcegraph/conc/pool"

	internal "github.com/ZanzyTHEbar/tokencount/tokencount"
	"github.com/ZanzyTHEbar/tokencount/tokencount/engine"
	"github.com/ZanzyTHEbar/tokencount/tokencount/locator"
)

var (
	ErrAlreadyInitialized = errors.New("tokenizer already initialized")
	ErrNotInitialized     = errors.New("tokenizer is not initialized: call Init first")
	ErrLoadFailed         = errors.New("tokenizer load failed")
	ErrEncodeFailed       = errors.New("failed to encode text")
)

// committed wraps the model so the one-shot cell can hold it behind a single
// pointer swap.
type committed struct {
	model engine.Model
}

// Session owns at most one tokenizer model for its lifetime. The model cell
// is write-once: exactly one initialization call ever commits, every later or
// losing call observes ErrAlreadyInitialized, and the committed model is never
// replaced or mutated. All reads go through the session; callers never hold
// the model directly.
type Session struct {
	model   atomic.Pointer[committed]
	loader  engine.Loader
	locator *locator.Locator
	workers int
}

// New returns a session backed by the HuggingFace engine and the OS
// filesystem.
func New() *Session {
	return NewWith(engine.NewHuggingFace(), locator.New(), internal.DefaultCountWorkers())
}

// NewWith returns a session with an explicit loader, locator and batch worker
// count.
func NewWith(loader engine.Loader, loc *locator.Locator, workers int) *Session {
	if workers <= 0 {
		workers = internal.DefaultCountWorkers()
	}
	return &Session{loader: loader, locator: loc, workers: workers}
}

// InitFromPath resolves path to a tokenizer definition, loads it and commits
// it as the session's permanent model.
func (s *Session) InitFromPath(path string) error {
	def, err := s.locator.Resolve(path)
	if err != nil {
		return err
	}
	model, err := s.loader.LoadFromFile(string(def))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrLoadFailed, def, err)
	}
	return s.commit(model)
}

// InitFromDefinition loads an in-memory tokenizer definition, for hosts that
// already hold the serialized model and have no filesystem to resolve.
func (s *Session) InitFromDefinition(definition []byte) error {
	model, err := s.loader.LoadFromText(definition)
	if err != nil {
		return fmt.Errorf("%w: in-memory definition: %v", ErrLoadFailed, err)
	}
	return s.commit(model)
}

// InitFromEncoding commits a tiktoken BPE encoding addressed by name, under
// the same write-once discipline as the file-based initializers.
func (s *Session) InitFromEncoding(name string) error {
	model, err := engine.NewTiktoken(name)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrLoadFailed, name, err)
	}
	return s.commit(model)
}

// commit is the one-shot write. The compare-and-swap guarantees exactly one
// caller wins even under concurrent initialization; losers' freshly loaded
// models are discarded, never swapped in.
func (s *Session) commit(model engine.Model) error {
	if !s.model.CompareAndSwap(nil, &committed{model: model}) {
		return ErrAlreadyInitialized
	}
	return nil
}

// Initialized reports whether a model has been committed.
func (s *Session) Initialized() bool {
	return s.model.Load() != nil
}

func (s *Session) current() (engine.Model, error) {
	c := s.model.Load()
	if c == nil {
		return nil, ErrNotInitialized
	}
	return c.model, nil
}

// Encode turns text into token ids with special-token insertion disabled:
// raw segmentation only, no begin/end markers. Read-only and safe for
// concurrent use.
func (s *Session) Encode(text string) ([]uint32, error) {
	model, err := s.current()
	if err != nil {
		return nil, err
	}
	ids, err := model.Encode(text, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	return ids, nil
}

// Count returns the number of tokens text produces, clamped to the uint32
// range. Errors propagate; the degraded zero-on-error contract lives at the
// host boundary only.
func (s *Session) Count(text string) (uint32, error) {
	ids, err := s.Encode(text)
	if err != nil {
		return 0, err
	}
	return clampUint32(len(ids)), nil
}

// CountBatch counts every text on a bounded worker pool. Results align
// positionally with the inputs; the first failing text fails the batch.
func (s *Session) CountBatch(ctx context.Context, texts []string) ([]uint32, error) {
	if _, err := s.current(); err != nil {
		return nil, err
	}
	counts := make([]uint32, len(texts))
	p := pool.New().WithMaxGoroutines(s.workers).WithContext(ctx).WithCancelOnError()
	for i, text := range texts {
		i, text := i, text
		p.Go(func(ctx context.Context) error {
			n, err := s.Count(text)
			if err != nil {
				return fmt.Errorf("text %d: %w", i, err)
			}
			counts[i] = n
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

func clampUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	if uint64(n) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}
