package session

import "context"

// defaultSession is the process-wide tokenizer state. It is created empty at
// process start, transitions to initialized at most once, and is torn down
// only with the process.
var defaultSession = New()

// Default returns the process-wide session.
func Default() *Session { return defaultSession }

// Init initializes the process-wide session from a filesystem path.
func Init(path string) error { return defaultSession.InitFromPath(path) }

// InitFromDefinition initializes the process-wide session from an in-memory
// tokenizer definition.
func InitFromDefinition(definition []byte) error {
	return defaultSession.InitFromDefinition(definition)
}

// InitFromEncoding initializes the process-wide session from a tiktoken
// encoding name.
func InitFromEncoding(name string) error { return defaultSession.InitFromEncoding(name) }

// Encode encodes text against the process-wide session.
func Encode(text string) ([]uint32, error) { return defaultSession.Encode(text) }

// Count counts tokens against the process-wide session.
func Count(text string) (uint32, error) { return defaultSession.Count(text) }

// CountBatch counts many texts against the process-wide session.
func CountBatch(ctx context.Context, texts []string) ([]uint32, error) {
	return defaultSession.CountBatch(ctx, texts)
}
