// Package host is the outward-facing boundary for environments (script
// engines, embedded runtimes) that cannot manage native resources or, in the
// case of Count, represent failures at all.
package host

import (
	internal "github.com/ZanzyTHEbar/tokencount/tokencount"
	"github.com/ZanzyTHEbar/tokencount/tokencount/config"
	"github.com/ZanzyTHEbar/tokencount/tokencount/session"
)

var logger = internal.GetLogger()

// Init loads the tokenizer from a filesystem path: either a directory
// containing tokenizer.json or a direct path to a .json definition file.
func Init(path string) error {
	if err := session.Init(path); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("tokenizer init failed")
		return err
	}
	logger.Info().Str("path", path).Msg("tokenizer initialized")
	return nil
}

// InitFromJSON loads the tokenizer from an in-memory tokenizer.json
// definition, for hosts with no filesystem access.
func InitFromJSON(definition string) error {
	if err := session.InitFromDefinition([]byte(definition)); err != nil {
		logger.Error().Err(err).Msg("tokenizer init from definition failed")
		return err
	}
	logger.Info().Msg("tokenizer initialized from in-memory definition")
	return nil
}

// InitFromConfig initializes the tokenizer according to loaded configuration:
// a tokenizer.json artifact for the huggingface engine, an encoding name for
// the tiktoken engine.
func InitFromConfig(cfg *config.Config) error {
	if cfg.Tokenizer.Engine == config.EngineTiktoken {
		if err := session.InitFromEncoding(cfg.Tokenizer.Encoding); err != nil {
			logger.Error().Err(err).Str("encoding", cfg.Tokenizer.Encoding).Msg("tokenizer init failed")
			return err
		}
		logger.Info().Str("encoding", cfg.Tokenizer.Encoding).Msg("tokenizer initialized")
		return nil
	}
	return Init(cfg.Tokenizer.ModelPath)
}

// Encode is the error-propagating query variant for callers that can handle
// failures.
func Encode(text string) ([]uint32, error) {
	return session.Encode(text)
}

// Count returns the number of tokens text produces, or 0 on any internal
// error. Hosts without a native error channel cannot distinguish a failure
// from an empty input here; callers needing error detail must use Encode.
// Counts beyond the uint32 range are clamped, never wrapped.
func Count(text string) uint32 {
	n, err := session.Count(text)
	if err != nil {
		logger.Debug().Err(err).Msg("count degraded to zero sentinel")
		return 0
	}
	return n
}
