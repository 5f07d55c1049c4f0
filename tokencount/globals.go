package internal

import (
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

var (
	// DefaultConfigPath is the default path to the config file
	DefaultAppName    = "tokencount"
	DefaultConfigPath = filepath.Join(getHomeDir(), ".config", DefaultAppName)

	// Default tokenizer settings
	DefaultModelPath = "./model"
	DefaultEngine    = "huggingface"
	DefaultEncoding  = "cl100k_base"
)

func getHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current working directory if home directory is unavailable
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			// Last resort - use tmp directory
			log.Printf("Unable to get home or working directory, using /tmp: %v", err)
			return "/tmp"
		}
		log.Printf("Unable to get home directory, using current working directory: %v", err)
		return cwd
	}
	return homeDir
}

// DefaultCountWorkers sizes worker pools for CPU-bound encoding work:
// CPU cores * 2, bounded for responsiveness and against resource exhaustion
func DefaultCountWorkers() int {
	return min(max(runtime.NumCPU()*2, 4), 32)
}

// GetLogger returns a properly configured zerolog logger instance
func GetLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
