package config

import (
	"fmt"
	"path/filepath"
	"strings"

	internal "github.com/ZanzyTHEbar/tokencount/tokencount"

	"github.com/spf13/viper"
)

// Engine names accepted in tokenizer.engine.
const (
	EngineHuggingFace = "huggingface"
	EngineTiktoken    = "tiktoken"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
}

// TokenizerConfig stores model resolution and engine selection settings.
type TokenizerConfig struct {
	ModelPath    string `mapstructure:"modelPath"`
	Engine       string `mapstructure:"engine"`
	Encoding     string `mapstructure:"encoding"`
	CountWorkers int    `mapstructure:"countWorkers"`
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join("etc", internal.DefaultAppName))
		viper.AddConfigPath(internal.DefaultConfigPath)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Set default values
	viper.SetDefault("tokenizer.modelPath", internal.DefaultModelPath)
	viper.SetDefault("tokenizer.engine", internal.DefaultEngine)
	viper.SetDefault("tokenizer.encoding", internal.DefaultEncoding)
	viper.SetDefault("tokenizer.countWorkers", internal.DefaultCountWorkers())

	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // e.g. tokenizer.modelPath becomes TOKENIZER_MODELPATH

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; defaults will be used.
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &AppConfig, nil
}
