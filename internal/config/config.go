// Package config resolves settings from flags, environment, dotenv and config files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "VAANI"

const (
	DefaultEndpoint = "https://api.sarvam.ai/text-to-speech"
	DefaultLanguage = "hi-IN"
	DefaultSpeaker  = "manisha"
	DefaultModel    = "bulbul:v2"
	DefaultCodec    = "wav"
	DefaultOutput   = "output.wav"
	DefaultTimeout  = 60 * time.Second
)

// Settings holds everything a synthesis run needs.
type Settings struct {
	APIKey            string        `mapstructure:"api_key"`
	Endpoint          string        `mapstructure:"endpoint"`
	Language          string        `mapstructure:"language"`
	Speaker           string        `mapstructure:"speaker"`
	Model             string        `mapstructure:"model"`
	Codec             string        `mapstructure:"codec"`
	Output            string        `mapstructure:"output"`
	Timeout           time.Duration `mapstructure:"timeout"`
	DBPath            string        `mapstructure:"db"`
	GoogleCredentials string        `mapstructure:"google_credentials"`
	GoogleProject     string        `mapstructure:"google_project"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_key", "")
	v.SetDefault("endpoint", DefaultEndpoint)
	v.SetDefault("language", DefaultLanguage)
	v.SetDefault("speaker", DefaultSpeaker)
	v.SetDefault("model", DefaultModel)
	v.SetDefault("codec", DefaultCodec)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("db", "")
	v.SetDefault("google_credentials", "")
	v.SetDefault("google_project", "")
}

// New loads envFile (a missing file is ignored), then returns a viper
// instance reading VAANI_* variables and, when given, configFile.
// SARVAM_API_KEY is accepted as an alias for VAANI_API_KEY.
func New(configFile, envFile string) (*viper.Viper, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api_key", "VAANI_API_KEY", "SARVAM_API_KEY"); err != nil {
		return nil, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return v, nil
}

func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return &s, nil
}

// Validate checks the settings required to call the provider.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.APIKey) == "" {
		return fmt.Errorf("API key required: use --api-key, SARVAM_API_KEY or api_key in the config file")
	}

	required := []struct {
		name  string
		value string
	}{
		{"language", s.Language},
		{"speaker", s.Speaker},
		{"model", s.Model},
		{"codec", s.Codec},
		{"output", s.Output},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s must not be empty", r.name)
		}
	}

	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", s.Timeout)
	}
	return nil
}
