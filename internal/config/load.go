package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads configuration from a YAML file, applies environment overrides,
// loads secrets, and validates the result. An empty path skips the file and
// starts from zero values.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	loadSecrets(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(EnvPrefix + key)); v != "" {
			*dst = v
		}
	}

	setString("CONVERTER_PATH", &cfg.Converter.BinaryPath)
	setString("CONVERTER_TIMEOUT", &cfg.Converter.Timeout)
	setString("WHISPER_PATH", &cfg.Whisper.BinaryPath)
	setString("WHISPER_MODEL_DIR", &cfg.Whisper.ModelDir)
	setString("WHISPER_MODEL", &cfg.Whisper.DefaultModel)
	setString("WHISPER_LANGUAGE", &cfg.Whisper.Language)
	setString("WHISPER_TIMEOUT", &cfg.Whisper.Timeout)
	setString("GENERATION_PROVIDER", &cfg.Generation.Provider)
	setString("GENERATION_BASE_URL", &cfg.Generation.BaseURL)
	setString("GENERATION_MODEL", &cfg.Generation.Model)
	setString("GENERATION_REQUEST_TIMEOUT", &cfg.Generation.RequestTimeout)
	setString("GENERATION_READ_TIMEOUT", &cfg.Generation.ReadTimeout)
	setString("TRANSCRIPT_PATH", &cfg.Transcript.Path)
	setString("TRANSCRIPT_FORMAT", &cfg.Transcript.Format)
	setString("TEMP_DIR", &cfg.Paths.Temp)
	setString("LOG_LEVEL", &cfg.Logging.Level)

	if v := os.Getenv(EnvPrefix + "WHISPER_THREADS"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
			cfg.Whisper.Threads = n
		}
	}
	if v := os.Getenv(EnvPrefix + "TRANSCRIPT_UNIQUE"); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.Transcript.UniquePerRun = b
		}
	}
}

func loadSecrets(cfg *Config) {
	var key string
	switch strings.ToLower(strings.TrimSpace(cfg.Generation.Provider)) {
	case ProviderGemini:
		key = firstEnv(EnvPrefix+"GEMINI_API_KEY", "GEMINI_API_KEY")
	case ProviderOpenAI:
		key = firstEnv(EnvPrefix+"OPENAI_API_KEY", "OPENAI_API_KEY")
	}
	cfg.Generation.APIKey = key
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}
