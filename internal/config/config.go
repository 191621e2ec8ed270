package config

import (
	"fmt"
	"strings"
	"time"
)

// EnvPrefix is the namespace prefix for all environment overrides.
const EnvPrefix = "AUDIO_SUMMARIZER_"

const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	FormatText = "txt"
	FormatDocx = "docx"
)

const (
	defaultConverterTimeout  = 10 * time.Minute
	defaultWhisperTimeout    = 30 * time.Minute
	defaultRequestTimeout    = 2 * time.Minute
	defaultReadTimeout       = 2 * time.Minute
	defaultTranscriptName    = "transcript"
	defaultOllamaBaseURL     = "http://localhost:11434"
	defaultOpenAIBaseURL     = "https://api.openai.com/v1"
	defaultGeminiModel       = "gemini-2.5-flash"
	defaultOpenAIModel       = "gpt-4o-mini"
	defaultTempDir           = "data/temp"
	defaultAcousticModelName = "base"
)

type Config struct {
	Converter  ConverterConfig  `yaml:"converter"`
	Whisper    WhisperConfig    `yaml:"whisper"`
	Generation GenerationConfig `yaml:"generation"`
	Transcript TranscriptConfig `yaml:"transcript"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
	Prompts    PromptsConfig    `yaml:"prompts"`
}

type ConverterConfig struct {
	BinaryPath string `yaml:"binary_path"`
	Timeout    string `yaml:"timeout"`
}

type WhisperConfig struct {
	BinaryPath   string `yaml:"binary_path"`
	ModelDir     string `yaml:"model_dir"`
	DefaultModel string `yaml:"default_model"`
	Language     string `yaml:"language"`
	Threads      int    `yaml:"threads"`
	Timeout      string `yaml:"timeout"`
}

type GenerationConfig struct {
	Provider       string `yaml:"provider"`
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	RequestTimeout string `yaml:"request_timeout"`
	ReadTimeout    string `yaml:"read_timeout"`

	// Secret, env only.
	APIKey string `yaml:"-"`
}

type TranscriptConfig struct {
	Path         string `yaml:"path"`
	Format       string `yaml:"format"`
	UniquePerRun bool   `yaml:"unique_per_run"`
}

type PathsConfig struct {
	Temp string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PromptsConfig struct {
	// Templates overrides or extends the built-in category templates,
	// keyed by category name or slug.
	Templates map[string]string `yaml:"templates"`
}

// Validate checks required fields and fills in defaults. It does not touch
// the filesystem; see Verify.
func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelDir == "" {
		return fmt.Errorf("whisper.model_dir is required")
	}
	if c.Whisper.Threads < 0 {
		return fmt.Errorf("whisper.threads must be >= 0")
	}

	if c.Converter.BinaryPath == "" {
		c.Converter.BinaryPath = "ffmpeg"
	}
	if c.Whisper.DefaultModel == "" {
		c.Whisper.DefaultModel = defaultAcousticModelName
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = defaultTempDir
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch c.Logging.Level {
	case "":
		c.Logging.Level = "info"
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is invalid: expected debug, info, warn or error", c.Logging.Level)
	}

	if err := c.Generation.validate(); err != nil {
		return err
	}
	if err := c.Transcript.validate(); err != nil {
		return err
	}

	for _, d := range []struct {
		field string
		value *string
		def   time.Duration
	}{
		{"converter.timeout", &c.Converter.Timeout, defaultConverterTimeout},
		{"whisper.timeout", &c.Whisper.Timeout, defaultWhisperTimeout},
		{"generation.request_timeout", &c.Generation.RequestTimeout, defaultRequestTimeout},
		{"generation.read_timeout", &c.Generation.ReadTimeout, defaultReadTimeout},
	} {
		if err := validateDuration(d.field, d.value, d.def); err != nil {
			return err
		}
	}

	for name, tmpl := range c.Prompts.Templates {
		if strings.TrimSpace(tmpl) == "" {
			return fmt.Errorf("prompts.templates[%q] is empty", name)
		}
	}

	return nil
}

func (g *GenerationConfig) validate() error {
	g.Provider = strings.ToLower(strings.TrimSpace(g.Provider))
	if g.Provider == "" {
		g.Provider = ProviderOllama
	}

	switch g.Provider {
	case ProviderOllama:
		if g.BaseURL == "" {
			g.BaseURL = defaultOllamaBaseURL
		}
	case ProviderOpenAI:
		if g.BaseURL == "" {
			g.BaseURL = defaultOpenAIBaseURL
		}
		if g.Model == "" {
			g.Model = defaultOpenAIModel
		}
		if g.APIKey == "" {
			return fmt.Errorf("generation provider %q requires %sOPENAI_API_KEY", g.Provider, EnvPrefix)
		}
	case ProviderGemini:
		if g.Model == "" {
			g.Model = defaultGeminiModel
		}
		if g.APIKey == "" {
			return fmt.Errorf("generation provider %q requires %sGEMINI_API_KEY", g.Provider, EnvPrefix)
		}
	default:
		return fmt.Errorf("unknown generation.provider %q: supported providers are ollama, gemini, openai", g.Provider)
	}

	if g.BaseURL != "" {
		if err := ValidateBaseURL(g.BaseURL); err != nil {
			return fmt.Errorf("generation.base_url: %w", err)
		}
	}
	return nil
}

func (t *TranscriptConfig) validate() error {
	t.Format = strings.ToLower(strings.TrimSpace(t.Format))
	if t.Format == "" {
		t.Format = FormatText
	}
	if t.Format != FormatText && t.Format != FormatDocx {
		return fmt.Errorf("transcript.format %q is invalid: expected txt or docx", t.Format)
	}
	if t.Path == "" {
		t.Path = defaultTranscriptName + "." + t.Format
	}
	return nil
}

func validateDuration(field string, value *string, def time.Duration) error {
	if strings.TrimSpace(*value) == "" {
		*value = def.String()
		return nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(*value))
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if d <= 0 {
		return fmt.Errorf("%s must be > 0", field)
	}
	return nil
}

// mustDuration parses a value that Validate has already checked.
func mustDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func (c *ConverterConfig) ParsedTimeout() time.Duration {
	return mustDuration(c.Timeout, defaultConverterTimeout)
}

func (c *WhisperConfig) ParsedTimeout() time.Duration {
	return mustDuration(c.Timeout, defaultWhisperTimeout)
}

func (c *GenerationConfig) ParsedRequestTimeout() time.Duration {
	return mustDuration(c.RequestTimeout, defaultRequestTimeout)
}

func (c *GenerationConfig) ParsedReadTimeout() time.Duration {
	return mustDuration(c.ReadTimeout, defaultReadTimeout)
}
