package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/audio-summarizer/internal/config"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

// ErrNoModel is returned when neither the request nor the configuration
// names a generation model.
var ErrNoModel = errors.New("no generation model selected")

type implSummarizer struct {
	backend      Backend
	defaultModel string
	logger       logger.Logger
}

// New creates a Summarizer over backend. defaultModel is used when a call
// passes an empty model.
func New(backend Backend, defaultModel string, log logger.Logger) Summarizer {
	return &implSummarizer{
		backend:      backend,
		defaultModel: defaultModel,
		logger:       log,
	}
}

// NewFromConfig picks the backend named by cfg.Provider.
func NewFromConfig(ctx context.Context, cfg config.GenerationConfig, log logger.Logger) (Summarizer, error) {
	var (
		backend Backend
		err     error
	)

	switch cfg.Provider {
	case config.ProviderOllama, "":
		backend = NewOllama(OllamaOptions{
			BaseURL:        cfg.BaseURL,
			RequestTimeout: cfg.ParsedRequestTimeout(),
			ReadTimeout:    cfg.ParsedReadTimeout(),
		}, log)
	case config.ProviderOpenAI:
		backend = NewOpenAI(OpenAIOptions{
			APIKey:         cfg.APIKey,
			BaseURL:        cfg.BaseURL,
			RequestTimeout: cfg.ParsedRequestTimeout(),
			ReadTimeout:    cfg.ParsedReadTimeout(),
		}, log)
	case config.ProviderGemini:
		backend, err = NewGemini(ctx, GeminiOptions{
			APIKey:         cfg.APIKey,
			BaseURL:        cfg.BaseURL,
			RequestTimeout: cfg.ParsedRequestTimeout(),
			ReadTimeout:    cfg.ParsedReadTimeout(),
		}, log)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown generation provider %q", cfg.Provider)
	}

	return New(backend, cfg.Model, log), nil
}

// Summarize sends prompt once and assembles the streamed answer. Failed
// requests are not retried.
func (s *implSummarizer) Summarize(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		model = s.defaultModel
	}
	if model == "" {
		return "", ErrNoModel
	}

	s.logger.Info(ctx, "Generating summary with model %s", model)

	stream, err := s.backend.Stream(ctx, model, prompt)
	if err != nil {
		return "", err
	}

	summary, err := Assemble(ctx, stream)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(summary, DecodeFailurePrefix) {
		s.logger.Warn(ctx, "Generation response could not be decoded, returning raw body")
	}

	s.logger.Info(ctx, "Summary generated: %d chars", len(summary))
	return summary, nil
}

func (s *implSummarizer) ListModels(ctx context.Context) ([]string, error) {
	return s.backend.ListModels(ctx)
}
