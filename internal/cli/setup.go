package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/config"
	"github.com/nguyentantai21042004/audio-summarizer/internal/generation"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/pipeline"
	"github.com/nguyentantai21042004/audio-summarizer/internal/prompt"
	"github.com/nguyentantai21042004/audio-summarizer/internal/transcriber"
	"github.com/nguyentantai21042004/audio-summarizer/pkg/executor"
)

// loadConfig reads --config, or config.yaml when it exists, or nothing.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func newTranscriber(cfg *config.Config, exec executor.Executor, log logger.Logger) transcriber.Transcriber {
	return transcriber.New(transcriber.Options{
		BinaryPath: cfg.Whisper.BinaryPath,
		ModelDir:   cfg.Whisper.ModelDir,
		TempDir:    cfg.Paths.Temp,
		Language:   cfg.Whisper.Language,
		Threads:    cfg.Whisper.Threads,
		Timeout:    cfg.Whisper.ParsedTimeout(),
	}, exec, log.Named("transcriber"))
}

func newPipeline(ctx context.Context, cfg *config.Config, log logger.Logger) (pipeline.Pipeline, error) {
	exec := executor.New()

	normalizer := audio.New(cfg.Converter.BinaryPath, cfg.Converter.ParsedTimeout(), exec, log.Named("audio"))
	tr := newTranscriber(cfg, exec, log)

	summarizer, err := generation.NewFromConfig(ctx, cfg.Generation, log.Named("generation"))
	if err != nil {
		return nil, err
	}

	templates := prompt.DefaultTemplates().WithOverrides(cfg.Prompts.Templates)

	return pipeline.New(pipeline.Options{
		TranscriptPath:   cfg.Transcript.Path,
		TranscriptFormat: cfg.Transcript.Format,
		UniquePerRun:     cfg.Transcript.UniquePerRun,
		AcousticModel:    cfg.Whisper.DefaultModel,
		GenerationModel:  cfg.Generation.Model,
	}, normalizer, tr, prompt.New(templates), summarizer, log.Named("pipeline")), nil
}

func logBanner(ctx context.Context, log logger.Logger, cfg *config.Config) {
	log.Info(ctx, "========================================")
	log.Info(ctx, "Audio Summarizer")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Speech engine: %s (models in %s)", cfg.Whisper.BinaryPath, cfg.Whisper.ModelDir)
	log.Info(ctx, "Generation: %s at %s", cfg.Generation.Provider, displayURL(cfg.Generation.BaseURL))
	log.Info(ctx, "Transcript: %s (%s)", cfg.Transcript.Path, cfg.Transcript.Format)
}

func displayURL(u string) string {
	if u == "" {
		return "default endpoint"
	}
	return u
}
