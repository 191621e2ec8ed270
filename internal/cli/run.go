package cli

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/pipeline"
	"github.com/nguyentantai21042004/audio-summarizer/internal/prompt"
	"github.com/nguyentantai21042004/audio-summarizer/internal/watcher"
)

func run(cmd *cobra.Command, input string) error {
	category, _ := cmd.Flags().GetString("category")
	userContext, _ := cmd.Flags().GetString("context")
	acousticModel, _ := cmd.Flags().GetString("acoustic-model")
	model, _ := cmd.Flags().GetString("model")
	wait, _ := cmd.Flags().GetBool("wait")
	waitTimeout, _ := cmd.Flags().GetDuration("wait-timeout")
	settle, _ := cmd.Flags().GetDuration("settle")
	removeInput, _ := cmd.Flags().GetBool("remove-input")
	unique, _ := cmd.Flags().GetBool("unique-transcript")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("unique-transcript") {
		cfg.Transcript.UniquePerRun = unique
	}
	if model == "" && cfg.Generation.Model == "" {
		return fmt.Errorf("no generation model: pass --model or set generation.model")
	}

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.New(cfg.Logging.Level)
	logBanner(ctx, log, cfg)

	if err := cfg.Verify(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if wait {
		waitCtx := ctx
		if waitTimeout > 0 {
			var cancel context.CancelFunc
			waitCtx, cancel = context.WithTimeout(ctx, waitTimeout)
			defer cancel()
		}
		if err := watcher.New(settle, log.Named("watcher")).WaitReady(waitCtx, absIn); err != nil {
			return fmt.Errorf("wait for %s: %w", absIn, err)
		}
	}

	p, err := newPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}

	res, err := p.Run(ctx, pipeline.Request{
		AudioPath:       absIn,
		Context:         userContext,
		Category:        prompt.ParseCategory(category),
		AcousticModel:   acousticModel,
		GenerationModel: model,
		RemoveInput:     removeInput,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Summary)
	log.Info(ctx, "Transcript written to %s", res.TranscriptPath)
	return nil
}
