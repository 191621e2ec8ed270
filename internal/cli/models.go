package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-summarizer/internal/generation"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/pkg/executor"
)

func listModels(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.New(cfg.Logging.Level)
	out := cmd.OutOrStdout()

	speech, err := newTranscriber(cfg, executor.New(), log).ListModels()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "speech models unavailable: %v\n", err)
	} else {
		fmt.Fprintf(out, "Speech models (%s):\n", cfg.Whisper.ModelDir)
		for _, m := range speech {
			marker := " "
			if m == cfg.Whisper.DefaultModel {
				marker = "*"
			}
			fmt.Fprintf(out, " %s %s\n", marker, m)
		}
	}

	summarizer, err := generation.NewFromConfig(ctx, cfg.Generation, log.Named("generation"))
	if err != nil {
		return err
	}
	generative, err := summarizer.ListModels(ctx)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "generation models unavailable: %v\n", err)
		return nil
	}
	fmt.Fprintf(out, "Generation models (%s):\n", cfg.Generation.Provider)
	for _, m := range generative {
		marker := " "
		if m == cfg.Generation.Model {
			marker = "*"
		}
		fmt.Fprintf(out, " %s %s\n", marker, m)
	}
	return nil
}
