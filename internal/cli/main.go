package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-summarizer/internal/prompt"
)

const defaultConfigPath = "config.yaml"

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := newRootCmd()
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "summarizer",
		Short:         "Transcribe a recording and summarize it with a local or hosted LLM",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "Config file (default "+defaultConfigPath+" when present)")

	runCmd := &cobra.Command{
		Use:   "run <audio>",
		Short: "Summarize one audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}
	runCmd.Flags().String("category", string(prompt.MeetingRecording), "Audio category: "+categoryList())
	runCmd.Flags().String("context", "", "Extra context passed to the model")
	runCmd.Flags().String("acoustic-model", "", "Speech model name (default from config)")
	runCmd.Flags().String("model", "", "Generation model (default from config)")
	runCmd.Flags().Bool("wait", false, "Wait for the file to appear and finish writing")
	runCmd.Flags().Duration("wait-timeout", 0, "Give up waiting after this long (0 = no limit)")
	runCmd.Flags().Bool("remove-input", false, "Delete the audio file when the run ends")
	runCmd.Flags().Bool("unique-transcript", false, "Write transcript-<run id> instead of the shared transcript file")

	// Hidden tuning flag (internal)
	runCmd.Flags().Duration("settle", 0, "Quiet period before a waited-for upload counts as complete")
	_ = runCmd.Flags().MarkHidden("settle")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "List available speech and generation models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listModels(cmd)
		},
	}

	root.AddCommand(runCmd, modelsCmd)
	return root
}

func categoryList() string {
	var slugs []string
	for _, c := range prompt.Categories() {
		slugs = append(slugs, c.Slug())
	}
	return strings.Join(slugs, ", ")
}
