package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ModelPath returns where the model file for name is expected to live.
func ModelPath(modelDir, name string) string {
	return filepath.Join(modelDir, modelPrefix+name+modelExt)
}

func (t *implTranscriber) resolveModel(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", &ModelNotFoundError{Model: name}
	}
	path := ModelPath(t.opts.ModelDir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", &ModelNotFoundError{Model: name, Path: path}
	}
	return path, nil
}

// Transcribe runs the speech engine on audioPath and returns its stdout.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath, model string) (string, error) {
	modelPath, err := t.resolveModel(model)
	if err != nil {
		return "", err
	}

	// -m: model file
	// -f: input wav (16kHz mono)
	// -l: spoken language, engine auto-detects when omitted
	// -t: worker threads, engine default when omitted
	args := []string{
		"-m", modelPath,
		"-f", audioPath,
	}
	if t.opts.Language != "" {
		args = append(args, "-l", t.opts.Language)
	}
	if t.opts.Threads > 0 {
		args = append(args, "-t", strconv.Itoa(t.opts.Threads))
	}

	if err := os.MkdirAll(t.opts.TempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	rawPath := filepath.Join(t.opts.TempDir, "raw-"+uuid.NewString()+".txt")
	defer func() {
		if err := os.Remove(rawPath); err != nil && !os.IsNotExist(err) {
			t.logger.Warn(ctx, "Failed to remove raw transcript %s: %v", rawPath, err)
		}
	}()

	if t.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.opts.Timeout)
		defer cancel()
	}

	t.logger.Info(ctx, "Starting transcription with model %s: %s", model, audioPath)

	out, err := t.executor.ExecuteToFile(ctx, rawPath, t.opts.BinaryPath, args...)
	if err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}
	if s := strings.TrimSpace(out.Stderr); s != "" {
		t.logger.Debug(ctx, "whisper stderr: %s", s)
	}

	data, err := os.ReadFile(rawPath)
	if err != nil {
		return "", fmt.Errorf("read raw transcript: %w", err)
	}

	t.logger.Info(ctx, "Transcription completed: %d bytes", len(data))
	return string(data), nil
}
