package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	SampleRate = 16000
	Channels   = 1

	convertedSuffix = "_converted"
)

// ConvertedPath returns the normalized output path for inputPath: same
// directory and stem, "_converted" suffix, ".wav" extension.
func ConvertedPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + convertedSuffix + ".wav"
}

// Normalize converts inputPath to 16kHz mono WAV next to the input.
// The input file is never modified or removed.
func (n *implNormalizer) Normalize(ctx context.Context, inputPath string) (string, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return "", fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("input %s is a directory", inputPath)
	}

	outputPath := ConvertedPath(inputPath)

	n.logger.Info(ctx, "Normalizing audio: %s", inputPath)

	// -y: overwrite output from a previous run
	// -vn: drop any video stream
	// -ar/-ac: fixed target sample rate and channel count
	// -c:a pcm_s16le: uncompressed 16-bit PCM
	args := []string{
		"-y",
		"-i", inputPath,
		"-vn",
		"-ar", strconv.Itoa(SampleRate),
		"-ac", strconv.Itoa(Channels),
		"-c:a", "pcm_s16le",
		outputPath,
	}

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	out, err := n.executor.Execute(ctx, n.binary, args...)
	if err != nil {
		return "", fmt.Errorf("ffmpeg normalize audio: %w", err)
	}
	if s := strings.TrimSpace(out.Stdout); s != "" {
		n.logger.Debug(ctx, "ffmpeg stdout: %s", s)
	}
	if s := strings.TrimSpace(out.Stderr); s != "" {
		n.logger.Debug(ctx, "ffmpeg stderr: %s", s)
	}

	n.logger.Info(ctx, "Audio normalized: %s", outputPath)
	return outputPath, nil
}
