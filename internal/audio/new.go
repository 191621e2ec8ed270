package audio

import (
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/pkg/executor"
)

type implNormalizer struct {
	binary   string
	timeout  time.Duration
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Normalizer that runs the converter at binaryPath. A zero
// timeout leaves the call bounded only by the caller's context.
func New(binaryPath string, timeout time.Duration, exec executor.Executor, log logger.Logger) Normalizer {
	if binaryPath == "" {
		binaryPath = "ffmpeg"
	}
	return &implNormalizer{
		binary:   binaryPath,
		timeout:  timeout,
		executor: exec,
		logger:   log,
	}
}
