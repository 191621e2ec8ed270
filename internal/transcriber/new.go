package transcriber

import (
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/pkg/executor"
)

// Options configures the speech engine invocation.
type Options struct {
	BinaryPath string
	ModelDir   string
	TempDir    string
	Language   string
	Threads    int
	Timeout    time.Duration
}

type implTranscriber struct {
	opts     Options
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Transcriber instance.
func New(opts Options, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		opts:     opts,
		executor: exec,
		logger:   log,
	}
}
