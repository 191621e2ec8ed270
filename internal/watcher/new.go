package watcher

import (
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

const defaultSettle = 500 * time.Millisecond

type implWatcher struct {
	settle time.Duration
	logger logger.Logger
}

// New creates a new Watcher instance. settle defaults to 500ms.
func New(settle time.Duration, log logger.Logger) Watcher {
	if settle <= 0 {
		settle = defaultSettle
	}
	return &implWatcher{
		settle: settle,
		logger: log,
	}
}
