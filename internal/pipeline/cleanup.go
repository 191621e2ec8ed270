package pipeline

import (
	"context"
	"os"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

// cleanupTempFile removes a file, logs warning if fails
func (p *implPipeline) cleanupTempFile(ctx context.Context, log logger.Logger, filePath string) {
	if err := os.Remove(filePath); err != nil {
		log.Warn(ctx, "Failed to cleanup file %s: %v", filePath, err)
	} else {
		log.Debug(ctx, "Cleaned up file: %s", filePath)
	}
}

// removeIfExists drops a partial output the converter may have left behind.
func (p *implPipeline) removeIfExists(ctx context.Context, log logger.Logger, filePath string) {
	if _, err := os.Stat(filePath); err != nil {
		return
	}
	p.cleanupTempFile(ctx, log, filePath)
}
