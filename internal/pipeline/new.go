package pipeline

import (
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/prompt"
	"github.com/nguyentantai21042004/audio-summarizer/internal/transcript"
)

// Options controls where the transcript goes and which models are used when
// a request does not name them.
type Options struct {
	TranscriptPath   string
	TranscriptFormat string
	// UniquePerRun writes transcript-<run id>.<ext> next to TranscriptPath
	// instead of replacing TranscriptPath itself.
	UniquePerRun    bool
	AcousticModel   string
	GenerationModel string
}

type implPipeline struct {
	opts        Options
	normalizer  Normalizer
	transcriber Transcriber
	builder     prompt.Builder
	summarizer  Summarizer
	logger      logger.Logger

	// writeSlot serializes transcript writes from concurrent runs.
	writeSlot *semaphore
}

// New creates a new Pipeline instance
func New(opts Options, normalizer Normalizer, tr Transcriber, builder prompt.Builder, summarizer Summarizer, log logger.Logger) Pipeline {
	if opts.TranscriptFormat == "" {
		opts.TranscriptFormat = transcript.FormatText
	}
	if opts.TranscriptPath == "" {
		opts.TranscriptPath = "transcript." + opts.TranscriptFormat
	}
	return &implPipeline{
		opts:        opts,
		normalizer:  normalizer,
		transcriber: tr,
		builder:     builder,
		summarizer:  summarizer,
		logger:      log,
		writeSlot:   newSemaphore(1),
	}
}
