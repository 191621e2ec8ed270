package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/transcript"
)

// run carries the state of a single Run call.
type run struct {
	result Result
	logger logger.Logger
	start  time.Time
}

func (r *run) advance(s State) {
	r.result.States = append(r.result.States, s)
}

func (r *run) fail(ctx context.Context, stage State, err error) (Result, error) {
	r.advance(StateFailed)
	r.result.Duration = time.Since(r.start)
	r.logger.Error(ctx, "Run failed at %s after %s: %v", stage, r.result.Duration, err)
	return r.result, &StageError{Stage: stage, Err: err}
}

// Run executes the whole pipeline for one recording. Intermediate files are
// removed whether the run succeeds or fails; the transcript file is kept.
func (p *implPipeline) Run(ctx context.Context, req Request) (Result, error) {
	id := uuid.NewString()
	r := &run{
		result: Result{RunID: id, States: []State{StateUploaded}},
		logger: p.logger.Named("run-" + id[:8]),
		start:  time.Now(),
	}

	asset := audio.NewAsset(req.AudioPath)
	r.logger.Info(ctx, "========================================")
	r.logger.Info(ctx, "Starting run %s: %s (%s)", id, asset.Path, req.Category)
	r.logger.Info(ctx, "========================================")
	if !asset.Known() {
		r.logger.Warn(ctx, "Unrecognized audio format %q, trying anyway", asset.Format)
	}

	if req.RemoveInput {
		defer p.cleanupTempFile(ctx, r.logger, req.AudioPath)
	}

	// Summarizing is the last step; find out now if it cannot happen.
	genModel := req.GenerationModel
	if genModel == "" {
		genModel = p.opts.GenerationModel
	}
	if genModel == "" {
		return r.fail(ctx, StateSummarized, ErrNoGenerationModel)
	}

	// Step 1: Normalize audio
	if err := ctx.Err(); err != nil {
		return r.fail(ctx, StateNormalized, err)
	}
	wavPath, err := p.normalizer.Normalize(ctx, req.AudioPath)
	if err != nil {
		p.removeIfExists(ctx, r.logger, audio.ConvertedPath(req.AudioPath))
		return r.fail(ctx, StateNormalized, fmt.Errorf("normalize audio: %w", err))
	}
	r.advance(StateNormalized)

	// Step 2: Transcribe, then drop the normalized audio either way
	if err := ctx.Err(); err != nil {
		p.cleanupTempFile(ctx, r.logger, wavPath)
		return r.fail(ctx, StateTranscribed, err)
	}
	model := req.AcousticModel
	if model == "" {
		model = p.opts.AcousticModel
	}
	raw, err := p.transcriber.Transcribe(ctx, wavPath, model)
	p.cleanupTempFile(ctx, r.logger, wavPath)
	if err != nil {
		return r.fail(ctx, StateTranscribed, fmt.Errorf("transcribe: %w", err))
	}
	r.advance(StateTranscribed)

	// Step 3: Format and persist
	if err := ctx.Err(); err != nil {
		return r.fail(ctx, StateFormatted, err)
	}
	formatted := transcript.Format(raw)
	if formatted == "" {
		return r.fail(ctx, StateFormatted, ErrEmptyTranscript)
	}
	path := p.transcriptPath(id)
	if err := p.writeTranscript(ctx, path, formatted); err != nil {
		return r.fail(ctx, StateFormatted, err)
	}
	r.result.TranscriptPath = path
	r.advance(StateFormatted)
	r.logger.Info(ctx, "Transcript saved: %s (%d lines)", path, len(transcript.Lines(formatted)))

	// Step 4: Summarize
	if err := ctx.Err(); err != nil {
		return r.fail(ctx, StateSummarized, err)
	}
	promptText := p.builder.Build(req.Category, req.Context, formatted)
	summary, err := p.summarizer.Summarize(ctx, genModel, promptText)
	if err != nil {
		return r.fail(ctx, StateSummarized, fmt.Errorf("summarize: %w", err))
	}
	r.result.Summary = summary
	r.advance(StateSummarized)
	r.advance(StateDone)

	r.result.Duration = time.Since(r.start)
	r.logger.Info(ctx, "========================================")
	r.logger.Info(ctx, "Run completed successfully!")
	r.logger.Info(ctx, "Transcript: %s", path)
	r.logger.Info(ctx, "Processing time: %s", r.result.Duration)
	r.logger.Info(ctx, "========================================")

	return r.result, nil
}

func (p *implPipeline) transcriptPath(runID string) string {
	if !p.opts.UniquePerRun {
		return p.opts.TranscriptPath
	}
	dir := filepath.Dir(p.opts.TranscriptPath)
	ext := filepath.Ext(p.opts.TranscriptPath)
	stem := strings.TrimSuffix(filepath.Base(p.opts.TranscriptPath), ext)
	return filepath.Join(dir, stem+"-"+runID+ext)
}

func (p *implPipeline) writeTranscript(ctx context.Context, path, formatted string) error {
	if err := p.writeSlot.acquire(ctx); err != nil {
		return err
	}
	defer p.writeSlot.release()

	if err := transcript.Write(path, p.opts.TranscriptFormat, formatted); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}
