package pipeline

import "context"

// Pipeline runs one recording through normalize, transcribe, format,
// persist and summarize.
type Pipeline interface {
	Run(ctx context.Context, req Request) (Result, error)
}

// Normalizer converts the uploaded audio into the transcriber's input.
type Normalizer interface {
	Normalize(ctx context.Context, inputPath string) (string, error)
}

// Transcriber produces raw speech-engine output for normalized audio.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, model string) (string, error)
}

// Summarizer turns a prompt into a summary.
type Summarizer interface {
	Summarize(ctx context.Context, model, prompt string) (string, error)
}
