package transcriber

import "context"

// Transcriber turns normalized audio into raw speech-engine text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, model string) (string, error)
	ListModels() ([]string, error)
}
