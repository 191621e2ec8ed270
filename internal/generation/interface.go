package generation

import "context"

// Summarizer turns a prompt into a complete summary using a streaming
// generation backend.
type Summarizer interface {
	Summarize(ctx context.Context, model, prompt string) (string, error)
	ListModels(ctx context.Context) ([]string, error)
}

// Backend opens a fragment stream for one generation request.
type Backend interface {
	Stream(ctx context.Context, model, prompt string) (FragmentStream, error)
	ListModels(ctx context.Context) ([]string, error)
}
