package generation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

// OpenAIOptions configures an OpenAI-compatible chat completions backend.
type OpenAIOptions struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	ReadTimeout    time.Duration
}

type openaiBackend struct {
	client         *openai.Client
	requestTimeout time.Duration
	readTimeout    time.Duration
	logger         logger.Logger
}

// NewOpenAI creates a Backend for the OpenAI chat completions API or any
// server that speaks it.
func NewOpenAI(opts OpenAIOptions, log logger.Logger) Backend {
	config := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		config.BaseURL = opts.BaseURL
	}
	return &openaiBackend{
		client:         openai.NewClientWithConfig(config),
		requestTimeout: opts.RequestTimeout,
		readTimeout:    opts.ReadTimeout,
		logger:         log,
	}
}

func (b *openaiBackend) Stream(ctx context.Context, model, prompt string) (FragmentStream, error) {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Stream: true,
	}

	streamCtx, cancel := context.WithCancel(ctx)
	timer := newIdleTimer(b.requestTimeout, cancel)

	b.logger.Debug(ctx, "OpenAI stream model=%s prompt=%d bytes", model, len(prompt))

	timer.arm()
	stream, err := b.client.CreateChatCompletionStream(streamCtx, req)
	timer.disarm()
	if err != nil {
		cancel()
		if serr := openaiServiceError(err); serr != nil {
			return nil, serr
		}
		return nil, readError(ctx, timer, err, "openai stream")
	}

	return &openaiStream{
		parent: ctx,
		stream: stream,
		cancel: cancel,
		timer:  newIdleTimer(b.readTimeout, cancel),
	}, nil
}

func (b *openaiBackend) ListModels(ctx context.Context) ([]string, error) {
	if b.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.requestTimeout)
		defer cancel()
	}

	list, err := b.client.ListModels(ctx)
	if err != nil {
		if serr := openaiServiceError(err); serr != nil {
			return nil, serr
		}
		return nil, fmt.Errorf("list models: %w", err)
	}

	models := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		models = append(models, m.ID)
	}
	sort.Strings(models)
	return models, nil
}

func openaiServiceError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return &ServiceError{StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &ServiceError{StatusCode: reqErr.HTTPStatusCode, Body: reqErr.Error()}
	}
	return nil
}

type openaiStream struct {
	parent context.Context
	stream *openai.ChatCompletionStream
	cancel context.CancelFunc
	timer  *idleTimer
	done   bool
}

func (s *openaiStream) Next(ctx context.Context) (Fragment, error) {
	if s.done {
		return Fragment{}, io.EOF
	}
	if err := ctx.Err(); err != nil {
		return Fragment{}, err
	}

	s.timer.arm()
	resp, err := s.stream.Recv()
	s.timer.disarm()

	if errors.Is(err, io.EOF) {
		s.done = true
		return Fragment{}, io.EOF
	}
	if err != nil {
		s.done = true
		if serr := openaiServiceError(err); serr != nil {
			return Fragment{}, serr
		}
		return Fragment{}, readError(s.parent, s.timer, err, "read openai stream")
	}

	f := openaiFragment(resp)
	if f.Done {
		s.done = true
	}
	return f, nil
}

func (s *openaiStream) Close() error {
	s.timer.disarm()
	err := s.stream.Close()
	s.cancel()
	return err
}

// openaiFragment takes the first choice of a chunk. Chunks without choices
// (usage reports) yield an empty fragment.
func openaiFragment(resp openai.ChatCompletionStreamResponse) Fragment {
	if len(resp.Choices) == 0 {
		return Fragment{}
	}
	choice := resp.Choices[0]
	return Fragment{
		Text: choice.Delta.Content,
		Done: choice.FinishReason != "",
	}
}
