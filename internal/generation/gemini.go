package generation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"sort"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

// GeminiOptions configures the Gemini backend.
type GeminiOptions struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	ReadTimeout    time.Duration
}

type geminiBackend struct {
	client         *genai.Client
	requestTimeout time.Duration
	readTimeout    time.Duration
	logger         logger.Logger
}

// NewGemini creates a Backend for the Gemini API.
func NewGemini(ctx context.Context, opts GeminiOptions, log logger.Logger) (Backend, error) {
	config := &genai.ClientConfig{APIKey: opts.APIKey, Backend: genai.BackendGeminiAPI}
	if opts.BaseURL != "" {
		config.HTTPOptions.BaseURL = opts.BaseURL
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &geminiBackend{
		client:         client,
		requestTimeout: opts.RequestTimeout,
		readTimeout:    opts.ReadTimeout,
		logger:         log,
	}, nil
}

func (b *geminiBackend) Stream(ctx context.Context, model, prompt string) (FragmentStream, error) {
	streamCtx, cancel := context.WithCancel(ctx)

	b.logger.Debug(ctx, "Gemini stream model=%s prompt=%d bytes", model, len(prompt))

	seq := b.client.Models.GenerateContentStream(streamCtx, model, genai.Text(prompt), nil)
	next, stop := iter.Pull2(seq)

	// The first response also carries the request round trip.
	var first time.Duration
	if b.readTimeout > 0 {
		first = b.requestTimeout + b.readTimeout
	}

	return &geminiStream{
		parent: ctx,
		next:   next,
		stop:   stop,
		cancel: cancel,
		first:  newIdleTimer(first, cancel),
		timer:  newIdleTimer(b.readTimeout, cancel),
	}, nil
}

func (b *geminiBackend) ListModels(ctx context.Context) ([]string, error) {
	if b.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.requestTimeout)
		defer cancel()
	}

	var models []string
	for m, err := range b.client.Models.All(ctx) {
		if err != nil {
			if serr := geminiServiceError(err); serr != nil {
				return nil, serr
			}
			return nil, fmt.Errorf("list models: %w", err)
		}
		if !supportsGeneration(m) {
			continue
		}
		models = append(models, strings.TrimPrefix(m.Name, "models/"))
	}
	sort.Strings(models)
	return models, nil
}

func supportsGeneration(m *genai.Model) bool {
	if m == nil {
		return false
	}
	if len(m.SupportedActions) == 0 {
		return true
	}
	for _, a := range m.SupportedActions {
		if a == "generateContent" {
			return true
		}
	}
	return false
}

func geminiServiceError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code != 0 {
		return &ServiceError{StatusCode: apiErr.Code, Body: apiErr.Message}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil && apiErrPtr.Code != 0 {
		return &ServiceError{StatusCode: apiErrPtr.Code, Body: apiErrPtr.Message}
	}
	return nil
}

type geminiStream struct {
	parent  context.Context
	next    func() (*genai.GenerateContentResponse, error, bool)
	stop    func()
	cancel  context.CancelFunc
	first   *idleTimer
	timer   *idleTimer
	started bool
	done    bool
}

func (s *geminiStream) Next(ctx context.Context) (Fragment, error) {
	if s.done {
		return Fragment{}, io.EOF
	}
	if err := ctx.Err(); err != nil {
		return Fragment{}, err
	}

	timer := s.timer
	if !s.started {
		timer = s.first
		s.started = true
	}

	timer.arm()
	resp, err, ok := s.next()
	timer.disarm()

	if !ok {
		s.done = true
		// A sequence cut short by our own cancel is not a clean end.
		if s.parent.Err() != nil || timer.expired() {
			return Fragment{}, readError(s.parent, timer, io.ErrUnexpectedEOF, "read gemini stream")
		}
		return Fragment{}, io.EOF
	}
	if err != nil {
		s.done = true
		if serr := geminiServiceError(err); serr != nil {
			return Fragment{}, serr
		}
		return Fragment{}, readError(s.parent, timer, err, "read gemini stream")
	}

	f := geminiFragment(resp)
	if f.Done {
		s.done = true
	}
	return f, nil
}

func (s *geminiStream) Close() error {
	s.first.disarm()
	s.timer.disarm()
	s.stop()
	s.cancel()
	return nil
}

// geminiFragment joins the text parts of the first candidate, skipping
// model thoughts. A finish reason marks the last fragment.
func geminiFragment(resp *genai.GenerateContentResponse) Fragment {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return Fragment{}
	}
	c := resp.Candidates[0]

	var sb strings.Builder
	if c.Content != nil {
		for _, part := range c.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			sb.WriteString(part.Text)
		}
	}
	return Fragment{Text: sb.String(), Done: c.FinishReason != ""}
}
