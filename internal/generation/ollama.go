package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

// OllamaOptions configures the Ollama backend.
type OllamaOptions struct {
	BaseURL string
	// RequestTimeout bounds connection setup and the wait for response
	// headers. Body reads are bounded per read by ReadTimeout.
	RequestTimeout time.Duration
	ReadTimeout    time.Duration
	HTTPClient     *http.Client
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type generateChunk struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error"`
}

type tagsResponse struct {
	Models []struct {
		Name  string `json:"name"`
		Model string `json:"model"`
	} `json:"models"`
}

type ollamaBackend struct {
	baseURL        string
	requestTimeout time.Duration
	readTimeout    time.Duration
	client         *http.Client
	logger         logger.Logger
}

// NewOllama creates a Backend for an Ollama server.
func NewOllama(opts OllamaOptions, log logger.Logger) Backend {
	client := opts.HTTPClient
	if client == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.ResponseHeaderTimeout = opts.RequestTimeout
		client = &http.Client{Transport: transport}
	}
	return &ollamaBackend{
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		requestTimeout: opts.RequestTimeout,
		readTimeout:    opts.ReadTimeout,
		client:         client,
		logger:         log,
	}
}

// Stream posts the prompt to /api/generate and returns the NDJSON response
// as a fragment stream. Non-2xx answers fail before streaming starts.
func (b *ollamaBackend) Stream(ctx context.Context, model, prompt string) (FragmentStream, error) {
	payload, err := json.Marshal(generateRequest{Model: model, Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("encode generate request: %w", err)
	}

	streamCtx, cancel := context.WithCancel(ctx)
	req, err := http.NewRequestWithContext(streamCtx, http.MethodPost, b.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	b.logger.Debug(ctx, "POST %s/api/generate model=%s prompt=%d bytes", b.baseURL, model, len(prompt))

	resp, err := b.client.Do(req)
	if err != nil {
		cancel()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("send generate request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxRawBody))
		resp.Body.Close()
		cancel()
		return nil, &ServiceError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return newNDJSONStream(ctx, resp.Body, cancel, b.readTimeout), nil
}

// ListModels returns the models installed on the server.
func (b *ollamaBackend) ListModels(ctx context.Context) ([]string, error) {
	if b.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.requestTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("build tags request: %w", err)
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxRawBody))
		return nil, &ServiceError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("decode tags response: %w", err)
	}

	models := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		name := m.Model
		if name == "" {
			name = m.Name
		}
		if name != "" {
			models = append(models, name)
		}
	}
	return models, nil
}
