package generation

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// ndjsonStream decodes one JSON object per line from a streaming body.
type ndjsonStream struct {
	parent   context.Context
	body     io.ReadCloser
	reader   *bufio.Reader
	cancel   context.CancelFunc
	timer    *idleTimer
	consumed bytes.Buffer
	done     bool
}

func newNDJSONStream(parent context.Context, body io.ReadCloser, cancel context.CancelFunc, readTimeout time.Duration) *ndjsonStream {
	return &ndjsonStream{
		parent: parent,
		body:   body,
		reader: bufio.NewReader(body),
		cancel: cancel,
		timer:  newIdleTimer(readTimeout, cancel),
	}
}

func (s *ndjsonStream) Next(ctx context.Context) (Fragment, error) {
	if s.done {
		return Fragment{}, io.EOF
	}

	for {
		if err := ctx.Err(); err != nil {
			return Fragment{}, err
		}

		s.timer.arm()
		line, err := s.reader.ReadBytes('\n')
		s.timer.disarm()
		s.keep(line)

		if err != nil && !errors.Is(err, io.EOF) {
			s.done = true
			return Fragment{}, readError(s.parent, s.timer, err, "read generation stream")
		}

		if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			var chunk generateChunk
			if jerr := json.Unmarshal(trimmed, &chunk); jerr != nil {
				s.done = true
				return Fragment{}, &DecodeError{Raw: s.raw(), Err: jerr}
			}
			if chunk.Error != "" {
				s.done = true
				return Fragment{}, &ServiceError{StatusCode: http.StatusOK, Body: chunk.Error}
			}
			if chunk.Done {
				s.done = true
			}
			return Fragment{Text: chunk.Response, Done: chunk.Done}, nil
		}

		if err != nil {
			s.done = true
			return Fragment{}, io.EOF
		}
	}
}

func (s *ndjsonStream) Close() error {
	s.timer.disarm()
	err := s.body.Close()
	s.cancel()
	return err
}

func (s *ndjsonStream) keep(b []byte) {
	if room := maxRawBody - s.consumed.Len(); room > 0 {
		if len(b) > room {
			b = b[:room]
		}
		s.consumed.Write(b)
	}
}

// raw returns everything read so far plus the unread remainder of the body.
func (s *ndjsonStream) raw() string {
	s.timer.arm()
	rest, _ := io.ReadAll(io.LimitReader(s.reader, int64(maxRawBody)))
	s.timer.disarm()
	s.keep(rest)
	return s.consumed.String()
}
