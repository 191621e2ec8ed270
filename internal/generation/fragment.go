package generation

import (
	"context"
	"errors"
	"io"
	"strings"
)

// DecodeFailurePrefix starts the summary returned in place of an error when
// the backend sends a fragment that cannot be decoded.
const DecodeFailurePrefix = "Failed to parse the response from the server. Raw response: "

// Fragment is one piece of a streamed summary.
type Fragment struct {
	Text string
	Done bool
}

// FragmentStream yields fragments in arrival order. Next returns io.EOF once
// the backend has nothing more to send. A stream is read once and must be
// closed.
type FragmentStream interface {
	Next(ctx context.Context) (Fragment, error)
	Close() error
}

// Assemble concatenates fragment texts up to and including the first Done
// fragment, then closes the stream without reading further. A stream that
// ends without Done yields what was accumulated. A *DecodeError is turned
// into a diagnostic summary rather than an error.
func Assemble(ctx context.Context, stream FragmentStream) (string, error) {
	defer stream.Close()

	var sb strings.Builder
	for {
		f, err := stream.Next(ctx)
		if errors.Is(err, io.EOF) {
			return sb.String(), nil
		}
		if err != nil {
			var decErr *DecodeError
			if errors.As(err, &decErr) {
				return DecodeFailurePrefix + decErr.Raw, nil
			}
			return "", err
		}

		sb.WriteString(f.Text)
		if f.Done {
			return sb.String(), nil
		}
	}
}
