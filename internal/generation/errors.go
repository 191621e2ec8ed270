package generation

import (
	"errors"
	"fmt"
)

// maxRawBody caps response bytes kept for diagnostics.
const maxRawBody = 64 << 10

// ErrReadTimeout is returned when the backend sends nothing for longer than
// the configured read timeout.
var ErrReadTimeout = errors.New("generation stream read timed out")

// ServiceError reports a non-success answer from the generation service.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("generation service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("generation service returned status %d: %s", e.StatusCode, e.Body)
}

// DecodeError reports a fragment that is not valid JSON. Raw holds the
// response bytes received so far plus whatever remained in the body.
type DecodeError struct {
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode generation fragment: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
