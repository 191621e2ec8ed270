package transcriber

import "fmt"

// ModelNotFoundError reports an acoustic model that does not resolve to a
// file under the model directory.
type ModelNotFoundError struct {
	Model string
	Path  string
}

func (e *ModelNotFoundError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("acoustic model %q is not a valid model name", e.Model)
	}
	return fmt.Sprintf("acoustic model %q not found at %s", e.Model, e.Path)
}
