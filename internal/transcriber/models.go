package transcriber

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

const (
	modelPrefix = "ggml-"
	modelExt    = ".bin"
)

// sizeMarkers are the model sizes offered to users; tiny and test
// artifacts shipped alongside are hidden.
var sizeMarkers = []string{"base", "small", "medium", "large", "large-v3"}

// ListModels returns the selectable acoustic model names found in the model
// directory, sorted and without the ggml- prefix.
func (t *implTranscriber) ListModels() ([]string, error) {
	entries, err := os.ReadDir(t.opts.ModelDir)
	if err != nil {
		return nil, fmt.Errorf("read model dir: %w", err)
	}

	var models []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, modelPrefix) || !strings.HasSuffix(name, modelExt) {
			continue
		}
		if !selectable(name) {
			continue
		}
		models = append(models, strings.TrimSuffix(strings.TrimPrefix(name, modelPrefix), modelExt))
	}
	sort.Strings(models)
	return models, nil
}

func selectable(filename string) bool {
	lower := strings.ToLower(filename)
	if strings.Contains(lower, "test") {
		return false
	}
	for _, m := range sizeMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
