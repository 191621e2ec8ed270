package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestRunWithoutGenerationModel(t *testing.T) {
	t.Setenv("AUDIO_SUMMARIZER_GENERATION_MODEL", "")
	dir := t.TempDir()
	input := filepath.Join(dir, "memo.wav")
	if err := os.WriteFile(input, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}
	// Binaries do not exist: reaching tool verification would fail differently.
	cfgPath := writeConfig(t, fmt.Sprintf(
		"converter:\n  binary_path: %q\nwhisper:\n  binary_path: %q\n  model_dir: %q\n",
		filepath.Join(dir, "ffmpeg"), filepath.Join(dir, "whisper-cli"), dir))

	_, _, err := execute(t, "run", "--config", cfgPath, input)
	if err == nil || !strings.Contains(err.Error(), "no generation model") {
		t.Fatalf("run error = %v, want missing generation model", err)
	}
	if _, statErr := os.Stat(input); statErr != nil {
		t.Errorf("input touched: %v", statErr)
	}
}

func TestModelsContinuesWithoutSpeechModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"models":[{"model":"llama3:latest"}]}`)
	}))
	defer srv.Close()

	cfgPath := writeConfig(t, fmt.Sprintf(
		"whisper:\n  binary_path: ./whisper-cli\n  model_dir: %q\ngeneration:\n  base_url: %q\n  model: llama3:latest\n",
		filepath.Join(t.TempDir(), "missing"), srv.URL))

	stdout, stderr, err := execute(t, "models", "--config", cfgPath)
	if err != nil {
		t.Fatalf("models error = %v", err)
	}
	if !strings.Contains(stderr, "speech models unavailable") {
		t.Errorf("stderr = %q, want speech model error", stderr)
	}
	if !strings.Contains(stdout, "Generation models (ollama):") || !strings.Contains(stdout, "* llama3:latest") {
		t.Errorf("stdout = %q, want generation models listed", stdout)
	}
}
