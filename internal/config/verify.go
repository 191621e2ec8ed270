package config

import (
	"fmt"
	"os"
	"os/exec"
)

// Verify checks that the configured tools and directories exist. It runs
// once at startup, before any pipeline stage.
func (c *Config) Verify() error {
	if _, err := exec.LookPath(c.Converter.BinaryPath); err != nil {
		return fmt.Errorf("converter.binary_path %q: %w", c.Converter.BinaryPath, err)
	}
	if _, err := exec.LookPath(c.Whisper.BinaryPath); err != nil {
		return fmt.Errorf("whisper.binary_path %q: %w", c.Whisper.BinaryPath, err)
	}

	info, err := os.Stat(c.Whisper.ModelDir)
	if err != nil {
		return fmt.Errorf("whisper.model_dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("whisper.model_dir %q is not a directory", c.Whisper.ModelDir)
	}

	if err := os.MkdirAll(c.Paths.Temp, 0755); err != nil {
		return fmt.Errorf("create temp dir %s: %w", c.Paths.Temp, err)
	}
	return nil
}
