package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
)

const (
	FormatText = "txt"
	FormatDocx = "docx"

	fontName = "Times New Roman"
	fontSize = 13
)

// Write persists a formatted transcript at path in the given format. The
// file at path is replaced atomically.
func Write(path, format, formatted string) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		return WriteText(path, formatted)
	case FormatDocx:
		return WriteDocx(path, formatted)
	default:
		return fmt.Errorf("unknown transcript format %q", format)
	}
}

// WriteText writes the transcript as UTF-8 plain text, one line per
// utterance, no header.
func WriteText(path, formatted string) error {
	return atomicWrite(path, func(tmpPath string) error {
		return os.WriteFile(tmpPath, []byte(formatted), 0644)
	})
}

// WriteDocx renders each transcript line as its own paragraph.
func WriteDocx(path, formatted string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	for _, line := range Lines(formatted) {
		p := doc.AddParagraph("")
		p.AddText(line).Font(fontName).Size(fontSize).Color("000000")
	}
	return atomicWrite(path, doc.SaveTo)
}

// atomicWrite lets save fill a temp file next to path, then renames it over
// path so readers never see a partial transcript.
func atomicWrite(path string, save func(tmpPath string) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".transcript-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := save(tmpPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing transcript: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming transcript: %w", err)
	}
	return nil
}
