package audio

import (
	"path/filepath"
	"strings"
)

// Asset identifies a source audio file for one run.
type Asset struct {
	Path   string
	Format string
}

// knownFormats lists containers ffmpeg decodes out of the box. Anything
// else is still handed to the converter, which has the final say.
var knownFormats = map[string]struct{}{
	"wav": {}, "mp3": {}, "m4a": {}, "aac": {}, "flac": {}, "ogg": {},
	"opus": {}, "webm": {}, "mp4": {}, "mov": {}, "mkv": {}, "wma": {},
}

// NewAsset infers the container format from the file extension.
func NewAsset(path string) Asset {
	return Asset{
		Path:   path,
		Format: strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
	}
}

// Known reports whether the asset's format is one of knownFormats.
func (a Asset) Known() bool {
	_, ok := knownFormats[a.Format]
	return ok
}
