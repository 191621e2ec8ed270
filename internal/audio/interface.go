package audio

import "context"

// Normalizer converts arbitrary input audio into the canonical waveform the
// transcriber accepts: 16 kHz, mono, 16-bit PCM WAV.
type Normalizer interface {
	Normalize(ctx context.Context, inputPath string) (string, error)
}
