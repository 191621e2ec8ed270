package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/prompt"
)

// ErrEmptyTranscript is returned when formatting leaves no speech at all.
var ErrEmptyTranscript = errors.New("transcript is empty after formatting")

// ErrNoGenerationModel is returned before any work starts when neither the
// request nor Options name a generation model.
var ErrNoGenerationModel = errors.New("no generation model selected")

// Request describes one run.
type Request struct {
	AudioPath       string
	Context         string
	Category        prompt.Category
	AcousticModel   string
	GenerationModel string
	// RemoveInput deletes AudioPath once the run ends, whatever the outcome.
	RemoveInput bool
}

// Result is what a run produced. States lists every state the run passed
// through, ending in StateDone or StateFailed.
type Result struct {
	RunID          string
	Summary        string
	TranscriptPath string
	States         []State
	Duration       time.Duration
}

// State is a step of the run state machine.
type State string

const (
	StateUploaded    State = "uploaded"
	StateNormalized  State = "normalized"
	StateTranscribed State = "transcribed"
	StateFormatted   State = "formatted"
	StateSummarized  State = "summarized"
	StateDone        State = "done"
	StateFailed      State = "failed"
)

// StageError reports the state a run was trying to reach when it failed.
type StageError struct {
	Stage State
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
