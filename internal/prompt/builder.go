package prompt

import "strings"

const (
	FallbackInstruction = "No prompt available for this audio type."
	NoContext           = "No additional context provided."
)

type implBuilder struct {
	templates Templates
}

// New creates a Builder over a fixed template table.
func New(templates Templates) Builder {
	return &implBuilder{templates: templates}
}

// Build lays out instruction, context, transcript and the trailing
// "Summary:" cue, each section separated by a blank line.
func (b *implBuilder) Build(category Category, context, transcript string) string {
	instruction, ok := b.templates.Lookup(category)
	if !ok {
		instruction = FallbackInstruction
	}
	if strings.TrimSpace(context) == "" {
		context = NoContext
	}

	var sb strings.Builder
	sb.Grow(len(instruction) + len(context) + len(transcript) + 48)
	sb.WriteString(instruction)
	sb.WriteString("\n\nContext: ")
	sb.WriteString(context)
	sb.WriteString("\n\nTranscript:\n")
	sb.WriteString(transcript)
	sb.WriteString("\n\nSummary:")
	return sb.String()
}
