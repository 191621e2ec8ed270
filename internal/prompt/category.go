package prompt

import "strings"

// Category selects the instruction template used for a recording.
type Category string

const (
	MeetingRecording Category = "Meeting Recording"
	Song             Category = "Song"
	Lecture          Category = "Lecture"
	Podcast          Category = "Podcast"
	Interview        Category = "Interview"
	Audiobook        Category = "Audiobook"
	VoiceMemo        Category = "Voice Memo"
	ConferenceTalk   Category = "Conference Talk"
)

var categories = []Category{
	MeetingRecording,
	Song,
	Lecture,
	Podcast,
	Interview,
	Audiobook,
	VoiceMemo,
	ConferenceTalk,
}

// Categories returns the built-in categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Slug returns the lower-case, dash-separated form used on the command line.
func (c Category) Slug() string {
	return slugify(string(c))
}

// ParseCategory maps a display name or slug ("voice-memo", "meeting") to a
// built-in category. Unknown values are returned unchanged so the builder can
// apply its fallback instruction.
func ParseCategory(s string) Category {
	trimmed := strings.TrimSpace(s)
	key := slugify(trimmed)
	for _, c := range categories {
		if key == c.Slug() {
			return c
		}
	}
	if key == "meeting" {
		return MeetingRecording
	}
	if key == "memo" {
		return VoiceMemo
	}
	if key == "talk" || key == "conference" {
		return ConferenceTalk
	}
	return Category(trimmed)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", "-", " ", "-").Replace(s)
	return s
}
