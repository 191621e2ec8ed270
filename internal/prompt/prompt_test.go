package prompt

import (
	"strings"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"Meeting Recording", MeetingRecording},
		{"meeting-recording", MeetingRecording},
		{"meeting", MeetingRecording},
		{" SONG ", Song},
		{"voice_memo", VoiceMemo},
		{"memo", VoiceMemo},
		{"conference-talk", ConferenceTalk},
		{"talk", ConferenceTalk},
		{"Sermon", Category("Sermon")},
	}
	for _, tt := range tests {
		if got := ParseCategory(tt.in); got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultTemplatesCoverCategories(t *testing.T) {
	tmpl := DefaultTemplates()
	for _, c := range Categories() {
		text, ok := tmpl.Lookup(c)
		if !ok {
			t.Errorf("no template for %q", c)
			continue
		}
		for _, n := range []string{"1.", "7."} {
			if !strings.Contains(text, n) {
				t.Errorf("%q template missing point %s", c, n)
			}
		}
	}
}

func TestBuildSong(t *testing.T) {
	b := New(DefaultTemplates())
	got := b.Build(Song, "Live recording", "la la")

	song, _ := DefaultTemplates().Lookup(Song)
	if !strings.HasPrefix(got, song) {
		t.Fatalf("prompt does not start with the Song instruction:\n%s", got)
	}

	order := []string{
		"1. The main theme or message of the song.",
		"\n\nContext: Live recording",
		"\n\nTranscript:\nla la",
		"\n\nSummary:",
	}
	pos := -1
	for _, part := range order {
		i := strings.Index(got, part)
		if i <= pos {
			t.Fatalf("%q out of order in:\n%s", part, got)
		}
		pos = i
	}
	if !strings.HasSuffix(got, "Summary:") {
		t.Errorf("prompt should end with the Summary cue")
	}
}

func TestBuildLayout(t *testing.T) {
	tmpl := DefaultTemplates().WithOverrides(map[string]string{"podcast": "Summarize."})
	got := New(tmpl).Build(Podcast, "ep 12", "hi")
	want := "Summarize.\n\nContext: ep 12\n\nTranscript:\nhi\n\nSummary:"
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestBuildFallbackAndPlaceholder(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		context  string
		want     []string
	}{
		{
			name:     "unknown category",
			category: Category("Sermon"),
			context:  "church",
			want:     []string{FallbackInstruction + "\n\nContext: church"},
		},
		{
			name:     "empty context",
			category: Lecture,
			want:     []string{"Context: " + NoContext},
		},
		{
			name:     "whitespace context",
			category: Lecture,
			context:  "  \n\t",
			want:     []string{"Context: " + NoContext},
		},
	}

	b := New(DefaultTemplates())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Build(tt.category, tt.context, "text")
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Build() = %q, missing %q", got, w)
				}
			}
		})
	}
}

func TestWithOverridesDoesNotMutate(t *testing.T) {
	base := DefaultTemplates()
	over := base.WithOverrides(map[string]string{
		"Song":    "Just the chorus.",
		"sermon":  "Summarize the sermon.",
		"lecture": "   ",
	})

	if text, _ := base.Lookup(Song); text == "Just the chorus." {
		t.Errorf("base table was mutated")
	}
	if text, _ := over.Lookup(Song); text != "Just the chorus." {
		t.Errorf("override not applied, got %q", text)
	}
	if _, ok := over.Lookup(Category("sermon")); !ok {
		t.Errorf("new category not added")
	}
	if text, _ := over.Lookup(Lecture); strings.TrimSpace(text) == "" {
		t.Errorf("blank override should be ignored")
	}
}

func TestBuildSongNoContext(t *testing.T) {
	got := New(DefaultTemplates()).Build(Song, "", "test")

	song, _ := DefaultTemplates().Lookup(Song)
	parts := []string{song, NoContext, "test"}
	pos := -1
	for _, part := range parts {
		i := strings.Index(got[pos+1:], part)
		if i < 0 {
			t.Fatalf("%q missing or out of order in:\n%s", part, got)
		}
		pos += 1 + i
	}
}
