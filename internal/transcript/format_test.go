package transcript

import (
	"reflect"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "timed lines with blank separator",
			raw:  "00:00:01 --> 00:00:02 Hello\n\n00:00:02 --> 00:00:03 world",
			want: "Hello\nworld",
		},
		{
			name: "bracketed engine output",
			raw:  "[00:00:00.000 --> 00:00:04.500]   Welcome everyone.\n[00:00:04.500 --> 00:00:09.000]   Let's start.\n",
			want: "Welcome everyone.\nLet's start.",
		},
		{
			name: "srt style comma millis",
			raw:  "00:01:02,500 --> 00:01:04,000 Second line",
			want: "Second line",
		},
		{
			name: "plain lines kept in order",
			raw:  "first\nsecond\nthird",
			want: "first\nsecond\nthird",
		},
		{
			name: "crlf and whitespace-only lines",
			raw:  "one\r\n   \r\n\ttwo\r\n",
			want: "one\n\ttwo",
		},
		{
			name: "marker line with no text is dropped",
			raw:  "00:00:01 --> 00:00:02\nkept",
			want: "kept",
		},
		{
			name: "last marker wins",
			raw:  "a --> b --> 00:00:03 tail",
			want: "tail",
		},
		{
			name: "second marker on a timed line",
			raw:  "00:00:01 --> 00:00:02 A --> B",
			want: "B",
		},
		{
			name: "spoken time after bare marker kept",
			raw:  "00:00:01 --> 5:00 pm works",
			want: "5:00 pm works",
		},
		{
			name: "bracketed short end time stripped",
			raw:  "[00:01 --> 00:02.000] short",
			want: "short",
		},
		{
			name: "end time needs a separator",
			raw:  "00:00:01 --> 00:00:02pm",
			want: "00:00:02pm",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "only blanks",
			raw:  "\n \n\t\n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.raw); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		"00:00:01 --> 00:00:02 Hello\n\n00:00:02 --> 00:00:03 world",
		"x\r\r\n  y  \n\n",
		"[00:00:00.000 --> 00:00:02.000]  00:00:05 nested time",
		"arrow in text --> 00:00:01 a --> b",
		"00:00:01 --> 5:00 pm works",
		"00:00:01 --> 00:00:02 A --> B",
	}
	for _, in := range inputs {
		once := Format(in)
		if twice := Format(once); twice != once {
			t.Errorf("Format not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestLines(t *testing.T) {
	if got := Lines(""); got != nil {
		t.Errorf("Lines(\"\") = %v, want nil", got)
	}
	want := []string{"Hello", "world"}
	if got := Lines("Hello\nworld"); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}
