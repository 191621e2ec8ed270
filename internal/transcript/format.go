// Package transcript turns raw speech-engine output into the persisted
// transcript and writes it to disk.
package transcript

import (
	"regexp"
	"strings"
)

const timingMarker = "-->"

// reEndTime matches the end timestamp left at the start of a line after the
// marker is cut: "00:00:02", "00:00:02,500", "00:00:02.000]" or "00:02.000]".
// A bare mm:ss is spoken text ("5:00 pm"), not a timestamp.
var reEndTime = regexp.MustCompile(`^\s*\[?(\d{1,2}:\d{2}:\d{2}([.,]\d+)?\]?|\d{1,2}:\d{2}([.,]\d+)?\])(\s|$)`)

// Format strips timing markup and blank lines from raw engine output.
// Lines keep their relative order. Only the text after the last marker on a
// line survives, so the output never contains a marker and Format is
// idempotent.
func Format(raw string) string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if i := strings.LastIndex(line, timingMarker); i >= 0 {
			rest := line[i+len(timingMarker):]
			rest = reEndTime.ReplaceAllString(rest, "")
			line = strings.TrimSpace(rest)
			if line == "" {
				continue
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Lines splits a formatted transcript back into its lines.
func Lines(formatted string) []string {
	if formatted == "" {
		return nil
	}
	return strings.Split(formatted, "\n")
}
