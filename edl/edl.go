// Package edl parses CMX3600-style edit decision lists into ordered
// edit events. Timecode columns are converted to absolute frame counts
// at the caller's frame rate, so downstream comparisons are integer
// math.
package edl

import (
	"fmt"
	"strings"

	"github.com/cbsinteractive/edl-changelist/timecode"
)

const clipNameMarker = "* FROM CLIP NAME:"

// Event is one edit decision: a source clip placed on the program
// timeline. Fields follow the CMX3600 column order. Num keeps the
// edit number exactly as written, leading zeros included.
type Event struct {
	Num       string `json:"num"`
	Reel      string `json:"reel"`
	Track     string `json:"track"`
	Type      string `json:"type"`
	SourceIn  int    `json:"sourceIn"`
	SourceOut int    `json:"sourceOut"`
	RecordIn  int    `json:"recordIn"`
	RecordOut int    `json:"recordOut"`
	ClipName  string `json:"clipName,omitempty"`
}

// ParseError reports the first event line that could not be parsed.
// Parse never skips a bad event line: a partial timeline would shift
// every later position and corrupt the comparison downstream.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e ParseError) Unwrap() error { return e.Err }

// Parse reads EDL text and returns its events in source order. A line
// whose first field is all digits is an event line; everything else
// (TITLE: and FCM: headers, blank lines, motion-memory lines,
// comments) carries no event data and is skipped. A comment starting
// with "* FROM CLIP NAME:" names the event on the line directly above
// it; anywhere else it is ignored like any other comment.
func Parse(text string, fps int) ([]Event, error) {
	var events []Event
	lastEvent := -2
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if name, ok := clipComment(line); ok {
			if i == lastEvent+1 {
				events[len(events)-1].ClipName = name
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 || !numeric(fields[0]) {
			continue
		}
		event, err := parseEvent(fields, fps)
		if err != nil {
			return nil, ParseError{Line: i + 1, Text: line, Err: err}
		}
		events = append(events, event)
		lastEvent = i
	}
	return events, nil
}

func parseEvent(fields []string, fps int) (Event, error) {
	if len(fields) < 8 {
		return Event{}, fmt.Errorf("event has %d fields, want at least 8", len(fields))
	}
	event := Event{Num: fields[0], Reel: fields[1], Track: fields[2], Type: fields[3]}
	var err error
	if event.SourceIn, err = timecode.ToFrames(fields[4], fps); err != nil {
		return Event{}, err
	}
	if event.SourceOut, err = timecode.ToFrames(fields[5], fps); err != nil {
		return Event{}, err
	}
	if event.RecordIn, err = timecode.ToFrames(fields[6], fps); err != nil {
		return Event{}, err
	}
	if event.RecordOut, err = timecode.ToFrames(fields[7], fps); err != nil {
		return Event{}, err
	}
	return event, nil
}

func clipComment(line string) (string, bool) {
	if !strings.HasPrefix(line, clipNameMarker) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, clipNameMarker)), true
}

func numeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
