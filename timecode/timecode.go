// Package timecode converts between HH:MM:SS:FF text and absolute
// frame counts at an integral frame rate. Conversions are exact: no
// float rounding, and no drop-frame adjustment (EDL change lists are
// compared in non-drop-frame time).
//
// Both directions take the rate explicitly. Mixing rates between two
// conversions is not detected here; it is the caller's job to thread
// one rate through a whole comparison.
package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultFPS is the rate assumed by tools in this module when the
// caller configures nothing else.
const DefaultFPS = 24

// MalformedTimecodeError describes timecode text that does not parse
// as HH:MM:SS:FF or has a field outside its natural range.
type MalformedTimecodeError struct {
	Timecode string
	Reason   string
}

func (e MalformedTimecodeError) Error() string {
	return fmt.Sprintf("malformed timecode %q: %s", e.Timecode, e.Reason)
}

// InvalidFrameCountError is returned when a negative frame count is
// formatted. Frame counts in this module are absolute positions and
// are never negative.
type InvalidFrameCountError int

func (e InvalidFrameCountError) Error() string {
	return fmt.Sprintf("invalid frame count %d", int(e))
}

// ToFrames parses tc as HH:MM:SS:FF at the given rate and returns the
// absolute frame count. Minutes and seconds run 0-59, frames 0 to
// fps-1, and hours are unbounded (a long program may pass 99 hours;
// the hour field just grows). fps must be positive.
func ToFrames(tc string, fps int) (int, error) {
	parts := strings.Split(tc, ":")
	if len(parts) != 4 {
		return 0, MalformedTimecodeError{tc, "want HH:MM:SS:FF"}
	}
	for i, p := range parts {
		if len(p) < 2 || (i > 0 && len(p) != 2) || !digits(p) {
			return 0, MalformedTimecodeError{tc, "want HH:MM:SS:FF"}
		}
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, MalformedTimecodeError{tc, "hours out of range"}
	}
	// the two-digit fields cannot overflow
	m, _ := strconv.Atoi(parts[1])
	s, _ := strconv.Atoi(parts[2])
	f, _ := strconv.Atoi(parts[3])
	switch {
	case m > 59:
		return 0, MalformedTimecodeError{tc, "minutes out of range"}
	case s > 59:
		return 0, MalformedTimecodeError{tc, "seconds out of range"}
	case f >= fps:
		return 0, MalformedTimecodeError{tc, fmt.Sprintf("frame %d outside rate %d", f, fps)}
	}
	return ((h*60+m)*60+s)*fps + f, nil
}

// ToTimecode formats an absolute frame count as HH:MM:SS:FF at the
// given rate. It inverts ToFrames: ToFrames(ToTimecode(n, fps), fps)
// returns n for every n >= 0. fps must be positive.
func ToTimecode(frames, fps int) (string, error) {
	if frames < 0 {
		return "", InvalidFrameCountError(frames)
	}
	h := frames / (3600 * fps)
	frames %= 3600 * fps
	m := frames / (60 * fps)
	frames %= 60 * fps
	return fmt.Sprintf("%02d:%02d:%02d:%02d", h, m, frames/fps, frames%fps), nil
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
