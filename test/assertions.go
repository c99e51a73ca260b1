package test

import (
	"testing"

	"github.com/cbsinteractive/edl-changelist/timecode"
)

// AssertWantErr fails t unless err matches the wanted message. An
// empty want means no error is expected. It returns true when the
// error (or its absence) settles the case and the caller should skip
// value checks.
func AssertWantErr(t *testing.T, err error, want, caller string) bool {
	t.Helper()
	if err != nil {
		if want != err.Error() {
			t.Errorf("%s error = %v, wantErr %q", caller, err, want)
		}
		return true
	}
	if want != "" {
		t.Errorf("%s expected error %q, did not receive an error", caller, want)
		return true
	}
	return false
}

// Frames converts tc at fps, failing t on malformed fixture text.
func Frames(t *testing.T, tc string, fps int) int {
	t.Helper()
	n, err := timecode.ToFrames(tc, fps)
	if err != nil {
		t.Fatalf("bad fixture timecode %s: %v", tc, err)
	}
	return n
}
