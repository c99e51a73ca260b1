// Package report renders change lists as tab-separated rows that
// downstream review tools import as timeline markers: magenta for new
// clips, yellow for trims.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cbsinteractive/edl-changelist/changelist"
	"github.com/cbsinteractive/edl-changelist/timecode"
)

const header = "Type\tRecordTC\tFormat\tColor\tDescription\tFlag"

// WriteChanges writes one header row and one marker row per change.
// Changes of a kind the report has no row for are skipped. Timecodes
// inside descriptions are rendered at fps, which must match the rate
// the changes were computed at.
func WriteChanges(w io.Writer, changes []changelist.Change, fps int) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, c := range changes {
		var color, desc string
		switch c.Type {
		case changelist.New:
			color = "magenta"
			desc = fmt.Sprintf("Clip added (%s)", displayName(c))
		case changelist.Changed:
			color = "yellow"
			desc = describeChange(c, fps)
		default:
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\tTC\t%s\t%s\t1\n", c.Type, c.RecordTC, color, desc); err != nil {
			return err
		}
	}
	return nil
}

func describeChange(c changelist.Change, fps int) string {
	var b strings.Builder
	if c.TimeDiffFrames == 0 {
		b.WriteString("No time difference. Shifted within itself. ")
	} else {
		fmt.Fprintf(&b, "Time difference %d frames  [%d frames].", c.TimeDiffFrames, c.TimeDiffFrames)
	}
	if c.HeadTrimFrames > 0 {
		fmt.Fprintf(&b, " HEAD trimmed from %s to %s.", render(c.OldSourceIn, fps), render(c.NewSourceIn, fps))
	} else if c.HeadTrimFrames < 0 {
		fmt.Fprintf(&b, " HEAD extended from %s to %s.", render(c.OldSourceIn, fps), render(c.NewSourceIn, fps))
	}
	if c.TailTrimFrames > 0 {
		fmt.Fprintf(&b, " TAIL extended from %s to %s.", render(c.OldSourceOut, fps), render(c.NewSourceOut, fps))
	} else if c.TailTrimFrames < 0 {
		fmt.Fprintf(&b, " TAIL trimmed from %s to %s.", render(c.OldSourceOut, fps), render(c.NewSourceOut, fps))
	}
	if c.TimeDiffFrames != 0 {
		fmt.Fprintf(&b, " Old length: %s [%d frames] - New length: %s [%d frames]",
			FrameCount(c.OldLengthFrames, fps), c.OldLengthFrames,
			FrameCount(c.NewLengthFrames, fps), c.NewLengthFrames)
	}
	fmt.Fprintf(&b, " (%s)", displayName(c))
	return b.String()
}

// FrameCount spells a frame count out the way editors read one, as in
// "7 seconds 14 frames". Counts under a second drop the seconds part.
func FrameCount(frames, fps int) string {
	seconds := frames / fps
	rem := frames % fps
	if seconds == 0 {
		return fmt.Sprintf("%d frame%s", rem, plural(rem))
	}
	return fmt.Sprintf("%d second%s %d frame%s", seconds, plural(seconds), rem, plural(rem))
}

func displayName(c changelist.Change) string {
	if c.ClipName != "" {
		return c.ClipName
	}
	return c.Reel
}

func render(frames, fps int) string {
	// frame counts on a Change are never negative
	tc, _ := timecode.ToTimecode(frames, fps)
	return tc
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
