// Package changelist compares two parsed cuts of the same program and
// reports, position by position, which timeline slots hold new clips
// and which hold the same clip with shifted source boundaries.
package changelist

import (
	"github.com/cbsinteractive/edl-changelist/edl"
	"github.com/cbsinteractive/edl-changelist/timecode"
)

// Kind classifies a reported difference.
type Kind string

const (
	// New marks a position whose clip was not in the old cut, either
	// because the timeline grew or because a different reel replaced
	// the old one.
	New Kind = "New"

	// Changed marks a position holding the same reel with moved
	// source in or out points.
	Changed Kind = "Changed"
)

// Change is one reported difference at a timeline position. Head and
// tail trims follow the source timecodes: positive means the boundary
// moved later in the source, negative earlier. The time difference
// and lengths follow the record timecodes. Old* fields are zero on
// New changes.
type Change struct {
	Type     Kind   `json:"type"`
	RecordTC string `json:"recordTC"`
	Reel     string `json:"reel"`
	ClipName string `json:"clipName,omitempty"`

	HeadTrimFrames  int `json:"headTrimFrames"`
	TailTrimFrames  int `json:"tailTrimFrames"`
	TimeDiffFrames  int `json:"timeDiffFrames"`
	OldLengthFrames int `json:"oldLengthFrames"`
	NewLengthFrames int `json:"newLengthFrames"`

	OldSourceIn  int `json:"oldSourceIn"`
	NewSourceIn  int `json:"newSourceIn"`
	OldSourceOut int `json:"oldSourceOut"`
	NewSourceOut int `json:"newSourceOut"`
	RecordIn     int `json:"recordIn"`
	RecordOut    int `json:"recordOut"`
}

// Compare walks two cuts position by position and returns the
// differences in timeline order. A position whose reel changed, or
// that exists only in the new cut, is New. A position holding the
// same reel with equal source boundaries produces nothing. Positions
// past the end of the new cut are dropped without a record. Both cuts
// must have been parsed at fps.
func Compare(old, new []edl.Event, fps int) []Change {
	var changes []Change
	for i := 0; i < len(old) || i < len(new); i++ {
		switch {
		case i >= len(new):
			// removed tail positions are detected but not reported
		case i >= len(old) || old[i].Reel != new[i].Reel:
			changes = append(changes, added(new[i], fps))
		case old[i].SourceIn == new[i].SourceIn && old[i].SourceOut == new[i].SourceOut:
		default:
			changes = append(changes, moved(old[i], new[i], fps))
		}
	}
	return changes
}

func added(n edl.Event, fps int) Change {
	return Change{
		Type:            New,
		RecordTC:        recordTC(n, fps),
		Reel:            n.Reel,
		ClipName:        n.ClipName,
		NewLengthFrames: n.RecordOut - n.RecordIn,
		NewSourceIn:     n.SourceIn,
		NewSourceOut:    n.SourceOut,
		RecordIn:        n.RecordIn,
		RecordOut:       n.RecordOut,
	}
}

func moved(o, n edl.Event, fps int) Change {
	return Change{
		Type:            Changed,
		RecordTC:        recordTC(n, fps),
		Reel:            n.Reel,
		ClipName:        n.ClipName,
		HeadTrimFrames:  n.SourceIn - o.SourceIn,
		TailTrimFrames:  n.SourceOut - o.SourceOut,
		TimeDiffFrames:  (n.RecordOut - n.RecordIn) - (o.RecordOut - o.RecordIn),
		OldLengthFrames: o.RecordOut - o.RecordIn,
		NewLengthFrames: n.RecordOut - n.RecordIn,
		OldSourceIn:     o.SourceIn,
		NewSourceIn:     n.SourceIn,
		OldSourceOut:    o.SourceOut,
		NewSourceOut:    n.SourceOut,
		RecordIn:        n.RecordIn,
		RecordOut:       n.RecordOut,
	}
}

func recordTC(e edl.Event, fps int) string {
	// frame counts coming out of edl.Parse are never negative
	tc, _ := timecode.ToTimecode(e.RecordIn, fps)
	return tc
}
