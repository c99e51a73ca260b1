package service

import (
	"bytes"

	"github.com/cbsinteractive/edl-changelist/changelist"
	api "github.com/cbsinteractive/edl-changelist/client/changelist"
	"github.com/cbsinteractive/edl-changelist/db"
	"github.com/cbsinteractive/edl-changelist/edl"
	"github.com/cbsinteractive/edl-changelist/report"
)

// cutDTO converts a stored cut into its client representation.
func cutDTO(c db.Cut) api.Cut {
	return api.Cut{
		ID:        c.ID,
		Program:   api.Program(c.Program),
		Revision:  api.Revision(c.Revision),
		Rate:      c.Rate,
		Events:    eventDTOs(c.Events),
		CreatedAt: c.CreatedAt,
	}
}

func eventDTOs(events []edl.Event) []api.Event {
	out := make([]api.Event, len(events))
	for i, e := range events {
		out[i] = api.Event{
			Num:       e.Num,
			Reel:      e.Reel,
			Track:     e.Track,
			Type:      e.Type,
			SourceIn:  e.SourceIn,
			SourceOut: e.SourceOut,
			RecordIn:  e.RecordIn,
			RecordOut: e.RecordOut,
			ClipName:  e.ClipName,
		}
	}
	return out
}

// changelistDTO bundles computed changes with their splice and marker
// report.
func changelistDTO(changes []changelist.Change, fps int) (api.Changelist, error) {
	var buf bytes.Buffer
	if err := report.WriteChanges(&buf, changes, fps); err != nil {
		return api.Changelist{}, err
	}

	cl := api.Changelist{
		Rate:    db.Rate(fps),
		Changes: make([]api.Change, len(changes)),
		Splice:  changelist.Splice(changes, fps),
		Report:  buf.String(),
	}
	for i, c := range changes {
		cl.Changes[i] = api.Change{
			Type:            string(c.Type),
			RecordTC:        c.RecordTC,
			Reel:            c.Reel,
			ClipName:        c.ClipName,
			HeadTrimFrames:  c.HeadTrimFrames,
			TailTrimFrames:  c.TailTrimFrames,
			TimeDiffFrames:  c.TimeDiffFrames,
			OldLengthFrames: c.OldLengthFrames,
			NewLengthFrames: c.NewLengthFrames,
			OldSourceIn:     c.OldSourceIn,
			NewSourceIn:     c.NewSourceIn,
			OldSourceOut:    c.OldSourceOut,
			NewSourceOut:    c.NewSourceOut,
			RecordIn:        c.RecordIn,
			RecordOut:       c.RecordOut,
		}
	}
	return cl, nil
}
