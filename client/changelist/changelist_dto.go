package changelist

import (
	"github.com/cbsinteractive/pkg/timecode"
	"github.com/cbsinteractive/pkg/video"
)

type (
	// CreateChangelistRequest and Changelist describe the compare
	// endpoint: two cuts go in, the differences between them come out.
	CreateChangelistRequest struct {
		FPS int       `json:"fps,omitempty"`
		Old CutSource `json:"old"`
		New CutSource `json:"new"`
	}

	// Changelist is the full comparison of two cuts. Program, From and
	// To are set when the cuts came from storage rather than from the
	// request itself.
	Changelist struct {
		Program Program  `json:"program,omitempty"`
		From    Revision `json:"from,omitempty"`
		To      Revision `json:"to,omitempty"`

		Rate    video.Framerate `json:"rate"`
		Changes []Change        `json:"changes"`

		// Splice covers the record ranges touched by the changes. It
		// can be handed to systems that re-render only the affected
		// regions of the timeline. Declared as a plain range slice:
		// timecode.Splice decodes from text only, never from the json
		// arrays its ranges marshal to.
		Splice []timecode.Range `json:"splice,omitempty"`

		// Report is the tab-separated marker report for the changes.
		Report string `json:"report,omitempty"`
	}
)

// Change describes what happened to one position of the timeline
// between the old cut and the new one. Trim fields are signed frame
// counts; a zero-valued trim means that side of the clip kept its
// original source boundary.
type Change struct {
	Type     string `json:"type"`
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

	RecordIn  int `json:"recordIn"`
	RecordOut int `json:"recordOut"`
}
