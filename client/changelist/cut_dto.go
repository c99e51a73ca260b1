package changelist

import (
	"time"

	"github.com/cbsinteractive/pkg/video"
)

type (
	// Program names a show or episode whose cuts are stored together.
	Program string

	// Revision identifies one stored cut of a program.
	Revision string
)

// Event is a single edit decision in a cut: one strip of source
// footage laid down on the record timeline. The in and out points are
// frame counts at the cut's frame rate.
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

// CutSource locates the text of an edit decision list. Text carries
// the EDL inline; Location names a file path or s3 url for the service
// to fetch.
type CutSource struct {
	Location string `json:"location,omitempty"`
	Text     string `json:"text,omitempty"`
}

// Empty reports whether the source names no EDL at all.
func (s CutSource) Empty() bool {
	return s.Location == "" && s.Text == ""
}

type (
	// PutCutRequest and similar data structures describe the requests
	// and replies of the cut storage endpoints.
	PutCutRequest struct {
		Revision Revision  `json:"revision,omitempty"`
		FPS      int       `json:"fps,omitempty"`
		Cut      CutSource `json:"cut"`
	}

	// Cut is a stored cut revision along with its parsed events.
	Cut struct {
		ID        string          `json:"id"`
		Program   Program         `json:"program"`
		Revision  Revision        `json:"revision"`
		Rate      video.Framerate `json:"rate"`
		Events    []Event         `json:"events"`
		CreatedAt time.Time       `json:"createdAt"`
	}

	// PutCutResponse carries the stored cut and, when the program
	// already had a revision at the same rate, the changelist against
	// it. The first cut of a program has no changelist.
	PutCutResponse struct {
		Cut        Cut         `json:"cut"`
		Changelist *Changelist `json:"changelist,omitempty"`
	}

	// CutList holds the revisions stored for one program, oldest
	// first.
	CutList struct {
		Program   Program    `json:"program"`
		Revisions []Revision `json:"revisions"`
	}
)
