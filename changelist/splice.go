package changelist

import "github.com/cbsinteractive/pkg/timecode"

// Splice renders the record ranges the changes touch as decimal
// seconds at fps. The result slots straight into a transcode job's
// input splice, so only the regions of the new cut this comparison
// flagged get re-rendered.
func Splice(changes []Change, fps int) timecode.Splice {
	var s timecode.Splice
	for _, c := range changes {
		s = append(s, timecode.Range{
			float64(c.RecordIn) / float64(fps),
			float64(c.RecordOut) / float64(fps),
		})
	}
	return s
}
