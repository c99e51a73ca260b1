package changelist_test

import (
	"testing"

	"github.com/cbsinteractive/edl-changelist/changelist"
	"github.com/cbsinteractive/pkg/timecode"
	"github.com/google/go-cmp/cmp"
)

func TestSplice(t *testing.T) {
	tests := []struct {
		name    string
		changes []changelist.Change
		fps     int
		want    timecode.Splice
	}{
		{name: "empty", fps: 24, want: nil},
		{
			name:    "oneRange",
			changes: []changelist.Change{{Type: changelist.Changed, RecordIn: 0, RecordOut: 120}},
			fps:     24,
			want:    timecode.Splice{{0, 5}},
		},
		{
			name: "keepsTimelineOrder",
			changes: []changelist.Change{
				{Type: changelist.Changed, RecordIn: 0, RecordOut: 120},
				{Type: changelist.New, RecordIn: 240, RecordOut: 360},
			},
			fps:  24,
			want: timecode.Splice{{0, 5}, {10, 15}},
		},
		{
			name:    "thirtyFPS",
			changes: []changelist.Change{{Type: changelist.Changed, RecordIn: 45, RecordOut: 90}},
			fps:     30,
			want:    timecode.Splice{{1.5, 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := changelist.Splice(tt.changes, tt.fps)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Splice() mismatch (-want +got):\n%s", diff)
			}
			if !got.Sorted() {
				t.Errorf("Splice() produced an unsorted splice: %v", got)
			}
		})
	}
}
