package timecode

import (
	"errors"
	"testing"
)

func TestToFrames(t *testing.T) {
	tests := []struct {
		tc      string
		fps     int
		want    int
		wantErr string
	}{
		{tc: "00:00:00:00", fps: 24, want: 0},
		{tc: "00:00:00:01", fps: 24, want: 1},
		{tc: "00:00:00:23", fps: 24, want: 23},
		{tc: "00:00:01:00", fps: 24, want: 24},
		{tc: "00:01:00:00", fps: 24, want: 1440},
		{tc: "01:00:00:00", fps: 24, want: 86400},
		{tc: "10:02:03:04", fps: 24, want: 866956},
		{tc: "23:59:59:23", fps: 24, want: 2073599},
		{tc: "100:00:00:00", fps: 24, want: 8640000},
		{tc: "00:00:00:29", fps: 30, want: 29},
		{tc: "01:00:00:00", fps: 30, want: 108000},

		{tc: "00:00:00:24", fps: 24, wantErr: `malformed timecode "00:00:00:24": frame 24 outside rate 24`},
		{tc: "25:61:00:00", fps: 24, wantErr: `malformed timecode "25:61:00:00": minutes out of range`},
		{tc: "99999999999999999999:00:00:00", fps: 24, wantErr: `malformed timecode "99999999999999999999:00:00:00": hours out of range`},
		{tc: "00:00:61:00", fps: 24, wantErr: `malformed timecode "00:00:61:00": seconds out of range`},
		{tc: "00:00:00", fps: 24, wantErr: `malformed timecode "00:00:00": want HH:MM:SS:FF`},
		{tc: "00:00:00:00:00", fps: 24, wantErr: `malformed timecode "00:00:00:00:00": want HH:MM:SS:FF`},
		{tc: "0:00:00:00", fps: 24, wantErr: `malformed timecode "0:00:00:00": want HH:MM:SS:FF`},
		{tc: "00:0:00:00", fps: 24, wantErr: `malformed timecode "00:0:00:00": want HH:MM:SS:FF`},
		{tc: "00:000:00:00", fps: 24, wantErr: `malformed timecode "00:000:00:00": want HH:MM:SS:FF`},
		{tc: "aa:bb:cc:dd", fps: 24, wantErr: `malformed timecode "aa:bb:cc:dd": want HH:MM:SS:FF`},
		{tc: "00:00:00:-1", fps: 24, wantErr: `malformed timecode "00:00:00:-1": want HH:MM:SS:FF`},
		{tc: "00;00;00;00", fps: 24, wantErr: `malformed timecode "00;00;00;00": want HH:MM:SS:FF`},
		{tc: "", fps: 24, wantErr: `malformed timecode "": want HH:MM:SS:FF`},
	}
	for _, tt := range tests {
		t.Run(tt.tc, func(t *testing.T) {
			got, err := ToFrames(tt.tc, tt.fps)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ToFrames(%q, %d) = %d, expected error %q", tt.tc, tt.fps, got, tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Fatalf("ToFrames(%q, %d) error = %v, want %q", tt.tc, tt.fps, err, tt.wantErr)
				}
				var malformed MalformedTimecodeError
				if !errors.As(err, &malformed) {
					t.Fatalf("ToFrames(%q, %d) error type = %T, want MalformedTimecodeError", tt.tc, tt.fps, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToFrames(%q, %d): %v", tt.tc, tt.fps, err)
			}
			if got != tt.want {
				t.Errorf("ToFrames(%q, %d) = %d, want %d", tt.tc, tt.fps, got, tt.want)
			}
		})
	}
}

func TestToTimecode(t *testing.T) {
	tests := []struct {
		frames  int
		fps     int
		want    string
		wantErr string
	}{
		{frames: 0, fps: 24, want: "00:00:00:00"},
		{frames: 23, fps: 24, want: "00:00:00:23"},
		{frames: 24, fps: 24, want: "00:00:01:00"},
		{frames: 86400, fps: 24, want: "01:00:00:00"},
		{frames: 866956, fps: 24, want: "10:02:03:04"},
		{frames: 8640000, fps: 24, want: "100:00:00:00"},
		{frames: 29, fps: 30, want: "00:00:00:29"},
		{frames: -1, fps: 24, wantErr: "invalid frame count -1"},
		{frames: -86400, fps: 24, wantErr: "invalid frame count -86400"},
	}
	for _, tt := range tests {
		got, err := ToTimecode(tt.frames, tt.fps)
		if tt.wantErr != "" {
			if err == nil {
				t.Fatalf("ToTimecode(%d, %d) = %q, expected error %q", tt.frames, tt.fps, got, tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Fatalf("ToTimecode(%d, %d) error = %v, want %q", tt.frames, tt.fps, err, tt.wantErr)
			}
			var invalid InvalidFrameCountError
			if !errors.As(err, &invalid) {
				t.Fatalf("ToTimecode(%d, %d) error type = %T, want InvalidFrameCountError", tt.frames, tt.fps, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ToTimecode(%d, %d): %v", tt.frames, tt.fps, err)
		}
		if got != tt.want {
			t.Errorf("ToTimecode(%d, %d) = %q, want %q", tt.frames, tt.fps, got, tt.want)
		}
	}
}

// Formatting then reparsing must return the original count, and the
// other way around for well-formed text.
func TestRoundTrip(t *testing.T) {
	for _, fps := range []int{24, 25, 30} {
		for _, n := range []int{0, 1, fps - 1, fps, 60 * fps, 3600 * fps, 3600*fps - 1, 99*3600*fps + 1439} {
			tc, err := ToTimecode(n, fps)
			if err != nil {
				t.Fatalf("ToTimecode(%d, %d): %v", n, fps, err)
			}
			back, err := ToFrames(tc, fps)
			if err != nil {
				t.Fatalf("ToFrames(%q, %d): %v", tc, fps, err)
			}
			if back != n {
				t.Errorf("round trip at %dfps: %d -> %q -> %d", fps, n, tc, back)
			}
		}
	}

	for _, h := range []int{0, 1, 99} {
		for _, m := range []int{0, 59} {
			for _, s := range []int{0, 59} {
				for _, f := range []int{0, 23} {
					tc, _ := ToTimecode(((h*60+m)*60+s)*24+f, 24)
					n, err := ToFrames(tc, 24)
					if err != nil {
						t.Fatalf("ToFrames(%q, 24): %v", tc, err)
					}
					back, _ := ToTimecode(n, 24)
					if back != tc {
						t.Errorf("round trip: %q -> %d -> %q", tc, n, back)
					}
				}
			}
		}
	}
}

// ToFrames must be strictly increasing in its timecode argument.
func TestMonotonic(t *testing.T) {
	ordered := []string{
		"00:00:00:00",
		"00:00:00:01",
		"00:00:00:23",
		"00:00:01:00",
		"00:00:59:23",
		"00:01:00:00",
		"00:59:59:23",
		"01:00:00:00",
		"01:00:00:01",
		"02:30:15:12",
		"99:59:59:23",
		"100:00:00:00",
	}
	prev := -1
	for _, tc := range ordered {
		n, err := ToFrames(tc, 24)
		if err != nil {
			t.Fatalf("ToFrames(%q, 24): %v", tc, err)
		}
		if n <= prev {
			t.Errorf("ToFrames(%q, 24) = %d, not above previous %d", tc, n, prev)
		}
		prev = n
	}
}
