package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/cbsinteractive/pkg/video"

	"github.com/cbsinteractive/edl-changelist/edl"
)

// Cut is one stored revision of a program's timeline: the parsed
// events plus the frame rate they were parsed at.
type Cut struct {
	ID        string          `json:"id"`
	Program   string          `json:"program"`
	Revision  string          `json:"revision"`
	Rate      video.Framerate `json:"rate"`
	Events    []edl.Event     `json:"events"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Rate expresses a whole frames-per-second value as a Framerate.
func Rate(fps int) video.Framerate {
	return video.Framerate{Numerator: fps, Denominator: 1}
}

// FPS returns the cut's frame rate as whole frames per second.
// Fractional rates have no frame-accurate timecode text, so a cut
// carrying one is unusable for comparison.
func (c Cut) FPS() (int, error) {
	if c.Rate.Empty() {
		return 0, errors.New("cut has no frame rate")
	}
	if c.Rate.Numerator%c.Rate.Denominator != 0 {
		return 0, fmt.Errorf("fractional frame rate %d/%d", c.Rate.Numerator, c.Rate.Denominator)
	}
	return c.Rate.Numerator / c.Rate.Denominator, nil
}
