package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/gerow/go-color"
)

type EventCreate struct {
	OwnerID     int64
	Title       string
	Description string
	Date        string // YYYY-MM-DD
	StartTime   string // HH:MM, 24-hour
	EndTime     string // HH:MM, strictly after StartTime
	Color       string
	Location    string
}

type Event struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	EventCreate
}

// EventUpdate carries the fields a client may change; nil means "leave as is".
type EventUpdate struct {
	Title       *string
	Description *string
	Date        *string
	StartTime   *string
	EndTime     *string
	Color       *string
	Location    *string
}

type EventsFilter struct {
	OwnerID int64
	From    string // YYYY-MM-DD, inclusive
	To      string // YYYY-MM-DD, inclusive
	Date    string // exact day, overrides From/To when set
}

// EventColors is the palette a new event's color is drawn from when the
// client does not pick one.
var EventColors = []string{
	"#FF6B6B",
	"#4ECDC4",
	"#45B7D1",
	"#96CEB4",
	"#FFEAA7",
	"#DDA0DD",
	"#98D8C8",
	"#F7DC6F",
}

// NormalizeColor canonicalizes a client-supplied hex color to "#RRGGBB" form.
func NormalizeColor(s string) (string, error) {
	hex := strings.TrimPrefix(s, "#")
	if hex == "" {
		return "", fmt.Errorf("invalid color %q", s)
	}

	rgb, err := color.HTMLToRGB(hex)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", s, err)
	}

	return "#" + strings.ToUpper(rgb.ToHTML()), nil
}
