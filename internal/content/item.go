package content

import (
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used by every item.
const DateLayout = "2006-01-02"

type Kind string

const (
	News   Kind = "news"
	Events Kind = "events"
)

// ParseKind maps user input to a Kind, defaulting to News.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "events", "event":
		return Events
	default:
		return News
	}
}

// Item is a news article or an event. Items are read-only once loaded.
type Item struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags,omitempty"`
	Views       int      `yaml:"views,omitempty"`
	Featured    bool     `yaml:"featured,omitempty"`

	Body     string `yaml:"body,omitempty"`
	Author   string `yaml:"author,omitempty"`
	Location string `yaml:"location,omitempty"`
	Time     string `yaml:"time,omitempty"`
}

// Published parses Date. An unparseable date yields the zero time.
func (it Item) Published() time.Time {
	t, err := time.Parse(DateLayout, strings.TrimSpace(it.Date))
	if err != nil {
		return time.Time{}
	}
	return t
}
