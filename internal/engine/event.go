package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const eventPrefix = "engine."

var ErrUnknownEvent = errors.New("engine: unknown event")

// Event is one recorded session callback. Replay files mix events with
// store actions; the type prefix tells them apart.
type Event struct {
	Type         string    `json:"type"`
	Window       uuid.UUID `json:"window"`
	Tab          string    `json:"tab"`
	Title        string    `json:"title,omitempty"`
	URL          string    `json:"url,omitempty"`
	Progress     float64   `json:"progress,omitempty"`
	Loading      bool      `json:"loading,omitempty"`
	CanGoBack    bool      `json:"canGoBack,omitempty"`
	CanGoForward bool      `json:"canGoForward,omitempty"`
	ScrollX      int       `json:"scrollX,omitempty"`
	ScrollY      int       `json:"scrollY,omitempty"`
	Point        Point     `json:"point,omitempty"`
}

// IsEvent reports whether a JSON line holds an engine event.
func IsEvent(data []byte) bool {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return false
	}
	return strings.HasPrefix(head.Type, eventPrefix)
}

func ParseEvent(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, fmt.Errorf("decoding engine event: %w", err)
	}
	if !strings.HasPrefix(ev.Type, eventPrefix) {
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	if ev.Tab == "" {
		return Event{}, fmt.Errorf("engine event %q: tab is required", ev.Type)
	}
	return ev, nil
}

// Apply delivers the event to d.
func (e Event) Apply(d SessionDelegate) error {
	switch strings.TrimPrefix(e.Type, eventPrefix) {
	case "scroll":
		d.OnScrollChange(e.ScrollX, e.ScrollY)
	case "longPress":
		d.OnLongPress(e.Point)
	case "title":
		d.OnTitleChange(e.Title)
	case "location":
		d.OnLocationChange(e.URL)
	case "progress":
		d.OnProgress(e.Progress)
	case "navigation":
		d.OnNavigationStateChange(e.CanGoBack, e.CanGoForward)
	case "loading":
		d.OnLoadingStateChange(e.Loading)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, e.Type)
	}
	return nil
}
