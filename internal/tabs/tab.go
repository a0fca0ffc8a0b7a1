// Package tabs models browser tabs and the tab manager that owns them.
package tabs

import (
	"net/url"
	"strings"
	"time"
)

const (
	// HomeURL marks a tab showing the home page.
	HomeURL = "about:home"
	// MaxURLLength is the longest URL that can be bookmarked.
	MaxURLLength = 65536
)

// Request is the initial navigation of a new tab.
type Request struct {
	URL string `json:"url"`
}

// Tab is a copy of one tab owned by a Manager.
type Tab struct {
	UUID              string    `json:"uuid"`
	URL               string    `json:"url,omitempty"`
	Title             string    `json:"title,omitempty"`
	IsPrivate         bool      `json:"private,omitempty"`
	FaviconURL        string    `json:"favicon,omitempty"`
	Screenshot        []byte    `json:"-"`
	HasHomeScreenshot bool      `json:"-"`
	LastExecuted      time.Time `json:"lastExecuted"`
	Loading           bool      `json:"-"`
	Progress          float64   `json:"-"`
	CanGoBack         bool      `json:"-"`
	CanGoForward      bool      `json:"-"`
}

// IsFxHomeTab reports whether the tab shows the home page.
func (t Tab) IsFxHomeTab() bool {
	return t.URL == "" || t.URL == HomeURL
}

// URLIsTooLong reports whether the URL exceeds MaxURLLength.
func (t Tab) URLIsTooLong() bool {
	return len(t.URL) > MaxURLLength
}

// DisplayTitle returns the title shown for the tab.
func (t Tab) DisplayTitle() string {
	if title := strings.TrimSpace(t.Title); title != "" {
		return title
	}
	if t.IsFxHomeTab() {
		return "Homepage"
	}
	if u, err := url.Parse(t.URL); err == nil && u.Host != "" {
		return u.Host
	}
	return t.URL
}

func (t Tab) clone() Tab {
	if t.Screenshot != nil {
		t.Screenshot = append([]byte(nil), t.Screenshot...)
	}
	return t
}

func cloneTabs(list []Tab) []Tab {
	if len(list) == 0 {
		return []Tab{}
	}
	out := make([]Tab, len(list))
	for i, tab := range list {
		out[i] = tab.clone()
	}
	return out
}
