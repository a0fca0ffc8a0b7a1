// Package engine adapts web engine session callbacks to tab updates.
package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atomicstack/tabtray-control/internal/logging"
	"github.com/atomicstack/tabtray-control/internal/logging/events"
	"github.com/atomicstack/tabtray-control/internal/tabs"
)

// Point is a position in the page, in points.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SessionDelegate receives the callbacks of one engine session.
type SessionDelegate interface {
	OnScrollChange(scrollX, scrollY int)
	OnLongPress(touchPoint Point)
	OnTitleChange(title string)
	OnLocationChange(url string)
	// OnProgress reports load progress between 0 and 1.
	OnProgress(progress float64)
	OnNavigationStateChange(canGoBack, canGoForward bool)
	OnLoadingStateChange(loading bool)
}

// Updater mutates a tab in place.
type Updater interface {
	UpdateTab(id string, fn func(*tabs.Tab)) error
}

// TabSession applies session callbacks to one tab. onChange runs after the
// title or URL actually changed.
type TabSession struct {
	tabID    string
	updater  Updater
	onChange func(tabID string)

	mu        sync.Mutex
	scrollX   int
	scrollY   int
	lastPress Point
}

var _ SessionDelegate = (*TabSession)(nil)

func NewTabSession(tabID string, updater Updater, onChange func(tabID string)) *TabSession {
	return &TabSession{tabID: tabID, updater: updater, onChange: onChange}
}

func (s *TabSession) TabID() string { return s.tabID }

// ScrollPosition returns the last reported scroll offsets.
func (s *TabSession) ScrollPosition() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scrollX, s.scrollY
}

// LastLongPress returns where the page was last long-pressed.
func (s *TabSession) LastLongPress() Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPress
}

func (s *TabSession) OnScrollChange(scrollX, scrollY int) {
	s.mu.Lock()
	s.scrollX, s.scrollY = scrollX, scrollY
	s.mu.Unlock()
}

func (s *TabSession) OnLongPress(touchPoint Point) {
	s.mu.Lock()
	s.lastPress = touchPoint
	s.mu.Unlock()
	events.Engine.LongPress(s.tabID, touchPoint.X, touchPoint.Y)
}

func (s *TabSession) OnTitleChange(title string) {
	s.update("title", func(t *tabs.Tab) bool {
		if t.Title == title {
			return false
		}
		t.Title = title
		return true
	})
}

func (s *TabSession) OnLocationChange(url string) {
	s.update("url", func(t *tabs.Tab) bool {
		if t.URL == url {
			return false
		}
		t.URL = url
		return true
	})
}

func (s *TabSession) OnProgress(progress float64) {
	switch {
	case progress < 0:
		progress = 0
	case progress > 1:
		progress = 1
	}
	s.update("progress", func(t *tabs.Tab) bool {
		t.Progress = progress
		return false
	})
}

func (s *TabSession) OnNavigationStateChange(canGoBack, canGoForward bool) {
	s.update("navigation", func(t *tabs.Tab) bool {
		t.CanGoBack, t.CanGoForward = canGoBack, canGoForward
		return false
	})
}

func (s *TabSession) OnLoadingStateChange(loading bool) {
	s.update("loading", func(t *tabs.Tab) bool {
		t.Loading = loading
		if !loading {
			t.Progress = 1
		}
		return false
	})
}

// update applies fn; fn reports whether a user visible field changed.
func (s *TabSession) update(field string, fn func(*tabs.Tab) bool) {
	changed := false
	err := s.updater.UpdateTab(s.tabID, func(t *tabs.Tab) {
		changed = fn(t)
	})
	if err != nil {
		if !errors.Is(err, tabs.ErrTabNotFound) {
			logging.Error(fmt.Errorf("updating %s of tab %s: %w", field, s.tabID, err))
		}
		return
	}
	events.Engine.Update(s.tabID, field)
	if changed && s.onChange != nil {
		s.onChange(s.tabID)
	}
}
