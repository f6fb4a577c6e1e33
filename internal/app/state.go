// Package app provides workspace lifecycle management and events.
package app

import (
	"fmt"
	"sync"

	"chart-grid/internal/chart"
	"chart-grid/internal/selection"
)

// State holds the workspace state: the charts it hosts and the selection
// controller they share. There is one State per window/session.
type State struct {
	mu sync.RWMutex

	charts    []*chart.Chart
	Selection *selection.Controller

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies workspace events.
type EventType int

const (
	EventChartAdded EventType = iota
	EventChartRemoved
	EventSelectionChanged
	EventViewChanged
	EventStatus
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a workspace with an empty chart set and a fresh shared
// selection controller.
func NewState() *State {
	return &State{
		Selection: selection.NewController(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// AddChart registers a chart with the workspace. Chart ids must be unique.
func (s *State) AddChart(c *chart.Chart) error {
	s.mu.Lock()
	for _, existing := range s.charts {
		if existing.ID() == c.ID() {
			s.mu.Unlock()
			return fmt.Errorf("chart id %q already registered", c.ID())
		}
	}
	s.charts = append(s.charts, c)
	s.mu.Unlock()

	s.Emit(EventChartAdded, c)
	return nil
}

// RemoveChart detaches a chart from the workspace and the shared selection.
func (s *State) RemoveChart(id string) {
	s.mu.Lock()
	var removed *chart.Chart
	for i, c := range s.charts {
		if c.ID() == id {
			removed = c
			s.charts = append(s.charts[:i], s.charts[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	if removed != nil {
		removed.Close()
		s.Emit(EventChartRemoved, removed)
	}
}

// Charts returns the registered charts.
func (s *State) Charts() []*chart.Chart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*chart.Chart(nil), s.charts...)
}

// Chart returns the chart with the given id, or nil.
func (s *State) Chart(id string) *chart.Chart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.charts {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

// Dispose tears the workspace down: every chart is closed and the selection
// controller forgets its subscribers.
func (s *State) Dispose() {
	s.mu.Lock()
	charts := s.charts
	s.charts = nil
	s.mu.Unlock()

	for _, c := range charts {
		c.Close()
	}
	s.Selection.Reset()
}
