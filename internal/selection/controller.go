// Package selection provides the shared selection state synchronized across
// independent chart instances.
package selection

import (
	"sync"
)

// Callback receives a selection change: the chart that originated it and a
// read-only replicate of the selected ids.
type Callback func(originChartID string, ids map[string]struct{})

type subscriber struct {
	chartID string
	cb      Callback
}

// Controller holds the last-writer-wins selection shared by every chart in a
// workspace. One instance per workspace, injected into each chart rather
// than accessed as a global. All notification fan-out is synchronous and in
// subscription order; the originating chart is never echoed its own update.
type Controller struct {
	mu          sync.RWMutex
	subscribers []subscriber
	selected    map[string]struct{}
	origin      string // empty = no origin
}

// NewController creates an empty selection controller.
func NewController() *Controller {
	return &Controller{selected: make(map[string]struct{})}
}

// Subscribe registers a notification callback keyed by chart identity.
// Re-subscribing a chart replaces its callback but keeps its position in the
// notification order.
func (c *Controller) Subscribe(chartID string, cb Callback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.subscribers {
		if s.chartID == chartID {
			c.subscribers[i].cb = cb
			return
		}
	}
	c.subscribers = append(c.subscribers, subscriber{chartID: chartID, cb: cb})
}

// Unsubscribe removes a chart's callback.
func (c *Controller) Unsubscribe(chartID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.subscribers {
		if s.chartID == chartID {
			c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
			return
		}
	}
}

// Selected returns a copy of the current selection.
func (c *Controller) Selected() map[string]struct{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copySet(c.selected)
}

// Origin returns the chart id that drove the most recent selection, or the
// empty string when there is none.
func (c *Controller) Origin() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.origin
}

// UpdateSelection replaces the entire shared selection with ids and records
// chartID as its origin. Last writer wins; an empty ids slice is a valid
// "deselect everything". An update identical to the current selection with
// an unchanged origin is a no-op and produces no notifications.
func (c *Controller) UpdateSelection(chartID string, ids []string) {
	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		next[id] = struct{}{}
	}

	c.mu.Lock()
	if chartID == c.origin && sameSet(next, c.selected) {
		c.mu.Unlock()
		return
	}
	c.selected = next
	c.origin = chartID
	subs := append([]subscriber(nil), c.subscribers...)
	payload := copySet(next)
	c.mu.Unlock()

	for _, s := range subs {
		if s.chartID == chartID {
			continue
		}
		s.cb(chartID, copySet(payload))
	}
}

// ClearAll empties the selection, drops the origin, and notifies every
// subscriber. With no origin there is nobody to exclude.
func (c *Controller) ClearAll() {
	c.mu.Lock()
	c.selected = make(map[string]struct{})
	c.origin = ""
	subs := append([]subscriber(nil), c.subscribers...)
	c.mu.Unlock()

	for _, s := range subs {
		s.cb("", map[string]struct{}{})
	}
}

// Reset clears the selection state and removes all subscribers. Intended for
// workspace teardown; no notifications are sent.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = make(map[string]struct{})
	c.origin = ""
	c.subscribers = nil
}

func copySet(s map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func sameSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
