package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures every notification a subscriber receives.
type recorder struct {
	origins []string
	sets    []map[string]struct{}
}

func (r *recorder) callback() Callback {
	return func(origin string, ids map[string]struct{}) {
		r.origins = append(r.origins, origin)
		r.sets = append(r.sets, ids)
	}
}

func set(ids ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func TestUpdateExcludesOrigin(t *testing.T) {
	c := NewController()
	var a, b recorder
	c.Subscribe("a", a.callback())
	c.Subscribe("b", b.callback())

	c.UpdateSelection("a", []string{"p1", "p2"})

	assert.Empty(t, a.origins, "the originating chart is never echoed its own update")
	require.Len(t, b.origins, 1)
	assert.Equal(t, "a", b.origins[0])
	assert.Equal(t, set("p1", "p2"), b.sets[0])

	assert.Equal(t, set("p1", "p2"), c.Selected())
	assert.Equal(t, "a", c.Origin())
}

func TestLastWriterWins(t *testing.T) {
	c := NewController()
	var a, b recorder
	c.Subscribe("a", a.callback())
	c.Subscribe("b", b.callback())

	c.UpdateSelection("a", []string{"p1"})
	c.UpdateSelection("b", []string{"p9"})

	// The second update replaced the first outright.
	assert.Equal(t, set("p9"), c.Selected())
	assert.Equal(t, "b", c.Origin())

	require.Len(t, a.origins, 1)
	assert.Equal(t, "b", a.origins[0])
	assert.Equal(t, set("p9"), a.sets[0])
	assert.Len(t, b.origins, 1, "b only saw a's earlier update")
}

func TestIdenticalUpdateIsSuppressed(t *testing.T) {
	c := NewController()
	var b recorder
	c.Subscribe("b", b.callback())

	c.UpdateSelection("a", []string{"p1"})
	c.UpdateSelection("a", []string{"p1"})

	assert.Len(t, b.origins, 1, "repeating the same update from the same origin is a no-op")
}

func TestSameSetDifferentOriginNotifies(t *testing.T) {
	c := NewController()
	var a recorder
	c.Subscribe("a", a.callback())

	c.UpdateSelection("a", []string{"p1"})
	c.UpdateSelection("b", []string{"p1"})

	require.Len(t, a.origins, 1)
	assert.Equal(t, "b", a.origins[0])
}

func TestEmptyUpdateDeselects(t *testing.T) {
	c := NewController()
	var b recorder
	c.Subscribe("b", b.callback())

	c.UpdateSelection("a", []string{"p1"})
	c.UpdateSelection("a", nil)

	require.Len(t, b.origins, 2)
	assert.Empty(t, b.sets[1])
	assert.Empty(t, c.Selected())
}

func TestNotificationOrderFollowsSubscription(t *testing.T) {
	c := NewController()
	var order []string
	for _, id := range []string{"a", "b", "c"} {
		id := id
		c.Subscribe(id, func(string, map[string]struct{}) {
			order = append(order, id)
		})
	}

	c.UpdateSelection("external", []string{"p1"})
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestResubscribeKeepsPosition(t *testing.T) {
	c := NewController()
	var order []string
	c.Subscribe("a", func(string, map[string]struct{}) { order = append(order, "a-old") })
	c.Subscribe("b", func(string, map[string]struct{}) { order = append(order, "b") })
	c.Subscribe("a", func(string, map[string]struct{}) { order = append(order, "a-new") })

	c.UpdateSelection("external", []string{"p1"})
	assert.Equal(t, []string{"a-new", "b"}, order)
}

func TestClearAllNotifiesEveryone(t *testing.T) {
	c := NewController()
	var a, b recorder
	c.Subscribe("a", a.callback())
	c.Subscribe("b", b.callback())

	c.UpdateSelection("a", []string{"p1"})
	c.ClearAll()

	// With no origin even the previous writer hears about the clear.
	require.Len(t, a.origins, 1)
	assert.Equal(t, "", a.origins[0])
	assert.Empty(t, a.sets[0])
	require.Len(t, b.origins, 2)
	assert.Empty(t, b.sets[1])

	assert.Empty(t, c.Selected())
	assert.Equal(t, "", c.Origin())
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	c := NewController()
	var a recorder
	c.Subscribe("a", a.callback())
	c.Unsubscribe("a")

	c.UpdateSelection("b", []string{"p1"})
	assert.Empty(t, a.origins)
}

func TestResetDropsEverythingSilently(t *testing.T) {
	c := NewController()
	var a recorder
	c.Subscribe("a", a.callback())
	c.UpdateSelection("b", []string{"p1"})
	require.Len(t, a.origins, 1)

	c.Reset()

	assert.Empty(t, c.Selected())
	assert.Equal(t, "", c.Origin())

	c.UpdateSelection("b", []string{"p2"})
	assert.Len(t, a.origins, 1, "reset removed the subscriber without notifying it")
}

func TestCallbackReceivesPrivateCopy(t *testing.T) {
	c := NewController()
	c.Subscribe("a", func(_ string, ids map[string]struct{}) {
		delete(ids, "p1")
		ids["rogue"] = struct{}{}
	})

	c.UpdateSelection("b", []string{"p1"})
	assert.Equal(t, set("p1"), c.Selected(), "mutating the delivered set must not leak")
}

func TestSelectedReturnsCopy(t *testing.T) {
	c := NewController()
	c.UpdateSelection("a", []string{"p1"})

	got := c.Selected()
	got["rogue"] = struct{}{}
	assert.Equal(t, set("p1"), c.Selected())
}
