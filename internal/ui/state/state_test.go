package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"subgrip/internal/domain"
)

func TestTrackerPerTab(t *testing.T) {
	t.Parallel()

	s := NewAppState(nil)

	s.Tracker(TabSubscriptions).Toggle("s1")
	s.Tracker(TabNodes).Toggle("n1")

	assert.True(t, s.SubSelection.IsSelected("s1"))
	assert.False(t, s.SubSelection.IsSelected("n1"))
	assert.True(t, s.NodeSelection.IsSelected("n1"))
	assert.Equal(t, 0, s.ProfileSelection.Count())
}

func TestActiveTrackerFollowsTab(t *testing.T) {
	t.Parallel()

	s := NewAppState(nil)
	s.ActiveTracker().Toggle("s1")

	s.ActiveTab = TabNodes
	assert.False(t, s.ActiveTracker().IsSelected("s1"))
	s.ActiveTracker().Toggle("n1")
	assert.Equal(t, 1, s.NodeSelection.Count())
}

func TestTabKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.KindSubscription, TabSubscriptions.Kind())
	assert.Equal(t, domain.KindNode, TabNodes.Kind())
	assert.Equal(t, domain.KindProfile, TabProfiles.Kind())
}

func TestSetRefreshing(t *testing.T) {
	t.Parallel()

	s := NewAppState(nil)
	s.SetRefreshing([]string{"s1", "s2"}, true)
	assert.Len(t, s.RefreshingSubs, 2)

	s.SetRefreshing([]string{"s1"}, false)
	assert.Len(t, s.RefreshingSubs, 1)
	assert.True(t, s.RefreshingSubs["s2"])

	s.Progress = domain.RefreshProgress{InFlight: true, Completed: 1, Total: 2}
	s.ClearRefreshing()
	assert.Empty(t, s.RefreshingSubs)
	assert.Zero(t, s.Progress.Total)
}
