package coordinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subgrip/internal/domain"
	"subgrip/internal/store"
	"subgrip/internal/ui/services/query"
	"subgrip/internal/ui/services/sorting"
)

type fixture struct {
	coord    *Coordinator
	subs     *store.MemorySubscriptionStore
	nodes    *store.MemoryNodeStore
	profiles *store.MemoryProfileStore
	tab      domain.ItemKind
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		subs:     store.NewMemorySubscriptionStore(),
		nodes:    store.NewMemoryNodeStore(),
		profiles: store.NewMemoryProfileStore(),
		tab:      domain.KindSubscription,
	}
	f.subs.ReplaceSubscriptions([]domain.Subscription{
		{ID: "s1", Name: "beta", Profile: "work", Enabled: true},
		{ID: "s2", Name: "alpha", Enabled: true},
	})
	f.nodes.ReplaceNodes([]domain.Node{
		{ID: "n1", Name: "jp-1", Protocol: "vmess", Enabled: true},
	})
	f.profiles.ReplaceProfiles([]domain.Profile{
		{Name: "work", Subs: []string{"s1"}},
	})

	f.coord = NewCoordinator(f.subs, f.nodes, f.profiles)
	f.coord.SetTabFunction(func() domain.ItemKind { return f.tab })
	f.coord.UpdateOrderedLists()
	return f
}

func TestRowsFollowActiveTab(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	rows := f.coord.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, query.RowProfileHeader, rows[0].Kind)
	assert.Equal(t, "s1", rows[1].Sub.ID)
	assert.Equal(t, "s2", rows[2].Sub.ID)

	f.tab = domain.KindNode
	rows = f.coord.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "n1", rows[0].Node.ID)

	f.tab = domain.KindProfile
	rows = f.coord.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "work", rows[0].Profile)
}

func TestMaxIndexOnEmptyList(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.subs.ReplaceSubscriptions(nil)
	f.coord.UpdateOrderedLists()

	assert.Equal(t, 0, f.coord.MaxIndex())
	assert.Nil(t, f.coord.CurrentRow())
	assert.Empty(t, f.coord.CurrentItemID())
}

func TestCursorHelpers(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	// Row 0 is the work section header
	assert.True(t, f.coord.IsOnProfileRow())
	assert.Equal(t, "work", f.coord.CurrentProfileName())
	assert.Empty(t, f.coord.CurrentItemID())

	f.coord.Navigation.MoveToIndex(1)
	assert.False(t, f.coord.IsOnProfileRow())
	assert.Equal(t, "s1", f.coord.CurrentItemID())
	assert.Equal(t, "work", f.coord.CurrentProfileName())
}

func TestMoveCursorToItem(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.coord.MoveCursorToItem("s2")
	assert.Equal(t, 2, f.coord.GetCurrentIndex())

	// Unknown ids leave the cursor alone
	f.coord.MoveCursorToItem("nope")
	assert.Equal(t, 2, f.coord.GetCurrentIndex())
}

func TestUpdateOrderedListsAppliesSortMode(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.subs.UpdateSubscription(&domain.Subscription{
		ID: "s1", Name: "beta", Profile: "work", Enabled: true,
		Status: domain.SubStatus{NodeCount: 3},
	})
	f.subs.AddSubscription(&domain.Subscription{
		ID: "s3", Name: "gamma", Profile: "work", Enabled: true,
		Status: domain.SubStatus{NodeCount: 9},
	})

	f.coord.Sorting.SetMode(sorting.SortByNodes)
	f.coord.UpdateOrderedLists()

	rows := f.coord.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, "s3", rows[1].Sub.ID) // 9 nodes
	assert.Equal(t, "s1", rows[2].Sub.ID) // 3 nodes
}

func TestCursorClampsWhenListShrinks(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.coord.Navigation.MoveToIndex(2)

	f.subs.RemoveSubscription("s2")
	f.coord.UpdateOrderedLists()

	assert.Equal(t, 1, f.coord.GetCurrentIndex())
	assert.Equal(t, "s1", f.coord.CurrentItemID())
}
