package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subgrip/internal/domain"
	"subgrip/internal/ui/input/types"
)

type stubContext struct {
	tab         domain.ItemKind
	itemID      string
	onProfile   bool
	profileName string
	filter      string
}

func (c *stubContext) CurrentIndex() int          { return 0 }
func (c *stubContext) TotalItems() int            { return 1 }
func (c *stubContext) ActiveTab() domain.ItemKind { return c.tab }
func (c *stubContext) InBatchMode() bool          { return false }
func (c *stubContext) HasSelection() bool         { return false }
func (c *stubContext) SelectedCount() int         { return 0 }
func (c *stubContext) CurrentItemID() string      { return c.itemID }
func (c *stubContext) IsOnProfile() bool          { return c.onProfile }
func (c *stubContext) CurrentProfileName() string { return c.profileName }
func (c *stubContext) FilterQuery() string        { return c.filter }
func (c *stubContext) GetCurrentSort() string     { return "name" }
func (c *stubContext) ConfirmBeforeDelete() bool  { return true }

func press(h *Handler, ctx types.Context, keys ...tea.KeyMsg) []types.Action {
	var all []types.Action
	for _, k := range keys {
		actions, _ := h.HandleKey(k, ctx)
		all = append(all, actions...)
	}
	return all
}

func runes(s string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func TestHandlerStartsInNormalMode(t *testing.T) {
	t.Parallel()

	h := New()
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestHandlerEntersAndLeavesFilterMode(t *testing.T) {
	t.Parallel()

	h := New()
	ctx := &stubContext{}

	actions, cmd := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")}, ctx)
	assert.Equal(t, types.ModeFilter, h.CurrentMode())
	assert.NotNil(t, cmd) // cursor blink
	require.NotNil(t, h.TextInput())

	// Entering filter mode expands all sections
	var expanded bool
	for _, a := range actions {
		if _, ok := a.(types.ExpandAllProfilesAction); ok {
			expanded = true
		}
	}
	assert.True(t, expanded)

	h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestHandlerForwardsTypingToTextInput(t *testing.T) {
	t.Parallel()

	h := New()
	ctx := &stubContext{}

	h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")}, ctx)
	actions := press(h, ctx, runes("vmess")...)

	// Every keystroke yields an UpdateTextAction with the value so far
	var last types.UpdateTextAction
	count := 0
	for _, a := range actions {
		if update, ok := a.(types.UpdateTextAction); ok {
			last = update
			count++
		}
	}
	assert.Equal(t, 5, count)
	assert.Equal(t, "vmess", last.Text)
	assert.Equal(t, "vmess", h.TextInput().Value())
}

func TestHandlerSubmitsText(t *testing.T) {
	t.Parallel()

	h := New()
	ctx := &stubContext{}

	h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")}, ctx)
	require.Equal(t, types.ModeAddSub, h.CurrentMode())

	press(h, ctx, runes("main https://example.com/sub")...)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)

	require.NotEmpty(t, actions)
	submit, ok := actions[0].(types.SubmitTextAction)
	require.True(t, ok)
	assert.Equal(t, "main https://example.com/sub", submit.Text)
	assert.Equal(t, types.ModeAddSub, submit.Mode)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestHandlerPrefillsRename(t *testing.T) {
	t.Parallel()

	h := New()
	ctx := &stubContext{onProfile: true, profileName: "work"}

	h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("R")}, ctx)
	require.Equal(t, types.ModeRenameProfile, h.CurrentMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "work", h.TextInput().Value())
}

func TestHandlerIgnoresUnknownKeysInNormalMode(t *testing.T) {
	t.Parallel()

	h := New()
	actions, cmd := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, &stubContext{})
	assert.Empty(t, actions)
	assert.Nil(t, cmd)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestHandlerReset(t *testing.T) {
	t.Parallel()

	h := New()
	ctx := &stubContext{}
	h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")}, ctx)
	press(h, ctx, runes("abc")...)

	h.Reset()
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}
