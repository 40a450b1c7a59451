package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"subgrip/internal/eventbus"
	"subgrip/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Bus   eventbus.EventBus
}

// RefreshCommand requests a refresh of subscriptions
type RefreshCommand struct {
	ctx *CommandContext
	ids []string
	all bool
}

// NewRefreshCommand creates a new refresh command. With all set the ids
// are ignored and every enabled subscription refreshes.
func NewRefreshCommand(ctx *CommandContext, ids []string, all bool) *RefreshCommand {
	return &RefreshCommand{
		ctx: ctx,
		ids: ids,
		all: all,
	}
}

// Execute publishes the refresh request
func (c *RefreshCommand) Execute() tea.Cmd {
	if c.all {
		c.ctx.State.SetStatus("Refreshing all enabled subscriptions...")
		if c.ctx.Bus != nil {
			c.ctx.Bus.Publish(eventbus.RefreshRequestedEvent{})
		}
		return nil
	}

	if len(c.ids) > 0 {
		c.ctx.State.SetRefreshing(c.ids, true)
		if c.ctx.Bus != nil {
			c.ctx.Bus.Publish(eventbus.RefreshRequestedEvent{IDs: c.ids})
		}
	}
	return nil
}

// ToggleSelectionCommand flips the selection of one item on the active
// tab, entering batch mode first when it is not active yet.
type ToggleSelectionCommand struct {
	ctx *CommandContext
	id  string
}

// NewToggleSelectionCommand creates a new toggle selection command
func NewToggleSelectionCommand(ctx *CommandContext, id string) *ToggleSelectionCommand {
	return &ToggleSelectionCommand{
		ctx: ctx,
		id:  id,
	}
}

// Execute toggles the selection
func (c *ToggleSelectionCommand) Execute() tea.Cmd {
	if c.id == "" {
		return nil
	}
	tracker := c.ctx.State.ActiveTracker()
	if !tracker.InBatchMode() {
		tracker.ToggleBatchMode(false)
	}
	tracker.Toggle(c.id)
	return nil
}

// ToggleBatchModeCommand enters or leaves batch mode on the active tab
type ToggleBatchModeCommand struct {
	ctx   *CommandContext
	reset bool
}

// NewToggleBatchModeCommand creates a new batch mode command. reset
// clears the selection when the toggle leaves batch mode.
func NewToggleBatchModeCommand(ctx *CommandContext, reset bool) *ToggleBatchModeCommand {
	return &ToggleBatchModeCommand{
		ctx:   ctx,
		reset: reset,
	}
}

// Execute toggles batch mode
func (c *ToggleBatchModeCommand) Execute() tea.Cmd {
	c.ctx.State.ActiveTracker().ToggleBatchMode(c.reset)
	return nil
}

// DeselectAllCommand clears the selection on the active tab
type DeselectAllCommand struct {
	ctx *CommandContext
}

// NewDeselectAllCommand creates a new deselect all command
func NewDeselectAllCommand(ctx *CommandContext) *DeselectAllCommand {
	return &DeselectAllCommand{ctx: ctx}
}

// Execute clears the selection
func (c *DeselectAllCommand) Execute() tea.Cmd {
	c.ctx.State.ActiveTracker().DeselectAll()
	return nil
}
