package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"subgrip/internal/eventbus"
	"subgrip/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Bus:   bus,
		},
	}
}

// ExecuteRefresh creates and executes a refresh command
func (e *Executor) ExecuteRefresh(ids []string, all bool) tea.Cmd {
	cmd := NewRefreshCommand(e.ctx, ids, all)
	return cmd.Execute()
}

// ExecuteToggleSelection creates and executes a toggle selection command
func (e *Executor) ExecuteToggleSelection(id string) tea.Cmd {
	cmd := NewToggleSelectionCommand(e.ctx, id)
	return cmd.Execute()
}

// ExecuteToggleBatchMode creates and executes a batch mode command
func (e *Executor) ExecuteToggleBatchMode(reset bool) tea.Cmd {
	cmd := NewToggleBatchModeCommand(e.ctx, reset)
	return cmd.Execute()
}

// ExecuteDeselectAll creates and executes a deselect all command
func (e *Executor) ExecuteDeselectAll() tea.Cmd {
	cmd := NewDeselectAllCommand(e.ctx)
	return cmd.Execute()
}
