package ui

import (
	"time"

	"subgrip/internal/domain"
	"subgrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// itemsDeletedMsg contains the result of a bulk delete call
type itemsDeletedMsg struct {
	kind domain.ItemKind
	ids  []string
	err  error
}

// itemsMovedMsg contains the result of a move-to-profile call
type itemsMovedMsg struct {
	kind    domain.ItemKind
	ids     []string
	profile string
	err     error
}

// enabledToggledMsg contains the result of an enable/disable call
type enabledToggledMsg struct {
	kind    domain.ItemKind
	ids     []string
	enabled bool
	err     error
}

// subAddedMsg contains the result of adding a subscription
type subAddedMsg struct {
	sub *domain.Subscription
	err error
}

// nodeAddedMsg contains the result of adding a node
type nodeAddedMsg struct {
	node *domain.Node
	err  error
}

// profileCreatedMsg contains the result of creating a profile
type profileCreatedMsg struct {
	profile *domain.Profile
	err     error
}

// profileRenamedMsg contains the result of renaming a profile
type profileRenamedMsg struct {
	oldName string
	newName string
	err     error
}

// profileDeletedMsg contains the result of deleting a profile
type profileDeletedMsg struct {
	name string
	err  error
}

// settingsLoadedMsg carries the server preferences fetched at startup
type settingsLoadedMsg struct {
	settings *domain.Settings
	err      error
}

// exportDoneMsg is sent after share links were copied to the clipboard
type exportDoneMsg struct {
	count int
	err   error
}

// exportPreviewMsg carries rendered share links for the pager
type exportPreviewMsg struct {
	content string
	err     error
}

// pagerClosedMsg is sent after an external pager returned
type pagerClosedMsg struct {
	err error
}

// quitMsg signals that the application should quit
type quitMsg struct {
	saveConfig bool
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
