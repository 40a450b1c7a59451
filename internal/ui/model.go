package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"subgrip/internal/api"
	"subgrip/internal/config"
	"subgrip/internal/domain"
	"subgrip/internal/eventbus"
	"subgrip/internal/store"
	"subgrip/internal/ui/commands"
	"subgrip/internal/ui/coordinator"
	"subgrip/internal/ui/handlers"
	"subgrip/internal/ui/input"
	"subgrip/internal/ui/input/types"
	"subgrip/internal/ui/services/navigation"
	"subgrip/internal/ui/services/sorting"
	"subgrip/internal/ui/state"
	"subgrip/internal/ui/viewmodels"
	"subgrip/internal/ui/views"
)

// Model is the Bubble Tea model tying the services together
type Model struct {
	bus    eventbus.EventBus
	cfg    *config.Config
	client *api.Client
	subs     store.SubscriptionStore
	nodes    store.NodeStore
	profiles store.ProfileStore

	state        *state.AppState
	coord        *coordinator.Coordinator
	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	executor     *commands.Executor
	input        *input.Handler
	inputCtx     *input.ModelContext
	pager        *Pager
	help         help.Model

	width        int
	height       int
	inPager      bool
	exportFormat string
}

// NewModel creates the application model
func NewModel(bus eventbus.EventBus, cfg *config.Config, client *api.Client,
	subs store.SubscriptionStore, nodes store.NodeStore, profiles store.ProfileStore) *Model {
	appState := state.NewAppState(bus)
	appState.Theme = cfg.UISettings.Theme
	if appState.Theme == "" {
		appState.Theme = "dark"
	}
	appState.ShowSidebar = !cfg.UISettings.SidebarCollapsed
	appState.ShowTimestamps = cfg.UISettings.ShowTimestamps
	appState.ConfirmBulkDelete = cfg.UISettings.ConfirmBulkDelete
	appState.ServerURL = cfg.Server.BaseURL
	appState.Loading = true
	appState.LoadingState = "Connecting to server..."

	coord := coordinator.NewCoordinator(subs, nodes, profiles)
	coord.SetTabFunction(func() domain.ItemKind {
		return appState.ActiveTab.Kind()
	})

	m := &Model{
		bus:          bus,
		cfg:          cfg,
		client:       client,
		subs:         subs,
		nodes:        nodes,
		profiles:     profiles,
		state:        appState,
		coord:        coord,
		viewModel:    viewmodels.NewViewModel(appState, coord),
		renderer:     views.NewRenderer(appState.Theme, appState.ShowTimestamps),
		executor:     commands.NewExecutor(appState, bus),
		input:        input.New(),
		pager:        NewPager(),
		help:         help.New(),
		exportFormat: "links",
	}
	m.inputCtx = &input.ModelContext{State: appState, Coordinator: coord}
	m.eventHandler = handlers.NewEventHandler(appState, subs, nodes, profiles, coord.UpdateOrderedLists)
	m.viewModel.SetHelp(m.help)
	return m
}

// SetProgram hands the running program to parts that need terminal control
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.loadSettingsCmd())
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		// Title, tabs, footer and container padding eat into the list
		viewport := msg.Height - 8
		if viewport < 3 {
			viewport = 3
		}
		m.coord.SetViewportHeight(viewport)
		return m, nil

	case tea.KeyMsg:
		if m.inPager {
			return m, nil
		}
		actions, inputCmd := m.input.HandleKey(msg, m.inputCtx)
		cmds := []tea.Cmd{inputCmd}
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}

	return m, m.handleNonKeyboardMsg(msg)
}

// View implements tea.Model
func (m *Model) View() string {
	if m.inPager {
		return ""
	}

	modeName := m.input.ModeName()
	switch {
	case modeName == "normal" || modeName == "":
		m.viewModel.SetInput("", "")
	case modeName == "sort":
		m.viewModel.SetInput("sort", "")
	case m.input.TextInput() != nil:
		m.viewModel.SetInput(modeName, m.input.Prompt()+m.input.TextInput().View())
	default:
		m.viewModel.SetInput(modeName, "")
	}
	m.viewModel.SetConfirm(
		m.input.CurrentMode() == types.ModeConfirmDelete,
		m.input.PendingProfile(),
	)

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction executes one action emitted by the input layer
func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.NavigateAction:
		m.coord.Navigation.Navigate(navigation.Direction(a.Direction))

	case types.SwitchTabAction:
		m.switchTab((int(m.state.ActiveTab) + a.Offset + 3) % 3)

	case types.SelectTabAction:
		m.switchTab(a.Tab)

	case types.ToggleSelectAction:
		return m.executor.ExecuteToggleSelection(m.coord.CurrentItemID())

	case types.ToggleBatchModeAction:
		return m.executor.ExecuteToggleBatchMode(a.Reset)

	case types.SelectAllAction:
		m.selectAllVisible()

	case types.DeselectAllAction:
		return m.executor.ExecuteDeselectAll()

	case types.InvertSelectionAction:
		m.invertVisible()

	case types.SelectProfileAction:
		m.toggleProfileSelection(a.Profile)

	case types.UpdateTextAction:
		if m.input.CurrentMode() == types.ModeFilter {
			m.coord.Query.SetFilter(a.Text)
			m.coord.Navigation.Clamp()
		}

	case types.SubmitTextAction:
		return m.submitText(a)

	case types.CancelTextAction:
		// Modes restore their own state on exit

	case types.SetFilterAction:
		m.coord.Query.SetFilter(a.Query)
		m.coord.Navigation.Clamp()

	case types.RefreshAction:
		if a.All {
			return m.executor.ExecuteRefresh(nil, true)
		}
		return m.executor.ExecuteRefresh(m.targetIDs(), false)

	case types.ToggleEnabledAction:
		return m.toggleEnabledCmd()

	case types.DeleteItemsAction:
		return m.deleteItemsCmd()

	case types.DeleteProfileAction:
		return m.deleteProfileCmd(a.Name)

	case types.RenameProfileAction:
		return m.renameProfileCmd(a.OldName, a.NewName)

	case types.ExportAction:
		return m.exportCmd(a.Preview)

	case types.ToggleProfileAction:
		if name := m.coord.CurrentProfileName(); name != "" {
			m.coord.Query.ToggleProfile(name)
			m.coord.Navigation.Clamp()
		}

	case types.ExpandProfileAction:
		if name := m.coord.CurrentProfileName(); name != "" {
			m.coord.Query.SetExpanded(name, true)
		}

	case types.CollapseProfileAction:
		if name := m.coord.CurrentProfileName(); name != "" {
			m.coord.Query.SetExpanded(name, false)
			m.coord.Navigation.Clamp()
		}

	case types.ExpandAllProfilesAction:
		m.coord.Query.ExpandAll()

	case types.ToggleInfoAction:
		if m.state.ShowInfo {
			m.state.ShowInfo = false
			m.state.InfoContent = ""
		} else if info := m.buildItemInfo(); info != "" {
			m.state.ShowInfo = true
			m.state.InfoContent = info
		}

	case types.ToggleHelpAction:
		return m.showPagerCmd(buildHelpText())

	case types.ToggleSidebarAction:
		m.state.ShowSidebar = !m.state.ShowSidebar
		m.cfg.UISettings.SidebarCollapsed = !m.state.ShowSidebar
		m.publishConfigChanged()

	case types.ToggleThemeAction:
		if m.state.Theme == "light" {
			m.state.Theme = "dark"
		} else {
			m.state.Theme = "light"
		}
		m.cfg.UISettings.Theme = m.state.Theme
		m.renderer.SetTheme(m.state.Theme)
		m.publishConfigChanged()

	case types.SortByAction:
		m.coord.Sorting.SetMode(sortModeFromKey(a.Criteria))
		m.coord.UpdateOrderedLists()

	case types.UpdateSortIndexAction:
		m.state.SortOptionIndex = a.Index

	case types.QuitAction:
		if !a.Force {
			m.publishConfigChanged()
		}
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg processes everything that is not a key press
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		m.eventHandler.HandleEvent(msg.Event)
		return nil

	case tickMsg:
		return tickCmd()

	case settingsLoadedMsg:
		if msg.err == nil && msg.settings != nil && msg.settings.ExportFormat != "" {
			m.exportFormat = msg.settings.ExportFormat
		}

	case subAddedMsg:
		if msg.err != nil {
			m.state.SetStatus("Error adding subscription: " + msg.err.Error())
		} else {
			m.bus.Publish(eventbus.SubAddedEvent{Sub: *msg.sub})
		}

	case nodeAddedMsg:
		if msg.err != nil {
			m.state.SetStatus("Error adding node: " + msg.err.Error())
		} else {
			m.bus.Publish(eventbus.NodeAddedEvent{Node: *msg.node})
		}

	case itemsDeletedMsg:
		if msg.err != nil {
			m.state.SetStatus("Error deleting: " + msg.err.Error())
			return nil
		}
		switch msg.kind {
		case domain.KindSubscription:
			m.bus.Publish(eventbus.SubsDeletedEvent{IDs: msg.ids})
		case domain.KindNode:
			m.bus.Publish(eventbus.NodesDeletedEvent{IDs: msg.ids})
		case domain.KindProfile:
			for _, name := range msg.ids {
				m.bus.Publish(eventbus.ProfileRemovedEvent{Name: name})
			}
		}

	case itemsMovedMsg:
		if msg.err != nil {
			m.state.SetStatus("Error moving: " + msg.err.Error())
		} else {
			m.bus.Publish(eventbus.ItemsMovedEvent{Kind: msg.kind, IDs: msg.ids, ToProfile: msg.profile})
		}

	case enabledToggledMsg:
		if msg.err != nil {
			m.state.SetStatus("Error toggling: " + msg.err.Error())
		} else {
			m.bus.Publish(eventbus.ItemsEnabledEvent{Kind: msg.kind, IDs: msg.ids, Enabled: msg.enabled})
		}

	case profileCreatedMsg:
		if msg.err != nil {
			m.state.SetStatus("Error creating profile: " + msg.err.Error())
		} else {
			m.bus.Publish(eventbus.ProfileAddedEvent{Name: msg.profile.Name})
		}

	case profileRenamedMsg:
		if msg.err != nil {
			m.state.SetStatus("Error renaming profile: " + msg.err.Error())
		} else {
			m.bus.Publish(eventbus.ProfileRenamedEvent{OldName: msg.oldName, NewName: msg.newName})
		}

	case profileDeletedMsg:
		if msg.err != nil {
			m.state.SetStatus("Error deleting profile: " + msg.err.Error())
		} else {
			m.bus.Publish(eventbus.ProfileRemovedEvent{Name: msg.name})
		}

	case exportDoneMsg:
		if msg.err != nil {
			m.state.SetStatus("Export failed: " + msg.err.Error())
		} else {
			m.state.SetStatus(fmt.Sprintf("Copied share links for %d item(s)", msg.count))
		}

	case exportPreviewMsg:
		if msg.err != nil {
			m.state.SetStatus("Export failed: " + msg.err.Error())
			return nil
		}
		return m.showPagerCmd(msg.content)

	case pagerClosedMsg:
		m.inPager = false
		if msg.err != nil {
			m.state.SetStatus("Pager error: " + msg.err.Error())
		}

	case pauseRenderingMsg:
		m.inPager = true

	case resumeRenderingMsg:
		m.inPager = false

	case quitMsg:
		if msg.saveConfig {
			m.publishConfigChanged()
		}
		return tea.Quit
	}

	return nil
}

// switchTab activates another tab, saving and restoring cursors
func (m *Model) switchTab(tab int) {
	m.state.TabCursors[m.state.ActiveTab] = m.coord.GetCurrentIndex()
	m.state.ActiveTab = state.Tab(tab)
	m.coord.Navigation.MoveToIndex(m.state.TabCursors[m.state.ActiveTab])
	m.coord.Navigation.Clamp()
}

// selectAllVisible unions the visible items into the selection
func (m *Model) selectAllVisible() {
	switch m.state.ActiveTab {
	case state.TabNodes:
		m.state.NodeSelection.SelectAll(m.coord.Query.VisibleNodes())
	case state.TabProfiles:
		m.state.ProfileSelection.SelectAll(m.coord.Query.VisibleProfiles())
	default:
		m.state.SubSelection.SelectAll(m.coord.Query.VisibleSubscriptions())
	}
}

// invertVisible inverts the selection within the visible items
func (m *Model) invertVisible() {
	switch m.state.ActiveTab {
	case state.TabNodes:
		m.state.NodeSelection.Invert(m.coord.Query.VisibleNodes())
	case state.TabProfiles:
		m.state.ProfileSelection.Invert(m.coord.Query.VisibleProfiles())
	default:
		m.state.SubSelection.Invert(m.coord.Query.VisibleSubscriptions())
	}
}

// toggleProfileSelection selects a whole section, or deselects it when
// every member is already selected.
func (m *Model) toggleProfileSelection(profile string) {
	members := m.coord.ProfileMemberIDs(m.state.ActiveTab.Kind(), profile)
	if len(members) == 0 {
		return
	}
	tracker := m.state.ActiveTracker()
	if !tracker.InBatchMode() {
		tracker.ToggleBatchMode(false)
	}

	allSelected := true
	for _, id := range members {
		if !tracker.IsSelected(id) {
			allSelected = false
			break
		}
	}
	for _, id := range members {
		if tracker.IsSelected(id) == allSelected {
			tracker.Toggle(id)
		}
	}
}

// targetIDs returns the ids an operation applies to: the selection, or
// the item under the cursor.
func (m *Model) targetIDs() []string {
	tracker := m.state.ActiveTracker()
	if tracker.HasSelection() {
		return tracker.SelectedIDs()
	}
	if id := m.coord.CurrentItemID(); id != "" {
		return []string{id}
	}
	return nil
}

// submitText dispatches the submitted text of the input modes
func (m *Model) submitText(a types.SubmitTextAction) tea.Cmd {
	text := strings.TrimSpace(a.Text)

	switch a.Mode {
	case types.ModeFilter:
		m.coord.Query.SetFilter(text)
		m.coord.Navigation.Clamp()

	case types.ModeAddSub:
		name, url, ok := splitNameRest(text)
		if !ok {
			m.state.SetStatus("Usage: <name> <url>")
			return nil
		}
		return m.addSubscriptionCmd(name, url)

	case types.ModeAddNode:
		name, link, ok := splitNameRest(text)
		if !ok {
			m.state.SetStatus("Usage: <name> <proto://host:port>")
			return nil
		}
		node, err := parseNodeLink(name, link)
		if err != nil {
			m.state.SetStatus("Invalid node: " + err.Error())
			return nil
		}
		return m.addNodeCmd(node)

	case types.ModeNewProfile:
		if text == "" {
			return nil
		}
		return m.createProfileCmd(text)

	case types.ModeMoveToProfile:
		ids := m.targetIDs()
		if len(ids) == 0 {
			return nil
		}
		return m.moveItemsCmd(m.state.ActiveTab.Kind(), ids, text)
	}

	return nil
}

// toggleEnabledCmd enables the targets when any is disabled, disables
// them otherwise.
func (m *Model) toggleEnabledCmd() tea.Cmd {
	kind := m.state.ActiveTab.Kind()
	if kind == domain.KindProfile {
		return nil
	}
	ids := m.targetIDs()
	if len(ids) == 0 {
		return nil
	}

	enable := false
	for _, id := range ids {
		if !m.isEnabled(kind, id) {
			enable = true
			break
		}
	}

	return func() tea.Msg {
		err := m.client.SetEnabled(context.Background(), kind, ids, enable)
		return enabledToggledMsg{kind: kind, ids: ids, enabled: enable, err: err}
	}
}

func (m *Model) isEnabled(kind domain.ItemKind, id string) bool {
	switch kind {
	case domain.KindNode:
		if node := m.nodes.GetNode(id); node != nil {
			return node.Enabled
		}
	default:
		if sub := m.subs.GetSubscription(id); sub != nil {
			return sub.Enabled
		}
	}
	return true
}

// deleteItemsCmd deletes the targets on the active tab
func (m *Model) deleteItemsCmd() tea.Cmd {
	kind := m.state.ActiveTab.Kind()
	ids := m.targetIDs()
	if len(ids) == 0 {
		return nil
	}

	client := m.client
	switch kind {
	case domain.KindNode:
		return func() tea.Msg {
			err := client.DeleteNodes(context.Background(), ids)
			return itemsDeletedMsg{kind: kind, ids: ids, err: err}
		}
	case domain.KindProfile:
		return func() tea.Msg {
			for _, name := range ids {
				if err := client.DeleteProfile(context.Background(), name); err != nil {
					return itemsDeletedMsg{kind: kind, ids: ids, err: err}
				}
			}
			return itemsDeletedMsg{kind: kind, ids: ids}
		}
	default:
		return func() tea.Msg {
			err := client.DeleteSubscriptions(context.Background(), ids)
			return itemsDeletedMsg{kind: kind, ids: ids, err: err}
		}
	}
}

func (m *Model) deleteProfileCmd(name string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.DeleteProfile(context.Background(), name)
		return profileDeletedMsg{name: name, err: err}
	}
}

func (m *Model) renameProfileCmd(oldName, newName string) tea.Cmd {
	if newName == "" || newName == oldName {
		return nil
	}
	client := m.client
	return func() tea.Msg {
		err := client.RenameProfile(context.Background(), oldName, newName)
		return profileRenamedMsg{oldName: oldName, newName: newName, err: err}
	}
}

func (m *Model) createProfileCmd(name string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.CreateProfile(context.Background(), name)
		return profileCreatedMsg{profile: &domain.Profile{Name: name}, err: err}
	}
}

func (m *Model) moveItemsCmd(kind domain.ItemKind, ids []string, profile string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.MoveToProfile(context.Background(), kind, ids, profile)
		return itemsMovedMsg{kind: kind, ids: ids, profile: profile, err: err}
	}
}

func (m *Model) addSubscriptionCmd(name, url string) tea.Cmd {
	client := m.client
	sub := domain.Subscription{
		ID:      uuid.NewString(),
		Name:    name,
		URL:     url,
		Enabled: true,
	}
	return func() tea.Msg {
		created, err := client.CreateSubscription(context.Background(), sub)
		return subAddedMsg{sub: created, err: err}
	}
}

func (m *Model) addNodeCmd(node domain.Node) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		created, err := client.CreateNode(context.Background(), node)
		return nodeAddedMsg{node: created, err: err}
	}
}

// exportCmd fetches share links for the targets, then copies them to
// the clipboard or opens them in the pager.
func (m *Model) exportCmd(preview bool) tea.Cmd {
	kind := m.state.ActiveTab.Kind()
	ids := m.targetIDs()
	if len(ids) == 0 {
		return nil
	}

	client := m.client
	format := m.exportFormat
	return func() tea.Msg {
		content, err := client.Export(context.Background(), kind, ids, format)
		if preview {
			return exportPreviewMsg{content: content, err: err}
		}
		if err == nil {
			err = clipboard.WriteAll(content)
		}
		return exportDoneMsg{count: len(ids), err: err}
	}
}

// showPagerCmd hands the terminal to the pager until it exits
func (m *Model) showPagerCmd(content string) tea.Cmd {
	m.inPager = true
	pager := m.pager
	return func() tea.Msg {
		err := pager.ShowText(content)
		return pagerClosedMsg{err: err}
	}
}

func (m *Model) loadSettingsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		settings, err := client.Settings(context.Background())
		return settingsLoadedMsg{settings: settings, err: err}
	}
}

// buildItemInfo renders the details popup for the row under the cursor
func (m *Model) buildItemInfo() string {
	row := m.coord.CurrentRow()
	if row == nil {
		return ""
	}

	var b strings.Builder
	switch {
	case row.Sub != nil:
		sub := row.Sub
		b.WriteString(fmt.Sprintf("Subscription: %s\n", sub.Name))
		b.WriteString(fmt.Sprintf("URL:          %s\n", sub.URL))
		b.WriteString(fmt.Sprintf("Profile:      %s\n", orDash(sub.Profile)))
		b.WriteString(fmt.Sprintf("Enabled:      %t\n", sub.Enabled))
		b.WriteString(fmt.Sprintf("Nodes:        %d", sub.Status.NodeCount))
		if sub.Status.Delta != 0 {
			b.WriteString(fmt.Sprintf(" (%+d)", sub.Status.Delta))
		}
		b.WriteString("\n")
		if !sub.Status.RefreshedAt.IsZero() {
			b.WriteString(fmt.Sprintf("Refreshed:    %s\n", sub.Status.RefreshedAt.Format(time.RFC3339)))
		}
		if sub.Status.Error != "" {
			b.WriteString(fmt.Sprintf("Error:        %s\n", sub.Status.Error))
		}

	case row.Node != nil:
		node := row.Node
		b.WriteString(fmt.Sprintf("Node:     %s\n", node.Name))
		b.WriteString(fmt.Sprintf("Protocol: %s\n", node.Protocol))
		b.WriteString(fmt.Sprintf("Address:  %s:%d\n", node.Address, node.Port))
		b.WriteString(fmt.Sprintf("Profile:  %s\n", orDash(node.Profile)))
		b.WriteString(fmt.Sprintf("Enabled:  %t\n", node.Enabled))
		if node.Source != "" {
			b.WriteString(fmt.Sprintf("Source:   subscription %s\n", node.Source))
		} else {
			b.WriteString("Source:   manual\n")
		}

	default:
		b.WriteString(fmt.Sprintf("Profile: %s\n", row.Profile))
		b.WriteString(fmt.Sprintf("Items:   %d\n", row.Count))
	}

	return strings.TrimRight(b.String(), "\n")
}

// publishConfigChanged asks the config layer to persist current settings
func (m *Model) publishConfigChanged() {
	m.bus.Publish(eventbus.ConfigChangedEvent{Profiles: m.profileMembership()})
}

// profileMembership snapshots profile membership for the config cache
func (m *Model) profileMembership() map[string][]string {
	membership := make(map[string][]string)
	for name, p := range m.profiles.GetAllProfiles() {
		membership[name] = append(append([]string{}, p.Subs...), p.Nodes...)
	}
	return membership
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sortModeFromKey maps the picker keys to sort modes
func sortModeFromKey(key string) sorting.Mode {
	switch key {
	case "recent":
		return sorting.SortByRecent
	case "nodes":
		return sorting.SortByNodes
	case "protocol":
		return sorting.SortByProtocol
	default:
		return sorting.SortByName
	}
}

// splitNameRest splits "name rest..." into the first word and the rest
func splitNameRest(text string) (string, string, bool) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return "", "", false
	}
	return fields[0], strings.Join(fields[1:], " "), true
}

// parseNodeLink parses a "proto://host:port" link into a node
func parseNodeLink(name, link string) (domain.Node, error) {
	protoIdx := strings.Index(link, "://")
	if protoIdx <= 0 {
		return domain.Node{}, fmt.Errorf("missing protocol")
	}
	proto := link[:protoIdx]
	hostPort := link[protoIdx+3:]

	colonIdx := strings.LastIndex(hostPort, ":")
	if colonIdx <= 0 || colonIdx == len(hostPort)-1 {
		return domain.Node{}, fmt.Errorf("missing port")
	}
	port, err := strconv.Atoi(hostPort[colonIdx+1:])
	if err != nil || port <= 0 || port > 65535 {
		return domain.Node{}, fmt.Errorf("invalid port")
	}

	return domain.Node{
		ID:       uuid.NewString(),
		Name:     name,
		Protocol: proto,
		Address:  hostPort[:colonIdx],
		Port:     port,
		Enabled:  true,
	}, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
