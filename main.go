package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"

	"subgrip/internal/api"
	"subgrip/internal/config"
	"subgrip/internal/eventbus"
	"subgrip/internal/refresher"
	"subgrip/internal/store"
	"subgrip/internal/ui"
)

var version = "dev"

type options struct {
	Config  string `short:"c" long:"config" description:"Path to the config file"`
	Server  string `short:"s" long:"server" description:"Management API base URL (overrides the config)"`
	Token   string `long:"token" description:"Management API token (overrides the config)"`
	Theme   string `long:"theme" description:"UI theme: dark or light" choice:"dark" choice:"light"`
	Debug   bool   `long:"debug" description:"Enable debug logging"`
	Version bool   `short:"v" long:"version" description:"Print the version and exit"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("subgrip %s\n", version)
		os.Exit(0)
	}

	logger := setupLogging(opts.Debug)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadConfig(configSvc, opts, logger)

	client := api.NewClient(cfg.Server.BaseURL, cfg.Server.Token,
		time.Duration(cfg.Server.TimeoutSeconds)*time.Second)

	subs := store.NewMemorySubscriptionStore()
	nodes := store.NewMemoryNodeStore()
	profiles := store.NewMemoryProfileStore()

	// The refresher subscribes itself to refresh requests
	refreshSvc := refresher.NewService(bus, client, subs)

	// Persist settings whenever the UI reports a change
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			cfg.Profiles = event.Profiles
			if err := saveConfig(configSvc, cfg, opts.Config); err != nil {
				logger.Error("failed to save config", "err", err)
			} else {
				logger.Debug("config saved")
			}
		}
	})

	model := ui.NewModel(bus, cfg, client, subs, nodes, profiles)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Every domain event also reaches the UI as a program message
	forward := func(e eventbus.DomainEvent) {
		go p.Send(ui.EventMsg{Event: e})
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventSubsLoaded, eventbus.EventSubAdded, eventbus.EventSubUpdated,
		eventbus.EventSubsDeleted, eventbus.EventNodesLoaded, eventbus.EventNodeAdded,
		eventbus.EventNodesDeleted, eventbus.EventProfilesLoaded, eventbus.EventProfileAdded,
		eventbus.EventProfileRenamed, eventbus.EventProfileRemoved, eventbus.EventItemsMoved,
		eventbus.EventItemsEnabled, eventbus.EventRefreshProgressed, eventbus.EventRefreshCompleted,
		eventbus.EventConfigLoaded, eventbus.EventError, eventbus.EventAppReady,
	} {
		bus.Subscribe(eventType, forward)
	}

	go loadInitialData(ctx, bus, client, cfg, logger)
	go startAutoRefresh(ctx, refreshSvc, client, logger)

	logger.Info("starting", "version", version, "server", cfg.Server.BaseURL)
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends structured logs to subgrip.log, the terminal
// belongs to the UI.
func setupLogging(debug bool) *log.Logger {
	logFile, err := os.OpenFile("subgrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logFile = nil
	}

	var logger *log.Logger
	if logFile != nil {
		logger = log.NewWithOptions(logFile, log.Options{
			ReportTimestamp: true,
		})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{})
		logger.SetLevel(log.FatalLevel)
	}
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the config file and applies command line overrides
func loadConfig(svc config.ConfigService, opts options, logger *log.Logger) *config.Config {
	var cfg *config.Config
	var err error
	if opts.Config != "" {
		cfg, err = svc.LoadFromPath(opts.Config)
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultConfig()
	}

	if opts.Server != "" {
		cfg.Server.BaseURL = opts.Server
	}
	if opts.Token != "" {
		cfg.Server.Token = opts.Token
	}
	if opts.Theme != "" {
		cfg.UISettings.Theme = opts.Theme
	}
	return cfg
}

func saveConfig(svc config.ConfigService, cfg *config.Config, path string) error {
	if path != "" {
		return svc.SaveToPath(cfg, path)
	}
	return svc.Save(cfg)
}

// loadInitialData fetches the item lists and signals readiness
func loadInitialData(ctx context.Context, bus eventbus.EventBus, client *api.Client,
	cfg *config.Config, logger *log.Logger) {
	if subs, err := client.Subscriptions(ctx); err != nil {
		logger.Error("loading subscriptions", "err", err)
		bus.Publish(eventbus.ErrorEvent{Op: "load", Message: err.Error()})
	} else {
		bus.Publish(eventbus.SubsLoadedEvent{Subs: subs})
	}

	if nodes, err := client.Nodes(ctx); err != nil {
		logger.Error("loading nodes", "err", err)
		bus.Publish(eventbus.ErrorEvent{Op: "load", Message: err.Error()})
	} else {
		bus.Publish(eventbus.NodesLoadedEvent{Nodes: nodes})
	}

	if profiles, err := client.Profiles(ctx); err != nil {
		logger.Error("loading profiles", "err", err)
		bus.Publish(eventbus.ErrorEvent{Op: "load", Message: err.Error()})
	} else {
		bus.Publish(eventbus.ProfilesLoadedEvent{Profiles: profiles})
	}

	bus.Publish(eventbus.AppReadyEvent{ServerURL: cfg.Server.BaseURL})
}

// startAutoRefresh enables periodic refreshes when the server asks for them
func startAutoRefresh(ctx context.Context, svc refresher.Service, client *api.Client, logger *log.Logger) {
	settings, err := client.Settings(ctx)
	if err != nil {
		logger.Debug("no server settings", "err", err)
		return
	}
	if settings.AutoRefreshMinutes > 0 {
		interval := time.Duration(settings.AutoRefreshMinutes) * time.Minute
		logger.Info("auto refresh enabled", "interval", interval)
		svc.StartAutoRefresh(ctx, interval)
	}
}
