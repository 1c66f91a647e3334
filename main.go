package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"blockfolio/internal/config"
	"blockfolio/internal/eventbus"
	"blockfolio/internal/timeline"
	"blockfolio/internal/ui"
)

var version = "dev"

func main() {
	// Parse command line arguments
	var (
		configPath   string
		timelinePath string
		noIntro      bool
		showVersion  bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&timelinePath, "timeline", "", "Timeline YAML file to display instead of the built-in one")
	flag.StringVar(&timelinePath, "t", "", "Timeline YAML file (shorthand)")
	flag.BoolVar(&noIntro, "no-intro", false, "Skip the loading screen")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("blockfolio %s\n", version)
		return
	}

	// Positional argument is a timeline file
	if timelinePath == "" && flag.NArg() > 0 {
		timelinePath = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile("blockfolio.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()
	subscribeLogger(bus)

	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	configSvc = config.WithBus(configSvc, bus)

	cfg, err := loadOrCreateConfig(configSvc)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if timelinePath == "" {
		timelinePath = cfg.TimelinePath
	}
	tl, err := loadTimeline(timelinePath)
	if err != nil {
		fmt.Printf("Error loading timeline: %v\n", err)
		os.Exit(1)
	}
	bus.Publish(eventbus.TimelineLoadedEvent{Source: tl.Source(), Blocks: tl.Len()})

	if os.Getenv("BLOCKFOLIO_E2E_TEST") == "1" {
		bus.Subscribe(eventbus.EventAppReady, func(eventbus.DomainEvent) {
			fmt.Fprint(os.Stdout, "__READY__\n")
		})
	}

	intro := cfg.UISettings.ShowIntro && !noIntro

	// Create UI model
	log.Printf("Creating UI model for %s (%d blocks)", tl.Source(), tl.Len())
	uiModel := ui.NewModel(bus, cfg, tl, intro)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Handle termination signals the terminal does not turn into keys
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadOrCreateConfig loads the config file, writing the defaults on first run
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, error) {
	path := configSvc.Path()

	if _, err := os.Stat(path); err == nil {
		cfg, err := configSvc.Load()
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded config from %s", path)
		return cfg, nil
	}

	log.Printf("Creating new config at %s", path)
	cfg := config.DefaultConfig()
	if err := configSvc.Save(cfg); err != nil {
		// Not fatal, the defaults still work
		log.Printf("Failed to save config: %v", err)
	}
	return cfg, nil
}

// loadTimeline reads path, or the embedded timeline when path is empty
func loadTimeline(path string) (*timeline.Timeline, error) {
	if path == "" {
		return timeline.Default()
	}
	return timeline.LoadFile(path)
}

// subscribeLogger records the outcome of navigation and detail events
func subscribeLogger(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventTransitionStarted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.TransitionStartedEvent); ok {
			log.Printf("Navigation %d -> %d (%s)", ev.From, ev.To, ev.Source)
		}
	})
	bus.Subscribe(eventbus.EventTransitionSettled, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.TransitionSettledEvent); ok {
			log.Printf("Settled on block %d", ev.Index)
		}
	})
	bus.Subscribe(eventbus.EventDetailOpened, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.DetailOpenedEvent); ok {
			log.Printf("Detail opened for %s (pager=%v)", ev.BlockID, ev.Pager)
		}
	})
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SearchCompletedEvent); ok {
			log.Printf("Search %q: %d matches", ev.Query, ev.MatchCount)
		}
	})
	bus.Subscribe(eventbus.EventChainVerified, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ChainVerifiedEvent); ok && !ev.Valid {
			log.Printf("Chain verification failed: %v", ev.Err)
		}
	})
}
