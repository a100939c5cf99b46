package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/aldnav/lazyrepos/app"
	"github.com/aldnav/lazyrepos/pkg/azuredevops"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		log.Printf("Exiting with error: %v", err)
		fmt.Fprintf(os.Stderr, "lazyrepos: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  string
		envFile     string
		logFile     string
		plain       bool
		tickRate    time.Duration
		showVersion bool
	)

	flagSet := pflag.NewFlagSet("lazyrepos", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to lazyrepos.toml (default: ./lazyrepos.toml, then ~/.lazyrepos.toml)")
	flagSet.StringVar(&envFile, "env-file", ".env", "dotenv file with ADO_ORGANIZATION / ADO_PROJECT")
	flagSet.StringVar(&logFile, "log-file", "", "append log output to this file instead of stderr")
	flagSet.BoolVar(&plain, "plain", false, "print repository names instead of starting the terminal UI")
	flagSet.DurationVar(&tickRate, "tick-rate", 0, "UI tick interval (overrides ui.tick_rate)")
	flagSet.BoolVar(&showVersion, "version", false, "print version and exit")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if showVersion {
		fmt.Println("lazyrepos", version)
		return nil
	}

	log.SetOutput(os.Stderr)
	log.SetPrefix("[lazyrepos] ")
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	log.Println("Application starting...")

	if err := azuredevops.LoadEnvFile(envFile); err != nil {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}

	log.Println("Loading configuration...")
	config, err := azuredevops.NewConfig()
	if err != nil {
		return err
	}
	log.Printf("Configuration loaded successfully. Organization: %s, Project: %s", config.Organization, config.Project)

	appConfig, err := loadAppConfig(configPath)
	if err != nil {
		return err
	}
	if tickRate != 0 {
		appConfig.UI.TickRate = tickRate.String()
		if err := appConfig.Validate(); err != nil {
			return err
		}
	}
	tick, _ := appConfig.TickRateDuration()
	timeout, _ := appConfig.FetchTimeoutDuration()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log.Println("Creating Azure DevOps client...")
	client, err := azuredevops.NewClient(fetchCtx, config)
	if err != nil {
		return err
	}

	log.Println("Fetching repositories from Azure DevOps API...")
	names, err := client.ListItems(fetchCtx)
	if err != nil {
		return err
	}
	log.Printf("Successfully fetched %d repositories", len(names))
	if appConfig.UI.Sort {
		sortNames(names)
	}

	if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printNames(os.Stdout, names)
	}

	summary := app.Summary{Organization: config.Organization, Project: config.Project}
	if project, err := client.GetProject(fetchCtx); err != nil {
		log.Printf("Error fetching project details: %v", err)
	} else {
		summary.Visibility = project.Visibility
		summary.Description = project.Description
	}
	// The UI owns Ctrl+C from here on
	stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return &app.TerminalError{Op: "open", Err: err}
	}

	log.Println("Starting lazyrepos terminal UI...")
	if err := app.Run(screen, names, app.Options{
		Title:    appConfig.UI.Title,
		Summary:  summary,
		TickRate: tick,
	}); err != nil {
		return err
	}
	log.Println("Application exiting...")
	return nil
}

func loadAppConfig(path string) (*app.AppConfig, error) {
	if path != "" {
		return app.LoadConfig(path)
	}
	appConfig, foundPath, err := app.FindConfig()
	if errors.Is(err, app.ErrNoConfig) {
		return appConfig, nil
	}
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded configuration from %s", foundPath)
	return appConfig, nil
}

// sortNames orders names the way a person reads them: case-insensitive, digits by value
func sortNames(names []string) {
	collate.New(language.English, collate.IgnoreCase, collate.Numeric).SortStrings(names)
}

func printNames(w io.Writer, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
