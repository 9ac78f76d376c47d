package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/sepdash/core"
	"github.com/jask/sepdash/internal/cache"
	"github.com/jask/sepdash/internal/config"
	"github.com/jask/sepdash/internal/history"
	"github.com/jask/sepdash/internal/i18n"
	"github.com/jask/sepdash/internal/proc"
)

func main() {
	var (
		configPath string
		debug      bool
		screenID   string
	)

	root := &cobra.Command{
		Use:           "sepdash",
		Short:         "Interactive dashboard for audio source separation workers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				os.Setenv("SEPDASH_CONFIG", configPath)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if debug {
				cfg.UI.Debug = true
			}
			return run(cfg, screenID)
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "config file path (overrides SEPDASH_CONFIG)")
	root.Flags().BoolVar(&debug, "debug", false, "start with debug mode on")
	root.Flags().StringVar(&screenID, "screen", core.ScreenInference, "starting screen: inference or train")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, screenID string) error {
	reg := core.DefaultRegistry()

	// Seed field values from the persisted cache; a broken cache only warns.
	if values, err := cache.Load(cfg.Cache.Path); err != nil {
		log.Printf("warn: field cache: %v", err)
	} else {
		reg.ImportValues(values)
	}

	var hist *history.Store
	if cfg.History.Enabled {
		var err error
		if hist, err = history.Open(cfg.History.Path); err != nil {
			log.Printf("warn: run history disabled: %v", err)
			hist = nil
		}
	}
	if hist != nil {
		defer hist.Close()
	}

	cat := i18n.New(cfg.UI.Language)

	var p *tea.Program
	procs := proc.NewManager(func(ev proc.Event) {
		p.Send(core.ProcessEventMsg{Event: ev})
	})

	app := core.NewApp(cfg, reg, procs, hist, cat, screenID)
	p = tea.NewProgram(app, tea.WithAltScreen())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		p.Send(core.ShutdownMsg{})
	}()

	// Backstop for exit paths that skip the in-app shutdown.
	defer func() {
		procs.KillAll()
		_ = cache.Save(cfg.Cache.Path, reg.ExportValues())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
