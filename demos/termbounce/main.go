// Termbounce runs the bouncing polygon demo in a terminal. Click to place
// vertices; 1 defines the boundary, 2 the object, 3 starts movement. Esc or
// q quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/bouncy"
	"github.com/phanxgames/bouncy/term"
	"github.com/pkg/errors"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	logFile := flag.String("log", "termbounce.log", "log file (the terminal is busy drawing)")
	logLevel := flag.String("log-level", "", "override log level")
	flag.Parse()

	if err := run(*configPath, *logFile, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "termbounce:", err)
		os.Exit(1)
	}
}

func run(configPath, logFile, logLevel string) error {
	cfg := bouncy.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = bouncy.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log, err := bouncy.NewLogger(cfg.Log.Level, logFile)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sim := bouncy.NewSimulation(cfg.SimConfig(), log)
	t := term.New(screen, sim, term.Options{TPS: cfg.TPS, Logger: log})
	t.Loop().SetDebugMode(cfg.Log.Debug, cfg.Log.StatsEvery)
	return t.Run(ctx)
}
