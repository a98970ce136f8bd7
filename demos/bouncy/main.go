// Bouncy opens a window where you draw a boundary and an object with the
// mouse and watch the object bounce around inside the boundary.
//
// Right-click for the menu. t/r toggle translation/rotation, arrow keys
// tune velocity and spin, q quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phanxgames/bouncy"
	"github.com/phanxgames/bouncy/audio"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	scriptPath := flag.String("script", "", "YAML input script to replay")
	logLevel := flag.String("log-level", "", "override log level (debug, info, warn, error)")
	mute := flag.Bool("mute", false, "disable the bounce tone")
	flag.Parse()

	if err := run(*configPath, *scriptPath, *logLevel, *mute); err != nil {
		fmt.Fprintln(os.Stderr, "bouncy:", err)
		os.Exit(1)
	}
}

func run(configPath, scriptPath, logLevel string, mute bool) error {
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
	if mute {
		cfg.Audio.Enabled = false
	}

	log, err := bouncy.NewLogger(cfg.Log.Level, cfg.Log.Output)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	sim := bouncy.NewSimulation(cfg.SimConfig(), log)

	player := audio.NewPlayer(audio.Config{
		Enabled:   cfg.Audio.Enabled,
		Frequency: cfg.Audio.Frequency,
		Duration:  cfg.Audio.Duration,
		Volume:    cfg.Audio.Volume,
	}, log)
	if err := player.Init(); err != nil {
		log.Warn("continuing without sound", zap.Error(err))
	}
	defer player.Close()
	sim.OnBounce(func(bouncy.Bounce) { player.PlayBounce() })

	rc := cfg.RunConfig()
	rc.Logger = log
	if scriptPath != "" {
		script, err := bouncy.LoadScriptFile(scriptPath)
		if err != nil {
			return err
		}
		rc.Script = script
	}
	return bouncy.Run(sim, rc)
}
