// Command particlefield animates the particle field in a terminal
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/lixenwraith/particle-field/audio"
	"github.com/lixenwraith/particle-field/background"
	"github.com/lixenwraith/particle-field/config"
	"github.com/lixenwraith/particle-field/control"
	"github.com/lixenwraith/particle-field/core"
	"github.com/lixenwraith/particle-field/engine"
	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/input"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/render"
	"github.com/lixenwraith/particle-field/status"
	"github.com/lixenwraith/particle-field/terminal"
	"github.com/lixenwraith/particle-field/theme"
)

var (
	configFlag = flag.String("config", "particlefield.yaml", "Path to the YAML configuration")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under the log directory")
	statsFlag  = flag.Bool("stats", false, "Show the stats overlay on start")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "particlefield: stdout is not a terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "particlefield: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(*debugFlag || cfg.Log.Debug, cfg.Log.Dir); logFile != nil {
		defer logFile.Close()
	}

	keys, err := input.DefaultKeyTable().WithOverrides(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "particlefield: keys: %v\n", err)
		os.Exit(1)
	}

	// Audio is optional, failure leaves a silent manager
	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sound.Cleanup()

	screen := terminal.New(nil, cfg.Render.CellWidth, cfg.Render.CellHeight)
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "particlefield: %v\n", err)
		os.Exit(1)
	}
	core.RegisterScreen(screen.Tcell())
	defer func() {
		core.RegisterScreen(nil)
		screen.Fini()
	}()

	if mode, err := render.ParseBlendMode(cfg.Render.Blend); err == nil {
		screen.Canvas().SetBlendMode(mode)
	}

	// Theme: a watched file wins over the configured primary and presets
	primary, _ := theme.Parse(cfg.Theme.Primary)
	pal := control.NewPalette(primary, cfg.Presets(), cfg.Theme.Preset)
	var source theme.Source = pal
	if cfg.Theme.File != "" {
		source = theme.NewFileSource(cfg.Theme.File, pal)
	}

	dispatcher := engine.NewDispatcher()
	scheduler := engine.NewTickerScheduler(cfg.FrameInterval(), parameter.EventQueueSize, dispatcher)
	metrics := status.NewRegistry()

	// Raster follows the terminal before the field rebuilds its pool
	dispatcher.Subscribe(engine.EventResize, func(engine.Event) {
		screen.Resize()
	})

	bg := background.Mount(screen.Canvas(), source, field.New(cfg.Field, nil), dispatcher, scheduler,
		background.WithMetrics(metrics),
		background.WithBurstHook(sound.PlayBurst),
	)
	defer bg.Close()

	h := control.New(bg, keys, pal, sound, metrics)
	h.SetStatsVisible(*statsFlag || cfg.Render.Stats)
	h.Subscribe(dispatcher)

	dropped := metrics.Ints.Get(status.KeyDropped)
	scheduler.SetPostFrame(func(time.Time) {
		dropped.Store(int64(scheduler.Dropped()))
		screen.Flush(h.StatusLine())
	})

	log.Printf("particlefield started: %dx%d cell px, %v frame, %d presets",
		cfg.Render.CellWidth, cfg.Render.CellHeight, cfg.FrameInterval(), len(cfg.Presets()))

	scheduler.Start()

	translator := terminal.NewTranslator(cfg.Render.CellWidth, cfg.Render.CellHeight)
	core.Go(func() {
		var batch []engine.Event
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			batch = translator.Translate(ev, batch[:0])
			for _, e := range batch {
				scheduler.Post(e)
			}
		}
	})

	<-h.Done()
	scheduler.Stop()
	log.Printf("particlefield stopped after %d frames, %d dropped events", scheduler.Frames(), scheduler.Dropped())
}
