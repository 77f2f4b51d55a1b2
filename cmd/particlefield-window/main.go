// Command particlefield-window animates the particle field in a desktop window
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/particle-field/audio"
	"github.com/lixenwraith/particle-field/background"
	"github.com/lixenwraith/particle-field/config"
	"github.com/lixenwraith/particle-field/control"
	"github.com/lixenwraith/particle-field/engine"
	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/input"
	"github.com/lixenwraith/particle-field/status"
	"github.com/lixenwraith/particle-field/theme"
)

var (
	configFlag = flag.String("config", "particlefield.yaml", "Path to the YAML configuration")
	debugFlag  = flag.Bool("debug", false, "Log to stderr")
	statsFlag  = flag.Bool("stats", false, "Show the stats overlay on start")
	widthFlag  = flag.Int("width", 1280, "Initial window width")
	heightFlag = flag.Int("height", 800, "Initial window height")
)

// game adapts the background to ebiten's Update/Draw/Layout loop
// Frames run from Update through a manual scheduler, one frame per tick
type game struct {
	canvas *canvas
	disp   *engine.Dispatcher
	sched  *engine.ManualScheduler
	host   *control.Host
	step   time.Duration

	inside bool
	lastX  int
	lastY  int
	shift  bool
	chars  []rune
}

func (g *game) Update() error {
	if g.host.Quitting() {
		return ebiten.Termination
	}
	g.pollPointer()
	g.pollKeys()
	g.sched.Advance(g.step)
	return nil
}

func (g *game) pollPointer() {
	x, y := ebiten.CursorPosition()
	inside := ebiten.IsFocused() && x >= 0 && y >= 0 && x < g.canvas.width && y < g.canvas.height

	switch {
	case inside && (!g.inside || x != g.lastX || y != g.lastY):
		g.disp.Dispatch(engine.PointerEvent(float64(x), float64(y)))
	case !inside && g.inside:
		g.disp.Dispatch(engine.Event{Kind: engine.EventPointerLeave})
	}
	g.inside, g.lastX, g.lastY = inside, x, y

	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.disp.Dispatch(engine.ClickEvent(float64(x), float64(y)))
	}
}

func (g *game) pollKeys() {
	if shift := ebiten.IsKeyPressed(ebiten.KeyShift); shift != g.shift {
		g.shift = shift
		g.disp.Dispatch(engine.KeyEvent(engine.KeyShift, 0, shift))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.disp.Dispatch(engine.KeyEvent(engine.KeyEscape, 0, true))
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.disp.Dispatch(engine.KeyEvent(engine.KeyRune, r, true))
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.img, nil)
	if line := g.host.StatusLine(); line != "" {
		ebitenutil.DebugPrint(screen, line)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.canvas.resize(outsideWidth, outsideHeight) {
		w, h := g.canvas.Size()
		g.disp.Dispatch(engine.ResizeEvent(w, h))
	}
	return g.canvas.width, g.canvas.height
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "particlefield-window: %v\n", err)
		os.Exit(1)
	}
	if !*debugFlag && !cfg.Log.Debug {
		log.SetOutput(io.Discard)
	}

	keys, err := input.DefaultKeyTable().WithOverrides(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "particlefield-window: keys: %v\n", err)
		os.Exit(1)
	}

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sound.Cleanup()

	primary, _ := theme.Parse(cfg.Theme.Primary)
	pal := control.NewPalette(primary, cfg.Presets(), cfg.Theme.Preset)
	var source theme.Source = pal
	if cfg.Theme.File != "" {
		source = theme.NewFileSource(cfg.Theme.File, pal)
	}

	cv := newCanvas()
	cv.resize(*widthFlag, *heightFlag)

	disp := engine.NewDispatcher()
	sched := engine.NewManualScheduler(time.Now())
	metrics := status.NewRegistry()

	bg := background.Mount(cv, source, field.New(cfg.Field, nil), disp, sched,
		background.WithMetrics(metrics),
		background.WithBurstHook(sound.PlayBurst),
	)
	defer bg.Close()

	h := control.New(bg, keys, pal, sound, metrics)
	h.SetStatsVisible(*statsFlag || cfg.Render.Stats)
	h.Subscribe(disp)

	g := &game{
		canvas: cv,
		disp:   disp,
		sched:  sched,
		host:   h,
		step:   cfg.FrameInterval(),
	}

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("particle field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Render.FPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
