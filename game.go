package bouncy

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	TPS           int
	ShowHUD       bool
	Palette       Palette
	ScreenshotDir string
	Script        *ScriptRunner // optional scripted input
	Logger        *zap.Logger
	Debug         bool
	StatsEvery    int
}

// Game adapts a Simulation to ebiten.Game: every Update polls input, posts a
// tick and drains the loop; every Draw dispatches a redraw to the screen
// renderer and overlays the menu and HUD.
type Game struct {
	loop     *Loop
	renderer *ScreenRenderer
	menu     ContextMenu
	hud      hud
	showHUD  bool
	script   *ScriptRunner
	log      *zap.Logger
	keyBuf   []ebiten.Key

	screenshotDir   string
	screenshotQueue []string
}

// NewGame wires sim to an ebiten front end without opening a window.
func NewGame(sim *Simulation, cfg RunConfig) *Game {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	dir := cfg.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	r := NewScreenRenderer(cfg.Palette)
	r.Viewport = Viewport{Width: float64(cfg.Width), Height: float64(cfg.Height)}

	g := &Game{
		loop:          NewLoop(sim, r, log),
		renderer:      r,
		showHUD:       cfg.ShowHUD,
		script:        cfg.Script,
		log:           log,
		screenshotDir: dir,
	}
	g.loop.SetDebugMode(cfg.Debug, cfg.StatsEvery)
	return g
}

// Loop returns the event loop driving the simulation.
func (g *Game) Loop() *Loop { return g.loop }

// Post queues ev on the loop. Together with Screenshot it lets a Game be
// driven by a ScriptRunner.
func (g *Game) Post(ev Event) { g.loop.Post(ev) }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.script != nil {
		g.script.Step(g)
	}
	g.pollInput()
	g.loop.Post(Tick())
	if err := g.loop.Drain(); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.loop.Redraw()
	g.renderer.SetTarget(nil)

	if g.showHUD {
		g.hud.draw(screen, g.loop.Simulation().Frame())
	}
	g.menu.Draw(screen)
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The logical screen follows the window so
// NDC always spans the whole window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.renderer.Viewport = Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

// Run opens a window and drives sim until the window closes or the user
// presses q.
func Run(sim *Simulation, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	tps := cfg.TPS
	if tps <= 0 {
		tps = DefaultTPS
	}

	g := NewGame(sim, cfg)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	g.log.Info("window opened",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("tps", tps),
	)
	if err := ebiten.RunGame(g); err != nil {
		return errors.Wrap(err, "run game")
	}
	return nil
}
