// Package term runs the bouncing polygon demo in a terminal using tcell.
// Each cell is one sample of normalized device coordinates; the bottom row
// is a status line.
package term

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/bouncy"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configures a Term.
type Options struct {
	TPS    int
	Logger *zap.Logger
}

// Term drives a Simulation from terminal input and renders it with
// block characters.
type Term struct {
	screen  tcell.Screen
	loop    *bouncy.Loop
	tps     int
	log     *zap.Logger
	buttons tcell.ButtonMask
	fini    sync.Once
}

// New wires sim to screen. The screen must already be initialized; Run
// finalizes it on return.
func New(screen tcell.Screen, sim *bouncy.Simulation, opts Options) *Term {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	tps := opts.TPS
	if tps <= 0 {
		tps = bouncy.DefaultTPS
	}
	t := &Term{screen: screen, tps: tps, log: log}
	t.loop = bouncy.NewLoop(sim, t, log)
	return t
}

// Loop returns the event loop driving the simulation.
func (t *Term) Loop() *bouncy.Loop { return t.loop }

// Run polls terminal events and ticks the simulation until ctx is done or
// the user quits. Quitting is not an error.
func (t *Term) Run(ctx context.Context) error {
	t.screen.EnableMouse()
	t.screen.HideCursor()
	defer t.close()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	g.Go(func() error {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		// PollEvent only returns nil once the screen is finalized.
		defer t.close()
		return t.tickLoop(ctx, events)
	})

	err := g.Wait()
	if errors.Is(err, bouncy.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (t *Term) close() {
	t.fini.Do(t.screen.Fini)
}

func (t *Term) tickLoop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(time.Second / time.Duration(t.tps))
	defer ticker.Stop()

	t.log.Info("terminal loop started", zap.Int("tps", t.tps))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				t.screen.Sync()
			}
			out, quit := t.Translate(ev)
			if quit {
				return bouncy.ErrQuit
			}
			for _, e := range out {
				t.loop.Post(e)
			}
		case <-ticker.C:
			t.loop.Post(bouncy.Tick())
			t.loop.Post(bouncy.Redraw())
			if err := t.loop.Drain(); err != nil {
				return err
			}
		}
	}
}

// Translate converts a terminal event into simulation events. quit is true
// for Escape and Ctrl-C.
func (t *Term) Translate(ev tcell.Event) (out []bouncy.Event, quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return nil, true
		case tcell.KeyUp:
			return []bouncy.Event{bouncy.DirectionInput(bouncy.DirectionUp)}, false
		case tcell.KeyDown:
			return []bouncy.Event{bouncy.DirectionInput(bouncy.DirectionDown)}, false
		case tcell.KeyLeft:
			return []bouncy.Event{bouncy.DirectionInput(bouncy.DirectionLeft)}, false
		case tcell.KeyRight:
			return []bouncy.Event{bouncy.DirectionInput(bouncy.DirectionRight)}, false
		case tcell.KeyRune:
			return runeEvents(ev.Rune()), false
		}
	case *tcell.EventMouse:
		btns := ev.Buttons()
		pressed := btns &^ t.buttons
		t.buttons = btns
		if pressed&tcell.Button1 == 0 {
			return nil, false
		}
		w, h := t.screen.Size()
		x, y := ev.Position()
		if y >= h-1 {
			return nil, false
		}
		return []bouncy.Event{bouncy.Click(CellToNDC(x, y, w, h-1))}, false
	}
	return nil, false
}

func runeEvents(r rune) []bouncy.Event {
	switch r {
	case 't', 'r', 'q':
		return []bouncy.Event{bouncy.Key(r)}
	case '1':
		return []bouncy.Event{bouncy.Menu(bouncy.MenuDefineBoundary)}
	case '2':
		return []bouncy.Event{bouncy.Menu(bouncy.MenuDefineObject)}
	case '3':
		return []bouncy.Event{bouncy.Menu(bouncy.MenuStartMovement)}
	}
	return nil
}

var (
	styleBoundary = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleObject   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleFlash    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleMarker   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleStatus   = tcell.StyleDefault.Reverse(true)
)

// Render implements bouncy.Renderer.
func (t *Term) Render(f bouncy.Frame) {
	w, h := t.screen.Size()
	t.screen.Clear()
	if w <= 0 || h <= 1 {
		t.screen.Show()
		return
	}

	grid := rasterize(f, w, h-1)
	objStyle := styleObject
	if f.Flash > 0.5 {
		objStyle = styleFlash
	}
	for i, c := range grid {
		x, y := i%w, i/w
		switch c {
		case cellBoundary:
			t.screen.SetContent(x, y, '#', nil, styleBoundary)
		case cellObject:
			t.screen.SetContent(x, y, '█', nil, objStyle)
		case cellMarker:
			t.screen.SetContent(x, y, '+', nil, styleMarker)
		}
	}

	status := statusLine(f)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		t.screen.SetContent(x, h-1, r, nil, styleStatus)
	}
	t.screen.Show()
}

func statusLine(f bouncy.Frame) string {
	return fmt.Sprintf(" %s | v=(%.4f,%.4f) spin=%.2f | t:%s r:%s | bounces %d | 1 boundary 2 object 3 start q quit",
		f.Mode, f.Velocity.X, f.Velocity.Y, f.Speed,
		onOff(f.Translating), onOff(f.Rotating), f.Bounces)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
