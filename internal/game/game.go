package game

import (
	"fmt"
	"time"

	"ninedraft/internal/config"
	"ninedraft/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Game is the top-level orchestrator: it owns the screen, the renderer,
// and the session, and runs the fixed-interval tick loop.
type Game struct {
	cfg      config.Config
	screen   tcell.Screen
	renderer *render.Renderer
	session  *Session

	mouse struct{ x, y int } // last known mouse position
}

// New creates a Game on the local terminal.
func New(cfg config.Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(cfg, screen)
}

// NewWithScreen creates a Game on an existing, uninitialised screen. The
// SSH front-end uses this to run a game on a remote terminal.
func NewWithScreen(cfg config.Config, screen tcell.Screen) (*Game, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()

	session, err := NewSession(cfg)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: render.NewRenderer(screen, cfg.BlockSize),
		session:  session,
	}, nil
}

// Run drives the game until the player quits. The simulation advances on a
// fixed tick; input events are folded in between ticks.
func (g *Game) Run() error {
	defer g.screen.Fini()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go g.screen.ChannelEvents(events, quit)
	defer close(quit)

	tick := time.NewTicker(time.Duration(g.cfg.TickMillis) * time.Millisecond)
	defer tick.Stop()
	dt := float64(g.cfg.TickMillis) / 1000

	for {
		select {
		case <-tick.C:
			g.session.Step(dt)
			if g.session.Player().Dead() {
				if !g.runDeathScreen(events) {
					return nil
				}
				if err := g.session.Restart(); err != nil {
					return err
				}
				continue
			}
			g.drawFrame()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			cont, err := g.handleEvent(ev, events)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	}
}

func (g *Game) drawFrame() {
	target, inRange := g.session.Target()
	g.renderer.DrawFrame(g.session.World(), target, inRange)
	g.renderer.DrawHUD(g.session.Player(), g.session.Hotbar(), g.session.Messages())
}

// handleEvent processes one input event. cont is false when the player
// quits.
func (g *Game) handleEvent(ev tcell.Event, events <-chan tcell.Event) (cont bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()

	case *tcell.EventKey:
		action, slot := keyToAction(ev)
		switch action {
		case ActionQuit:
			return false, nil
		case ActionMoveLeft:
			g.session.Move(-1, 0)
		case ActionMoveRight:
			g.session.Move(1, 0)
		case ActionMoveDown:
			g.session.Move(0, 1)
		case ActionJump:
			g.session.Jump()
		case ActionSelectSlot:
			g.session.SelectSlot(slot)
		case ActionCrafting:
			if err := g.session.ToggleCrafting("basic"); err != nil {
				return true, err
			}
		}

	case *tcell.EventMouse:
		g.mouse.x, g.mouse.y = ev.Position()
		p := g.renderer.ScreenToPixel(g.mouse.x, g.mouse.y)
		switch {
		case ev.Buttons()&tcell.ButtonPrimary != 0:
			if err := g.session.LeftClick(p); err != nil {
				return true, err
			}
		case ev.Buttons()&tcell.ButtonSecondary != 0:
			if err := g.session.RightClick(p); err != nil {
				return true, err
			}
		default:
			g.session.SetTarget(p)
		}
	}

	// Interactions may have opened a crafter; the modal blocks the
	// simulation until it closes.
	if g.session.Crafter() != nil {
		return g.runCraftingScreen(events)
	}
	return true, nil
}

// putText writes a string to the screen at (x, y), one column per rune.
func (g *Game) putText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// runDeathScreen shows the death banner until the player restarts or
// quits. Returns false to quit.
func (g *Game) runDeathScreen(events <-chan tcell.Event) bool {
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	for {
		g.screen.Clear()
		sw, sh := g.screen.Size()
		centre := func(y int, s string, style tcell.Style) {
			g.putText((sw-len(s))/2, y, s, style)
		}
		centre(sh/2-1, "YOU DIED", red)
		centre(sh/2+1, "[R] Respawn", green)
		centre(sh/2+2, "[Q] Quit", white)
		g.screen.Show()

		ev, ok := <-events
		if !ok {
			return false
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				return false
			}
			switch ev.Rune() {
			case 'r', 'R':
				return true
			case 'q', 'Q':
				return false
			}
		}
	}
}
