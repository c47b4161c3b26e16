package engine

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/xj9zitto/terminal-game-test/audio"
	"github.com/xj9zitto/terminal-game-test/constants"
	"github.com/xj9zitto/terminal-game-test/input"
	"github.com/xj9zitto/terminal-game-test/render"
	"github.com/xj9zitto/terminal-game-test/terminal"
)

var errZeroSurface = errors.New("surface has zero size")

// Loop drives the fixed-tick simulation. Each tick drains pending
// input into the tracker, evaluates held state, advances the player,
// and redraws only when something changed. Quit is a debounced action
// like any other, checked once per tick.
type Loop struct {
	screen   terminal.Screen
	renderer *render.Renderer
	ctx      *Context
	cues     *audio.Manager
	log      zerolog.Logger

	forceRedraw bool
}

// NewLoop wires a loop over an initialized screen.
func NewLoop(screen terminal.Screen, renderer *render.Renderer, ctx *Context, cues *audio.Manager, log zerolog.Logger) *Loop {
	return &Loop{
		screen:   screen,
		renderer: renderer,
		ctx:      ctx,
		cues:     cues,
		log:      log,
	}
}

// Run blocks until quit is requested, the event stream closes, or the
// surface becomes unusable. The first frame draws before any input.
func (l *Loop) Run() error {
	w, h := l.screen.Size()
	if w <= 0 || h <= 0 {
		return errZeroSurface
	}
	l.log.Info().Int("width", w).Int("height", h).Msg("frame loop started")

	l.redraw()

	ticker := time.NewTicker(constants.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-l.screen.Events():
			if !ok {
				l.log.Info().Msg("event stream closed")
				return nil
			}
			l.handleEvent(ev, time.Now())

		case <-ticker.C:
			now := time.Now()
			// Fold in any events still queued so a same-tick burst is
			// never split across held-state evaluations.
			l.drainEvents(now)

			quit, err := l.tick(now)
			if quit || err != nil {
				return err
			}
		}
	}
}

func (l *Loop) tick(now time.Time) (quit bool, err error) {
	held := l.ctx.Tracker.Snapshot(now)
	if held.Quit {
		l.log.Info().Msg("quit requested")
		return true, nil
	}

	out := Advance(held, l.ctx.Player, l.ctx.Grid)
	if out.Moved {
		l.cues.Footstep()
	} else if out.Blocked {
		l.cues.Thud()
	}

	if out.Changed() || l.forceRedraw {
		if w, h := l.screen.Size(); w <= 0 || h <= 0 {
			return false, errZeroSurface
		}
		l.redraw()
		l.forceRedraw = false
	}
	return false, nil
}

func (l *Loop) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if a, ok := input.Translate(ev); ok {
			l.ctx.Tracker.Record(a, now)
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		l.log.Debug().Int("width", w).Int("height", h).Msg("terminal resized")
		l.forceRedraw = true
	}
}

// drainEvents consumes every queued event without blocking.
func (l *Loop) drainEvents(now time.Time) {
	for {
		select {
		case ev, ok := <-l.screen.Events():
			if !ok {
				return
			}
			l.handleEvent(ev, now)
		default:
			return
		}
	}
}

func (l *Loop) redraw() {
	l.screen.Clear()
	l.renderer.Frame(l.screen, l.ctx.Player.Camera(), l.ctx.Grid)
	l.screen.Show()
}
