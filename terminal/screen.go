package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/xj9zitto/terminal-game-test/constants"
)

// Band identifies one of the fixed color groups the renderer draws
// with. Wall slices split into three bands by texture row; ceiling and
// floor each take a single band.
type Band uint8

const (
	BandWallTop Band = iota
	BandWallMid
	BandWallBottom
	BandCeiling
	BandFloor

	bandCount
)

// bandStyles maps each band to its foreground color over the terminal
// default background.
var bandStyles = [bandCount]tcell.Style{
	BandWallTop:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
	BandWallMid:    tcell.StyleDefault.Foreground(tcell.ColorWhite),
	BandWallBottom: tcell.StyleDefault.Foreground(tcell.ColorPurple),
	BandCeiling:    tcell.StyleDefault.Foreground(tcell.ColorTeal),
	BandFloor:      tcell.StyleDefault.Foreground(tcell.ColorGreen),
}

// Style returns the tcell style for b.
func (b Band) Style() tcell.Style {
	if b >= bandCount {
		return tcell.StyleDefault
	}
	return bandStyles[b]
}

// Screen is the drawing surface and input source for the frame loop.
type Screen interface {
	// Size returns current surface dimensions
	Size() (width, height int)

	// SetCell writes one character cell; writes to the reserved last
	// column or out of bounds are dropped
	SetCell(x, y int, ch rune, band Band)

	// Clear blanks the surface before a redraw
	Clear()

	// Show flushes buffered writes to the physical display
	Show()

	// Events returns the channel raw terminal events arrive on; it
	// closes after Fini
	Events() <-chan tcell.Event

	// Fini restores terminal state. Safe to call multiple times
	Fini()
}

// tcellScreen implements Screen on a live tcell terminal.
type tcellScreen struct {
	tc     tcell.Screen
	events chan tcell.Event
}

// NewScreen acquires the terminal, enters full-screen mode, and starts
// the event poller. The caller must Fini to restore the terminal.
func NewScreen() (Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("acquire screen: %w", err)
	}
	if err := tc.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	tc.SetStyle(tcell.StyleDefault)
	tc.HideCursor()

	s := &tcellScreen{
		tc:     tc,
		events: make(chan tcell.Event, constants.EventQueueSize),
	}
	go s.poll()
	return s, nil
}

// poll feeds the event channel until Fini makes PollEvent return nil.
func (s *tcellScreen) poll() {
	for {
		ev := s.tc.PollEvent()
		if ev == nil {
			close(s.events)
			return
		}
		s.events <- ev
	}
}

func (s *tcellScreen) Size() (int, int) {
	return s.tc.Size()
}

// SetCell drops writes to the last column; a glyph there can push some
// terminals into an auto-wrap scroll that tears the frame.
func (s *tcellScreen) SetCell(x, y int, ch rune, band Band) {
	w, h := s.tc.Size()
	if x < 0 || y < 0 || x >= w-1 || y >= h {
		return
	}
	s.tc.SetContent(x, y, ch, nil, band.Style())
}

func (s *tcellScreen) Clear() {
	s.tc.Clear()
}

func (s *tcellScreen) Show() {
	s.tc.Show()
}

func (s *tcellScreen) Events() <-chan tcell.Event {
	return s.events
}

func (s *tcellScreen) Fini() {
	s.tc.Fini()
}
