// Package termview implements the interactive terminal viewer.
package termview

import (
	"errors"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/wordsearch/grid"
	"github.com/katalvlaran/wordsearch/overlay"
	"github.com/katalvlaran/wordsearch/puzzle"
)

// ErrNoResult indicates a Result without grids was passed to the viewer.
var ErrNoResult = errors.New("termview: result carries no grids")

// Layout constants: the grid starts below the header, letters sit two
// columns apart, and the word sidebar follows the grid with a gutter.
const (
	gridTop        = 2
	sidebarGutter  = 4
	letterSpacing  = 2
	emptyCellGlyph = '·'
)

// Viewer draws one generation Result and reacts to key presses. It is not
// goroutine-safe; Run owns the screen until it returns.
type Viewer struct {
	screen       tcell.Screen
	res          puzzle.Result
	showSolution bool
	ownScreen    bool // Fini on Run return only for screens we created
}

// New creates a Viewer on a fresh terminal screen.
// Returns ErrNoResult when res carries no grids, or the tcell error when the
// terminal cannot be initialized.
func New(res puzzle.Result) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	v, err := NewWithScreen(res, screen)
	if err != nil {
		return nil, err
	}
	v.ownScreen = true
	return v, nil
}

// NewWithScreen creates a Viewer on a caller-supplied screen, typically a
// tcell SimulationScreen in tests. The screen must not be initialized yet;
// the caller remains responsible for Fini.
func NewWithScreen(res puzzle.Result, screen tcell.Screen) (*Viewer, error) {
	if res.DisplayGrid == nil || res.SolutionGrid == nil {
		return nil, ErrNoResult
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Viewer{screen: screen, res: res}, nil
}

// Run draws the puzzle and blocks on the event loop until the user quits.
// The terminal is restored before returning.
func (v *Viewer) Run() error {
	if v.ownScreen {
		defer v.screen.Fini()
	}
	for {
		v.Draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if done := v.handleKey(ev); done {
				return nil
			}
		case nil:
			// Screen was finalized externally (tests); nothing left to poll.
			return nil
		}
	}
}

// handleKey reacts to one key event and reports whether the viewer is done.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
		return true
	case ev.Rune() == 'q':
		return true
	case ev.Rune() == 's':
		v.showSolution = !v.showSolution
	}
	return false
}

// Draw renders the full frame: header, grid, and word sidebar.
func (v *Viewer) Draw() {
	v.screen.Clear()

	mode := "display"
	if v.showSolution {
		mode = "solution"
	}
	n := v.res.DisplayGrid.Size()
	v.print(0, 0, fmt.Sprintf("word search %d×%d [%s]  s: solution  q: quit", n, n, mode), tcell.StyleDefault.Bold(true))

	v.drawGrid()
	v.drawSidebar()
	v.screen.Show()
}

// drawGrid draws the letter matrix. In solution mode filler letters are
// hidden and word cells are highlighted; in display mode every letter shows
// plain.
func (v *Viewer) drawGrid() {
	var (
		n         = v.res.DisplayGrid.Size()
		plain     = tcell.StyleDefault
		highlight = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			x, y := col*letterSpacing, gridTop+row

			s, _ := v.res.SolutionGrid.Get(row, col)
			if !v.showSolution {
				d, _ := v.res.DisplayGrid.Get(row, col)
				v.screen.SetContent(x, y, rune(d), nil, plain)
				continue
			}
			if s == grid.Empty {
				v.screen.SetContent(x, y, emptyCellGlyph, nil, plain.Dim(true))
			} else {
				v.screen.SetContent(x, y, rune(s), nil, highlight)
			}
		}
	}
}

// drawSidebar lists placed words with orientation arrows derived from their
// capsule angles, then any failed words.
func (v *Viewer) drawSidebar() {
	x := v.res.DisplayGrid.Size()*letterSpacing + sidebarGutter
	y := gridTop

	for _, p := range v.res.Placed {
		line := p.Word
		if c, err := overlay.CapsuleFor(p, 1, 1); err == nil {
			line = fmt.Sprintf("%c %s", arrowFor(c.Angle), p.Word)
		}
		v.print(x, y, line, tcell.StyleDefault)
		y++
	}
	if len(v.res.Failed) > 0 {
		y++
		v.print(x, y, "not placed:", tcell.StyleDefault.Dim(true))
		y++
		for _, w := range v.res.Failed {
			v.print(x, y, w, tcell.StyleDefault.Dim(true).StrikeThrough(true))
			y++
		}
	}
}

// arrowFor maps a capsule rotation angle (degrees, screen coordinates) to
// one of the eight compass arrows. Angles on a square grid land on
// multiples of 45; rounding absorbs Atan2 rounding noise.
func arrowFor(angle float64) rune {
	switch int(math.Round(angle)) {
	case 0:
		return '→'
	case 45:
		return '↘'
	case 90:
		return '↓'
	case 135:
		return '↙'
	case 180, -180:
		return '←'
	case -45:
		return '↗'
	case -90:
		return '↑'
	case -135:
		return '↖'
	default:
		return '·'
	}
}

// print writes a string left to right starting at (x,y).
func (v *Viewer) print(x, y int, s string, style tcell.Style) {
	col := x
	for _, r := range s {
		v.screen.SetContent(col, y, r, nil, style)
		col++
	}
}
