// Command gridview paints the four-coloring of a tessellated plane in the
// terminal. The topology is switched at runtime, which is exactly what the
// dynamic coordinate wrapper exists for.
//
// Keys: 1/2/3 select square, hex or triangle tiling; arrows or hjkl pan;
// +/- zoom; q or Escape quits.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"tessella/dynamic"
	"tessella/grid"
)

const (
	minInradius = 1.0
	maxInradius = 24.0
	zoomFactor  = 1.25

	// Terminal cells are roughly twice as tall as wide, so one column
	// advances world space by half as much as one row.
	cellAspect = 2.0
)

var colorStyles = map[grid.Color]tcell.Style{
	grid.ColorA: tcell.StyleDefault.Background(tcell.ColorDarkBlue),
	grid.ColorB: tcell.StyleDefault.Background(tcell.ColorDarkGreen),
	grid.ColorC: tcell.StyleDefault.Background(tcell.ColorDarkRed),
	grid.ColorD: tcell.StyleDefault.Background(tcell.ColorDarkGoldenrod),
}

type viewer struct {
	screen        tcell.Screen
	width, height int

	kind     dynamic.Kind
	inradius float64

	// World-space point shown at the center of the terminal.
	centerX, centerY float64
}

func newViewer() (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	v := &viewer{
		screen:   screen,
		kind:     dynamic.Square,
		inradius: 4,
	}
	v.width, v.height = screen.Size()

	return v, nil
}

// worldAt maps a terminal cell to its world-space sample point.
func (v *viewer) worldAt(x, y int) grid.Point {
	return grid.Point{
		X: v.centerX + float64(x-v.width/2)/cellAspect,
		Y: v.centerY - float64(y-v.height/2),
	}
}

func (v *viewer) draw() {
	v.screen.Clear()

	g := dynamic.NewSizedGrid(v.kind, v.inradius)
	origin := dynamic.Origin(v.kind)

	for y := 1; y < v.height; y++ {
		for x := 0; x < v.width; x++ {
			c := g.ScreenToGrid(v.worldAt(x, y))
			style := colorStyles[c.Color()]
			ch := ' '
			if c == origin {
				ch = '+'
			}
			v.screen.SetContent(x, y, ch, nil, style)
		}
	}

	// Mark the center of every cell the viewport intersects.
	min := v.worldAt(0, v.height-1)
	max := v.worldAt(v.width-1, 1)
	if cells, ok := g.ScreenRectToGrid(min, max); ok {
		for c := range cells {
			center := g.GridToScreen(c)
			x := v.width/2 + int(cellAspect*(center.X-v.centerX))
			y := v.height/2 - int(center.Y-v.centerY)
			if x < 0 || x >= v.width || y < 1 || y >= v.height || c == origin {
				continue
			}
			v.screen.SetContent(x, y, '.', nil, colorStyles[c.Color()])
		}
	}

	status := fmt.Sprintf(" %v  inradius %.1f  [1/2/3] tiling  [arrows] pan  [+/-] zoom  [q] quit",
		v.kind, v.inradius)
	v.drawStatus(status)

	v.screen.Show()
}

func (v *viewer) drawStatus(text string) {
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < v.width; x++ {
		ch := ' '
		if x < len(text) {
			ch = rune(text[x])
		}
		v.screen.SetContent(x, 0, ch, nil, style)
	}
}

func (v *viewer) pan(dx, dy float64) {
	step := 2 * v.inradius
	v.centerX += dx * step
	v.centerY += dy * step
}

func (v *viewer) zoom(in bool) {
	if in {
		v.inradius *= zoomFactor
	} else {
		v.inradius /= zoomFactor
	}
	if v.inradius < minInradius {
		v.inradius = minInradius
	}
	if v.inradius > maxInradius {
		v.inradius = maxInradius
	}
}

// handleInput reacts to one event and reports whether to keep running.
func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.pan(0, 1)
		case tcell.KeyDown:
			v.pan(0, -1)
		case tcell.KeyLeft:
			v.pan(-1, 0)
		case tcell.KeyRight:
			v.pan(1, 0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case '1':
				v.kind = dynamic.Square
			case '2':
				v.kind = dynamic.Hex
			case '3':
				v.kind = dynamic.Triangle
			case 'h':
				v.pan(-1, 0)
			case 'j':
				v.pan(0, -1)
			case 'k':
				v.pan(0, 1)
			case 'l':
				v.pan(1, 0)
			case '+', '=':
				v.zoom(true)
			case '-':
				v.zoom(false)
			}
		}

	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}

	return true
}

func (v *viewer) run() {
	for {
		v.draw()
		if !v.handleInput(v.screen.PollEvent()) {
			return
		}
	}
}

func main() {
	v, err := newViewer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer v.screen.Fini()

	v.run()
}
