package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gradient"
)

func runPreview(g *gradient.Normalized, extend gradient.ExtendMode) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	drawPreview(screen, g, extend)
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			drawPreview(screen, g, extend)
		case *tcell.EventKey:
			return nil
		}
	}
}

// drawPreview fills all rows but the last with the gradient, left to right,
// and writes a status line in the last row.
func drawPreview(screen tcell.Screen, g *gradient.Normalized, extend gradient.ExtendMode) {
	w, h := screen.Size()
	screen.Clear()

	for x := 0; x < w; x++ {
		t := 0.0
		if w > 1 {
			t = float64(x) / float64(w-1)
		}
		style := tcell.StyleDefault.Background(terminalColor(g.ColorAt(extend.Apply(t))))
		for y := 0; y < h-1; y++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}

	status := fmt.Sprintf("%d segments, extend=%s, any key to quit", g.SegmentCount(), extend)
	for i, r := range []rune(status) {
		if i >= w {
			break
		}
		screen.SetContent(i, h-1, r, nil, tcell.StyleDefault)
	}
	screen.Show()
}

// terminalColor composites c over black.
func terminalColor(c gradient.RGBA) tcell.Color {
	a := clampUnit(c.A)
	return tcell.NewRGBColor(
		channel8(c.R*a),
		channel8(c.G*a),
		channel8(c.B*a),
	)
}

func channel8(v float64) int32 {
	return int32(clampUnit(v)*255 + 0.5)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
