// Package display renders curveplot scenes on small pixel displays
// implementing tinygo.org/x/drivers.Displayer, such as the LCD and e-paper
// drivers of TinyGo.
//
// Lines are rasterized with Bresenham's algorithm and points as filled
// squares; there is no anti-aliasing. Segments are clipped to the display
// before they are rasterized.
package display

import (
	"context"
	"image/color"
	"log/slog"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"honnef.co/go/curveplot"
)

// Screen is a [curveplot.Renderer] drawing onto a display.
type Screen struct {
	d       drivers.Displayer
	w, h    int16
	bounds  curveplot.Rect
	view    curveplot.Affine
	radius  int16
	caption string
	font    tinyfont.Fonter
	ink     color.RGBA
}

var _ curveplot.Renderer = (*Screen)(nil)

type Option func(*Screen)

// WithCaption writes text in the top left corner on every Flush.
func WithCaption(text string) Option {
	return func(s *Screen) { s.caption = text }
}

// WithFont sets the caption font. The default is proggy's TinySZ8pt7b.
func WithFont(f tinyfont.Fonter) Option {
	return func(s *Screen) { s.font = f }
}

// WithPointRadius sets the half width of the squares drawn for points.
func WithPointRadius(r int16) Option {
	return func(s *Screen) { s.radius = max(r, 0) }
}

// New returns a screen covering all of d. The size of d is read once.
func New(d drivers.Displayer, opts ...Option) *Screen {
	w, h := d.Size()
	s := &Screen{
		d:      d,
		w:      w,
		h:      h,
		bounds: curveplot.Rect{X1: float64(w), Y1: float64(h)},
		view:   curveplot.Viewport(float64(w), float64(h)),
		radius: 1,
		font:   &proggy.TinySZ8pt7b,
		ink:    color.RGBA{A: 255},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetCaption replaces the caption written on Flush.
func (s *Screen) SetCaption(text string) { s.caption = text }

func rgba(c curveplot.Color) color.RGBA {
	ch := func(v float64) uint8 {
		return uint8(math.Round(min(max(v, 0), 1) * 255))
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: ch(c.A)}
}

// Clear fills every pixel with c. The caption is drawn in black or white,
// whichever contrasts more with c.
func (s *Screen) Clear(c curveplot.Color) error {
	col := rgba(c)
	for y := range s.h {
		for x := range s.w {
			s.d.SetPixel(x, y, col)
		}
	}
	if 0.299*c.R+0.587*c.G+0.114*c.B > 0.5 {
		s.ink = color.RGBA{A: 255}
	} else {
		s.ink = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return nil
}

func (s *Screen) Submit(set curveplot.SampleSet, style curveplot.Style, c curveplot.Color) error {
	col := rgba(c)
	px := set.Transform(s.view)

	dropped := 0
	switch style {
	case curveplot.LineStrip:
		for i := 1; i < len(px); i++ {
			if !s.line(px[i-1], px[i], col) {
				dropped++
			}
		}
	case curveplot.Segments:
		for i := 0; i+1 < len(px); i += 2 {
			if !s.line(px[i], px[i+1], col) {
				dropped++
			}
		}
	case curveplot.PointCloud:
		r := int(s.radius)
		for _, pt := range px {
			x, y := pixel(pt)
			for yy := y - r; yy <= y+r; yy++ {
				for xx := x - r; xx <= x+r; xx++ {
					s.set(xx, yy, col)
				}
			}
		}
	}
	if log := curveplot.Logger(); dropped > 0 && log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("display: segments outside of screen", "style", style, "dropped", dropped)
	}
	return nil
}

func pixel(pt curveplot.Point) (int, int) {
	return int(math.Floor(pt.X)), int(math.Floor(pt.Y))
}

// Flush writes the caption, if any, and pushes the frame to the display.
func (s *Screen) Flush() error {
	if s.caption != "" && s.font != nil {
		tinyfont.WriteLine(s.d, s.font, 2, int16(s.font.GetYAdvance()), s.caption, s.ink)
	}
	return s.d.Display()
}

func (s *Screen) set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= int(s.w) || y >= int(s.h) {
		return
	}
	s.d.SetPixel(int16(x), int16(y), c)
}

// line clips the segment from a to b to the screen and draws what remains
// using Bresenham's algorithm, endpoints included. It reports false if
// nothing remained.
func (s *Screen) line(a, b curveplot.Point, c color.RGBA) bool {
	l, ok := s.bounds.ClipLine(curveplot.Line{P0: a, P1: b})
	if !ok {
		return false
	}
	x0, y0 := pixel(l.P0)
	x1, y1 := pixel(l.P1)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		s.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return true
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
