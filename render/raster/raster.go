// Package raster renders curveplot scenes into images using
// github.com/gogpu/gg.
package raster

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/gogpu/gg"

	"honnef.co/go/curveplot"
)

// Canvas is a [curveplot.Renderer] drawing into an in-memory image of a
// fixed size. The canonical viewport is stretched over the whole image.
type Canvas struct {
	dc          *gg.Context
	view        curveplot.Affine
	lineWidth   float64
	pointRadius float64
}

var _ curveplot.Renderer = (*Canvas)(nil)

// Option configures a Canvas.
type Option func(*Canvas)

// WithLineWidth sets the width of strips and segments in pixels.
func WithLineWidth(w float64) Option {
	return func(c *Canvas) { c.lineWidth = w }
}

// WithPointRadius sets the radius of points in pixels.
func WithPointRadius(r float64) Option {
	return func(c *Canvas) { c.pointRadius = r }
}

// New returns a transparent canvas of the given size in pixels.
func New(width, height int, opts ...Option) *Canvas {
	c := &Canvas{
		dc:          gg.NewContext(width, height),
		view:        curveplot.Viewport(float64(width), float64(height)),
		lineWidth:   2,
		pointRadius: 4,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.SetLineJoin(gg.LineJoinRound)
	return c
}

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

func (c *Canvas) Clear(col curveplot.Color) error {
	c.dc.ClearPath()
	c.dc.ClearWithColor(gg.RGBA{R: col.R, G: col.G, B: col.B, A: col.A})
	return nil
}

func (c *Canvas) Submit(s curveplot.SampleSet, style curveplot.Style, col curveplot.Color) error {
	var need int
	switch style {
	case curveplot.LineStrip, curveplot.Segments:
		need = 2
	case curveplot.PointCloud:
		need = 1
	default:
		return fmt.Errorf("raster: unsupported style %s", style)
	}
	if len(s) < need {
		if log := curveplot.Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug("raster: nothing to draw", "style", style, "points", len(s))
		}
		return nil
	}

	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	px := s.Transform(c.view)
	switch style {
	case curveplot.LineStrip:
		c.dc.MoveTo(px[0].X, px[0].Y)
		for _, pt := range px[1:] {
			c.dc.LineTo(pt.X, pt.Y)
		}
		return c.stroke()
	case curveplot.Segments:
		for i := 0; i+1 < len(px); i += 2 {
			c.dc.DrawLine(px[i].X, px[i].Y, px[i+1].X, px[i+1].Y)
		}
		return c.stroke()
	default:
		for _, pt := range px {
			c.dc.DrawPoint(pt.X, pt.Y, c.pointRadius)
		}
		if err := c.dc.Fill(); err != nil {
			return fmt.Errorf("raster: fill: %w", err)
		}
		return nil
	}
}

func (c *Canvas) stroke() error {
	c.dc.SetLineWidth(c.lineWidth)
	if err := c.dc.Stroke(); err != nil {
		return fmt.Errorf("raster: stroke: %w", err)
	}
	return nil
}

// Flush is a no-op; the image is updated by every Submit.
func (c *Canvas) Flush() error { return nil }

// Image returns the current contents of the canvas.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

// Close releases the drawing state. The canvas must not be used afterwards.
func (c *Canvas) Close() error { return c.dc.Close() }
