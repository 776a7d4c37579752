package curveplot

import "fmt"

// Renderer is the drawing backend a [Surface] submits layers to. The
// packages under render implement it for raster images and pixel displays;
// [Recorder] implements it in memory.
//
// Submitting a SampleSet too short for its style, such as an empty set or a
// line strip of one point, must draw nothing and must not fail.
type Renderer interface {
	// Clear fills the whole drawing area with c.
	Clear(c Color) error
	// Submit draws s in canonical coordinates with the given style and color.
	Submit(s SampleSet, style Style, c Color) error
	// Flush presents everything submitted since the last Clear.
	Flush() error
}

// Surface plots requests onto a Renderer. It remembers the mode of the last
// request; apart from that every draw starts from scratch.
//
// A Surface is meant to be driven by a single event loop and is not safe
// for concurrent use.
type Surface struct {
	r    Renderer
	opts Options
	mode Mode
}

// NewSurface returns a surface drawing onto r.
func NewSurface(r Renderer, o Options) *Surface {
	return &Surface{r: r, opts: o}
}

// Mode returns the mode of the most recent request passed to Draw. It is
// [ModeFunction] before the first draw.
func (s *Surface) Mode() Mode { return s.mode }

// Options returns the surface's options.
func (s *Surface) Options() Options { return s.opts }

// Draw clears the renderer and plots req. If req is invalid or its
// expression does not compile, the cleared renderer is flushed and the
// error returned; a failed draw never leaves a partial scene behind.
func (s *Surface) Draw(req Request) error {
	log := Logger()
	s.mode = req.Mode()
	if err := s.r.Clear(s.opts.Palette.Background); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	sc, err := Build(req, s.opts)
	if err != nil {
		log.Warn("curveplot: draw rejected", "mode", req.Mode(), "err", err)
		if ferr := s.r.Flush(); ferr != nil {
			return fmt.Errorf("flush: %w", ferr)
		}
		return err
	}

	if err := s.Render(sc); err != nil {
		return err
	}
	if curve, ok := sc.Layer(LayerCurve); ok {
		log.Info("curveplot: drew curve", "mode", sc.Mode, "points", len(curve.Points))
	}
	return nil
}

// Render submits every layer of sc in order and flushes the renderer. It
// does not clear it first.
func (s *Surface) Render(sc Scene) error {
	log := Logger()
	for _, l := range sc.Layers {
		log.Debug("curveplot: submit layer", "layer", l.Name, "style", l.Style, "points", len(l.Points))
		if err := s.r.Submit(l.Points, l.Style, l.Color); err != nil {
			return fmt.Errorf("submit %s: %w", l.Name, err)
		}
	}
	if err := s.r.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Submission is one call to [Recorder.Submit].
type Submission struct {
	Points SampleSet
	Style  Style
	Color  Color
}

// Recorder is a [Renderer] that records what it is asked to draw. Clear
// discards earlier submissions.
type Recorder struct {
	Background  Color
	Submissions []Submission
	// Clears and Flushes count calls to Clear and Flush.
	Clears  int
	Flushes int
}

var _ Renderer = (*Recorder)(nil)

func (r *Recorder) Clear(c Color) error {
	r.Background = c
	r.Submissions = nil
	r.Clears++
	return nil
}

func (r *Recorder) Submit(s SampleSet, style Style, c Color) error {
	r.Submissions = append(r.Submissions, Submission{Points: s.Clone(), Style: style, Color: c})
	return nil
}

func (r *Recorder) Flush() error {
	r.Flushes++
	return nil
}
