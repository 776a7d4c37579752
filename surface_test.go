package curveplot

import (
	"errors"
	"testing"
)

type failingRenderer struct {
	Recorder
	err error
}

func (r *failingRenderer) Submit(SampleSet, Style, Color) error { return r.err }

func TestSurfaceDraw(t *testing.T) {
	var rec Recorder
	s := NewSurface(&rec, DefaultOptions())
	if s.Mode() != ModeFunction {
		t.Errorf("initial mode is %s", s.Mode())
	}

	req := FlowerRequest{Petals: 3, Steps: 90}
	if err := s.Draw(req); err != nil {
		t.Fatal(err)
	}
	if s.Mode() != ModeFlower {
		t.Errorf("mode is %s after drawing a flower", s.Mode())
	}

	sc, err := Build(req, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	var want []Submission
	for _, l := range sc.Layers {
		want = append(want, Submission{Points: l.Points, Style: l.Style, Color: l.Color})
	}
	diff(t, want, rec.Submissions)
	diff(t, DefaultPalette().Background, rec.Background)
	if rec.Clears != 1 || rec.Flushes != 1 {
		t.Errorf("got %d clears and %d flushes, want one each", rec.Clears, rec.Flushes)
	}
}

func TestSurfaceDrawRejected(t *testing.T) {
	var rec Recorder
	s := NewSurface(&rec, DefaultOptions())
	if err := s.Draw(FlowerRequest{Petals: 2, Steps: 10}); err != nil {
		t.Fatal(err)
	}

	err := s.Draw(BezierRequest{Points: Bezier{Pt(0, 0)}, Steps: 10})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("got %v, want a validation error", err)
	}
	// The previous drawing is gone and nothing replaced it.
	if len(rec.Submissions) != 0 {
		t.Errorf("rejected draw left %d submissions", len(rec.Submissions))
	}
	if rec.Clears != 2 || rec.Flushes != 2 {
		t.Errorf("got %d clears and %d flushes, want two each", rec.Clears, rec.Flushes)
	}
	if s.Mode() != ModeBezier {
		t.Errorf("mode is %s, want bezier", s.Mode())
	}
}

func TestSurfaceSubmitError(t *testing.T) {
	boom := errors.New("boom")
	s := NewSurface(&failingRenderer{err: boom}, DefaultOptions())
	err := s.Draw(FlowerRequest{Petals: 2, Steps: 10})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want it to wrap %v", err, boom)
	}
}
