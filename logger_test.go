package curveplot

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	s := NewSurface(&Recorder{}, DefaultOptions())
	if err := s.Draw(FunctionRequest{Expr: "1/x", Domain: Domain{-1, 1}, Steps: 2}); err != nil {
		t.Fatal(err)
	}
	if err := s.Draw(FunctionRequest{Expr: "x*10", Domain: Domain{-1, 1}, Steps: 2}); err != nil {
		t.Fatal(err)
	}
	if err := s.Draw(FlowerRequest{Petals: 0, Steps: 10}); err == nil {
		t.Fatal("expected an error")
	}

	out := buf.String()
	for _, want := range []string{
		"sampled function",
		"nonfinite=1",
		"sample clipped",
		"submit layer",
		"layer=axes",
		"drew curve",
		"draw rejected",
		"petals",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output does not contain %q:\n%s", want, out)
		}
	}
}

func TestLoggerDefault(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
