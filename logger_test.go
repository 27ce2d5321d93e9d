package glint

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("default logger should be disabled at every level")
	}
}

func TestSetLoggerRoutesPlaybackEvents(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	r := newFakeRenderer(newFakeMaterial("lit", "Tint"))
	p := NewPlayer(nil)
	p.SetRenderers([]Renderer{r})

	s := NewColorSetting("flash", []string{"Tint"}, ColorMultiply, DefaultGradient())
	s.Duration = 1
	p.Play(s, nil)

	if !strings.Contains(buf.String(), "flash") {
		t.Errorf("expected play log to name the setting, got %q", buf.String())
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	SetLogger(slog.Default())
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("SetLogger(nil) should restore the no-op logger")
	}
}

func TestLoggerSharedWithSubpackages(t *testing.T) {
	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(l)
	defer SetLogger(nil)
	if Logger() != l {
		t.Fatal("Logger should return the logger passed to SetLogger")
	}
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger must never return nil")
	}
}
