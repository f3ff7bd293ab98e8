package escape

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/registry"
)

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("game %q should be registered: %v", ID, err)
	}
	if g.Title() != "Escape the Menahel" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGameStepEvents(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})

	if st := g.State(); st.Started || st.GameOver || st.Level != 1 {
		t.Fatalf("initial state = %+v", st)
	}

	res := g.Step(frame(core.ActionStart))
	if len(res.Events) != 1 || res.Events[0] != "start" {
		t.Errorf("Events = %v, expected [start]", res.Events)
	}
	if !res.State.Started {
		t.Error("State.Started should be set after the intro")
	}

	s := g.Session()
	s.Adversary().Pos.X = 100
	s.Player().Pos.X = 710
	res = g.Step(frame())
	if res.State.Level != 2 || res.State.Score != 100 {
		t.Errorf("State = %+v, expected level 2 score 100", res.State)
	}
	if len(res.Events) != 1 || res.Events[0] != "level 2" {
		t.Errorf("Events = %v, expected [level 2]", res.Events)
	}
}

func TestGameDifficultyPresetFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetDifficultyPreset("hard")
	defer SetDifficultyPreset("")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("InitialLevel = %v, expected hard preset", cfg.Difficulty.InitialLevel)
	}

}

func TestGameResetLogsBadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("world:\n  width: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"unreadable", filepath.Join(dir, "missing.yaml")},
		{"invalid", invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			prev := log.Default()
			log.SetDefault(log.New(&buf))
			defer log.SetDefault(prev)

			SetConfigPath(tt.path)
			defer SetConfigPath("")

			g := New()
			g.Reset(core.DefaultConfig())
			if g.Session() == nil {
				t.Fatal("Reset should fall back to defaults")
			}
			if w := g.Session().World(); w.W != config.DefaultEscapeConfig().World.Width {
				t.Errorf("world width = %v, expected the default", w.W)
			}
			if out := buf.String(); !strings.Contains(out, tt.path) || !strings.Contains(out, "using defaults") {
				t.Errorf("log = %q, expected the failing path and the fallback", out)
			}
		})
	}
}

func TestGameReason(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 3})
	g.Step(frame(core.ActionStart))

	if g.Reason() != "" {
		t.Errorf("Reason() = %q during play, expected empty", g.Reason())
	}

	s := g.Session()
	s.Adversary().Pos = s.Player().Pos
	res := g.Step(frame())
	if !res.State.GameOver {
		t.Fatal("overlapping bodies should end the run")
	}
	if g.Reason() != CaughtReason {
		t.Errorf("Reason() = %q, expected %q", g.Reason(), CaughtReason)
	}
}
