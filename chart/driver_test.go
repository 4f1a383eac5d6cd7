package chart

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ayushsubedi/chartrace/table"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.StepsPerPeriod = 2
	cfg.FigWidth = 2
	cfg.FigHeight = 1.5
	cfg.DPI = 36
	cfg.EnableProgressBar = false
	return cfg
}

func raceTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(table.NumericIndex([]float64{2000, 2001, 2002}), []table.Column{
		{Name: "north", Floats: []float64{1, 4, 9}},
		{Name: "south", Floats: []float64{2, 3, 5}},
	})
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	return tbl
}

func TestAnimatorFrameCount(t *testing.T) {
	a, err := NewAnimator(raceTable(t), &BarRace{}, smallConfig())
	if err != nil {
		t.Fatalf("NewAnimator: %v", err)
	}
	// 3 periods at 2 steps interpolate to (3-1)*2+1 frames.
	if got := a.Frames(); got != 5 {
		t.Errorf("Frames() = %d, want 5", got)
	}
	if got := a.FPS(); got != 4 {
		t.Errorf("FPS() = %g, want 4", got)
	}
}

func TestAnimatorSaveGIF(t *testing.T) {
	a, err := NewAnimator(raceTable(t), &BarRace{}, smallConfig())
	if err != nil {
		t.Fatalf("NewAnimator: %v", err)
	}

	out := filepath.Join(t.TempDir(), "race.gif")
	if err := a.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("saved GIF is empty")
	}
}

func TestAnimatorSaveLineChart(t *testing.T) {
	a, err := NewAnimator(raceTable(t), &LineRace{}, smallConfig())
	if err != nil {
		t.Fatalf("NewAnimator: %v", err)
	}
	out := filepath.Join(t.TempDir(), "race.gif")
	if err := a.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestAnimatorRejectsPillowWriter(t *testing.T) {
	cfg := smallConfig()
	cfg.Writer = "pillow"
	_, err := NewAnimator(raceTable(t), &BarRace{}, cfg)
	if err == nil {
		t.Fatal("expected an error for the pillow writer")
	}
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("error type = %T, want *ConfigError", err)
	}
	if !strings.Contains(err.Error(), ".gif") {
		t.Errorf("error should point at the .gif extension, got %q", err.Error())
	}
}

func TestAnimatorRejectsUnknownWriterOnSave(t *testing.T) {
	cfg := smallConfig()
	cfg.Writer = "imagemagick"
	a, err := NewAnimator(raceTable(t), &BarRace{}, cfg)
	if err != nil {
		t.Fatalf("NewAnimator: %v", err)
	}
	if err := a.Save(filepath.Join(t.TempDir(), "race.mp4")); err == nil {
		t.Fatal("expected an error for an unknown writer")
	}
}

func TestAnimatorRejectsNonNumericTable(t *testing.T) {
	tbl, err := table.New(table.RangeIndex(2), []table.Column{
		{Name: "label", Labels: []string{"a", "b"}},
	})
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	_, err = NewAnimator(tbl, &BarRace{}, smallConfig())
	if !errors.Is(err, table.ErrNoNumericColumns) {
		t.Errorf("err = %v, want ErrNoNumericColumns", err)
	}
}

func TestAnimatorRejectsEmptyColorList(t *testing.T) {
	lists := map[string]any{
		"rgba":   []color.RGBA{},
		"string": []string{},
	}
	for name, cmap := range lists {
		cfg := smallConfig()
		cfg.Cmap = cmap
		src := raceTable(t)
		done := make(chan error, 1)
		go func() {
			_, err := NewAnimator(src, &BarRace{}, cfg)
			done <- err
		}()
		select {
		case err := <-done:
			if err == nil {
				t.Errorf("%s: expected a configuration error for an empty color list", name)
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Errorf("%s: error type = %T, want *ConfigError", name, err)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("%s: NewAnimator did not return for an empty color list", name)
		}
	}
}

func TestAnimatorRejectsBadSteps(t *testing.T) {
	cfg := smallConfig()
	cfg.StepsPerPeriod = 0
	if _, err := NewAnimator(raceTable(t), &BarRace{}, cfg); err == nil {
		t.Error("expected validation error for steps_per_period = 0")
	}
}

func TestAnimatorSummaryErrorSurfacesFromSave(t *testing.T) {
	cfg := smallConfig()
	cfg.PeriodSummaryFunc = summaryMissingY
	a, err := NewAnimator(raceTable(t), &BarRace{}, cfg)
	if err != nil {
		t.Fatalf("NewAnimator: %v", err)
	}
	if err := a.Save(filepath.Join(t.TempDir(), "race.gif")); err == nil {
		t.Error("expected the summary validation error to abort the save")
	}
}

func TestRenderFrameSizeMatchesSurface(t *testing.T) {
	a, err := NewAnimator(raceTable(t), &BarRace{}, smallConfig())
	if err != nil {
		t.Fatalf("NewAnimator: %v", err)
	}
	img, err := a.RenderFrame(0)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != a.surface.PxWidth() || b.Dy() != a.surface.PxHeight() {
		t.Errorf("frame is %dx%d, surface is %dx%d",
			b.Dx(), b.Dy(), a.surface.PxWidth(), a.surface.PxHeight())
	}
}
