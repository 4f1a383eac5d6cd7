package chart

import (
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ayushsubedi/chartrace/colors"
	ffmpeg "github.com/ayushsubedi/chartrace/internal/infra/exec"
	"github.com/ayushsubedi/chartrace/internal/infra/fs"
	logging "github.com/ayushsubedi/chartrace/internal/infra/log"
	"github.com/ayushsubedi/chartrace/table"
)

const encodeTimeout = 5 * time.Minute

// Animator runs the whole pipeline for one chart: it interpolates the
// source table at construction, then renders frames sequentially
// (axis scaling, annotation, chart drawer) and hands them to an encoder.
// Rendering is strictly single-threaded: frame i+1 mutates the annotation
// handles frame i created.
type Animator struct {
	cfg     Config
	df      *table.Table
	cols    []string
	colors  []color.RGBA
	surface *Surface
	annot   *PeriodAnnotator
	drawer  Drawer

	// frameLog throttles per-frame debug logging so a long render does
	// not flood the log file.
	frameLog *rate.Limiter
}

// NewAnimator validates the configuration, resolves colors, selects the
// numeric columns and builds the interpolated timeline. Data and
// configuration errors surface here, before any rendering begins.
func NewAnimator(src *table.Table, drawer Drawer, cfg Config) (*Animator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if drawer == nil {
		return nil, configErrorf("a chart drawer is required")
	}

	src.StringifyColumns()
	cols, err := src.NumericColumns()
	if err != nil {
		return nil, err
	}

	colorList, err := colors.Resolve(cfg.Cmap, len(cols))
	if err != nil {
		return nil, &ConfigError{Reason: "could not resolve cmap", Err: err}
	}
	if len(colorList) == 0 {
		return nil, configErrorf("cmap resolved to an empty color list")
	}
	// The color list must cover every series; short palettes are tiled.
	for len(colorList) < len(cols) {
		colorList = append(colorList, colorList...)
	}

	df, err := table.Interpolate(src, cfg.StepsPerPeriod, cfg.InterpolatePeriod)
	if err != nil {
		return nil, err
	}

	surface := NewSurface(cfg.FigWidth, cfg.FigHeight, cfg.DPI)
	layout := ComputeLayout(surface, cfg.FigWidth, cfg.FigHeight, cfg.DPI,
		cfg.TickLabelSize, cols, []string{maxValueLabel(df)})
	surface.Resize(layout.FigWidth, layout.FigHeight)
	surface.SetAxesRect(layout.Axes)

	logging.LogInfo("Generating animation",
		zap.String("chart", drawer.Name()),
		zap.Strings("columns", cols),
		zap.Int("frames", df.NumRows()))

	return &Animator{
		cfg:      cfg,
		df:       df,
		cols:     cols,
		colors:   colorList,
		surface:  surface,
		annot:    NewPeriodAnnotator(&cfg),
		drawer:   drawer,
		frameLog: rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
	}, nil
}

// Frames is the number of output frames, one per interpolated row.
func (a *Animator) Frames() int {
	return a.df.NumRows()
}

// FPS is the output frame rate implied by period_length and
// steps_per_period.
func (a *Animator) FPS() float64 {
	return a.cfg.fps()
}

// Table exposes the interpolated table, read-only.
func (a *Animator) Table() *table.Table {
	return a.df
}

// RenderFrame draws frame i and returns a snapshot of the pixels.
func (a *Animator) RenderFrame(i int) (image.Image, error) {
	a.surface.Clear()
	a.drawTitle()

	f := FrameData{
		Table:         a.df,
		Frame:         i,
		Cols:          a.cols,
		Colors:        a.colors,
		X:             XBounds(a.df, i, a.cfg.FixedMax),
		Y:             YBounds(a.df, i, a.cfg.FixedMax),
		TickLabelSize: a.cfg.TickLabelSize,
	}
	if err := a.annot.Update(a.df, i); err != nil {
		return nil, err
	}
	if err := a.drawer.Draw(a.surface, f); err != nil {
		return nil, fmt.Errorf("drawing frame %d: %w", i, err)
	}
	a.drawTexts()

	if a.frameLog.Allow() {
		logging.LogDebug("Rendered frame",
			zap.Int("frame", i), zap.Int("total", a.Frames()))
	}
	return a.surface.Snapshot(), nil
}

func (a *Animator) drawTitle() {
	if a.cfg.Title == "" {
		return
	}
	dc := a.surface.Context()
	_, y0, _, _ := a.surface.AxesPx()
	a.surface.SetFontSize(a.cfg.TickLabelSize + 4)
	dc.SetColor(labelColor)
	dc.DrawStringAnchored(a.cfg.Title, float64(a.surface.PxWidth())/2, y0/2, 0.5, 0.5)
}

// drawTexts paints the annotator's owned handles on top of the chart.
func (a *Animator) drawTexts() {
	dc := a.surface.Context()
	x0, y0, w, h := a.surface.AxesPx()
	for _, t := range a.annot.Texts() {
		a.surface.SetFontSize(t.Size)
		dc.SetColor(labelColor)
		px := x0 + t.X*w
		py := y0 + (1-t.Y)*h
		anchor := 0.0
		if t.HAlign == "right" {
			anchor = 1.0
		}
		dc.DrawStringAnchored(t.Text, px, py, anchor, 0.35)
	}
}

// Save renders every frame and encodes the animation into filename. The
// format follows the extension: .gif uses the built-in frame-assembly
// path, everything else (and any explicit writer) goes through ffmpeg.
// After a successful save all drawn artifacts are cleared so the surface
// can be reused for an independent animation.
func (a *Animator) Save(filename string) error {
	if err := fs.EnsureParentDir(filename); err != nil {
		return err
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")

	if a.cfg.Writer != "" && a.cfg.Writer != "ffmpeg" {
		return configErrorf("unsupported writer %q: only the ffmpeg writer is available", a.cfg.Writer)
	}

	var bar *progressbar.ProgressBar
	if a.cfg.EnableProgressBar {
		bar = progressbar.Default(int64(a.Frames()), "rendering")
	}

	start := time.Now()
	var err error
	if a.cfg.Writer == "" && ext == "gif" {
		err = a.encodeGIF(filename, bar)
	} else {
		err = a.encodeFFmpeg(filename, bar)
	}
	if err != nil {
		return err
	}

	size, err := fs.VerifyOutput(filename)
	if err != nil {
		return err
	}

	logging.LogSuccess("Animation saved",
		zap.String("filename", filename),
		zap.Int64("fileSize", size),
		zap.Int("frames", a.Frames()),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))

	a.clearing()
	return nil
}

// encodeGIF quantizes each frame and assembles the GIF in-process.
func (a *Animator) encodeGIF(filename string, bar *progressbar.ProgressBar) error {
	delay := int(a.cfg.frameInterval() / 10) // hundredths of a second
	if delay < 2 {
		delay = 2
	}

	out := &gif.GIF{}
	for i := 0; i < a.Frames(); i++ {
		img, err := a.RenderFrame(i)
		if err != nil {
			return err
		}
		paletted := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, img.Bounds(), img, image.Point{})
		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, delay)
		if bar != nil {
			bar.Add(1)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()
	return gif.EncodeAll(file, out)
}

// encodeFFmpeg writes frames as PNGs into a scratch directory and lets
// ffmpeg assemble the container. A missing or failing encoder surfaces as
// a configuration error with remediation guidance.
func (a *Animator) encodeFFmpeg(filename string, bar *progressbar.ProgressBar) error {
	tmpDir, err := os.MkdirTemp("", "chartrace-frames-")
	if err != nil {
		return fmt.Errorf("failed to create frame directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	for i := 0; i < a.Frames(); i++ {
		img, err := a.RenderFrame(i)
		if err != nil {
			return err
		}
		if err := writePNG(filepath.Join(tmpDir, fmt.Sprintf("frame_%05d.png", i)), img); err != nil {
			return err
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	fps := strconv.FormatFloat(a.FPS(), 'f', -1, 64)
	args := []string{
		"-y",
		"-framerate", fps,
		"-i", filepath.Join(tmpDir, "frame_%05d.png"),
		"-pix_fmt", "yuv420p",
		filename,
	}
	if _, err := ffmpeg.RunFFmpeg(encodeTimeout, args...); err != nil {
		return &ConfigError{
			Reason: "no usable encoder for this output format: install ffmpeg (ffmpeg.org) or use the .gif extension",
			Err:    err,
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create frame file: %w", err)
	}
	defer file.Close()
	return png.Encode(file, img)
}

// embedLimit is the size past which an HTML5 embed stops being practical.
const embedLimit = 20 * 1024 * 1024

const videoTag = `<video controls><source src="data:video/mp4;base64,%s" type="video/mp4">Your browser does not support the video tag.</video>`

// HTML5Video encodes the animation as h264 and returns it embedded in an
// HTML5 video tag, base64 inline.
func (a *Animator) HTML5Video() (string, error) {
	tmp, err := os.CreateTemp("", "chartrace-*.mp4")
	if err != nil {
		return "", fmt.Errorf("failed to create temp video: %w", err)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := a.encodeFFmpeg(tmp.Name(), nil); err != nil {
		return "", err
	}
	video, err := os.ReadFile(tmp.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read encoded video: %w", err)
	}
	if len(video) > embedLimit {
		logging.LogWarn("HTML5 video is too large to embed, try another format such as mp4 or GIF",
			zap.Int("bytes", len(video)))
	}

	a.clearing()
	return fmt.Sprintf(videoTag, base64.StdEncoding.EncodeToString(video)), nil
}

// clearing wipes the surface and the annotation handles after a save so a
// subsequent independent animation starts from a clean slate.
func (a *Animator) clearing() {
	a.surface.Clear()
	a.annot.Reset()
}
