package commands

// render command: load a wide-format CSV, build the requested chart and
// encode the animation. Flag parsing is delegated to the config layer so
// the render options live on one flag set; positional arguments are what
// remains after pflag has consumed the flags.

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ayushsubedi/chartrace/chart"
	"github.com/ayushsubedi/chartrace/internal/infra/config"
	logging "github.com/ayushsubedi/chartrace/internal/infra/log"
	"github.com/ayushsubedi/chartrace/table"
)

var renderCmd = &cobra.Command{
	Use:   "render <input.csv> <output.{gif,mp4,...}>",
	Short: "Render an animated chart from a CSV table",
	Long: `Render reads a wide-format CSV (first column is the period index, every
other column one series), interpolates it and encodes the animation into
the output file. The format follows the output extension.`,
	DisableFlagParsing: true,
	RunE:               runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.LogError("Failed to load config", zap.Error(err))
		return fmt.Errorf("failed to load config: %w", err)
	}

	// pflag has consumed the flags; what is left is "render" plus the
	// positional arguments.
	positional := pflag.Args()
	if len(positional) > 0 && positional[0] == "render" {
		positional = positional[1:]
	}
	if len(positional) != 2 {
		return fmt.Errorf("expected <input.csv> <output>, got %d arguments", len(positional))
	}
	input, output := positional[0], positional[1]
	if cfg.Output.Dir != "" && filepath.Dir(output) == "." {
		output = filepath.Join(cfg.Output.Dir, output)
	}

	csvOpts := table.DefaultCSVOptions()
	csvOpts.DateFormat = cfg.Output.DateFormat
	csvOpts.HasHeader = cfg.Output.CSVHasHeader
	src, err := table.LoadCSV(input, csvOpts)
	if err != nil {
		logging.LogError("Failed to load input table", zap.String("input", input), zap.Error(err))
		return fmt.Errorf("failed to load %s: %w", input, err)
	}
	logging.LogInfo("Input table loaded",
		zap.String("input", input),
		zap.Int("rows", src.NumRows()),
		zap.Int("columns", len(src.Columns)))

	var drawer chart.Drawer
	switch cfg.Render.Chart {
	case "line":
		drawer = &chart.LineRace{}
	default:
		drawer = &chart.BarRace{}
	}

	anim, err := chart.NewAnimator(src, drawer, chartConfig(cfg))
	if err != nil {
		logging.LogError("Failed to build animation", zap.Error(err))
		return err
	}
	if err := anim.Save(output); err != nil {
		logging.LogError("Failed to save animation", zap.String("output", output), zap.Error(err))
		return err
	}
	return nil
}

// chartConfig maps the file/env/flag config onto the animation options.
func chartConfig(cfg *config.Config) chart.Config {
	c := chart.DefaultConfig()
	c.StepsPerPeriod = cfg.Render.StepsPerPeriod
	c.PeriodLength = cfg.Render.PeriodLength
	c.InterpolatePeriod = cfg.Render.InterpolatePeriod
	c.PeriodFmt = cfg.Render.PeriodFmt
	c.FigWidth = cfg.Render.FigWidth
	c.FigHeight = cfg.Render.FigHeight
	c.Title = cfg.Render.Title
	c.Cmap = cfg.Render.Cmap
	c.TickLabelSize = cfg.Render.TickLabelSize
	c.PeriodLabel = cfg.Render.PeriodLabel
	c.FixedMax = cfg.Render.FixedMax
	c.DPI = cfg.Render.DPI
	c.Writer = cfg.Render.Writer
	c.EnableProgressBar = cfg.Render.EnableProgressBar
	return c
}
