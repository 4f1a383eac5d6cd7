package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config carries the render defaults the CLI harness feeds into the chart
// pipeline. Precedence, lowest to highest: built-in defaults, config.yaml,
// .env file, environment, command-line flags.
type Config struct {
	Render RenderConfig `mapstructure:"render"`
	Output OutputConfig `mapstructure:"output"`
}

// RenderConfig mirrors the recognized animation options.
type RenderConfig struct {
	Chart             string  `mapstructure:"chart"` // "bar" or "line"
	StepsPerPeriod    int     `mapstructure:"steps_per_period"`
	PeriodLength      int     `mapstructure:"period_length"` // ms per period
	InterpolatePeriod bool    `mapstructure:"interpolate_period"`
	PeriodFmt         string  `mapstructure:"period_fmt"`
	FigWidth          float64 `mapstructure:"fig_width"`  // inches
	FigHeight         float64 `mapstructure:"fig_height"` // inches
	Title             string  `mapstructure:"title"`
	Cmap              string  `mapstructure:"cmap"`
	TickLabelSize     float64 `mapstructure:"tick_label_size"`
	PeriodLabel       bool    `mapstructure:"period_label"`
	FixedMax          bool    `mapstructure:"fixed_max"`
	DPI               int     `mapstructure:"dpi"`
	Writer            string  `mapstructure:"writer"`
	EnableProgressBar bool    `mapstructure:"enable_progress_bar"`
}

// OutputConfig controls where and how the encoded file lands.
type OutputConfig struct {
	Dir           string `mapstructure:"dir"`
	EncodeTimeout int    `mapstructure:"encode_timeout"` // seconds
	DateFormat    string `mapstructure:"date_format"`    // CSV index layout
	CSVHasHeader  bool   `mapstructure:"csv_has_header"`
}

// LoadConfig builds the config from defaults, config.yaml, .env and flags.
func LoadConfig() (*Config, error) {
	godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.ReadInConfig() // missing config.yaml is fine

	v.AutomaticEnv()
	setupEnvAliases(v)
	setupFlags(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("render.chart", "bar")
	v.SetDefault("render.steps_per_period", 10)
	v.SetDefault("render.period_length", 500)
	v.SetDefault("render.interpolate_period", false)
	v.SetDefault("render.period_fmt", "")
	v.SetDefault("render.fig_width", 6.5)
	v.SetDefault("render.fig_height", 3.5)
	v.SetDefault("render.title", "")
	v.SetDefault("render.cmap", "dark24")
	v.SetDefault("render.tick_label_size", 7)
	v.SetDefault("render.period_label", true)
	v.SetDefault("render.fixed_max", false)
	v.SetDefault("render.dpi", 144)
	v.SetDefault("render.writer", "")
	v.SetDefault("render.enable_progress_bar", true)

	v.SetDefault("output.dir", "charts_out")
	v.SetDefault("output.encode_timeout", 300)
	v.SetDefault("output.date_format", "2006-01-02")
	v.SetDefault("output.csv_has_header", true)
}

func setupEnvAliases(v *viper.Viper) {
	v.BindEnv("render.chart", "CHARTRACE_CHART")
	v.BindEnv("render.steps_per_period", "CHARTRACE_STEPS_PER_PERIOD")
	v.BindEnv("render.period_length", "CHARTRACE_PERIOD_LENGTH")
	v.BindEnv("render.interpolate_period", "CHARTRACE_INTERPOLATE_PERIOD")
	v.BindEnv("render.period_fmt", "CHARTRACE_PERIOD_FMT")
	v.BindEnv("render.cmap", "CHARTRACE_CMAP")
	v.BindEnv("render.dpi", "CHARTRACE_DPI")
	v.BindEnv("render.writer", "CHARTRACE_WRITER")
	v.BindEnv("render.enable_progress_bar", "CHARTRACE_ENABLE_PROGRESS_BAR")
	v.BindEnv("output.dir", "CHARTRACE_OUTPUT_DIR")
	v.BindEnv("output.encode_timeout", "CHARTRACE_ENCODE_TIMEOUT")
}

func setupFlags(v *viper.Viper) {
	pflag.String("render.chart", "bar", "Chart type: bar or line (env: CHARTRACE_CHART)")
	pflag.Int("render.steps_per_period", 10, "Interpolation steps per period (env: CHARTRACE_STEPS_PER_PERIOD)")
	pflag.Int("render.period_length", 500, "Milliseconds of animation per period (env: CHARTRACE_PERIOD_LENGTH)")
	pflag.Bool("render.interpolate_period", false, "Interpolate the index between periods (env: CHARTRACE_INTERPOLATE_PERIOD)")
	pflag.String("render.period_fmt", "", "Period label format string (env: CHARTRACE_PERIOD_FMT)")
	pflag.Float64("render.fig_width", 6.5, "Figure width in inches")
	pflag.Float64("render.fig_height", 3.5, "Figure height in inches")
	pflag.String("render.title", "", "Chart title")
	pflag.String("render.cmap", "dark24", "Color palette, colormap or single color (env: CHARTRACE_CMAP)")
	pflag.Float64("render.tick_label_size", 7, "Tick label size in points")
	pflag.Bool("render.period_label", true, "Show the period label")
	pflag.Bool("render.fixed_max", false, "Fix axis bounds across the whole animation")
	pflag.Int("render.dpi", 144, "Output resolution (env: CHARTRACE_DPI)")
	pflag.String("render.writer", "", "External encoder, empty for built-in paths (env: CHARTRACE_WRITER)")
	pflag.Bool("render.enable_progress_bar", true, "Show a progress bar while rendering")
	pflag.String("output.dir", "charts_out", "Directory for encoded output (env: CHARTRACE_OUTPUT_DIR)")
	pflag.Int("output.encode_timeout", 300, "Encoder timeout in seconds (env: CHARTRACE_ENCODE_TIMEOUT)")
	pflag.String("output.date_format", "2006-01-02", "Go time layout the CSV index is parsed with")
	pflag.Bool("output.csv_has_header", true, "Whether the input CSV carries a header row")

	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)
}

func validateConfig(cfg *Config) error {
	if cfg.Render.StepsPerPeriod < 1 {
		return fmt.Errorf("render.steps_per_period must be at least 1, got %d", cfg.Render.StepsPerPeriod)
	}
	if cfg.Render.PeriodLength <= 0 {
		return fmt.Errorf("render.period_length must be positive, got %d", cfg.Render.PeriodLength)
	}
	if cfg.Render.DPI <= 0 {
		return fmt.Errorf("render.dpi must be positive, got %d", cfg.Render.DPI)
	}
	if cfg.Render.Chart != "bar" && cfg.Render.Chart != "line" {
		return fmt.Errorf("render.chart must be \"bar\" or \"line\", got %q", cfg.Render.Chart)
	}
	return nil
}
