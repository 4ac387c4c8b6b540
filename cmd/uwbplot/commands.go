package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iafilius/uwbmeasure/src/applog"
	"github.com/iafilius/uwbmeasure/src/config"
	"github.com/iafilius/uwbmeasure/src/pipeline"
	"github.com/iafilius/uwbmeasure/src/render"
	"github.com/iafilius/uwbmeasure/src/viewer"
)

type runner func(cfg config.Cfg, size render.Size) (*pipeline.Report, error)

// presentFunc is swapped in tests to avoid opening a window.
var presentFunc = viewer.Present

func newRootCmd() *cobra.Command {
	v := config.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "uwbplot",
		Short:         "Plot UWB distance, position and timing measurements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	pf.String("out", "", "write the chart to this PNG instead of opening a window")
	pf.Int("width", 0, "chart width in pixels")
	pf.Int("height", 0, "chart height in pixels")
	pf.String("log-level", "", "debug, info, warn or error")
	mustBind(v, pf, map[string]string{
		"display.output": "out",
		"display.width":  "width",
		"display.height": "height",
		"log.level":      "log-level",
	})

	distance := &cobra.Command{
		Use:   "distance",
		Short: "Line chart of distance samples with a mean reference line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), v, cfgFile, func(cfg config.Cfg, size render.Size) (*pipeline.Report, error) {
				return pipeline.Distance(cfg.Distance, size)
			})
		},
	}
	distance.Flags().String("file", "", "scalar measurement file, one value per line")
	distance.Flags().Int("window", 0, "summarize and plot only the first N samples (<= 0: all)")
	mustBind(v, distance.Flags(), map[string]string{"distance.file": "file", "distance.window": "window"})

	position := &cobra.Command{
		Use:   "position",
		Short: "Scatter chart of x, y positions with mean crosshairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), v, cfgFile, func(cfg config.Cfg, size render.Size) (*pipeline.Report, error) {
				return pipeline.Position(cfg.Position, size)
			})
		},
	}
	position.Flags().String("file", "", `coordinate file, one "<x>, <y>" per line`)
	mustBind(v, position.Flags(), map[string]string{"position.file": "file"})

	timing := &cobra.Command{
		Use:   "timing",
		Short: "Grouped bar chart of connection timings from config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), v, cfgFile, func(cfg config.Cfg, size render.Size) (*pipeline.Report, error) {
				return pipeline.Timing(cfg.Timing, size)
			})
		},
	}

	root.AddCommand(distance, position, timing)
	return root
}

// mustBind panics on unknown flag names; the mapping is static.
func mustBind(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	if err := config.BindFlags(v, fs, keys); err != nil {
		panic(err)
	}
}

func run(stdout io.Writer, v *viper.Viper, cfgFile string, fn runner) error {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	if cfg.Log.Level != "" {
		applog.SetLogLevel(cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	size := render.Size{Width: cfg.Display.Width, Height: cfg.Display.Height}
	rep, err := fn(cfg, size)
	if err != nil {
		return err
	}
	for _, line := range rep.Summary {
		fmt.Fprintln(stdout, line)
	}
	return presentFunc(rep.Title, rep.Image, cfg.Display.Output)
}
