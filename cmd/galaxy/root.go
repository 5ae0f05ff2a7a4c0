package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/galaxy/camera"
	"github.com/lixenwraith/galaxy/config"
	"github.com/lixenwraith/galaxy/dataset"
	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/parameter"
)

var version = "0.3.0"

// options carries the persistent flags shared by every subcommand
type options struct {
	configPath    string
	preset        string
	dataPath      string
	reducedMotion bool
	fps           int
	metricsAddr   string
	debug         bool
	noAudio       bool
	seed          int64
	tour          bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "galaxy",
		Short:         "galaxy: an interactive force-directed map of product domains",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), opts)
		},
	}
	root.SetVersionTemplate("galaxy {{ .Version }}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "TOML tuning file overlaid on the preset")
	pf.StringVar(&opts.preset, "preset", config.PresetClustered, "Tuning preset (see `galaxy presets`)")
	pf.StringVar(&opts.dataPath, "data", "", "TOML dataset file (default: embedded sample)")
	pf.BoolVar(&opts.reducedMotion, "reduced-motion", false, "Disable tweens, breathing and drift (also GALAXY_REDUCED_MOTION)")
	pf.IntVar(&opts.fps, "fps", 0, "Frame rate override")
	pf.Int64Var(&opts.seed, "seed", 0, "Random seed for initial placement (0: time based)")

	root.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	root.Flags().BoolVar(&opts.debug, "debug", false, "Write debug logs to logs/galaxy.log")
	root.Flags().BoolVar(&opts.noAudio, "no-audio", false, "Disable audio cues")
	root.Flags().BoolVar(&opts.tour, "tour", false, "Start with a camera tour of all domains")

	root.AddCommand(
		newSimulateCmd(opts),
		newPresetsCmd(),
	)
	return root
}

// loadConfig resolves preset, overlay file and flag overrides
func (o *options) loadConfig() (*config.Config, error) {
	cfg, err := config.Preset(o.preset)
	if err != nil {
		return nil, err
	}
	// Terminal chrome is a status row only; an overlay file may still set insets
	cfg.Layout.SetChrome(parameter.TerminalTopInset, parameter.TerminalBottomInset)
	if o.configPath != "" {
		if cfg, err = config.Load(o.configPath, cfg); err != nil {
			return nil, err
		}
	}
	if o.fps < 0 || o.fps > 1000 {
		return nil, fmt.Errorf("fps must be in [1,1000], got %d", o.fps)
	}
	if o.fps > 0 {
		cfg.Engine.FrameInterval.Duration = time.Second / time.Duration(o.fps)
	}
	return cfg, nil
}

func (o *options) loadDataset() (*graph.Dataset, error) {
	if o.dataPath == "" {
		return dataset.Sample(), nil
	}
	return dataset.Load(o.dataPath)
}

func (o *options) graphOptions() []graph.Option {
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return []graph.Option{graph.WithRand(rand.New(rand.NewSource(seed)))}
}

// motion reads the flag and GALAXY_REDUCED_MOTION at every decision
func (o *options) motion() camera.MotionPreference {
	return camera.MotionFunc(func() bool {
		if o.reducedMotion {
			return true
		}
		on, err := strconv.ParseBool(os.Getenv("GALAXY_REDUCED_MOTION"))
		return err == nil && on
	})
}
