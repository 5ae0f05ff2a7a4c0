package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/galaxy/config"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List tuning presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			banner(out, "tuning presets")

			var rows [][]string
			for _, name := range config.PresetNames() {
				cfg, err := config.Preset(name)
				if err != nil {
					return err
				}
				label := name
				if name == config.PresetClustered {
					label += " *"
				}
				rows = append(rows, []string{
					label,
					strconv.FormatFloat(cfg.Physics.AlphaDecay, 'f', 3, 64),
					strconv.FormatFloat(cfg.Physics.SpringLength, 'f', 0, 64),
					fmt.Sprintf("%.3f/%.3f", cfg.Physics.CenterGravityX, cfg.Physics.CenterGravityY),
					strconv.FormatFloat(cfg.Physics.GroupGravity, 'f', 3, 64),
					string(cfg.Layout.SeedShape),
					onOff(cfg.Drift.Enabled),
				})
			}
			table(out, []string{"PRESET", "DECAY", "SPRING", "CENTER X/Y", "GROUP", "SEED", "DRIFT"}, rows)
			fmt.Fprintln(out)
			subtle.Fprintln(out, "  * default")
			return nil
		},
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
