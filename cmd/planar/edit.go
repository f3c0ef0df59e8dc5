package main

import (
	"errors"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/gogpu/planar"
	"github.com/gogpu/planar/internal/config"
	"github.com/gogpu/planar/internal/tui"
	"github.com/gogpu/planar/tone"
)

var errWatchWithoutFile = errors.New("--watch needs a config file; pass --config or set PLANAR_CONFIG")

func newEditCommand(load configLoader) *cobra.Command {
	var (
		watch bool
		empty bool
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive terminal editor",
		Long: `Opens the editor in the terminal. Click to place anchors and drag between
anchors to connect them. The drag line turns red when it would cross an edge.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := load()
			if err != nil {
				return err
			}
			if watch && path == "" {
				return errWatchWithoutFile
			}
			if empty {
				cfg.Population.Enabled = false
			}

			rng := cfg.Rand()
			ctrl := tone.NewController(tone.NewCell(tone.BaseFrequency, cfg.Tone.Volume), rng)
			ctrl.SetSmoothing(cfg.Tone.Smoothing)

			watchPath := ""
			if watch {
				watchPath = path
			}
			return tui.Run(cmd.Context(), nil, tui.Options{
				WiggleAmount: cfg.Interaction.WiggleAmount,
				Tone:         ctrl,
				ToneEnabled:  cfg.Tone.Enabled,
				NewState:     terminalState(cfg, rng),
			}, watchPath)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "reload the config file when it changes")
	cmd.Flags().BoolVar(&empty, "empty", false, "start without generated anchors")
	return cmd
}

// terminalState returns a factory that sizes the canvas to the terminal
// once its dimensions are known.
func terminalState(cfg *config.Config, rng *rand.Rand) func(width, height float32) *planar.State {
	return func(width, height float32) *planar.State {
		c := *cfg
		c.Canvas.Width, c.Canvas.Height = int(width), int(height)
		return planar.NewState(c.StateOptions(rng)...)
	}
}
