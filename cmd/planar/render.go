package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/planar"
	"github.com/gogpu/planar/internal/config"
	"github.com/gogpu/planar/render"
)

func newRenderCommand(load configLoader) *cobra.Command {
	var (
		output    string
		randomize bool
		thumb     int
		hud       bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a generated graph to PNG",
		Long: `Populates the canvas with random anchors, optionally connects them with
random edges, and writes the result as a PNG image.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := load()
			if err != nil {
				return err
			}
			if err := applyOverrides(cmd.Flags(), cfg); err != nil {
				return err
			}

			s := cfg.NewState()
			if randomize {
				s.RandomizeEdges()
			}

			style := render.DefaultStyle()
			img, err := render.Snapshot(s, cfg.Canvas.Width, cfg.Canvas.Height, nil, style)
			if err != nil {
				return err
			}
			if hud {
				render.DrawHUD(img, style.HUD, render.Summary(s))
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer f.Close()

			if err := png.Encode(f, render.Thumbnail(img, thumb)); err != nil {
				return fmt.Errorf("encode %s: %w", output, err)
			}

			planar.Logger().Info("render: wrote snapshot", "path", output,
				"anchors", s.AnchorCount(), "edges", s.EdgeCount())
			p := message.NewPrinter(language.English)
			p.Fprintf(cmd.OutOrStdout(), "wrote %s (%d anchors, %d edges)\n", output, s.AnchorCount(), s.EdgeCount())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "planar.png", "output PNG file")
	cmd.Flags().Int("width", 1024, "canvas width in units (overrides config)")
	cmd.Flags().Int("height", 1024, "canvas height in units (overrides config)")
	cmd.Flags().Uint64("seed", 0, "random seed (overrides config)")
	cmd.Flags().BoolVar(&randomize, "randomize", true, "connect anchors with random edges")
	cmd.Flags().IntVar(&thumb, "thumb", 0, "scale the image so its longer side is at most this many pixels")
	cmd.Flags().BoolVar(&hud, "hud", true, "print anchor and edge counts on the image")
	return cmd
}

// applyOverrides copies the explicitly set canvas and seed flags into cfg
// and validates the result.
func applyOverrides(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("width") {
		w, err := fs.GetInt("width")
		if err != nil {
			return err
		}
		cfg.Canvas.Width = w
	}
	if fs.Changed("height") {
		h, err := fs.GetInt("height")
		if err != nil {
			return err
		}
		cfg.Canvas.Height = h
	}
	if fs.Changed("seed") {
		seed, err := fs.GetUint64("seed")
		if err != nil {
			return err
		}
		cfg.Population.Seed = &seed
	}
	return cfg.Validate()
}
