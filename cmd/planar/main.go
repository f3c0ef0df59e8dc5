// Command planar is the point-and-line editor.
//
// Subcommands:
//
//	planar edit     interactive terminal editor
//	planar render   write a PNG snapshot of a generated graph
//	planar config   print the effective configuration
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/planar"
	"github.com/gogpu/planar/internal/config"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "planar",
		Short: "planar - connect anchors without crossing lines",
		Long: `planar is a point-and-line editor. Click to place anchors, drag from one
anchor to another to connect them. Edges that would cross an existing edge
are refused.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: search PLANAR_CONFIG, ./planar.yaml, ~/.config/planar)")

	load := func() (*config.Config, string, error) {
		return loadConfig(configPath)
	}

	root.AddCommand(newEditCommand(load))
	root.AddCommand(newRenderCommand(load))
	root.AddCommand(newConfigCommand(load))
	return root
}

type configLoader func() (*config.Config, string, error)

// loadConfig reads the config and installs the slog logger it asks for.
func loadConfig(path string) (*config.Config, string, error) {
	var (
		cfg   *config.Config
		found string
		err   error
	)
	if path != "" {
		cfg, found, err = config.LoadFromPath(path)
	} else {
		cfg, found, err = config.Load()
	}
	if err != nil {
		return nil, found, err
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, found, err
	}
	planar.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return cfg, found, nil
}
