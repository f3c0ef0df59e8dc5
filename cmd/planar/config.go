package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/planar/internal/config"
)

func newConfigCommand(load configLoader) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Prints the configuration as YAML after defaults are applied. With --save
the result is written to the default config location.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path == "" {
				fmt.Fprintln(out, "# no config file found, using defaults")
			} else {
				fmt.Fprintf(out, "# %s\n", path)
			}
			fmt.Fprintf(out, "# %s\n", cfg.Summary())

			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			if _, err := out.Write(data); err != nil {
				return err
			}

			if save {
				dst := config.DefaultConfigPath()
				if err := cfg.Save(dst); err != nil {
					return err
				}
				fmt.Fprintf(out, "# saved to %s\n", dst)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "write the effective config to the default location")
	return cmd
}
