package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/daily/internal/config"
	"github.com/idilsaglam/daily/internal/ui"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  nargs(0, 0, "daily config path"),
		RunE: func(*cobra.Command, []string) error {
			p, err := a.resolvedConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, p)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  nargs(0, 0, "daily config show"),
		RunE: func(*cobra.Command, []string) error {
			b, err := config.Encode(a.cfg)
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(b)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		Args:  nargs(0, 0, "daily config init"),
		RunE: func(*cobra.Command, []string) error {
			p, err := a.resolvedConfigPath()
			if err != nil {
				return err
			}
			if err := config.WriteExample(p); err != nil {
				return err
			}
			ui.OK(a.stdout, "wrote "+p)
			return nil
		},
	})
	return cmd
}

func (a *app) resolvedConfigPath() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	return config.DefaultPath()
}
