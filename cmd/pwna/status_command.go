package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pwna/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "status [port]",
		Short: "Check the config file, HTTP root, port and working directory link",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliPort, err := parsePortArg(args)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			path, err := ctx.configPath()
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolve working directory: %w", err)
			}

			results := preflight.RunAll(preflight.Inputs{
				ConfigPath: path,
				Config:     cfg,
				Bind:       bind,
				CLIPort:    cliPort,
				WorkDir:    wd,
			})

			writeStatusReport(cmd.OutOrStdout(), "pwna status", results)
			return nil
		},
	}

	cmd.Flags().StringVarP(&bind, "bind", "b", "", "Address to check (default: all interfaces)")
	return cmd
}
