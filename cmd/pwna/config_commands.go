package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pwna/internal/config"
)

const missingValue = "<missing>"

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigPathCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigPathCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Short:       "Print the configuration file path",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.configPath()
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the loaded configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch strings.ToLower(strings.TrimSpace(format)) {
			case "", "yaml":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				_, err = out.Write(data)
				return err
			case "toml":
				data, err := toml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("encode toml: %w", err)
				}
				_, err = out.Write(data)
				return err
			case "table":
				fmt.Fprintln(out, renderKeyValueTable(configRows(cfg)))
				return nil
			default:
				return fmt.Errorf("unsupported format %q (want yaml, toml or table)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format (yaml, toml, table)")
	return cmd
}

func configRows(cfg *config.Config) [][2]string {
	dir := missingValue
	if cfg.HTTPDirectory != nil {
		dir = *cfg.HTTPDirectory
	}
	port := missingValue
	if cfg.HTTPPort != nil {
		port = strconv.Itoa(*cfg.HTTPPort)
	}
	return [][2]string{
		{config.KeyHTTPDirectory, dir},
		{config.KeyHTTPPort, port},
	}
}
