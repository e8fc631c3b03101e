package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"pwna/internal/fileserve"
)

func newHTTPCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "http [port]",
		Short: "Link the current directory into the HTTP root and serve it",
		Long: "Link the current directory into the configured HTTP root under its base name,\n" +
			"then serve the HTTP root until interrupted. A non-zero port argument overrides\n" +
			"the configured http_port.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliPort, err := parsePortArg(args)
			if err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			logger, err := ctx.loggerFor(cmd)
			if err != nil {
				return err
			}

			root, err := cfg.Directory()
			if err != nil {
				return err
			}
			link, err := fileserve.LinkWorkingDir(root)
			if err != nil {
				return err
			}
			if link.Created {
				logger.Info("linked working directory", slog.String("link", link.Path), slog.String("target", link.Target))
			} else {
				logger.Debug("link already present", slog.String("link", link.Path))
			}

			// http_port is only required when no port was given.
			var configured int
			if cliPort == 0 {
				if configured, err = cfg.Port(); err != nil {
					return err
				}
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return fileserve.Serve(signalCtx, fileserve.Options{
				Root:   root,
				Bind:   bind,
				Port:   fileserve.ResolvePort(cliPort, configured),
				Stdout: cmd.OutOrStdout(),
				Logger: logger,
			})
		},
	}

	cmd.Flags().StringVarP(&bind, "bind", "b", "", "Address to bind (default: all interfaces)")
	return cmd
}

// parsePortArg returns the optional positional port, zero when absent.
func parsePortArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	port, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: must be an integer", args[0])
	}
	return port, nil
}
