package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"pwna/internal/config"
	"pwna/internal/logging"
)

// errConfigGenerated stops command execution after a first-run default
// config was written. main treats it as a successful exit.
var errConfigGenerated = errors.New("default config generated")

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string
	logFileFlag   *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag, logFileFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
		logFileFlag:   logFileFlag,
	}
}

func (c *commandContext) configPath() (string, error) {
	var path string
	if c.configFlag != nil {
		path = strings.TrimSpace(*c.configFlag)
	}
	if path == "" {
		return config.DefaultPath()
	}
	return config.ExpandPath(path)
}

// ensureConfig bootstraps the configuration once per invocation. When the
// config directory was missing it writes defaults, reports them on out and
// returns errConfigGenerated.
func (c *commandContext) ensureConfig(out io.Writer) (*config.Config, error) {
	c.configOnce.Do(func() {
		path, err := c.configPath()
		if err != nil {
			c.configErr = fmt.Errorf("resolve config path: %w", err)
			return
		}
		result, err := config.Bootstrap(path)
		if err != nil {
			c.configErr = err
			return
		}
		if result.State == config.StateGenerated {
			fmt.Fprintln(out, "No config file found. A default config will be generated.")
			fmt.Fprintf(out, "Default config file '%s' generated.\n", result.Generated.Path)
			c.configErr = errConfigGenerated
			return
		}
		c.config = result.Config
	})
	return c.config, c.configErr
}

func (c *commandContext) loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		opts := logging.Options{Writer: cmd.ErrOrStderr()}
		if c.logLevelFlag != nil {
			opts.Level = *c.logLevelFlag
		}
		if c.logFormatFlag != nil {
			opts.Format = *c.logFormatFlag
		}
		if c.logFileFlag != nil && strings.TrimSpace(*c.logFileFlag) != "" {
			path, err := config.ExpandPath(strings.TrimSpace(*c.logFileFlag))
			if err != nil {
				c.loggerErr = fmt.Errorf("resolve log file: %w", err)
				return
			}
			opts.File = path
		}
		c.logger, c.loggerErr = logging.New(opts)
		if c.loggerErr != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", c.loggerErr)
		}
	})
	return c.logger, c.loggerErr
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
