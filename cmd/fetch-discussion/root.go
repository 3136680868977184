package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"discussion-fetcher/bootstrap"
	"discussion-fetcher/config"
	"discussion-fetcher/utils/logger"
)

// coreBuilder opens storage and wires the ingestion service.
type coreBuilder func(ctx context.Context, cfg *config.Config, log *slog.Logger) (*bootstrap.Core, func(), error)

func defaultCoreBuilder(ctx context.Context, cfg *config.Config, log *slog.Logger) (*bootstrap.Core, func(), error) {
	return bootstrap.BuildCore(ctx, cfg, log)
}

// exitError ends the process with code without printing anything more.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

type cli struct {
	build   coreBuilder
	verbose bool
	log     *slog.Logger
	cfg     *config.Config
}

func newRootCmd(build coreBuilder) *cobra.Command {
	c := &cli{build: build}

	root := &cobra.Command{
		Use:   "fetch-discussion",
		Short: "Fetch and store the discussion of one content item",
		Long: `fetch-discussion runs the same fetch the service runs for a DiscussionFetchRequested
event, without the HTTP server or the stream consumer.

Example usage:
  fetch-discussion run 6f1c1d2e-5b59-4d1e-9a57-3c0de8a0b001 --cap 50
  fetch-discussion show 6f1c1d2e-5b59-4d1e-9a57-3c0de8a0b001`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(c.runCmd(), c.showCmd())
	return root
}

func (c *cli) init(stderr io.Writer) error {
	level := "warn"
	if c.verbose {
		level = "debug"
	}
	c.log = logger.NewUnifiedLoggerWithLevel(stderr, "fetch-discussion", level).Slog()
	logger.Logger = c.log

	if c.cfg != nil {
		return nil
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	c.cfg = cfg
	return nil
}

func (c *cli) withCore(ctx context.Context, fn func(*bootstrap.Core) error) error {
	core, cleanup, err := c.build(ctx, c.cfg, c.log)
	if err != nil {
		return fmt.Errorf("building dependencies: %w", err)
	}
	defer cleanup()
	return fn(core)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
