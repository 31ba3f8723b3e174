package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vennsets/internal/server"
	"github.com/matzehuels/vennsets/pkg/observability"
)

// serveCommand creates the serve command, which runs the HTTP API until
// interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the render API over HTTP.

Routes:
  POST /api/v1/operation   render a diagram (also POST /operacao)
  GET  /api/v1/operations  list operations
  GET  /api/v1/history     recent renders
  GET  /healthz            health check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if !c.verbose {
		c.SetLogLevel(cfg.Level())
	}

	runner, err := c.newRunner(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer func() {
		if err := runner.Close(); err != nil {
			c.Logger.Warn("close backends", "err", err)
		}
	}()

	hooks := &logHooks{logger: c.Logger}
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	printInfo("Serving on %s", cfg.Server.Addr)
	printDetail("cache: %s · history: %s", cfg.Cache.Backend, cfg.History.Backend)
	return server.New(runner, cfg.Server, c.Logger).ListenAndServe(ctx)
}
