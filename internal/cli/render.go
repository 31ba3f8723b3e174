package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vennsets/pkg/errors"
	"github.com/matzehuels/vennsets/pkg/pipeline"
	"github.com/matzehuels/vennsets/pkg/sets"
)

// maxPrintedItems caps the result items echoed to the terminal.
const maxPrintedItems = 30

// renderOpts holds the flags of the render command.
type renderOpts struct {
	a, b    string  // comma-separated element lists
	op      string  // operation name or alias
	sort    bool    // sort the result
	output  string  // PNG path; empty derives "<op>.png"
	scale   float64 // image scale factor; 0 uses the config value
	noCache bool    // bypass the render cache entirely
	refresh bool    // re-render and overwrite the cached image
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Apply a set operation and write the diagram as PNG",
		Example: `  vennsets render --a 1,2,3 --b 2,3,4 --op intersection
  vennsets render --a apple,pear --b pear,fig --op union --sort -o fruit.png
  vennsets render --a 1,2 --b x,y --op cartesian_product`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.op == "" {
				if !isatty.IsTerminal(os.Stdin.Fd()) {
					return errors.New(errors.ErrCodeInvalidOperation, "--op is required")
				}
				op, err := pickOperation()
				if err != nil {
					return err
				}
				if op == "" {
					return context.Canceled
				}
				opts.op = op
			}
			return c.runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.a, "a", "", "elements of set A (comma-separated)")
	cmd.Flags().StringVar(&opts.b, "b", "", "elements of set B (comma-separated)")
	cmd.Flags().StringVar(&opts.op, "op", "", "operation: "+operationNames()+" (prompted if omitted)")
	cmd.Flags().BoolVar(&opts.sort, "sort", false, "sort the result")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG file (default <op>.png)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, fmt.Sprintf("image scale factor (0 < scale <= %g)", pipeline.MaxScale))
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if a cached image exists")
	_ = cmd.RegisterFlagCompletionFunc("op", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return strings.Split(operationNames(), ", "), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	req := pipeline.ParseArgs(opts.a, opts.b, opts.op, opts.sort)
	req.Scale = cfg.Render.Scale
	if opts.scale != 0 {
		req.Scale = opts.scale
	}
	req.Refresh = opts.refresh
	req.Logger = logger

	prog := newProgress(logger)
	res, err := runner.Execute(ctx, req)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", res.Result.Op))

	path := outputPath(opts.output, res.Result.Op)
	if err := os.WriteFile(path, res.Image.Data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}

	printSuccess("%s of %d and %d elements", res.Result.Op, res.Stats.SizeA, res.Stats.SizeB)
	printResult(res.Result, res.CacheInfo.Hit)
	printKeyValue("Cardinality", fmt.Sprint(res.Cardinality))
	printKeyValue("Image", fmt.Sprintf("%dx%d", res.Image.Width, res.Image.Height))
	printFile(path)
	return nil
}

// outputPath returns output, or "<op>.png" when output is empty. A missing
// extension gets ".png".
func outputPath(output string, op sets.Operation) string {
	if output == "" {
		return op.String() + ".png"
	}
	if filepath.Ext(output) == "" {
		return output + ".png"
	}
	return output
}

func printResult(res sets.Result, cached bool) {
	items := res.Strings()
	more := 0
	if len(items) > maxPrintedItems {
		more = len(items) - maxPrintedItems
		items = items[:maxPrintedItems]
	}
	line := "{" + strings.Join(items, ", ")
	if more > 0 {
		line += fmt.Sprintf(", ... %d more", more)
	}
	line += "}"
	printKeyValue("Result", line)
	printStats(res.Len(), cached)
}

func operationNames() string {
	ops := sets.Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}
	return strings.Join(names, ", ")
}
