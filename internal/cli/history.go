package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vennsets/pkg/config"
	"github.com/matzehuels/vennsets/pkg/history"
)

// historyCommand creates the history command.
func (c *CLI) historyCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent renders",
		Long: `List recent renders from the configured history store, newest first.

Only the mongo backend persists across processes; the memory backend lives
inside a running server and is available at GET /api/v1/history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHistory(cmd.Context(), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultLimit, fmt.Sprintf("number of records (max %d)", history.MaxLimit))
	return cmd
}

func (c *CLI) runHistory(ctx context.Context, limit int) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if cfg.History.Backend != config.BackendMongo {
		printWarning("history backend is %q; nothing is stored between runs", cfg.History.Backend)
		return nil
	}

	store, err := newHistory(ctx, cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		printInfo("No renders recorded")
		return nil
	}
	fmt.Println(historyTable(recs))
	return nil
}

// historyTable renders records as a bordered table, newest first.
func historyTable(recs []history.Record) string {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		cached := ""
		if r.Cached {
			cached = iconCached
		}
		rows = append(rows, []string{
			r.CreatedAt.Local().Format(time.DateTime),
			r.Operation,
			abbreviate(r.A),
			abbreviate(r.B),
			fmt.Sprint(r.Cardinality),
			cached,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("When", "Operation", "A", "B", "Items", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return StyleHighlight
			case col == 5:
				return styleCached
			default:
				return StyleValue
			}
		}).
		String()
}

// abbreviate joins elements for a table cell, keeping the first few.
func abbreviate(elems []string) string {
	const keep = 5
	if len(elems) <= keep {
		return "{" + strings.Join(elems, ", ") + "}"
	}
	return "{" + strings.Join(elems[:keep], ", ") + fmt.Sprintf(", +%d}", len(elems)-keep)
}
