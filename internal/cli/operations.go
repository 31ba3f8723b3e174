package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/vennsets/pkg/render/venn"
	"github.com/matzehuels/vennsets/pkg/sets"
)

// operationsCommand lists the supported operations.
func (c *CLI) operationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List supported set operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, op := range sets.Operations() {
				p, err := venn.ProfileFor(op)
				if err != nil {
					return err
				}
				printKeyValue(op.String(), p.Title)
				printDetail("%s", p.Description)
			}
			return nil
		},
	}
}
