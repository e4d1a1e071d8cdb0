// Package shopping handles the shopping list commands
package shopping

import (
	"io"

	"fjacquet/recipe-book/cmd/common"
	"fjacquet/recipe-book/cmd/root"
	"fjacquet/recipe-book/internal/shopping"

	"github.com/spf13/cobra"
)

// Cmd represents the shopping command
var Cmd = NewCommand()

// NewCommand builds the shopping command tree.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shopping",
		Short: "Build shopping lists from recipes",
	}
	cmd.AddCommand(newListCommand())
	return cmd
}

func newListCommand() *cobra.Command {
	var (
		recipes []string
		buy     []string
		format  string
		output  string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Merge the ingredients of the selected recipes",
		Long: `Merge the ingredients of the selected recipes. Quantities of the same
ingredient in the same unit are summed; different units stay separate lines.
With --buy only the given items ("name (unit)") are kept.`,
		Example: `  recipe-book shopping list --recipe "Fried Rice" --recipe Omelette
  recipe-book shopping list -r "Fried Rice" --buy "egg (pcs)" --format csv -o list.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			if len(recipes) == 0 {
				return shopping.ErrNoRecipesSelected
			}
			f, err := common.ResolveFormat(format, c.GetConfig())
			if err != nil {
				return err
			}

			known := make(map[string]bool)
			for _, name := range c.GetStore().Names() {
				known[name] = true
			}
			for _, name := range recipes {
				if !known[name] {
					common.Warnf(cmd, "no recipe named exactly '%s'\n", name)
				}
			}

			list := c.GetAggregator().Aggregate(c.GetStore().Recipes(), recipes)
			reporter := c.GetReporter()

			if !cmd.Flags().Changed("buy") {
				return common.WriteOutput(cmd, reporter, output, func(w io.Writer) error {
					return reporter.WriteShoppingList(w, list, f)
				})
			}

			items := shopping.SelectForPurchase(list, buy)
			if len(items) == 0 {
				return shopping.ErrNoItemsChosen
			}
			return common.WriteOutput(cmd, reporter, output, func(w io.Writer) error {
				return reporter.WritePurchase(w, items, f)
			})
		},
	}
	cmd.Flags().StringArrayVarP(&recipes, "recipe", "r", nil, "Recipe to include (repeatable, exact name)")
	cmd.Flags().StringArrayVarP(&buy, "buy", "b", nil, "Item to buy, as shown in the list (repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (text, json, yaml, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of standard output")
	return cmd
}
