// Package substitute handles the substitute catalog commands
package substitute

import (
	"io"
	"strings"

	"fjacquet/recipe-book/cmd/common"
	"fjacquet/recipe-book/cmd/root"
	"fjacquet/recipe-book/internal/catalog"
	"fjacquet/recipe-book/internal/container"

	"github.com/spf13/cobra"
)

// Cmd represents the substitute command
var Cmd = NewCommand()

// NewCommand builds the substitute command tree.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "substitute",
		Aliases: []string{"sub"},
		Short:   "Browse the ingredient substitute catalog",
	}
	cmd.AddCommand(newCategoriesCommand(), newListCommand(), newFindCommand())
	return cmd
}

// catalogContainer returns the container and reports a catalog that could not be
// loaded. The commands keep going with the empty catalog.
func catalogContainer(cmd *cobra.Command) (*container.Container, error) {
	c, err := root.GetContainer()
	if err != nil {
		return nil, err
	}
	if cerr := c.CatalogError(); cerr != nil {
		common.Warnf(cmd, "%v\n", cerr)
	}
	return c, nil
}

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the catalog categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalogContainer(cmd)
			if err != nil {
				return err
			}
			categories := c.GetCatalog().Categories()
			if len(categories) == 0 {
				common.Printf(cmd, "No categories.\n")
				return nil
			}
			for _, name := range categories {
				common.Printf(cmd, "%s\n", name)
			}
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list [category]",
		Short: "List the ingredients of a category, or the whole catalog with --all",
		Args: func(cmd *cobra.Command, args []string) error {
			if all {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalogContainer(cmd)
			if err != nil {
				return err
			}
			if all {
				return listAll(cmd, c.GetCatalog().Entries())
			}

			category := common.NameFromArgs(args)
			ingredients := c.GetCatalog().Ingredients(category)
			if len(ingredients) == 0 {
				common.Printf(cmd, "No ingredients in category '%s'.\n", category)
				return nil
			}
			for _, name := range ingredients {
				common.Printf(cmd, "%s\n", name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "List every ingredient of every category with its substitutes")
	return cmd
}

// listAll prints entries grouped under their category heading.
func listAll(cmd *cobra.Command, entries []catalog.Entry) error {
	if len(entries) == 0 {
		common.Printf(cmd, "No ingredients.\n")
		return nil
	}
	category := ""
	for i, e := range entries {
		if i == 0 || e.Category != category {
			category = e.Category
			common.Printf(cmd, "%s:\n", category)
		}
		common.Printf(cmd, "  %s: %s\n", e.Name, strings.Join(e.Substitutes, ", "))
	}
	return nil
}

func newFindCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:     "find <ingredient>",
		Short:   "Show the substitutes of an ingredient",
		Example: `  recipe-book substitute find butter --format json`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalogContainer(cmd)
			if err != nil {
				return err
			}
			f, err := common.ResolveFormat(format, c.GetConfig())
			if err != nil {
				return err
			}

			name := common.NameFromArgs(args)
			entry, ok := c.GetCatalog().Lookup(name)
			if !ok {
				common.Printf(cmd, "No substitute found for '%s'.\n", name)
				return nil
			}
			reporter := c.GetReporter()
			return common.WriteOutput(cmd, reporter, "", func(w io.Writer) error {
				return reporter.WriteSubstitutes(w, entry, f)
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (text, json, yaml, csv)")
	return cmd
}
