// Package importcmd handles importing recipes from external documents
package importcmd

import (
	"fjacquet/recipe-book/cmd/common"
	"fjacquet/recipe-book/cmd/root"
	"fjacquet/recipe-book/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the import command
var Cmd = NewCommand()

// NewCommand builds the import command tree.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import recipes from external documents",
	}
	cmd.AddCommand(newXMLCommand())
	return cmd
}

func newXMLCommand() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "xml",
		Short: "Import recipes from an XML document or a directory of them",
		Long: `Import recipes from an XML document, or from every .xml file below a directory.
Each recipe goes through the same checks as "recipe add"; rejected recipes are
reported and the import continues.`,
		Example: `  recipe-book import xml --input recipes.xml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			if err := validation.IsValidPath(input); err != nil {
				return err
			}

			res, err := c.GetImporter().ImportPath(input)
			if err != nil {
				return err
			}

			common.Printf(cmd, "Imported %d recipe(s) from %d file(s), %d rejected.\n",
				len(res.Imported), len(res.Files), len(res.Failed))
			for _, name := range res.Imported {
				common.Printf(cmd, "  + %s\n", name)
			}
			for _, failure := range res.Failed {
				common.Warnf(cmd, "%v\n", failure)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "XML file or directory to import")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
