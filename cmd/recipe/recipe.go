// Package recipe handles the recipe management commands
package recipe

import (
	"fmt"

	"fjacquet/recipe-book/cmd/common"
	"fjacquet/recipe-book/cmd/root"
	"fjacquet/recipe-book/internal/ingredientparser"
	"fjacquet/recipe-book/internal/logging"
	"fjacquet/recipe-book/internal/models"
	"fjacquet/recipe-book/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the recipe command
var Cmd = NewCommand()

type formFlags struct {
	name       string
	names      string
	quantities string
	calories   string
}

func (f *formFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Recipe name")
	cmd.Flags().StringVarP(&f.names, "ingredients", "i", "", "Ingredient names separated by ';' (e.g. \"egg ; rice\")")
	cmd.Flags().StringVarP(&f.quantities, "quantities", "q", "", "Quantities with units separated by ';' (e.g. \"2(pcs) ; 200(g)\")")
	cmd.Flags().StringVarP(&f.calories, "calories", "c", "", "Calories separated by ';' (e.g. \"70 ; 300\")")
}

// NewCommand builds the recipe command tree.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Add, edit, delete and display recipes",
		Long: `Manage the recipe collection. Ingredients are entered as three parallel
';'-separated lists: names, quantities written as amount(unit), and calories.`,
	}
	cmd.AddCommand(newAddCommand(), newEditCommand(), newDeleteCommand(), newListCommand(), newShowCommand())
	return cmd
}

func newAddCommand() *cobra.Command {
	var form formFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new recipe",
		Example: `  recipe-book recipe add --name "Fried Rice" \
    --ingredients "egg ; rice" --quantities "2(pcs) ; 200(g)" --calories "70 ; 300"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			if err := validation.IsValidRecipeName(form.name); err != nil {
				return err
			}

			r, err := ingredientparser.ParseRecipe(form.name, form.names, form.quantities, form.calories)
			if err != nil {
				return err
			}
			if err := c.GetStore().Add(r); err != nil {
				return err
			}

			c.GetLogger().Debug("Recipe saved from command line", logging.F(logging.FieldRecipe, r.Name))
			common.Printf(cmd, "Recipe '%s' added (%s kcal).\n", r.Name, models.FormatDecimal(r.TotalCalories))
			return nil
		},
	}
	form.register(cmd)
	return cmd
}

func newEditCommand() *cobra.Command {
	var form formFlags
	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Replace a recipe; fields not given keep their current value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			s := c.GetStore()
			target := common.NameFromArgs(args)

			index, found := s.Find(target)
			if !found {
				return fmt.Errorf("recipe not found: %s", target)
			}
			session, current, err := s.BeginEdit(models.IdleSession(), index)
			if err != nil {
				return err
			}

			fields := ingredientparser.Format(current)
			flags := cmd.Flags()
			if flags.Changed("name") {
				if err := validation.IsValidRecipeName(form.name); err != nil {
					s.CancelEdit(session)
					return err
				}
				fields.Name = form.name
			}
			if flags.Changed("ingredients") {
				fields.Names = form.names
			}
			if flags.Changed("quantities") {
				fields.Quantities = form.quantities
			}
			if flags.Changed("calories") {
				fields.Calories = form.calories
			}

			r, err := ingredientparser.ParseRecipe(fields.Name, fields.Names, fields.Quantities, fields.Calories)
			if err != nil {
				s.CancelEdit(session)
				return err
			}
			if _, err := s.SaveEdit(session, r); err != nil {
				s.CancelEdit(session)
				return err
			}

			common.Printf(cmd, "Recipe '%s' updated (%s kcal).\n", r.Name, models.FormatDecimal(r.TotalCalories))
			return nil
		},
	}
	form.register(cmd)
	return cmd
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a recipe by name (case-insensitive)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			name := common.NameFromArgs(args)

			removed, err := c.GetStore().Delete(name)
			if err != nil {
				return err
			}
			if removed == 0 {
				common.Printf(cmd, "No recipe named '%s'.\n", name)
				return nil
			}
			common.Printf(cmd, "Recipe '%s' deleted.\n", name)
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every recipe with its calorie total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			f, err := common.ResolveFormat(format, c.GetConfig())
			if err != nil {
				return err
			}
			return c.GetReporter().WriteRecipeSummaries(cmd.OutOrStdout(), c.GetStore().Recipes(), f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (text, json, yaml, csv)")
	return cmd
}

func newShowCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a recipe with its ingredients",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			f, err := common.ResolveFormat(format, c.GetConfig())
			if err != nil {
				return err
			}

			name := common.NameFromArgs(args)
			index, found := c.GetStore().Find(name)
			if !found {
				return fmt.Errorf("recipe not found: %s", name)
			}
			r, err := c.GetStore().Get(index)
			if err != nil {
				return err
			}
			return c.GetReporter().WriteRecipes(cmd.OutOrStdout(), []models.Recipe{r}, f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (text, json, yaml, csv)")
	return cmd
}
