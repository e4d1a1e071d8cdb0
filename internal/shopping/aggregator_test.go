package shopping

import (
	"encoding/json"
	"testing"

	"fjacquet/recipe-book/internal/logging"
	"fjacquet/recipe-book/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(name, qty, unit string) models.IngredientLine {
	return models.NewIngredientLine(name, decimal.RequireFromString(qty), unit, decimal.Zero)
}

func sampleRecipes() []models.Recipe {
	return []models.Recipe{
		models.NewRecipe("A", []models.IngredientLine{line("egg", "2", "pcs"), line("rice", "200", "g")}),
		models.NewRecipe("B", []models.IngredientLine{line("egg", "3", "pcs"), line("Milk", "0.5", "l")}),
		models.NewRecipe("C", []models.IngredientLine{line("egg", "1", "dozen")}),
	}
}

func TestAggregate(t *testing.T) {
	agg := NewAggregator(logging.NewMockLogger())
	list := agg.Aggregate(sampleRecipes(), []string{"A", "B"})

	assert.Equal(t, []string{"egg (pcs)", "Milk (l)", "rice (g)"}, list.Keys())

	total, ok := list.Total("egg (pcs)")
	require.True(t, ok)
	assert.True(t, total.Equal(decimal.NewFromInt(5)))

	_, ok = list.Total("egg (dozen)")
	assert.False(t, ok)
}

func TestAggregate_DifferentUnitsStaySeparate(t *testing.T) {
	list := NewAggregator(nil).Aggregate(sampleRecipes(), []string{"A", "C"})

	assert.Equal(t, []string{"egg (dozen)", "egg (pcs)", "rice (g)"}, list.Keys())
	dozen, _ := list.Total("egg (dozen)")
	pcs, _ := list.Total("egg (pcs)")
	assert.Equal(t, "1", dozen.String())
	assert.Equal(t, "2", pcs.String())
}

func TestAggregate_ExactNameFilter(t *testing.T) {
	list := NewAggregator(nil).Aggregate(sampleRecipes(), []string{"a", "Z"})
	assert.Equal(t, 0, list.Len())
	assert.Empty(t, list.Keys())
}

func TestAggregate_TrimsNameAndUnit(t *testing.T) {
	recipes := []models.Recipe{
		{Name: "Raw", Ingredients: []models.IngredientLine{
			{Name: " egg ", Quantity: decimal.NewFromInt(1), Unit: " pcs"},
			{Name: "egg", Quantity: decimal.NewFromInt(2), Unit: "pcs "},
		}},
	}
	list := NewAggregator(nil).Aggregate(recipes, []string{"Raw"})

	assert.Equal(t, []string{"egg (pcs)"}, list.Keys())
	total, _ := list.Total("egg (pcs)")
	assert.Equal(t, "3", total.String())
}

func TestAggregate_EmptyUnit(t *testing.T) {
	recipes := []models.Recipe{models.NewRecipe("Salt", []models.IngredientLine{line("salt", "1", "")})}
	list := NewAggregator(nil).Aggregate(recipes, []string{"Salt"})
	assert.Equal(t, []string{"salt ()"}, list.Keys())
}

func TestAggregate_CaseInsensitiveOrderWithTies(t *testing.T) {
	recipes := []models.Recipe{models.NewRecipe("X", []models.IngredientLine{
		line("banana", "1", "pcs"),
		line("apple", "1", "pcs"),
		line("Apple", "2", "pcs"),
		line("Cherry", "1", "pcs"),
	})}
	list := NewAggregator(nil).Aggregate(recipes, []string{"X"})

	assert.Equal(t, []string{"Apple (pcs)", "apple (pcs)", "banana (pcs)", "Cherry (pcs)"}, list.Keys())
}

func TestAggregate_NonNumericStoredQuantityCountsAsZero(t *testing.T) {
	var recipes []models.Recipe
	require.NoError(t, json.Unmarshal([]byte(`[
  {"name": "A", "ingredients": [
    {"name": "egg", "qty": "abc", "unit": "pcs"},
    {"name": "egg", "unit": "pcs"},
    {"name": "egg", "qty": "4", "unit": "pcs"}
  ]}
]`), &recipes))

	list := NewAggregator(nil).Aggregate(recipes, []string{"A"})
	total, ok := list.Total("egg (pcs)")
	require.True(t, ok)
	assert.Equal(t, "4", total.String())
}

func TestAggregate_ExactDecimalSums(t *testing.T) {
	recipes := []models.Recipe{
		models.NewRecipe("A", []models.IngredientLine{line("milk", "0.1", "l")}),
		models.NewRecipe("B", []models.IngredientLine{line("milk", "0.2", "l")}),
	}
	list := NewAggregator(nil).Aggregate(recipes, []string{"A", "B"})
	total, _ := list.Total("milk (l)")
	assert.Equal(t, "0.3", total.String())
}

func TestAggregate_LogsSummary(t *testing.T) {
	logger := logging.NewMockLogger()
	NewAggregator(logger).Aggregate(sampleRecipes(), []string{"A"})
	assert.True(t, logger.HasEntry("INFO", "Aggregated shopping list"))
}

func TestSelectForPurchase(t *testing.T) {
	list := NewAggregator(nil).Aggregate(sampleRecipes(), []string{"A", "B"})

	items := SelectForPurchase(list, []string{"rice (g)", "unknown (kg)", "egg (pcs)"})
	assert.Equal(t, []PurchaseItem{
		{Name: "egg (pcs)", Quantity: "5"},
		{Name: "rice (g)", Quantity: "200"},
	}, items)

	assert.Empty(t, SelectForPurchase(list, nil))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "egg (pcs)", Key(" egg", "pcs "))
	assert.Equal(t, "water ()", Key("water", ""))
}
