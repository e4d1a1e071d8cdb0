// Package shopping merges the ingredients of selected recipes into a shopping list.
package shopping

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"fjacquet/recipe-book/internal/logging"
	"fjacquet/recipe-book/internal/models"
	"fjacquet/recipe-book/internal/textutils"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoRecipesSelected is returned by callers when an aggregation is requested
	// without any recipe.
	ErrNoRecipesSelected = errors.New("please select at least one recipe")
	// ErrNoItemsChosen is returned by callers when a purchase list is requested
	// without any item.
	ErrNoItemsChosen = errors.New("no ingredients selected")
)

// Line is one aggregated entry of a shopping list.
type Line struct {
	Key      string          `json:"key"`
	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	Quantity decimal.Decimal `json:"quantity"`
}

// PurchaseItem is an entry chosen for purchase: the aggregation key and its total
// quantity as text.
type PurchaseItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// Key builds the aggregation key for an ingredient, e.g. "egg (pcs)". Name and unit
// are trimmed; an empty unit still yields "name ()".
func Key(name, unit string) string {
	return fmt.Sprintf("%s (%s)", strings.TrimSpace(name), strings.TrimSpace(unit))
}

// ShoppingList maps aggregation keys to total quantities. It is built by Aggregate
// and not modified afterwards.
type ShoppingList struct {
	lines map[string]Line
	keys  []string
}

// Len returns the number of distinct keys.
func (l *ShoppingList) Len() int {
	return len(l.keys)
}

// Keys returns the keys sorted case-insensitively; keys that fold equal keep a
// stable order by their raw text.
func (l *ShoppingList) Keys() []string {
	out := make([]string, len(l.keys))
	copy(out, l.keys)
	return out
}

// Lines returns the entries in key order.
func (l *ShoppingList) Lines() []Line {
	out := make([]Line, len(l.keys))
	for i, k := range l.keys {
		out[i] = l.lines[k]
	}
	return out
}

// Total returns the total quantity for key.
func (l *ShoppingList) Total(key string) (decimal.Decimal, bool) {
	line, ok := l.lines[key]
	return line.Quantity, ok
}

// Aggregator builds shopping lists from recipes.
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator creates a new Aggregator.
func NewAggregator(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Aggregator{logger: logger}
}

// Aggregate sums the ingredient quantities of the recipes whose name is exactly one
// of selected. Ingredients with the same trimmed name and unit share one key;
// different units are never merged. Names in selected that match no recipe are
// ignored.
func (a *Aggregator) Aggregate(recipes []models.Recipe, selected []string) *ShoppingList {
	wanted := make(map[string]bool, len(selected))
	for _, name := range selected {
		wanted[name] = true
	}

	list := &ShoppingList{lines: make(map[string]Line)}
	matched := 0
	for _, recipe := range recipes {
		if !wanted[recipe.Name] {
			continue
		}
		matched++

		for _, ing := range recipe.Ingredients {
			name := strings.TrimSpace(ing.Name)
			unit := strings.TrimSpace(ing.Unit)
			key := Key(name, unit)

			line, exists := list.lines[key]
			if !exists {
				line = Line{Key: key, Name: name, Unit: unit, Quantity: decimal.Zero}
				list.keys = append(list.keys, key)
			}
			line.Quantity = line.Quantity.Add(ing.Quantity)
			list.lines[key] = line
		}
	}

	sort.SliceStable(list.keys, func(i, j int) bool {
		fi, fj := textutils.Fold(list.keys[i]), textutils.Fold(list.keys[j])
		if fi != fj {
			return fi < fj
		}
		return list.keys[i] < list.keys[j]
	})

	a.logger.Info("Aggregated shopping list",
		logging.F("selected", len(selected)),
		logging.F("matched_recipes", matched),
		logging.F(logging.FieldCount, list.Len()))

	return list
}

// SelectForPurchase projects the chosen keys onto the list, in list order. Chosen
// keys that are not in the list are ignored.
func SelectForPurchase(list *ShoppingList, chosen []string) []PurchaseItem {
	picked := make(map[string]bool, len(chosen))
	for _, k := range chosen {
		picked[k] = true
	}

	items := make([]PurchaseItem, 0, len(chosen))
	for _, k := range list.keys {
		if picked[k] {
			items = append(items, PurchaseItem{
				Name:     k,
				Quantity: models.FormatDecimal(list.lines[k].Quantity),
			})
		}
	}
	return items
}
