package recipe

import "strings"

// Measure is a free-text measure split into a quantity and a unit.
type Measure struct {
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// ParseMeasure splits "1/2 cup" into {1/2, cup}. A single token is taken as
// the unit ("pinch"); blank input gives an empty Measure.
func ParseMeasure(s string) Measure {
	parts := strings.Fields(s)
	switch len(parts) {
	case 0:
		return Measure{}
	case 1:
		return Measure{Unit: parts[0]}
	default:
		return Measure{Quantity: parts[0], Unit: strings.Join(parts[1:], " ")}
	}
}

// IngredientOption is an ingredient offered when stocking a fridge from a
// recipe, with its measure pre-parsed.
type IngredientOption struct {
	Ingredient string `json:"ingredient"`
	Measure    string `json:"measure"`
	Quantity   string `json:"quantity"`
	Unit       string `json:"unit"`
}

// Label is how the option is listed: "Beef — 200g", or "Beef" without a
// measure.
func (o IngredientOption) Label() string {
	if o.Measure == "" {
		return o.Ingredient
	}
	return o.Ingredient + " — " + o.Measure
}

// IngredientOptions turns normalized ingredients into options and collects
// the distinct non-empty units in first-seen order.
func IngredientOptions(ingredients []Ingredient) ([]IngredientOption, []string) {
	options := make([]IngredientOption, 0, len(ingredients))
	units := make([]string, 0)
	seen := make(map[string]struct{})

	for _, ing := range ingredients {
		m := ParseMeasure(ing.Measure)
		options = append(options, IngredientOption{
			Ingredient: ing.Name,
			Measure:    ing.Measure,
			Quantity:   m.Quantity,
			Unit:       m.Unit,
		})

		if m.Unit == "" {
			continue
		}
		if _, ok := seen[m.Unit]; ok {
			continue
		}
		seen[m.Unit] = struct{}{}
		units = append(units, m.Unit)
	}

	return options, units
}
