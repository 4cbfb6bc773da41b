// Package recipe maps recipe records of several historical shapes into one
// canonical form. Records come from the document store (locally authored,
// with a flat ingredients list) or from TheMealDB (strMeal, strIngredient1..20
// and friends). Every function here is total: missing or malformed fields
// fall back to empty values and nothing returns an error.
package recipe

import (
	"fmt"
	"strconv"
	"strings"
)

// Raw is a recipe record as read from a document store or decoded from JSON.
type Raw map[string]any

// Ingredient is a canonical ingredient line.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// Normalized is the canonical recipe consumed by the transport layer.
type Normalized struct {
	ID           string       `json:"id"`
	FridgeID     string       `json:"fridgeId,omitempty"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Area         string       `json:"area"`
	Instructions string       `json:"instructions"`
	Ingredients  []Ingredient `json:"ingredients"`
	Thumbnail    string       `json:"thumbnail"`
	YouTubeURL   string       `json:"youtubeUrl,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
}

// Context carries what the caller knows about where the record was loaded
// from. FridgeID is set only when the recipe was loaded in fridge scope.
type Context struct {
	ID       string
	FridgeID string
}

// UntitledName is used when no name field is present.
const UntitledName = "Untitled recipe"

// MaxNumberedIngredients is how many strIngredientN/strMeasureN pairs
// TheMealDB records carry.
const MaxNumberedIngredients = 20

// Chain is an ordered list of field names; the first one holding a
// non-blank value wins.
type Chain []string

// Fallback chains, in precedence order.
var (
	NameChain         = Chain{"name", "strMeal"}
	CategoryChain     = Chain{"category", "strCategory"}
	AreaChain         = Chain{"area", "strArea"}
	InstructionsChain = Chain{"instructions", "strInstructions"}
	ThumbnailChain    = Chain{"thumbnail", "strMealThumb"}
	YouTubeChain      = Chain{"youtube", "strYoutube"}

	// IngredientListChain names the list-valued fields tried before the
	// numbered strIngredientN scan.
	IngredientListChain = Chain{"ingredients", "extendedIngredients"}

	// Per-item chains inside an ingredient list.
	IngredientNameChain    = Chain{"name", "ingredient", "strIngredient"}
	IngredientMeasureChain = Chain{"measure", "amount", "strMeasure"}
)

// Resolve returns the first non-blank value along the chain, trimmed.
func (c Chain) Resolve(fields map[string]any) (string, bool) {
	for _, name := range c {
		if s, ok := text(fields[name]); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// Or resolves the chain and falls back to def.
func (c Chain) Or(fields map[string]any, def string) string {
	if s, ok := c.Resolve(fields); ok {
		return s
	}
	return def
}

// Normalize maps raw into the canonical shape. It never fails.
func Normalize(raw Raw, ctx Context) Normalized {
	fields := map[string]any(raw)

	return Normalized{
		ID:           ctx.ID,
		FridgeID:     ctx.FridgeID,
		Name:         NameChain.Or(fields, UntitledName),
		Category:     CategoryChain.Or(fields, ""),
		Area:         AreaChain.Or(fields, ""),
		Instructions: InstructionsChain.Or(fields, ""),
		Ingredients:  Ingredients(raw),
		Thumbnail:    ThumbnailChain.Or(fields, ""),
		YouTubeURL:   YouTubeChain.Or(fields, ""),
		Tags:         Tags(raw),
	}
}

// Ingredients resolves the ingredient list: the first non-empty list field,
// else the numbered strIngredientN scan, else an empty list.
func Ingredients(raw Raw) []Ingredient {
	for _, name := range IngredientListChain {
		items, ok := list(raw[name])
		if !ok || len(items) == 0 {
			continue
		}
		if out := ingredientsFromList(items); len(out) > 0 {
			return out
		}
	}

	return ExtractNumbered(raw)
}

func ingredientsFromList(items []any) []Ingredient {
	out := make([]Ingredient, 0, len(items))
	for _, item := range items {
		var ing Ingredient

		switch v := item.(type) {
		case map[string]any:
			ing.Name = IngredientNameChain.Or(v, "")
			ing.Measure = IngredientMeasureChain.Or(v, "")
		case Ingredient:
			ing = Ingredient{Name: strings.TrimSpace(v.Name), Measure: strings.TrimSpace(v.Measure)}
		default:
			s, _ := text(v)
			ing.Name = s
		}

		if ing.Name == "" && ing.Measure == "" {
			continue
		}
		out = append(out, ing)
	}
	return out
}

// ExtractNumbered scans strIngredient1..20. Every index whose ingredient is
// non-blank is included; gaps do not stop the scan.
func ExtractNumbered(raw Raw) []Ingredient {
	out := make([]Ingredient, 0)
	for i := 1; i <= MaxNumberedIngredients; i++ {
		name, _ := text(raw[fmt.Sprintf("strIngredient%d", i)])
		if name == "" {
			continue
		}
		measure, _ := text(raw[fmt.Sprintf("strMeasure%d", i)])
		out = append(out, Ingredient{Name: name, Measure: measure})
	}
	return out
}

// Tags resolves a tags list, falling back to TheMealDB's comma separated
// strTags.
func Tags(raw Raw) []string {
	if items, ok := list(raw["tags"]); ok {
		var tags []string
		for _, item := range items {
			if s, ok := text(item); ok && s != "" {
				tags = append(tags, s)
			}
		}
		if len(tags) > 0 {
			return tags
		}
	}

	joined, _ := text(raw["strTags"])
	if joined == "" {
		return nil
	}

	var tags []string
	for _, part := range strings.Split(joined, ",") {
		if s := strings.TrimSpace(part); s != "" {
			tags = append(tags, s)
		}
	}
	return tags
}

// text renders scalar values as trimmed strings. Numbers appear in older
// local records (amount: 2).
func text(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	default:
		return "", false
	}
}

func list(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []map[string]any:
		out := make([]any, len(l))
		for i := range l {
			out[i] = l[i]
		}
		return out, true
	case []string:
		out := make([]any, len(l))
		for i := range l {
			out[i] = l[i]
		}
		return out, true
	case []Ingredient:
		out := make([]any, len(l))
		for i := range l {
			out[i] = l[i]
		}
		return out, true
	default:
		return nil, false
	}
}
