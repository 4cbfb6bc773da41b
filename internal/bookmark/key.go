// Package bookmark encodes and decodes the compound identifiers stored in a
// user's bookmark list. A key references either a global recipe
// ("recipe:<recipeID>") or a recipe scoped to a fridge
// ("fridge:<fridgeID>:<recipeID>").
//
// Identifiers are not escaped. An identifier containing ':' or equal to one
// of the two prefix tokens would make the serialized form ambiguous, so
// callers must check ValidID before building keys from user input. Encode
// refuses keys that fail it.
package bookmark

import "strings"

// Kind tells which variant a Key holds.
type Kind int

const (
	// KindInvalid is the zero value and never encodes.
	KindInvalid Kind = iota
	// KindRecipe references a recipe in the global collection.
	KindRecipe
	// KindFridgeRecipe references a recipe inside a fridge.
	KindFridgeRecipe
)

const (
	recipeToken = "recipe"
	fridgeToken = "fridge"
	separator   = ":"
)

// Key is a bookmark reference. Build it with Recipe or FridgeRecipe.
type Key struct {
	Kind     Kind
	FridgeID string
	RecipeID string
}

// Recipe returns a key for a recipe in the global collection.
func Recipe(recipeID string) Key {
	return Key{Kind: KindRecipe, RecipeID: recipeID}
}

// FridgeRecipe returns a key for a recipe stored under a fridge.
func FridgeRecipe(fridgeID, recipeID string) Key {
	return Key{Kind: KindFridgeRecipe, FridgeID: fridgeID, RecipeID: recipeID}
}

// For picks the variant from an optional fridge id, the way recipe pages
// address recipes: an empty fridgeID means the global collection.
func For(fridgeID, recipeID string) Key {
	if fridgeID != "" {
		return FridgeRecipe(fridgeID, recipeID)
	}
	return Recipe(recipeID)
}

// Scoped reports whether the key points into a fridge.
func (k Key) Scoped() bool {
	return k.Kind == KindFridgeRecipe
}

// String returns the serialized key, or "" if the key cannot be encoded.
func (k Key) String() string {
	s, _ := Encode(k)
	return s
}

// Encode serializes k. It returns false when an id fails ValidID, when a
// global recipe key carries a fridge id, or when the kind is unknown.
func Encode(k Key) (string, bool) {
	if !ValidID(k.RecipeID) {
		return "", false
	}

	switch k.Kind {
	case KindRecipe:
		if k.FridgeID != "" {
			return "", false
		}
		return recipeToken + separator + k.RecipeID, true
	case KindFridgeRecipe:
		if !ValidID(k.FridgeID) {
			return "", false
		}
		return fridgeToken + separator + k.FridgeID + separator + k.RecipeID, true
	default:
		return "", false
	}
}

// Decode parses a serialized key. Anything that does not match one of the
// two grammars exactly, or that Encode could not have produced, yields false.
func Decode(raw string) (Key, bool) {
	if raw == "" {
		return Key{}, false
	}

	parts := strings.Split(raw, separator)
	switch {
	case parts[0] == recipeToken && len(parts) == 2:
		if !ValidID(parts[1]) {
			return Key{}, false
		}
		return Recipe(parts[1]), true
	case parts[0] == fridgeToken && len(parts) == 3:
		if !ValidID(parts[1]) || !ValidID(parts[2]) {
			return Key{}, false
		}
		return FridgeRecipe(parts[1], parts[2]), true
	default:
		return Key{}, false
	}
}

// DecodeValue decodes a value read from a document store. Non-string values
// are invalid.
func DecodeValue(v any) (Key, bool) {
	s, ok := v.(string)
	if !ok {
		return Key{}, false
	}
	return Decode(s)
}

// DecodeAll decodes raws in order and silently skips entries that are not
// valid keys. Legacy bookmark lists contain bare recipe ids.
func DecodeAll(raws []string) []Key {
	keys := make([]Key, 0, len(raws))
	for _, raw := range raws {
		if k, ok := Decode(raw); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// ValidID reports whether id can be used as a fridge or recipe identifier
// inside a key.
func ValidID(id string) bool {
	if id == "" || id == recipeToken || id == fridgeToken {
		return false
	}
	return !strings.Contains(id, separator)
}
