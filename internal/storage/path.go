package storage

import (
	"fmt"
	"strings"
)

// Top level collections.
const (
	UsersCollection   = "users"
	FridgeCollection  = "fridge"
	RecipesCollection = "recipes"
)

// Subcollections of a fridge document.
const (
	FridgeRecipesCollection     = "recipes"
	FridgeIngredientsCollection = "ingredients"
)

func UserDoc(uid string) string { return Join(UsersCollection, uid) }

func FridgeDoc(fid string) string { return Join(FridgeCollection, fid) }

func RecipeDoc(rid string) string { return Join(RecipesCollection, rid) }

func FridgeRecipes(fid string) string {
	return Join(FridgeCollection, fid, FridgeRecipesCollection)
}

func FridgeRecipeDoc(fid, rid string) string {
	return Join(FridgeCollection, fid, FridgeRecipesCollection, rid)
}

func FridgeIngredients(fid string) string {
	return Join(FridgeCollection, fid, FridgeIngredientsCollection)
}

func FridgeIngredientDoc(fid, iid string) string {
	return Join(FridgeCollection, fid, FridgeIngredientsCollection, iid)
}

// Join builds a path from segments.
func Join(segments ...string) string {
	return strings.Join(segments, "/")
}

// SplitDocument splits a document path into its collection and id.
func SplitDocument(path string) (collection, id string, err error) {
	segs, err := segments(path)
	if err != nil {
		return "", "", err
	}
	if len(segs)%2 != 0 {
		return "", "", fmt.Errorf("%w: %q is a collection path", ErrInvalidPath, path)
	}

	return Join(segs[:len(segs)-1]...), segs[len(segs)-1], nil
}

// ValidateCollection checks that path names a collection.
func ValidateCollection(path string) error {
	segs, err := segments(path)
	if err != nil {
		return err
	}
	if len(segs)%2 != 1 {
		return fmt.Errorf("%w: %q is a document path", ErrInvalidPath, path)
	}
	return nil
}

func segments(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	segs := strings.Split(path, "/")
	for _, s := range segs {
		if strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, path)
		}
	}
	return segs, nil
}
