package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	assert.Equal(t, "users/u1", UserDoc("u1"))
	assert.Equal(t, "fridge/f1", FridgeDoc("f1"))
	assert.Equal(t, "recipes/r1", RecipeDoc("r1"))
	assert.Equal(t, "fridge/f1/recipes", FridgeRecipes("f1"))
	assert.Equal(t, "fridge/f1/recipes/r1", FridgeRecipeDoc("f1", "r1"))
	assert.Equal(t, "fridge/f1/ingredients", FridgeIngredients("f1"))
	assert.Equal(t, "fridge/f1/ingredients/i1", FridgeIngredientDoc("f1", "i1"))
}

func TestSplitDocument(t *testing.T) {
	coll, id, err := SplitDocument("fridge/f1/recipes/r1")
	require.NoError(t, err)
	assert.Equal(t, "fridge/f1/recipes", coll)
	assert.Equal(t, "r1", id)

	for _, bad := range []string{"", "users", "fridge/f1/recipes", "users/", "/users/u1", "users/ /x/y"} {
		_, _, err := SplitDocument(bad)
		assert.ErrorIs(t, err, ErrInvalidPath, bad)
	}
}

func TestValidateCollection(t *testing.T) {
	assert.NoError(t, ValidateCollection("users"))
	assert.NoError(t, ValidateCollection("fridge/f1/ingredients"))
	assert.ErrorIs(t, ValidateCollection("users/u1"), ErrInvalidPath)
	assert.ErrorIs(t, ValidateCollection(""), ErrInvalidPath)
}
