package bookmark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/fridgebook/internal/bookmark"
)

func TestToggle_TwiceRestoresSet(t *testing.T) {
	sets := []bookmark.Set{
		bookmark.NewSet(),
		bookmark.NewSet("recipe:a"),
		bookmark.NewSet("recipe:a", "fridge:f:r", "legacy"),
	}
	keys := []bookmark.Key{
		bookmark.Recipe("a"),
		bookmark.FridgeRecipe("f", "r"),
		bookmark.Recipe("zzz"),
	}

	for _, s := range sets {
		for _, k := range keys {
			once, _ := bookmark.Toggle(k, s)
			twice, _ := bookmark.Toggle(k, once)
			assert.Equal(t, s, twice, "key %s", k)
		}
	}
}

func TestToggle_DoesNotMutateInput(t *testing.T) {
	s := bookmark.NewSet("recipe:a")

	added, member := bookmark.Toggle(bookmark.Recipe("b"), s)
	require.True(t, member)
	assert.Len(t, s, 1)
	assert.Len(t, added, 2)

	removed, member := bookmark.Toggle(bookmark.Recipe("a"), s)
	require.False(t, member)
	assert.Len(t, s, 1)
	assert.Empty(t, removed)
}

func TestToggle_InvalidKey(t *testing.T) {
	s := bookmark.NewSet("recipe:a")

	got, member := bookmark.Toggle(bookmark.Recipe(""), s)
	assert.False(t, member)
	assert.Equal(t, s, got)
}

func TestIsMember(t *testing.T) {
	s := bookmark.NewSet("recipe:a", "fridge:f:r")

	assert.True(t, bookmark.IsMember(bookmark.Recipe("a"), s))
	assert.True(t, bookmark.IsMember(bookmark.FridgeRecipe("f", "r"), s))
	assert.False(t, bookmark.IsMember(bookmark.Recipe("r"), s))
	assert.False(t, bookmark.IsMember(bookmark.Key{}, s))
}

func TestSetFromValue(t *testing.T) {
	s := bookmark.SetFromValue([]any{"recipe:a", 7, nil, "recipe:a", "fridge:f:r", ""})
	assert.Equal(t, []string{"fridge:f:r", "recipe:a"}, s.Strings())

	assert.Empty(t, bookmark.SetFromValue(nil))
	assert.Empty(t, bookmark.SetFromValue("recipe:a"))
	assert.Len(t, bookmark.SetFromValue([]string{"recipe:a", "recipe:b"}), 2)
}

func TestSet_Keys(t *testing.T) {
	s := bookmark.NewSet("recipe:b", "not-a-key", "fridge:f:r")

	assert.Equal(t, []bookmark.Key{
		bookmark.FridgeRecipe("f", "r"),
		bookmark.Recipe("b"),
	}, s.Keys())
}
