package keys

import "fmt"

const fixed = "recipe:" + "52772"

func recipeKey(id string) string {
	return "recipe:" + id // want "bookmark key built by hand"
}

func fridgeKey(fridgeID, recipeID string) string {
	return "fridge:" + fridgeID + ":" + recipeID // want "bookmark key built by hand"
}

func sprintfKey(fridgeID, recipeID string) string {
	return fmt.Sprintf("fridge:%s:%s", fridgeID, recipeID) // want "bookmark key built by hand"
}

func unrelated(id string) string {
	return "meal:" + id + fmt.Sprintf("%s:recipe:", id) + fixed
}
