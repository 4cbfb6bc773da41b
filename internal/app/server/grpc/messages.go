package grpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/atinyakov/fridgebook/internal/recipe"
)

// Fields of a recipe reference request.
const (
	refFridgeID = "fridgeId"
	refRecipeID = "id"
)

// RecipeList is the shape of the List reply.
type RecipeList struct {
	Recipes []recipe.Normalized `json:"recipes"`
}

// NewRecipeRef builds the request naming a recipe, in a fridge when
// fridgeID is set.
func NewRecipeRef(fridgeID, recipeID string) *structpb.Struct {
	fields := map[string]*structpb.Value{
		refRecipeID: structpb.NewStringValue(recipeID),
	}
	if fridgeID != "" {
		fields[refFridgeID] = structpb.NewStringValue(fridgeID)
	}
	return &structpb.Struct{Fields: fields}
}

// recipeRef reads a request built by NewRecipeRef. Missing or non-string
// fields read as empty.
func recipeRef(in *structpb.Struct) (fridgeID, recipeID string) {
	fields := in.GetFields()
	return fields[refFridgeID].GetStringValue(), fields[refRecipeID].GetStringValue()
}

// ToStruct converts a value with JSON tags into a Struct reply.
func ToStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding reply: %w", err)
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, fmt.Errorf("encoding reply: %w", err)
	}
	return out, nil
}

// FromStruct decodes a Struct reply into dst, a pointer to a value with
// JSON tags.
func FromStruct(s *structpb.Struct, dst any) error {
	b, err := protojson.Marshal(s)
	if err != nil {
		return fmt.Errorf("decoding reply: %w", err)
	}
	return json.Unmarshal(b, dst)
}
