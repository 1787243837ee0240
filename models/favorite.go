package models

// Favorite links a user to a recipe they saved. Data is an opaque payload
// the client stores alongside the link (title, image, etc.).
type Favorite struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	UserID    string `json:"userId" bson:"userId"`
	RecipeID  string `json:"recipeId" bson:"recipeId"`
	Data      any    `json:"data,omitempty" bson:"data,omitempty"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}
