package routes

import (
	"forkful/favorites"
	"forkful/recipes"

	"github.com/julienschmidt/httprouter"
)

func AddRecipeRoutes(router *httprouter.Router, h *recipes.Handler) {
	router.GET("/api/search", h.Search)
	router.GET("/api/recipes/:id", h.GetByID)
	router.GET("/api/by-ingredients", h.ByIngredients)
}

func AddFavoritesRoutes(router *httprouter.Router) {
	router.POST("/api/favorites", favorites.CreateFavorite)
	router.GET("/api/favorites", favorites.GetFavorites)
}
