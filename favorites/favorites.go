package favorites

import (
	"encoding/json"
	"net/http"
	"time"

	"forkful/db"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type createRequest struct {
	UserID   string `json:"userId"`
	RecipeID string `json:"recipeId"`
	Data     any    `json:"data,omitempty"`
}

// CreateFavorite saves a user/recipe link. Both identifiers are required;
// validation happens before the store is touched.
func CreateFavorite(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.UserID == "" || req.RecipeID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "userId and recipeId required")
		return
	}

	fav := models.Favorite{
		ID:        utils.GetUUID(),
		UserID:    req.UserID,
		RecipeID:  req.RecipeID,
		Data:      req.Data,
		CreatedAt: time.Now().Unix(),
	}
	if _, err := db.FavoritesCollection.InsertOne(r.Context(), fav); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, fav)
}

// GetFavorites lists all favorites for a user, in store order.
func GetFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "userId required")
		return
	}

	ctx := r.Context()
	cursor, err := db.FavoritesCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	var favs []models.Favorite
	if err := cursor.All(ctx, &favs); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(favs) == 0 {
		favs = []models.Favorite{}
	}
	utils.RespondWithJSON(w, http.StatusOK, favs)
}
