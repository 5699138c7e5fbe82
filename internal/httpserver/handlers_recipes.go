package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/lfreitas/receitas-api/internal/model"
	"github.com/lfreitas/receitas-api/internal/store"
)

// currentUser loads the authenticated caller. A missing context id means
// the middleware chain is broken; answer with an error rather than panic.
func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) (*model.User, bool) {
	id := userID(r.Context())
	if id == "" {
		writeMsg(w, http.StatusBadRequest, "invalid token")
		return nil, false
	}
	user, err := s.store.UserByID(r.Context(), id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error().Err(err).Str("user_id", id).Msg("load user")
		}
		writeMsg(w, http.StatusBadRequest, "user not found")
		return nil, false
	}
	return user, true
}

// handleProfile returns the caller's account, password hash excluded.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// handleListRecipes returns just the caller's recipe list.
func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, user.Recipes)
}

// addRecipeReq is the payload for POST /receitas.
type addRecipeReq struct {
	Title       string   `json:"title"`
	PrepTime    string   `json:"prep_time"`
	Tools       []string `json:"tools"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// handleAddRecipe appends a recipe to the caller's list. All five fields
// are required and steps must contain at least one element.
func (s *Server) handleAddRecipe(w http.ResponseWriter, r *http.Request) {
	id := userID(r.Context())
	if id == "" {
		writeMsg(w, http.StatusBadRequest, "invalid token")
		return
	}

	var req addRecipeReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Title == "" || req.PrepTime == "" ||
		len(req.Tools) == 0 || len(req.Ingredients) == 0 || len(req.Steps) == 0 {
		writeMsg(w, http.StatusUnprocessableEntity, "error saving recipe")
		return
	}

	recipe := &model.Recipe{
		Title:       req.Title,
		PrepTime:    req.PrepTime,
		Tools:       req.Tools,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
	}
	if err := s.store.AddRecipe(r.Context(), id, recipe); err != nil {
		// Persistence failures answer 400, kept for compatibility with
		// the original API contract.
		log.Error().Err(err).Str("user_id", id).Msg("save recipe")
		writeMsg(w, http.StatusBadRequest, "error saving recipe")
		return
	}

	writeMsg(w, http.StatusOK, "recipe saved successfully")
}

// handleDeleteRecipe removes a recipe from the caller's list only.
// Deleting an id that matched nothing still answers 200.
func (s *Server) handleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id := userID(r.Context())
	if id == "" {
		writeMsg(w, http.StatusBadRequest, "invalid token")
		return
	}

	recipeID := chi.URLParam(r, "idReceita")
	if err := s.store.DeleteRecipe(r.Context(), id, recipeID); err != nil {
		log.Error().Err(err).Str("user_id", id).Str("recipe_id", recipeID).Msg("delete recipe")
		writeMsg(w, http.StatusBadRequest, "deletion failed")
		return
	}

	writeMsg(w, http.StatusOK, "deleted successfully")
}
