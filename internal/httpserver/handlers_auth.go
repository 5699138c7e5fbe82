package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lfreitas/receitas-api/internal/auth"
	"github.com/lfreitas/receitas-api/internal/model"
	"github.com/lfreitas/receitas-api/internal/store"
)

// registerReq is the payload for POST /auth/registro.
type registerReq struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// handleRegister validates the signup fields in order (first failure
// wins), hashes the password, and persists a new user with an empty
// recipe list.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	switch {
	case req.Name == "":
		writeMsg(w, http.StatusUnprocessableEntity, "name is required")
		return
	case req.Email == "":
		writeMsg(w, http.StatusUnprocessableEntity, "email is required")
		return
	case req.Password == "":
		writeMsg(w, http.StatusUnprocessableEntity, "password is required")
		return
	case req.Password != req.ConfirmPassword:
		writeMsg(w, http.StatusUnprocessableEntity, "passwords do not match")
		return
	}

	if _, err := s.store.UserByEmail(r.Context(), req.Email); err == nil {
		writeMsg(w, http.StatusUnprocessableEntity, "email already in use")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error().Err(err).Msg("register: email lookup")
		writeMsg(w, http.StatusInternalServerError, "server error, try again later")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("register: hash password")
		writeMsg(w, http.StatusInternalServerError, "server error, try again later")
		return
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Recipes:      []model.Recipe{},
	}
	if err := s.store.CreateUser(r.Context(), user); err != nil {
		log.Error().Err(err).Msg("register: create user")
		writeMsg(w, http.StatusInternalServerError, "server error, try again later")
		return
	}

	writeMsg(w, http.StatusCreated, "user created successfully")
}

// loginReq is the payload for POST /auth/login.
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRes struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// handleLogin checks the credentials and returns a signed bearer token
// carrying the user's id.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Email == "" {
		writeMsg(w, http.StatusUnprocessableEntity, "email is required")
		return
	}
	if req.Password == "" {
		writeMsg(w, http.StatusUnprocessableEntity, "password is required")
		return
	}

	user, err := s.store.UserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMsg(w, http.StatusUnprocessableEntity, "user not found")
			return
		}
		log.Error().Err(err).Msg("login: email lookup")
		writeMsg(w, http.StatusInternalServerError, "server error, try again later")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeMsg(w, http.StatusUnprocessableEntity, "incorrect password")
		return
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("login: sign token")
		writeMsg(w, http.StatusInternalServerError, "server error, try again later")
		return
	}

	writeJSON(w, http.StatusOK, loginRes{Msg: "logged in successfully", Token: token})
}
