package handlers

import (
	"errors"
	"net/http"

	"github.com/biasbuster/api/internal/auth"
	"github.com/biasbuster/api/internal/store"
	"github.com/biasbuster/api/internal/utils"
)

type AuthHandler struct {
	Users  *store.UserStore
	Tokens *auth.TokenService
}

func NewAuthHandler(users *store.UserStore, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens}
}

// ----------- Request/Response DTOs -------------

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// -------------- REGISTER ----------------------

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.Detail(w, http.StatusUnprocessableEntity, "email and password required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		utils.Detail(w, http.StatusInternalServerError, "internal error")
		return
	}

	user, err := h.Users.Create(r.Context(), req.Email, hash)
	if errors.Is(err, store.ErrEmailTaken) {
		utils.Detail(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if err != nil {
		utils.Detail(w, http.StatusInternalServerError, "internal error")
		return
	}

	// User marshals without the password hash.
	utils.JSON(w, http.StatusOK, user)
}

// -------------- LOGIN ------------------------

// Login accepts the OAuth2 password form; username carries the email.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.Detail(w, http.StatusUnprocessableEntity, "invalid form body")
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")

	// One message for both failure causes so emails cannot be probed.
	user, err := h.Users.GetByEmail(r.Context(), email)
	if err != nil || !auth.CheckPassword(password, user.Password) {
		utils.Detail(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	token, err := h.Tokens.Issue(user.Email)
	if err != nil {
		utils.Detail(w, http.StatusInternalServerError, "internal error")
		return
	}

	utils.JSON(w, http.StatusOK, tokenResp{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
