package handlers

import (
	"github.com/biasbuster/api/internal/auth"
	"github.com/biasbuster/api/internal/store"
)

type Handler struct {
	Auth     *AuthHandler
	Users    *UserHandler
	Analyses *AnalysisHandler
}

func NewHandler(users *store.UserStore, analyses *store.AnalysisStore, tokens *auth.TokenService) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(users, tokens),
		Users:    NewUserHandler(users),
		Analyses: NewAnalysisHandler(analyses),
	}
}
