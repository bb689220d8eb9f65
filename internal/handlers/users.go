package handlers

import (
	"net/http"

	"github.com/biasbuster/api/internal/auth"
	"github.com/biasbuster/api/internal/models"
	"github.com/biasbuster/api/internal/store"
	"github.com/biasbuster/api/internal/utils"
)

type UserHandler struct {
	Users *store.UserStore
}

func NewUserHandler(users *store.UserStore) *UserHandler {
	return &UserHandler{Users: users}
}

// userUpdateReq is a sparse update: nil means the field was absent from
// the body and must be left untouched.
type userUpdateReq struct {
	Email    *string      `json:"email"`
	Password *string      `json:"password"`
	Role     *models.Role `json:"role"`
	IsActive *bool        `json:"is_active"`
}

// ---------------------- ME ----------------------

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(utils.CtxUserKey).(*models.User)

	utils.JSON(w, http.StatusOK, user)
}

// ---------------------- UPDATE ----------------------

// UpdateMe applies only the fields present in the body. A present,
// non-empty password is re-hashed before storage.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(utils.CtxUserKey).(*models.User)

	var req userUpdateReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Password != nil && *req.Password != "" {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			utils.Detail(w, http.StatusInternalServerError, "internal error")
			return
		}
		user.Password = hash
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := h.Users.Update(r.Context(), user); err != nil {
		utils.Detail(w, http.StatusInternalServerError, "internal error")
		return
	}

	utils.JSON(w, http.StatusOK, user)
}
