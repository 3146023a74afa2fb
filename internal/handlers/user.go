package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"mindfullearner/internal/middleware"
	"mindfullearner/internal/respond"
	"mindfullearner/internal/store"
)

type UserHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewUserHandler(s *store.Store, logger *zap.Logger) *UserHandler {
	return &UserHandler{store: s, logger: logger}
}

// currentUser is the id placed on the context by RequireUser.
func currentUser(r *http.Request) int64 {
	id, _ := middleware.UserIDFrom(r.Context())
	return id
}

// GetMe returns the current user's profile
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.store.UserByID(r.Context(), currentUser(r))
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, u)
}

type updateMeRequest struct {
	Email  *string `json:"email" validate:"omitempty,email"`
	Degree *string `json:"degree" validate:"omitempty,notblank"`
	Goal   *string `json:"goal" validate:"omitempty,oneof=academic academic-plus all-round"`
}

// UpdateMe updates provided fields on the current user's profile
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateMeRequest
	if err := decode(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	patch := store.UserPatch{Degree: req.Degree, Goal: req.Goal}
	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		patch.Email = &email
	}

	u, err := h.store.UpdateUser(r.Context(), currentUser(r), patch)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, u)
}
