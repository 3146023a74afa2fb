package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"mindfullearner/internal/apperr"
	"mindfullearner/internal/models"
	"mindfullearner/internal/recommend"
	"mindfullearner/internal/respond"
	"mindfullearner/internal/store"
)

type HobbyHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewHobbyHandler(s *store.Store, logger *zap.Logger) *HobbyHandler {
	return &HobbyHandler{store: s, logger: logger}
}

type hobbyPreferences struct {
	PreferredCategories models.StringList `json:"preferred_categories" validate:"required,dive,notblank"`
	TimeAvailable       string            `json:"time_available" validate:"required,oneof='3-5 hours/week' '5-10 hours/week' '10+ hours/week'"`
	SkillLevel          string            `json:"skill_level" validate:"required,oneof=Beginner Intermediate Advanced"`
}

func (h *HobbyHandler) List(w http.ResponseWriter, r *http.Request) {
	hobbies, err := h.store.Hobbies(r.Context())
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, hobbiesEnvelope{Hobbies: hobbies})
}

// GetPreferences returns the saved preferences, or an empty shape before the
// first save.
func (h *HobbyHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	out := hobbyPreferences{PreferredCategories: models.StringList{}}

	p, err := h.store.HobbyPreference(r.Context(), currentUser(r))
	switch {
	case err == nil:
		out = hobbyPreferences{PreferredCategories: p.PreferredCategories, TimeAvailable: p.TimeAvailable, SkillLevel: p.SkillLevel}
	case !apperr.Is(err, apperr.KindNotFound):
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, preferencesEnvelope{Preferences: out})
}

// SavePreferences inserts the caller's single preference row or updates it.
func (h *HobbyHandler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	var req hobbyPreferences
	if err := decode(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	p, err := h.store.SaveHobbyPreference(r.Context(), models.HobbyPreference{
		UserID:              currentUser(r),
		PreferredCategories: req.PreferredCategories,
		TimeAvailable:       req.TimeAvailable,
		SkillLevel:          req.SkillLevel,
	})
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, preferencesEnvelope{
		Success: true,
		Preferences: hobbyPreferences{
			PreferredCategories: p.PreferredCategories,
			TimeAvailable:       p.TimeAvailable,
			SkillLevel:          p.SkillLevel,
		},
	})
}

type recommendHobbiesRequest struct {
	PreferredCategories []string `json:"preferred_categories"`
	TimeAvailable       string   `json:"time_available" validate:"omitempty,oneof='3-5 hours/week' '5-10 hours/week' '10+ hours/week'"`
	SkillLevel          string   `json:"skill_level" validate:"required,oneof=Beginner Intermediate Advanced"`
}

// Recommended keeps hobbies in one of the categories at exactly the skill
// level. No categories yields no hobbies.
func (h *HobbyHandler) Recommended(w http.ResponseWriter, r *http.Request) {
	var req recommendHobbiesRequest
	if err := decode(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	candidates, err := h.store.HobbiesInCategories(r.Context(), req.PreferredCategories)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, hobbiesEnvelope{
		Hobbies: recommend.Hobbies(candidates, req.PreferredCategories, req.SkillLevel),
	})
}
