package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"mindfullearner/internal/apperr"
	"mindfullearner/internal/models"
	"mindfullearner/internal/recommend"
	"mindfullearner/internal/respond"
	"mindfullearner/internal/store"
)

type EducationHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewEducationHandler(s *store.Store, logger *zap.Logger) *EducationHandler {
	return &EducationHandler{store: s, logger: logger}
}

// GetPreferences returns the latest snapshot, or null before the first save.
func (h *EducationHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.LatestEducationPreference(r.Context(), currentUser(r))
	if apperr.Is(err, apperr.KindNotFound) {
		respond.JSON(w, http.StatusOK, preferencesEnvelope{})
		return
	}
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, preferencesEnvelope{Preferences: p})
}

type educationPreferenceRequest struct {
	CurrentField    string `json:"current_field" validate:"notblank"`
	PreferredDomain string `json:"preferred_domain" validate:"notblank"`
}

// SavePreferences appends a snapshot; earlier snapshots are kept as history.
func (h *EducationHandler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	var req educationPreferenceRequest
	if err := decode(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	p, err := h.store.AddEducationPreference(r.Context(), models.EducationPreference{
		UserID:          currentUser(r),
		CurrentField:    strings.TrimSpace(req.CurrentField),
		PreferredDomain: strings.TrimSpace(req.PreferredDomain),
	})
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, preferencesEnvelope{Success: true, Preferences: p})
}

func (h *EducationHandler) Trending(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.store.Roadmaps(r.Context())
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, roadmapsEnvelope{Roadmaps: recommend.Trending(catalog)})
}

// Recommended matches roadmaps against field or domain. With neither query
// parameter set, the caller's latest saved preference is used.
func (h *EducationHandler) Recommended(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	field, domain := strings.TrimSpace(q.Get("field")), strings.TrimSpace(q.Get("domain"))

	switch {
	case field == "" && domain == "":
		p, err := h.store.LatestEducationPreference(r.Context(), currentUser(r))
		if apperr.Is(err, apperr.KindNotFound) {
			respond.JSON(w, http.StatusOK, roadmapsEnvelope{Roadmaps: []models.Roadmap{}})
			return
		}
		if err != nil {
			respond.Error(w, h.logger, err)
			return
		}
		field, domain = p.CurrentField, p.PreferredDomain
	case field == "":
		respond.Error(w, h.logger, apperr.Validation("field", "required"))
		return
	case domain == "":
		respond.Error(w, h.logger, apperr.Validation("domain", "required"))
		return
	}

	catalog, err := h.store.Roadmaps(r.Context())
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, roadmapsEnvelope{Roadmaps: recommend.Roadmaps(catalog, field, domain)})
}
