package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"mindfullearner/internal/apperr"
	"mindfullearner/internal/models"
	"mindfullearner/internal/respond"
	"mindfullearner/internal/services"
	"mindfullearner/internal/store"
)

// JournalListLimit caps gratitude and mood listings.
const JournalListLimit = 10

type JournalHandler struct {
	store  *store.Store
	encSvc *services.EncryptionService
	logger *zap.Logger
}

func NewJournalHandler(s *store.Store, encSvc *services.EncryptionService, logger *zap.Logger) *JournalHandler {
	return &JournalHandler{store: s, encSvc: encSvc, logger: logger}
}

type gratitudeRequest struct {
	Gratitude1 string `json:"gratitude_1" validate:"notblank"`
	Gratitude2 string `json:"gratitude_2" validate:"notblank"`
	Gratitude3 string `json:"gratitude_3" validate:"notblank"`
	EntryDate  string `json:"entry_date" validate:"omitempty,date"`
}

// CreateGratitude stores today's three statements. A second submission for
// the same date is rejected and the first entry is kept.
func (h *JournalHandler) CreateGratitude(w http.ResponseWriter, r *http.Request) {
	var req gratitudeRequest
	if err := decode(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	date, err := h.entryDate(req.EntryDate)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	plain := models.GratitudeEntry{
		UserID:     currentUser(r),
		EntryDate:  date,
		Gratitude1: strings.TrimSpace(req.Gratitude1),
		Gratitude2: strings.TrimSpace(req.Gratitude2),
		Gratitude3: strings.TrimSpace(req.Gratitude3),
	}
	sealed := plain
	if err := h.encSvc.EncryptGratitude(&sealed); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	saved, err := h.store.CreateGratitude(r.Context(), sealed)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	plain.ID, plain.CreatedAt = saved.ID, saved.CreatedAt
	respond.JSON(w, http.StatusCreated, plain)
}

func (h *JournalHandler) ListGratitude(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListGratitude(r.Context(), currentUser(r), JournalListLimit)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	for i := range entries {
		if err := h.encSvc.DecryptGratitude(&entries[i]); err != nil {
			respond.Error(w, h.logger, err)
			return
		}
	}
	respond.JSON(w, http.StatusOK, entries)
}

type moodRequest struct {
	MoodScale         *int   `json:"mood_scale" validate:"required,min=1,max=5"`
	PrimaryEmotion    string `json:"primary_emotion" validate:"notblank"`
	SecondaryEmotions string `json:"secondary_emotions"`
	Factors           string `json:"factors"`
	Reflection        string `json:"reflection"`
	EntryDate         string `json:"entry_date" validate:"omitempty,date"`
}

// CreateMood appends a mood entry; several per day are kept.
func (h *JournalHandler) CreateMood(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if err := decode(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	date, err := h.entryDate(req.EntryDate)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	plain := models.MoodEntry{
		UserID:            currentUser(r),
		EntryDate:         date,
		MoodScale:         *req.MoodScale,
		PrimaryEmotion:    strings.TrimSpace(req.PrimaryEmotion),
		SecondaryEmotions: req.SecondaryEmotions,
		Factors:           req.Factors,
		Reflection:        req.Reflection,
	}
	sealed := plain
	if err := h.encSvc.EncryptMood(&sealed); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	saved, err := h.store.CreateMood(r.Context(), sealed)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	plain.ID, plain.CreatedAt = saved.ID, saved.CreatedAt
	respond.JSON(w, http.StatusCreated, plain)
}

func (h *JournalHandler) ListMood(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListMood(r.Context(), currentUser(r), JournalListLimit)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	for i := range entries {
		if err := h.encSvc.DecryptMood(&entries[i]); err != nil {
			respond.Error(w, h.logger, err)
			return
		}
	}
	respond.JSON(w, http.StatusOK, entries)
}

// entryDate defaults to today and refuses dates that have not happened yet.
func (h *JournalHandler) entryDate(requested string) (string, error) {
	today := h.store.Today()
	if requested == "" {
		return today, nil
	}
	if requested > today {
		return "", apperr.Validation("entry_date", "out_of_range")
	}
	return requested, nil
}
