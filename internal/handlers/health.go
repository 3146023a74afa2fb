package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"mindfullearner/internal/apperr"
	"mindfullearner/internal/metrics"
	"mindfullearner/internal/models"
	"mindfullearner/internal/respond"
	"mindfullearner/internal/store"
)

// Defaults reported for a day with no sleep log.
const (
	DefaultSleepHours   = 7
	DefaultSleepQuality = models.SleepGood
)

type HealthHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewHealthHandler(s *store.Store, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{store: s, logger: logger}
}

type sleepRequest struct {
	Date    string   `json:"date" validate:"required,date"`
	Hours   *float64 `json:"hours" validate:"required,gte=0,lte=24"`
	Quality string   `json:"quality" validate:"required,oneof=Poor Fair Good Excellent"`
}

// LogSleep replaces the day's sleep log.
func (h *HealthHandler) LogSleep(w http.ResponseWriter, r *http.Request) {
	var req sleepRequest
	if err := decode(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	err := h.store.UpsertSleep(r.Context(), models.SleepLog{
		UserID:  currentUser(r),
		Date:    req.Date,
		Hours:   *req.Hours,
		Quality: req.Quality,
	})
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, success{Success: true})
}

type sleepDay struct {
	Hours   float64 `json:"hours"`
	Quality string  `json:"quality"`
	Logged  bool    `json:"logged"`
}

func (h *HealthHandler) GetSleep(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam("date", chi.URLParam(r, "date"))
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	day := sleepDay{Hours: DefaultSleepHours, Quality: DefaultSleepQuality}
	l, err := h.store.SleepByDate(r.Context(), currentUser(r), date)
	switch {
	case err == nil:
		day = sleepDay{Hours: l.Hours, Quality: l.Quality, Logged: true}
	case !apperr.Is(err, apperr.KindNotFound):
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, dataEnvelope{Data: day})
}

type hygieneRequest struct {
	Date   string `json:"date" validate:"required,date"`
	Bathed *bool  `json:"bathed" validate:"required"`
}

// LogHygiene replaces the day's hygiene log.
func (h *HealthHandler) LogHygiene(w http.ResponseWriter, r *http.Request) {
	var req hygieneRequest
	if err := decode(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	err := h.store.UpsertHygiene(r.Context(), models.HygieneLog{
		UserID: currentUser(r),
		Date:   req.Date,
		Bathed: *req.Bathed,
	})
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, success{Success: true})
}

type hygieneDay struct {
	Bathed bool `json:"bathed"`
	Logged bool `json:"logged"`
}

func (h *HealthHandler) GetHygiene(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam("date", chi.URLParam(r, "date"))
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	var day hygieneDay
	l, err := h.store.HygieneByDate(r.Context(), currentUser(r), date)
	switch {
	case err == nil:
		day = hygieneDay{Bathed: l.Bathed, Logged: true}
	case !apperr.Is(err, apperr.KindNotFound):
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, dataEnvelope{Data: day})
}

type meditationRequest struct {
	Date            string `json:"date" validate:"required,date"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1,max=1440"`
	Notes           string `json:"notes"`
}

// LogMeditation appends a completed session.
func (h *HealthHandler) LogMeditation(w http.ResponseWriter, r *http.Request) {
	var req meditationRequest
	if err := decode(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	_, err := h.store.AddMeditation(r.Context(), models.MeditationLog{
		UserID:          currentUser(r),
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	metrics.RecordMeditationSession()
	respond.JSON(w, http.StatusCreated, success{Success: true})
}

func (h *HealthHandler) GetMeditation(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam("date", chi.URLParam(r, "date"))
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	logs, err := h.store.MeditationByDate(r.Context(), currentUser(r), date)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, dataEnvelope{Data: logs})
}
