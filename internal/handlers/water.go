package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"mindfullearner/internal/models"
	"mindfullearner/internal/respond"
)

// MaxWaterPerEntry bounds a single intake entry in millilitres. The daily
// total is not capped.
const MaxWaterPerEntry = 4000

type addWaterRequest struct {
	Date   string `json:"date" validate:"required,date"`
	Amount *int   `json:"amount" validate:"required,min=0,max=4000"`
}

// LogWater appends an intake entry for the day.
func (h *HealthHandler) LogWater(w http.ResponseWriter, r *http.Request) {
	var req addWaterRequest
	if err := decode(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	_, err := h.store.AddWater(r.Context(), models.WaterLog{
		UserID:   currentUser(r),
		Date:     req.Date,
		AmountML: *req.Amount,
	})
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, success{Success: true})
}

type waterDay struct {
	Total int               `json:"total"`
	Logs  []models.WaterLog `json:"logs"`
}

// GetWater sums the day's entries.
func (h *HealthHandler) GetWater(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam("date", chi.URLParam(r, "date"))
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	logs, err := h.store.WaterByDate(r.Context(), currentUser(r), date)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	day := waterDay{Logs: logs}
	for _, l := range logs {
		day.Total += l.AmountML
	}
	respond.JSON(w, http.StatusOK, dataEnvelope{Data: day})
}
