package handlers

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mindfullearner/internal/models"
	"mindfullearner/internal/respond"
	"mindfullearner/internal/rewards"
	"mindfullearner/internal/store"
)

type DashboardHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewDashboardHandler(s *store.Store, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{store: s, logger: logger}
}

type dashboardResponse struct {
	Coins               int                   `json:"coins"`
	Level               int                   `json:"level"`
	NextLevelCoins      int                   `json:"next_level_coins"`
	Progress            float64               `json:"progress"`
	GratitudeStreakDays int                   `json:"gratitude_streak_days"`
	Activity            models.ActivityCounts `json:"activity"`
}

// Get derives coins, level and the gratitude streak from stored activity.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := currentUser(r)

	var (
		activity models.UserActivity
		dates    []string
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		activity, err = h.store.Activity(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		dates, err = h.store.GratitudeDates(ctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	today, err := models.ParseDate(h.store.Today())
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	coins := rewards.Coins(activity.ActivityCounts)
	respond.JSON(w, http.StatusOK, dashboardResponse{
		Coins:               coins,
		Level:               rewards.Level(coins),
		NextLevelCoins:      rewards.NextLevelCoins(coins),
		Progress:            rewards.Progress(coins),
		GratitudeStreakDays: rewards.Streak(dates, today),
		Activity:            activity.ActivityCounts,
	})
}

// Leaderboard ranks every user by coins.
func (h *DashboardHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.AllActivity(r.Context())
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"leaderboard": rewards.Leaderboard(all)})
}
