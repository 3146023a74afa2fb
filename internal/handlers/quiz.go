package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"mindfullearner/internal/apperr"
	"mindfullearner/internal/models"
	"mindfullearner/internal/quiz"
	"mindfullearner/internal/respond"
	"mindfullearner/internal/rewards"
	"mindfullearner/internal/store"
)

type QuizHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewQuizHandler(s *store.Store, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{store: s, logger: logger}
}

// Financial lists the questions without their answers.
func (h *QuizHandler) Financial(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{"quiz": quiz.FinancialName, "questions": quiz.Financial})
}

type quizAttemptRequest struct {
	Answers []int `json:"answers" validate:"required"`
}

type quizAttemptResponse struct {
	quiz.Result
	CoinsAwarded int `json:"coins_awarded"`
}

// SubmitFinancial grades an attempt and records the score. Coins are only
// awarded for answers beyond the user's previous best.
func (h *QuizHandler) SubmitFinancial(w http.ResponseWriter, r *http.Request) {
	var req quizAttemptRequest
	if err := decode(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	res, err := quiz.Grade(quiz.Financial, req.Answers)
	if err != nil {
		respond.Error(w, h.logger, apperr.Validation("answers", "wrong_count"))
		return
	}

	best, err := h.store.BestQuizScore(r.Context(), currentUser(r), quiz.FinancialName)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	_, err = h.store.AddQuizAttempt(r.Context(), models.QuizAttempt{
		UserID: currentUser(r),
		Quiz:   quiz.FinancialName,
		Score:  res.Score,
		Total:  res.Total,
	})
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, quizAttemptResponse{
		Result:       res,
		CoinsAwarded: max(res.Score-best, 0) * rewards.QuizCorrectCoins,
	})
}
