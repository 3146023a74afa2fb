package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"mindfullearner/internal/models"
	"mindfullearner/internal/respond"
	"mindfullearner/internal/store"
)

type TaskHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewTaskHandler(s *store.Store, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{store: s, logger: logger}
}

type createTaskRequest struct {
	Title       string  `json:"title" validate:"notblank,max=200"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date" validate:"omitempty,date"`
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decode(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	task, err := h.store.CreateTask(r.Context(), models.Task{
		UserID:      currentUser(r),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.ListTasks(r.Context(), currentUser(r))
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, tasks)
}
