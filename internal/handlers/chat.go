package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"mindfullearner/internal/apperr"
	"mindfullearner/internal/models"
	"mindfullearner/internal/respond"
	"mindfullearner/internal/store"
)

// ChatPageSize is the number of most recent messages returned per room.
const ChatPageSize = 50

type ChatHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewChatHandler(s *store.Store, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{store: s, logger: logger}
}

func (h *ChatHandler) Rooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.store.ChatRooms(r.Context())
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"rooms": rooms})
}

// Messages returns the latest page of a room in chronological order.
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	room, err := h.room(r)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	messages, err := h.store.ChatMessages(r.Context(), room.ID, ChatPageSize)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"messages": messages})
}

type postMessageRequest struct {
	Message string `json:"message" validate:"notblank,max=2000"`
}

func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req postMessageRequest
	if err := decode(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	room, err := h.room(r)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	msg, err := h.store.AddChatMessage(r.Context(), models.ChatMessage{
		RoomID:  room.ID,
		UserID:  currentUser(r),
		Message: strings.TrimSpace(req.Message),
	})
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]any{"success": true, "message": msg})
}

// room loads the room named by the {id} path parameter. Ids that cannot name
// a room are reported as not found.
func (h *ChatHandler) room(r *http.Request) (models.ChatRoom, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return models.ChatRoom{}, apperr.NotFound("room_not_found")
	}
	return h.store.ChatRoom(r.Context(), id)
}
