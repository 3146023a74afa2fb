package store

import (
	"context"
	"time"

	"mindfullearner/internal/models"
)

func (s *Store) ChatRooms(ctx context.Context) (out []models.ChatRoom, err error) {
	defer s.observe("chat_rooms", time.Now(), &err)

	out = []models.ChatRoom{}
	err = s.db.SelectContext(ctx, &out, `SELECT id, name, category, description, icon, member_count, is_active, created_at
		FROM chat_rooms ORDER BY category, name`)
	if err != nil {
		return nil, s.wrap("chat_rooms", err, "")
	}
	return out, nil
}

func (s *Store) ChatRoom(ctx context.Context, id int64) (out models.ChatRoom, err error) {
	defer s.observe("chat_room", time.Now(), &err)

	query := s.db.Rebind(`SELECT id, name, category, description, icon, member_count, is_active, created_at
		FROM chat_rooms WHERE id = ?`)
	if err = s.db.GetContext(ctx, &out, query, id); err != nil {
		return models.ChatRoom{}, s.wrapRow("chat_room", err, "room_not_found")
	}
	return out, nil
}

// AddChatMessage appends a message and returns it with the author's name.
func (s *Store) AddChatMessage(ctx context.Context, m models.ChatMessage) (out models.ChatMessage, err error) {
	defer s.observe("add_chat_message", time.Now(), &err)

	m.CreatedAt = s.Now()
	query := s.db.Rebind(`INSERT INTO chat_messages (room_id, user_id, message, created_at)
		VALUES (?, ?, ?, ?) RETURNING id`)
	if err = s.db.QueryRowxContext(ctx, query, m.RoomID, m.UserID, m.Message, m.CreatedAt).Scan(&m.ID); err != nil {
		return models.ChatMessage{}, s.wrap("add_chat_message", err, "")
	}

	if err = s.db.GetContext(ctx, &m.Username, s.db.Rebind(`SELECT username FROM users WHERE id = ?`), m.UserID); err != nil {
		return models.ChatMessage{}, s.wrap("add_chat_message", err, "")
	}
	return m, nil
}

// ChatMessages fetches the newest limit messages of a room and returns them
// oldest first, ready for display.
func (s *Store) ChatMessages(ctx context.Context, roomID int64, limit int) (out []models.ChatMessage, err error) {
	defer s.observe("chat_messages", time.Now(), &err)

	query := s.db.Rebind(`SELECT m.id, m.room_id, m.user_id, u.username, m.message, m.created_at
		FROM chat_messages m
		JOIN users u ON u.id = m.user_id
		WHERE m.room_id = ?
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT ?`)
	out = []models.ChatMessage{}
	if err = s.db.SelectContext(ctx, &out, query, roomID, limit); err != nil {
		return nil, s.wrap("chat_messages", err, "")
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
