package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"mindfullearner/internal/models"
)

func (s *Store) CreateTask(ctx context.Context, t models.Task) (out models.Task, err error) {
	defer s.observe("create_task", time.Now(), &err)

	t.CreatedAt = s.Now()
	if t.Status == "" {
		t.Status = models.TaskPending
	}
	query := s.db.Rebind(`INSERT INTO tasks (user_id, title, description, status, due_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)
	if err = s.db.QueryRowxContext(ctx, query, t.UserID, t.Title, t.Description, t.Status, t.DueDate, t.CreatedAt).Scan(&t.ID); err != nil {
		return models.Task{}, s.wrap("create_task", err, "")
	}
	return t, nil
}

// ListTasks returns the user's tasks, newest first.
func (s *Store) ListTasks(ctx context.Context, userID int64) (out []models.Task, err error) {
	defer s.observe("list_tasks", time.Now(), &err)

	query, args, err := s.sb.
		Select("id", "user_id", "title", "description", "status", "due_date", "created_at").
		From("tasks").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, s.wrap("list_tasks", err, "")
	}
	out = []models.Task{}
	if err = s.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, s.wrap("list_tasks", err, "")
	}
	return out, nil
}

// AddQuizAttempt records a graded attempt.
func (s *Store) AddQuizAttempt(ctx context.Context, a models.QuizAttempt) (out models.QuizAttempt, err error) {
	defer s.observe("add_quiz_attempt", time.Now(), &err)

	a.CreatedAt = s.Now()
	query := s.db.Rebind(`INSERT INTO quiz_attempts (user_id, quiz, score, total, created_at) VALUES (?, ?, ?, ?, ?) RETURNING id`)
	if err = s.db.QueryRowxContext(ctx, query, a.UserID, a.Quiz, a.Score, a.Total, a.CreatedAt).Scan(&a.ID); err != nil {
		return models.QuizAttempt{}, s.wrap("add_quiz_attempt", err, "")
	}
	return a, nil
}

// BestQuizScore is the highest score the user has recorded on quiz, or 0.
func (s *Store) BestQuizScore(ctx context.Context, userID int64, quiz string) (best int, err error) {
	defer s.observe("best_quiz_score", time.Now(), &err)

	query := s.db.Rebind(`SELECT COALESCE(MAX(score), 0) FROM quiz_attempts WHERE user_id = ? AND quiz = ?`)
	if err = s.db.GetContext(ctx, &best, query, userID, quiz); err != nil {
		return 0, s.wrap("best_quiz_score", err, "")
	}
	return best, nil
}
