package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"mindfullearner/internal/models"
)

const userColumns = "id, username, password_hash, email, degree, goal, created_at"

// CreateUser inserts u and returns it with its id and created timestamp.
// A taken username or email is a Conflict.
func (s *Store) CreateUser(ctx context.Context, u models.User) (out models.User, err error) {
	defer s.observe("create_user", time.Now(), &err)

	u.CreatedAt = s.Now()
	query := s.db.Rebind(`INSERT INTO users (username, password_hash, email, degree, goal, created_at)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)
	if err = s.db.QueryRowxContext(ctx, query, u.Username, u.PasswordHash, u.Email, u.Degree, u.Goal, u.CreatedAt).Scan(&u.ID); err != nil {
		return models.User{}, s.wrap("create_user", err, "user_already_exists")
	}
	return u, nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (out models.User, err error) {
	defer s.observe("user_by_username", time.Now(), &err)

	query := s.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE username = ?`)
	if err = s.db.GetContext(ctx, &out, query, username); err != nil {
		return models.User{}, s.wrapRow("user_by_username", err, "user_not_found")
	}
	return out, nil
}

func (s *Store) UserByID(ctx context.Context, id int64) (out models.User, err error) {
	defer s.observe("user_by_id", time.Now(), &err)

	query := s.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ?`)
	if err = s.db.GetContext(ctx, &out, query, id); err != nil {
		return models.User{}, s.wrapRow("user_by_id", err, "user_not_found")
	}
	return out, nil
}

// UserExists reports whether id names a stored user.
func (s *Store) UserExists(ctx context.Context, id int64) (ok bool, err error) {
	defer s.observe("user_exists", time.Now(), &err)

	var n int
	query := s.db.Rebind(`SELECT COUNT(*) FROM users WHERE id = ?`)
	if err = s.db.GetContext(ctx, &n, query, id); err != nil {
		return false, s.wrap("user_exists", err, "")
	}
	return n > 0, nil
}

// UserPatch lists the profile fields to change. Nil fields are left alone.
type UserPatch struct {
	Email  *string
	Degree *string
	Goal   *string
}

func (p UserPatch) empty() bool {
	return p.Email == nil && p.Degree == nil && p.Goal == nil
}

// UpdateUser applies patch to the user and returns the stored row.
func (s *Store) UpdateUser(ctx context.Context, id int64, patch UserPatch) (out models.User, err error) {
	if patch.empty() {
		return s.UserByID(ctx, id)
	}
	defer s.observe("update_user", time.Now(), &err)

	update := s.sb.Update("users").Where(sq.Eq{"id": id})
	if patch.Email != nil {
		update = update.Set("email", *patch.Email)
	}
	if patch.Degree != nil {
		update = update.Set("degree", *patch.Degree)
	}
	if patch.Goal != nil {
		update = update.Set("goal", *patch.Goal)
	}

	query, args, err := update.Suffix("RETURNING " + userColumns).ToSql()
	if err != nil {
		return models.User{}, s.wrap("update_user", err, "")
	}
	if err = s.db.GetContext(ctx, &out, query, args...); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, s.wrap("update_user", err, "email_already_in_use")
		}
		return models.User{}, s.wrapRow("update_user", err, "user_not_found")
	}
	return out, nil
}
