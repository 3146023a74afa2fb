package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"mindfullearner/internal/models"
)

var activityColumns = []string{
	"u.id AS user_id",
	"u.username",
	"(SELECT COUNT(*) FROM gratitude_entries x WHERE x.user_id = u.id) AS gratitude",
	"(SELECT COUNT(*) FROM mood_entries x WHERE x.user_id = u.id) AS mood",
	"(SELECT COUNT(*) FROM sleep_logs x WHERE x.user_id = u.id) AS sleep",
	"(SELECT COUNT(*) FROM water_intake x WHERE x.user_id = u.id) AS water",
	"(SELECT COUNT(*) FROM daily_hygiene x WHERE x.user_id = u.id) AS hygiene",
	"(SELECT COUNT(*) FROM meditation_logs x WHERE x.user_id = u.id) AS meditation",
	"(SELECT COUNT(*) FROM tasks x WHERE x.user_id = u.id) AS tasks",
	"(SELECT COALESCE(MAX(x.score), 0) FROM quiz_attempts x WHERE x.user_id = u.id) AS quiz_correct",
}

// Activity returns the stored activity tallies for one user.
func (s *Store) Activity(ctx context.Context, userID int64) (out models.UserActivity, err error) {
	defer s.observe("activity", time.Now(), &err)

	query, args, err := s.sb.Select(activityColumns...).From("users u").Where(sq.Eq{"u.id": userID}).ToSql()
	if err != nil {
		return models.UserActivity{}, s.wrap("activity", err, "")
	}
	if err = s.db.GetContext(ctx, &out, query, args...); err != nil {
		return models.UserActivity{}, s.wrapRow("activity", err, "user_not_found")
	}
	return out, nil
}

// AllActivity returns the tallies of every user ordered by id.
func (s *Store) AllActivity(ctx context.Context) (out []models.UserActivity, err error) {
	defer s.observe("all_activity", time.Now(), &err)

	query, args, err := s.sb.Select(activityColumns...).From("users u").OrderBy("u.id ASC").ToSql()
	if err != nil {
		return nil, s.wrap("all_activity", err, "")
	}
	out = []models.UserActivity{}
	if err = s.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, s.wrap("all_activity", err, "")
	}
	return out, nil
}
