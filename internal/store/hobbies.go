package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"mindfullearner/internal/models"
)

var hobbyColumns = []string{
	"id", "name", "category", "description", "difficulty_level", "time_commitment",
	"required_resources", "learning_path", "tips", "resources_url", "image_url",
}

func (s *Store) Hobbies(ctx context.Context) (out []models.Hobby, err error) {
	defer s.observe("hobbies", time.Now(), &err)

	query, args, err := s.sb.Select(hobbyColumns...).From("hobbies").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, s.wrap("hobbies", err, "")
	}
	out = []models.Hobby{}
	if err = s.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, s.wrap("hobbies", err, "")
	}
	return out, nil
}

// HobbiesInCategories returns catalog rows whose category is one of
// categories. An empty set selects nothing.
func (s *Store) HobbiesInCategories(ctx context.Context, categories []string) (out []models.Hobby, err error) {
	out = []models.Hobby{}
	if len(categories) == 0 {
		return out, nil
	}
	defer s.observe("hobbies_in_categories", time.Now(), &err)

	query, args, err := s.sb.Select(hobbyColumns...).
		From("hobbies").
		Where(sq.Eq{"category": categories}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, s.wrap("hobbies_in_categories", err, "")
	}
	if err = s.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, s.wrap("hobbies_in_categories", err, "")
	}
	return out, nil
}

// SaveHobbyPreference keeps exactly one preference row per user: the first
// save inserts it and later saves update it in place.
func (s *Store) SaveHobbyPreference(ctx context.Context, p models.HobbyPreference) (out models.HobbyPreference, err error) {
	defer s.observe("save_hobby_preference", time.Now(), &err)

	now := s.Now()
	if p.PreferredCategories == nil {
		p.PreferredCategories = models.StringList{}
	}
	query := s.db.Rebind(`INSERT INTO user_hobby_preferences (user_id, preferred_categories, time_available, skill_level, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			preferred_categories = excluded.preferred_categories,
			time_available = excluded.time_available,
			skill_level = excluded.skill_level,
			updated_at = excluded.updated_at
		RETURNING id, user_id, preferred_categories, time_available, skill_level, created_at, updated_at`)
	err = s.db.QueryRowxContext(ctx, query, p.UserID, p.PreferredCategories, p.TimeAvailable, p.SkillLevel, now, now).StructScan(&out)
	if err != nil {
		return models.HobbyPreference{}, s.wrap("save_hobby_preference", err, "")
	}
	return out, nil
}

// HobbyPreference returns NotFound when the user never saved preferences.
func (s *Store) HobbyPreference(ctx context.Context, userID int64) (out models.HobbyPreference, err error) {
	defer s.observe("hobby_preference", time.Now(), &err)

	query := s.db.Rebind(`SELECT id, user_id, preferred_categories, time_available, skill_level, created_at, updated_at
		FROM user_hobby_preferences WHERE user_id = ?`)
	if err = s.db.GetContext(ctx, &out, query, userID); err != nil {
		return models.HobbyPreference{}, s.wrapRow("hobby_preference", err, "preferences_not_set")
	}
	return out, nil
}
