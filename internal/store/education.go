package store

import (
	"context"
	"time"

	"mindfullearner/internal/models"
)

// AddEducationPreference appends a new snapshot to the user's history.
func (s *Store) AddEducationPreference(ctx context.Context, p models.EducationPreference) (out models.EducationPreference, err error) {
	defer s.observe("add_education_preference", time.Now(), &err)

	p.CreatedAt = s.Now()
	query := s.db.Rebind(`INSERT INTO educational_preferences (user_id, current_field, preferred_domain, created_at)
		VALUES (?, ?, ?, ?) RETURNING id`)
	if err = s.db.QueryRowxContext(ctx, query, p.UserID, p.CurrentField, p.PreferredDomain, p.CreatedAt).Scan(&p.ID); err != nil {
		return models.EducationPreference{}, s.wrap("add_education_preference", err, "")
	}
	return p, nil
}

// LatestEducationPreference returns the most recently created snapshot.
// Snapshots created in the same instant are ordered by id.
func (s *Store) LatestEducationPreference(ctx context.Context, userID int64) (out models.EducationPreference, err error) {
	defer s.observe("latest_education_preference", time.Now(), &err)

	query := s.db.Rebind(`SELECT id, user_id, current_field, preferred_domain, created_at
		FROM educational_preferences WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT 1`)
	if err = s.db.GetContext(ctx, &out, query, userID); err != nil {
		return models.EducationPreference{}, s.wrapRow("latest_education_preference", err, "preferences_not_set")
	}
	return out, nil
}

// Roadmaps returns the whole catalog, newest seed first.
func (s *Store) Roadmaps(ctx context.Context) (out []models.Roadmap, err error) {
	defer s.observe("roadmaps", time.Now(), &err)

	out = []models.Roadmap{}
	err = s.db.SelectContext(ctx, &out, `SELECT id, title, category, description, url, is_trending, created_at
		FROM roadmaps ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, s.wrap("roadmaps", err, "")
	}
	return out, nil
}
