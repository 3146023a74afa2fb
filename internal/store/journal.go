package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"mindfullearner/internal/apperr"
	"mindfullearner/internal/models"
)

// ReasonGratitudeExists is returned when a user already submitted gratitude
// for the entry date.
const ReasonGratitudeExists = "gratitude_already_submitted"

// CreateGratitude inserts one entry per (user, entry date). The conditional
// insert returns no row when the pair already exists, which is reported as a
// Conflict and leaves the stored entry untouched.
func (s *Store) CreateGratitude(ctx context.Context, e models.GratitudeEntry) (out models.GratitudeEntry, err error) {
	defer s.observe("create_gratitude", time.Now(), &err)

	e.CreatedAt = s.Now()
	query := s.db.Rebind(`INSERT INTO gratitude_entries (user_id, entry_date, gratitude_1, gratitude_2, gratitude_3, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, entry_date) DO NOTHING
		RETURNING id`)
	err = s.db.QueryRowxContext(ctx, query, e.UserID, e.EntryDate, e.Gratitude1, e.Gratitude2, e.Gratitude3, e.CreatedAt).Scan(&e.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.GratitudeEntry{}, apperr.Conflict(ReasonGratitudeExists)
	}
	if err != nil {
		return models.GratitudeEntry{}, s.wrap("create_gratitude", err, ReasonGratitudeExists)
	}
	return e, nil
}

// ListGratitude returns up to limit entries, newest first.
func (s *Store) ListGratitude(ctx context.Context, userID int64, limit uint64) (out []models.GratitudeEntry, err error) {
	defer s.observe("list_gratitude", time.Now(), &err)

	query, args, err := s.sb.
		Select("id", "user_id", "entry_date", "gratitude_1", "gratitude_2", "gratitude_3", "created_at").
		From("gratitude_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("entry_date DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, s.wrap("list_gratitude", err, "")
	}

	out = []models.GratitudeEntry{}
	if err = s.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, s.wrap("list_gratitude", err, "")
	}
	return out, nil
}

// GratitudeDates returns the distinct entry dates of a user, newest first.
func (s *Store) GratitudeDates(ctx context.Context, userID int64) (out []string, err error) {
	defer s.observe("gratitude_dates", time.Now(), &err)

	query := s.db.Rebind(`SELECT entry_date FROM gratitude_entries WHERE user_id = ? ORDER BY entry_date DESC`)
	out = []string{}
	if err = s.db.SelectContext(ctx, &out, query, userID); err != nil {
		return nil, s.wrap("gratitude_dates", err, "")
	}
	return out, nil
}

// CreateMood appends a mood entry. Several entries per day are allowed.
func (s *Store) CreateMood(ctx context.Context, e models.MoodEntry) (out models.MoodEntry, err error) {
	defer s.observe("create_mood", time.Now(), &err)

	e.CreatedAt = s.Now()
	query := s.db.Rebind(`INSERT INTO mood_entries (user_id, entry_date, mood_scale, primary_emotion, secondary_emotions, factors, reflection, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`)
	err = s.db.QueryRowxContext(ctx, query, e.UserID, e.EntryDate, e.MoodScale, e.PrimaryEmotion,
		e.SecondaryEmotions, e.Factors, e.Reflection, e.CreatedAt).Scan(&e.ID)
	if err != nil {
		return models.MoodEntry{}, s.wrap("create_mood", err, "")
	}
	return e, nil
}

// ListMood returns up to limit entries, newest first.
func (s *Store) ListMood(ctx context.Context, userID int64, limit uint64) (out []models.MoodEntry, err error) {
	defer s.observe("list_mood", time.Now(), &err)

	query, args, err := s.sb.
		Select("id", "user_id", "entry_date", "mood_scale", "primary_emotion", "secondary_emotions", "factors", "reflection", "created_at").
		From("mood_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("entry_date DESC", "created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, s.wrap("list_mood", err, "")
	}

	out = []models.MoodEntry{}
	if err = s.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, s.wrap("list_mood", err, "")
	}
	return out, nil
}
