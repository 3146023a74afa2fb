package store

import (
	"context"
	"time"

	"mindfullearner/internal/models"
)

// UpsertSleep stores the sleep log for (user, date), replacing any earlier
// log for the same day.
func (s *Store) UpsertSleep(ctx context.Context, l models.SleepLog) (err error) {
	defer s.observe("upsert_sleep", time.Now(), &err)

	query := s.db.Rebind(`INSERT INTO sleep_logs (user_id, date, hours_slept, sleep_quality, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, date) DO UPDATE SET
			hours_slept = excluded.hours_slept,
			sleep_quality = excluded.sleep_quality,
			created_at = excluded.created_at`)
	_, err = s.db.ExecContext(ctx, query, l.UserID, l.Date, l.Hours, l.Quality, s.Now())
	return s.wrap("upsert_sleep", err, "")
}

// SleepByDate returns NotFound when nothing was logged for the day.
func (s *Store) SleepByDate(ctx context.Context, userID int64, date string) (out models.SleepLog, err error) {
	defer s.observe("sleep_by_date", time.Now(), &err)

	query := s.db.Rebind(`SELECT id, user_id, date, hours_slept, sleep_quality, created_at
		FROM sleep_logs WHERE user_id = ? AND date = ?`)
	if err = s.db.GetContext(ctx, &out, query, userID, date); err != nil {
		return models.SleepLog{}, s.wrapRow("sleep_by_date", err, "sleep_not_logged")
	}
	return out, nil
}

// AddWater appends one intake entry.
func (s *Store) AddWater(ctx context.Context, l models.WaterLog) (out models.WaterLog, err error) {
	defer s.observe("add_water", time.Now(), &err)

	l.TimeLogged = s.Now()
	query := s.db.Rebind(`INSERT INTO water_intake (user_id, date, amount_ml, time_logged) VALUES (?, ?, ?, ?) RETURNING id`)
	if err = s.db.QueryRowxContext(ctx, query, l.UserID, l.Date, l.AmountML, l.TimeLogged).Scan(&l.ID); err != nil {
		return models.WaterLog{}, s.wrap("add_water", err, "")
	}
	return l, nil
}

// WaterByDate returns the day's entries in the order they were logged.
func (s *Store) WaterByDate(ctx context.Context, userID int64, date string) (out []models.WaterLog, err error) {
	defer s.observe("water_by_date", time.Now(), &err)

	query := s.db.Rebind(`SELECT id, user_id, date, amount_ml, time_logged
		FROM water_intake WHERE user_id = ? AND date = ? ORDER BY time_logged ASC, id ASC`)
	out = []models.WaterLog{}
	if err = s.db.SelectContext(ctx, &out, query, userID, date); err != nil {
		return nil, s.wrap("water_by_date", err, "")
	}
	return out, nil
}

// UpsertHygiene stores the hygiene log for (user, date), replacing any
// earlier log for the same day.
func (s *Store) UpsertHygiene(ctx context.Context, l models.HygieneLog) (err error) {
	defer s.observe("upsert_hygiene", time.Now(), &err)

	query := s.db.Rebind(`INSERT INTO daily_hygiene (user_id, date, bathed, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, date) DO UPDATE SET
			bathed = excluded.bathed,
			created_at = excluded.created_at`)
	_, err = s.db.ExecContext(ctx, query, l.UserID, l.Date, l.Bathed, s.Now())
	return s.wrap("upsert_hygiene", err, "")
}

func (s *Store) HygieneByDate(ctx context.Context, userID int64, date string) (out models.HygieneLog, err error) {
	defer s.observe("hygiene_by_date", time.Now(), &err)

	query := s.db.Rebind(`SELECT id, user_id, date, bathed, created_at FROM daily_hygiene WHERE user_id = ? AND date = ?`)
	if err = s.db.GetContext(ctx, &out, query, userID, date); err != nil {
		return models.HygieneLog{}, s.wrapRow("hygiene_by_date", err, "hygiene_not_logged")
	}
	return out, nil
}

// AddMeditation appends a completed session.
func (s *Store) AddMeditation(ctx context.Context, l models.MeditationLog) (out models.MeditationLog, err error) {
	defer s.observe("add_meditation", time.Now(), &err)

	l.CreatedAt = s.Now()
	l.Completed = true
	query := s.db.Rebind(`INSERT INTO meditation_logs (user_id, date, duration_minutes, completed, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)
	if err = s.db.QueryRowxContext(ctx, query, l.UserID, l.Date, l.DurationMinutes, l.Completed, l.Notes, l.CreatedAt).Scan(&l.ID); err != nil {
		return models.MeditationLog{}, s.wrap("add_meditation", err, "")
	}
	return l, nil
}

// MeditationByDate returns the day's sessions in chronological order.
func (s *Store) MeditationByDate(ctx context.Context, userID int64, date string) (out []models.MeditationLog, err error) {
	defer s.observe("meditation_by_date", time.Now(), &err)

	query := s.db.Rebind(`SELECT id, user_id, date, duration_minutes, completed, notes, created_at
		FROM meditation_logs WHERE user_id = ? AND date = ? ORDER BY created_at ASC, id ASC`)
	out = []models.MeditationLog{}
	if err = s.db.SelectContext(ctx, &out, query, userID, date); err != nil {
		return nil, s.wrap("meditation_by_date", err, "")
	}
	return out, nil
}
