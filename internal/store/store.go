// Package store is the data layer. Every method performs one logical
// statement (or one transaction) against the injected connection and
// returns *apperr.Error values on failure.
package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"mindfullearner/internal/db"
	"mindfullearner/internal/metrics"
	"mindfullearner/internal/models"
)

type Store struct {
	db     *sqlx.DB
	sb     sq.StatementBuilderType
	logger *zap.Logger
	now    func() time.Time
}

type Option func(*Store)

// WithClock replaces the wall clock used for created timestamps and "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(conn *sqlx.DB, logger *zap.Logger, opts ...Option) *Store {
	var placeholder sq.PlaceholderFormat = sq.Question
	if conn.DriverName() == db.DriverPostgres {
		placeholder = sq.Dollar
	}

	s := &Store{
		db:     conn,
		sb:     sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping checks the connection is usable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Today is the current calendar date in UTC.
func (s *Store) Today() string {
	return models.FormatDate(s.now())
}

// Now is the store clock as a persisted timestamp.
func (s *Store) Now() models.Timestamp {
	return models.NewTimestamp(s.now())
}

func (s *Store) observe(op string, start time.Time, errp *error) {
	metrics.RecordDBOperation(op, time.Since(start), *errp)
}
