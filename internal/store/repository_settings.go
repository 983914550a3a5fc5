package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/atomwalk/hrm-client/internal/logger"
)

type settingsRepository struct {
	*DB
	logger  *logger.Logger
	builder sq.StatementBuilderType
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (s *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Select("value").
		From("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Get").
			Str("key", key).
			Msg("failed to build select query")
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	row := s.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		log.Err(err).
			Str("func", "settingsRepository.Get").
			Str("key", key).
			Msg("failed to scan settings row")
		return "", fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return value, nil
}

func (s *settingsRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Insert("settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Set").
			Str("key", key).
			Msg("failed to build upsert query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Set").
			Str("key", key).
			Msg("failed to execute upsert for setting")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (s *settingsRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Delete("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Delete").
			Str("key", key).
			Msg("failed to delete setting")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (s *settingsRepository) DeleteAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, _, err := s.builder.Delete("settings").ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.DeleteAll").
			Msg("failed to clear settings")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}
