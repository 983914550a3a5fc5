package store

import (
	"database/sql"

	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
