package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Skar710/CID/internal/config"
)

// Connect opens the Postgres record store. TranslateError is on so
// uniqueness violations surface as gorm.ErrDuplicatedKey and can be
// mapped to conflicts.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return db, nil
}
