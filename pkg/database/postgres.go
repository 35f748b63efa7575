package database

import (
	"github.com/kranuabs13/Emailtrackmaster/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens the record store. TranslateError is required so
// the repository layer can distinguish a unique-index conflict
// (gorm.ErrDuplicatedKey) from other write failures.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
}
