package config

import (
	"os"

	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite"
)

// CreateRepository opens the configured database, creating its directory if needed
func CreateRepository(config *Config) (sqlite.Repository, error) {
	if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeDatabase, "failed to create database directory "+config.Database.Dir)
	}

	// sqlite errors are already AppErrors carrying the open/migrate operation
	repo, err := sqlite.NewWithOptions(config.GetDatabasePath(), sqlite.Options{
		QueryTimeout: config.GetQueryTimeout(),
	})
	if err != nil {
		return nil, err
	}
	return repo, nil
}
