package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectPostgresORM opens the GORM handle the entity repositories use.
// TranslateError maps driver constraint violations onto gorm sentinel errors
// so services can match them without driver-specific code.
func ConnectPostgresORM(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return conn, nil
}
