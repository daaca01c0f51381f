package db_connection

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	db_config "github.com/mwansa-dev/voteledger/internal/database/config"
	db_models "github.com/mwansa-dev/voteledger/internal/database/models"
)

var modelsToMigrate = []any{
	&db_models.ElectionDB{},
	&db_models.VoterDB{},
	&db_models.CandidateDB{},
	&db_models.VoteDB{},
	&db_models.AuditEventDB{},
}

func NewDatabase(dbFile string) (*gorm.DB, error) {
	dir := filepath.Dir(dbFile)
	if dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbFile), db_config.GetGormConfig())

	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(modelsToMigrate...)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func ResetDatabase(db *gorm.DB) error {
	err := db.Migrator().DropTable(modelsToMigrate...)

	if err != nil {
		return err
	}

	return db.AutoMigrate(modelsToMigrate...)
}

func CloseDatabaseConnection(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
