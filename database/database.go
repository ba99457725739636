package database

import (
	"log"

	"github.com/Deva1502/kono-banking-application-main/config"
	"github.com/Deva1502/kono-banking-application-main/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbInstance struct {
	Db *gorm.DB
}

var Database DbInstance

// ConnectDb opens the Postgres connection and runs auto-migration for all
// entity tables. TranslateError is enabled so unique-index violations
// surface as gorm.ErrDuplicatedKey (the provisioner relies on this).
func ConnectDb() {
	db, err := gorm.Open(postgres.Open(config.AppConfig.DatabaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	Database = DbInstance{Db: db}
	log.Println("Connected to database successfully!")
}

// Migrate creates/updates the entity tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Account{},
		&models.Transaction{},
		&models.FixedDeposit{},
		&models.ATMCard{},
	)
}
