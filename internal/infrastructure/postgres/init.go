package postgres

import (
	"log"

	"github.com/LavaJover/shvark-referral-service/internal/config"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.ReferralConfig) *gorm.DB {
	dsn := cfg.ReferralDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.AttributionModel{},
		&models.ReferralProgramModel{},
		&models.ReferralLinkModel{},
		&models.CommissionRuleModel{},
		&models.TransactionModel{},
		&models.LedgerEntryModel{},
		&models.ClickModel{},
	)

	return db
}
