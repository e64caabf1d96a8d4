package main

import (
	"fmt"
	"log"

	"github.com/LavaJover/shvark-referral-service/internal/config"
	httpdelivery "github.com/LavaJover/shvark-referral-service/internal/delivery/http"
	"github.com/LavaJover/shvark-referral-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-referral-service/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	commissionPublisher := kafka.NewCommissionPublisher(brokers, cfg.KafkaService.Topic)

	// Init metrics
	referralMetrics := metrics.NewReferralMetrics()

	// Init repositories
	attributionRepo := repository.NewDefaultAttributionRepository(db)
	programRepo := repository.NewDefaultProgramRepository(db)
	linkRepo := repository.NewDefaultReferralLinkRepository(db)
	ruleRepo := repository.NewDefaultCommissionRuleRepository(db)
	transactionRepo := repository.NewDefaultTransactionRepository(db)
	ledgerRepo := repository.NewDefaultLedgerRepository(db)
	clickRepo := repository.NewDefaultClickRepository(db)

	// Init usecases
	attributionUsecase := usecase.NewDefaultAttributionUsecase(attributionRepo, cfg.Attribution.Window(), referralMetrics)
	linkUsecase := usecase.NewDefaultLinkUsecase(linkRepo, programRepo)
	clickUsecase := usecase.NewDefaultClickUsecase(clickRepo, referralMetrics)
	commissionUsecase := usecase.NewDefaultCommissionUsecase(ruleRepo)
	ledgerUsecase := usecase.NewDefaultLedgerUsecase(
		ledgerRepo,
		transactionRepo,
		commissionUsecase,
		commissionPublisher,
		referralMetrics,
	)
	statsUsecase := usecase.NewDefaultStatsUsecase(clickRepo, attributionRepo, ledgerRepo)
	programUsecase, err := usecase.NewDefaultProgramUsecase(programRepo)
	if err != nil {
		log.Fatalf("failed to init program usecase: %v", err)
	}

	// HTTP server
	r := gin.Default()
	httpdelivery.RegisterRoutes(r, &httpdelivery.Handlers{
		Attribution: handlers.NewAttributionHandler(attributionUsecase),
		Link:        handlers.NewLinkHandler(linkUsecase, clickUsecase),
		Webhook:     handlers.NewWebhookHandler(ledgerUsecase, referralMetrics),
		Rule:        handlers.NewRuleHandler(commissionUsecase),
		Program:     handlers.NewProgramHandler(programUsecase),
		Stats:       handlers.NewStatsHandler(statsUsecase),
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("referral service started on %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
