package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Skar710/CID/internal/auth"
	"github.com/Skar710/CID/internal/config"
	"github.com/Skar710/CID/internal/controllers"
	"github.com/Skar710/CID/internal/database"
	"github.com/Skar710/CID/internal/models"
	"github.com/Skar710/CID/internal/services"
)

func main() {
	// Load configs
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Connect to the record store
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Crime{},
		&models.Criminal{},
		&models.Evidence{},
		&models.ForensicReport{},
		&models.Team{},
		&models.IntelligenceReport{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	// Services
	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := services.NewAuthService(db, tokens)
	evidenceSvc := services.NewEvidenceService(db)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	crimeCtrl := controllers.NewRecordController(services.NewRecordService[models.Crime](db), "crimes", "Crime")
	criminalCtrl := controllers.NewRecordController(services.NewRecordService[models.Criminal](db), "criminals", "Criminal")
	evidenceCtrl := controllers.NewEvidenceController(evidenceSvc)
	forensicCtrl := controllers.NewRecordController(services.NewRecordService[models.ForensicReport](db), "forensics", "Report")
	teamCtrl := controllers.NewRecordController(services.NewRecordService[models.Team](db), "teams", "Team")
	intelCtrl := controllers.NewRecordController(services.NewRecordService[models.IntelligenceReport](db), "intelligence", "Intelligence report")

	// Echo
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Routes: auth sits in front of every record endpoint
	api := e.Group("/api")
	authCtrl.Register(api)

	records := api.Group("", auth.Middleware(tokens))
	crimeCtrl.Register(records)
	criminalCtrl.Register(records)
	evidenceCtrl.Register(records)
	forensicCtrl.Register(records)
	teamCtrl.Register(records)
	intelCtrl.Register(records)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
