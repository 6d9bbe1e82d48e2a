package main

import (
	"log"
	"time"

	config "github.com/alphadev-tn/stage_manager/configs"
	"github.com/alphadev-tn/stage_manager/database"
	"github.com/alphadev-tn/stage_manager/handlers"
	"github.com/alphadev-tn/stage_manager/jobs"
	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
	"github.com/alphadev-tn/stage_manager/routes"
	"github.com/alphadev-tn/stage_manager/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	userTypes := repository.New[models.UserType](db, "user_type_id")
	departements := repository.New[models.Departement](db, "departement_id")
	annees := repository.New[models.AnneeUniversitaire](db, "annee_universitaire_id")
	formations := repository.New[models.Formation](db, "formation_id", "Departement", "AnneeUniversitaire")
	parcours := repository.New[models.Parcours](db, "parcours_id")
	typeStages := repository.New[models.TypeStage](db, "type_stage_id")
	niveauFormations := repository.New[models.NiveauFormation](db, "niveau_formation_id", "Formation", "TypeStage", "Parcours")
	classes := repository.New[models.Classe](db, "classe_id", "NiveauFormation")
	organismes := repository.New[models.Organisme](db, "organisme_id")
	projects := repository.New[models.Project](db, "project_id", "Organisme")
	encadrants := repository.New[models.Encadrant](db, "encadrant_id")
	etudiantStages := repository.New[models.EtudiantStage](db, "etudiant_stage_id", "Etudiant", "Stage")
	users := repository.NewUserRepository(db)
	etudiants := repository.NewEtudiantRepository(db)
	stages := repository.NewStageRepository(db)
	refreshTokens := repository.NewRefreshTokenRepository(db)

	importer := services.NewImportService(db)
	ocr := services.NewOcrService(config.Config("OCR_SERVICE_URL"))

	c := cron.New()
	cleanup := jobs.NewTokenCleanupJob(refreshTokens)
	if _, err := c.AddFunc("@hourly", cleanup.Run); err != nil {
		log.Fatalf("Failed to schedule token cleanup job: %v", err)
	}
	go c.Start()
	log.Println("✅ Cron job for refresh token cleanup scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:      "Stage Manager",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Welcome to Stage Manager API",
		})
	})

	api := app.Group(config.ConfigOr("API_PREFIX", "/api/v1"))

	routes.RegisterAuthRoutes(api, handlers.NewAuthHandler(users, refreshTokens))
	routes.RegisterUserRoutes(api, handlers.NewUserHandler(users))
	routes.RegisterUserTypeRoutes(api, handlers.NewUserTypeHandler(userTypes))
	routes.RegisterDepartementRoutes(api, handlers.NewDepartementHandler(departements))
	routes.RegisterAnneeUniversitaireRoutes(api, handlers.NewAnneeUniversitaireHandler(annees))
	routes.RegisterFormationRoutes(api, handlers.NewFormationHandler(formations))
	routes.RegisterParcoursRoutes(api, handlers.NewParcoursHandler(parcours))
	routes.RegisterTypeStageRoutes(api, handlers.NewTypeStageHandler(typeStages))
	routes.RegisterNiveauFormationRoutes(api, handlers.NewNiveauFormationHandler(niveauFormations))
	routes.RegisterClasseRoutes(api, handlers.NewClasseHandler(classes))
	routes.RegisterOrganismeRoutes(api, handlers.NewOrganismeHandler(organismes))
	routes.RegisterProjectRoutes(api, handlers.NewProjectHandler(projects))
	routes.RegisterEncadrantRoutes(api, handlers.NewEncadrantHandler(encadrants))
	routes.RegisterEtudiantRoutes(api, handlers.NewEtudiantHandler(etudiants, importer))
	routes.RegisterEtudiantStageRoutes(api, handlers.NewEtudiantStageHandler(etudiantStages))
	routes.RegisterStageRoutes(api, handlers.NewStageHandler(stages))
	routes.RegisterOcrRoutes(api, handlers.NewOcrHandler(ocr))

	port := config.ConfigOr("PORT", "8080")
	log.Fatal(app.Listen(":" + port))
}
