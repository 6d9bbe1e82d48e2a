package database

import (
	"fmt"
	"log"

	config "github.com/alphadev-tn/stage_manager/configs"
	"github.com/alphadev-tn/stage_manager/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the connection pool and hands it back to the caller; nothing
// in this package keeps a global handle.
func Connect() (*gorm.DB, error) {
	dsn := config.Config("DATABASE_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	fmt.Println("✅ Database connected successfully")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.UserType{},
		&models.User{},
		&models.Departement{},
		&models.AnneeUniversitaire{},
		&models.Parcours{},
		&models.TypeStage{},
		&models.Formation{},
		&models.NiveauFormation{},
		&models.Classe{},
		&models.Etudiant{},
		&models.Organisme{},
		&models.Project{},
		&models.Encadrant{},
		&models.Stage{},
		&models.EtudiantStage{},
		&models.RefreshToken{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	fmt.Println("✅ Database migration successful")
	return nil
}

// SeedAdmin guarantees one login exists on a fresh database.
func SeedAdmin(db *gorm.DB) error {
	adminUsername := config.ConfigOr("ADMIN_USERNAME", "admin")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", adminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminType := models.UserType{LibUserType: "admin"}
	if err := db.Where("lib_user_type = ?", "admin").FirstOrCreate(&adminType).Error; err != nil {
		return err
	}

	admin := models.User{
		Username:   adminUsername,
		Password:   string(hashedPassword),
		Firstname:  "Admin",
		Lastname:   "Admin",
		UserTypeID: &adminType.UserTypeID,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("✅ Admin user seeded successfully")
	return nil
}
