package database

import (
	"fmt"
	"log"

	"personal-crm/internal/config"
	"personal-crm/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the database (SQLite by default, Postgres when DB_HOST is set),
// runs auto-migration and seeds the default tag and relationship types.
func Init(cfg *config.Config) {
	var dialector gorm.Dialector
	if cfg.DBHost != "" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(cfg.DBPath)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to run auto-migration: %v", err)
	}

	seedDefaults(DB)
	log.Println("Database initialized successfully")
}

// Migrate creates or updates the CRM tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Contact{},
		&models.TagType{},
		&models.RelationshipType{},
		&models.ContactRelationship{},
		&models.MessageTemplate{},
		&models.CampaignLog{},
	)
}

var defaultTagTypes = []models.TagType{
	{Name: "Amigo/a", Description: "Contacto con quien tengo una relación personal amistosa"},
	{Name: "Colega", Description: "Contacto con quien trabajo o he trabajado"},
	{Name: "Cliente", Description: "Persona a la que presto servicios o vendo productos"},
	{Name: "Familia", Description: "Miembro de mi familia"},
	{Name: "No contactar", Description: "Contacto con quien no debo comunicarme", Restricted: true},
	{Name: "Trabajo", Description: "Contacto relacionado con mi trabajo o profesión"},
}

var defaultRelationshipTypes = []string{
	"Esposo/a", "Hijo/a", "Padre/Madre", "Hermano/a",
	"Amigo/a", "Colega", "Cliente", "Proveedor", "Compañero/a de trabajo",
}

func seedDefaults(db *gorm.DB) {
	for _, tag := range defaultTagTypes {
		if err := db.Where(models.TagType{Name: tag.Name}).FirstOrCreate(&tag).Error; err != nil {
			log.Printf("Error seeding tag type %s: %v", tag.Name, err)
		}
	}
	for _, name := range defaultRelationshipTypes {
		relType := models.RelationshipType{Name: name}
		if err := db.Where(models.RelationshipType{Name: name}).FirstOrCreate(&relType).Error; err != nil {
			log.Printf("Error seeding relationship type %s: %v", name, err)
		}
	}
}
