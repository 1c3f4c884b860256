package main

import (
	"fmt"
	"log"

	"personal-crm/internal/config"
	"personal-crm/internal/database"
	"personal-crm/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// One-shot copy of the CRM tables from the local SQLite file to Postgres.
// Requires DB_HOST and friends to be set; DB_PATH points at the source file.
func main() {
	cfg := config.LoadConfig()
	if cfg.DBHost == "" {
		log.Fatal("DB_HOST must be set to migrate into Postgres")
	}

	sqliteDB, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to SQLite: %v", err)
	}
	log.Printf("Connected to SQLite at %s", cfg.DBPath)

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
	pgDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	if err := database.Migrate(pgDB); err != nil {
		log.Fatalf("Failed to migrate destination schema: %v", err)
	}

	log.Println("Starting data migration...")

	migrateTable := func(tableName string, source interface{}) {
		log.Printf("Migrating table: %s", tableName)

		if err := sqliteDB.Find(source).Error; err != nil {
			log.Printf("Error reading %s from SQLite: %v", tableName, err)
			return
		}

		err := pgDB.Transaction(func(tx *gorm.DB) error {
			return tx.Create(source).Error
		})
		if err != nil {
			log.Printf("Error writing %s to Postgres: %v", tableName, err)
		} else {
			log.Printf("Successfully migrated %s", tableName)
		}
	}

	// Referenced types first, then contacts, then the tables pointing at them.
	var tagTypes []models.TagType
	migrateTable("tag_types", &tagTypes)

	var relationshipTypes []models.RelationshipType
	migrateTable("relationship_types", &relationshipTypes)

	var contacts []models.Contact
	migrateTable("contacts", &contacts)

	var relationships []models.ContactRelationship
	migrateTable("contact_relationships", &relationships)

	// The contacts<->tags join table has no model; copy it raw.
	var contactTags []map[string]interface{}
	if err := sqliteDB.Table("contact_tags").Find(&contactTags).Error; err != nil {
		log.Printf("Error reading contact_tags from SQLite: %v", err)
	} else if len(contactTags) > 0 {
		if err := pgDB.Table("contact_tags").Create(&contactTags).Error; err != nil {
			log.Printf("Error writing contact_tags to Postgres: %v", err)
		} else {
			log.Println("Successfully migrated contact_tags")
		}
	}

	var templates []models.MessageTemplate
	migrateTable("message_templates", &templates)

	var logs []models.CampaignLog
	migrateTable("campaign_logs", &logs)

	log.Println("Migration completed!")
}
