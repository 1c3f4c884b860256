package main

import (
	"log"

	"personal-crm/internal/config"
	"personal-crm/internal/database"
	"personal-crm/internal/models"
)

// Seeds a small demo dataset: contacts with tags and a couple of
// relationships, enough to exercise search and a campaign dry run.
func main() {
	cfg := config.LoadConfig()
	database.Init(cfg)
	db := database.DB

	var count int64
	db.Model(&models.Contact{}).Count(&count)
	if count > 0 {
		log.Printf("Database already has %d contacts, skipping seed", count)
		return
	}

	contacts := []models.Contact{
		{FirstName: "Juan", LastName: "Perez", Title: "Sr.", Phone1: "0414-341.69 86", Email1: "juan.perez@example.com", City: "Caracas", Country: "Venezuela"},
		{FirstName: "Maria", LastName: "Gomez", Title: "Sra.", Phone1: "04142223344", Email1: "maria.gomez@example.com", City: "Caracas", Country: "Venezuela"},
		{FirstName: "Piter", LastName: "Pan", Phone1: "4145556677", City: "Valencia", Country: "Venezuela"},
		{FirstName: "Alpidio", LastName: "User", Phone1: "02125558899", City: "Maracaibo", Country: "Venezuela"},
		{FirstName: "Carmen", LastName: "Rivas", Title: "Dra.", Phone1: "+584167778899", Email1: "carmen.rivas@example.com", City: "Barquisimeto", Country: "Venezuela"},
		{FirstName: "Pedro", LastName: "Blanco", Notes: "Sin teléfono registrado"},
	}
	for i := range contacts {
		contacts[i].Status = models.StatusActive
		if err := db.Create(&contacts[i]).Error; err != nil {
			log.Fatalf("Failed to create contact %s: %v", contacts[i].FullName(), err)
		}
	}
	log.Printf("Created %d contacts", len(contacts))

	tagFor := func(name string) models.TagType {
		var tag models.TagType
		if err := db.Where("name = ?", name).First(&tag).Error; err != nil {
			log.Fatalf("Tag type %q missing: %v", name, err)
		}
		return tag
	}

	amigos := tagFor("Amigo/a")
	familia := tagFor("Familia")

	for _, contact := range contacts[:4] {
		if err := db.Model(&contact).Association("Tags").Append(&amigos); err != nil {
			log.Fatalf("Failed to tag %s: %v", contact.FullName(), err)
		}
	}
	for _, contact := range []models.Contact{contacts[0], contacts[1]} {
		if err := db.Model(&contact).Association("Tags").Append(&familia); err != nil {
			log.Fatalf("Failed to tag %s: %v", contact.FullName(), err)
		}
	}

	var spouse models.RelationshipType
	if err := db.Where("name = ?", "Esposo/a").First(&spouse).Error; err != nil {
		log.Fatalf("Relationship type missing: %v", err)
	}
	relationship := models.ContactRelationship{
		ContactID:          contacts[0].ID,
		RelatedContactID:   contacts[1].ID,
		RelationshipTypeID: spouse.ID,
	}
	if err := db.Create(&relationship).Error; err != nil {
		log.Fatalf("Failed to create relationship: %v", err)
	}

	template := models.MessageTemplate{
		Name:  "Saludo navideño",
		BodyA: "Hola [$tratamiento] [$nombre], ¡feliz navidad! {Saludos también a [$familiar].}",
		BodyB: "[$nombre_completo], que tengas una feliz navidad {junto a [$familiar]}.",
	}
	if err := db.Create(&template).Error; err != nil {
		log.Fatalf("Failed to create template: %v", err)
	}

	log.Println("Seed completed")
}
