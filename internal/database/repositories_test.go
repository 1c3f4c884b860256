package database

import (
	"testing"
	"time"

	"personal-crm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func createContact(t *testing.T, db *gorm.DB, first, last, phone string) models.Contact {
	t.Helper()
	contact := models.Contact{FirstName: first, LastName: last, Phone1: phone, Status: models.StatusActive}
	require.NoError(t, db.Create(&contact).Error)
	return contact
}

func createTag(t *testing.T, db *gorm.DB, name string) models.TagType {
	t.Helper()
	tag := models.TagType{Name: name}
	require.NoError(t, db.Create(&tag).Error)
	return tag
}

func TestGetByTagReturnsOnlyTaggedContacts(t *testing.T) {
	db := testDB(t)
	repo := NewContactRepository(db)

	juan := createContact(t, db, "Juan", "Perez", "04143416986")
	maria := createContact(t, db, "Maria", "Gomez", "04142223344")
	createContact(t, db, "Pedro", "Blanco", "")

	amigos := createTag(t, db, "Amigo/a")
	require.NoError(t, db.Model(&juan).Association("Tags").Append(&amigos))
	require.NoError(t, db.Model(&maria).Association("Tags").Append(&amigos))

	contacts, err := repo.GetByTag("Amigo/a")
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	for _, contact := range contacts {
		require.Len(t, contact.Tags, 1)
		assert.Equal(t, "Amigo/a", contact.Tags[0].Name)
	}
}

func TestGetByTagUnknownTagIsEmpty(t *testing.T) {
	db := testDB(t)
	repo := NewContactRepository(db)
	createContact(t, db, "Juan", "Perez", "")

	contacts, err := repo.GetByTag("Inexistente")
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestSearchCandidatesMatchesNamesAndPhone(t *testing.T) {
	db := testDB(t)
	repo := NewContactRepository(db)

	createContact(t, db, "Piter", "Pan", "4145556677")
	createContact(t, db, "Alpidio", "User", "02125558899")
	createContact(t, db, "Carmen", "Rivas", "+584167778899")

	byName, err := repo.SearchCandidates("pi")
	require.NoError(t, err)
	assert.Len(t, byName, 2) // Piter and Alpidio

	byPhone, err := repo.SearchCandidates("0212")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Alpidio", byPhone[0].FirstName)
}

func TestUpdateLastContact(t *testing.T) {
	db := testDB(t)
	repo := NewContactRepository(db)

	contact := createContact(t, db, "Juan", "Perez", "04143416986")
	when := time.Date(2025, 12, 24, 18, 30, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateLastContact(contact.ID, when, "whatsapp"))

	updated, err := repo.GetByID(contact.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-24 18:30:00", updated.LastContactDate)
	assert.Equal(t, "whatsapp", updated.LastContactChannel)
}

func TestDeleteMissingContact(t *testing.T) {
	db := testDB(t)
	repo := NewContactRepository(db)

	err := repo.Delete(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRelationshipsQueriedFromBothSides(t *testing.T) {
	db := testDB(t)
	repo := NewRelationshipRepository(db)

	juan := createContact(t, db, "Juan", "Perez", "")
	maria := createContact(t, db, "Maria", "Gomez", "")
	spouse := models.RelationshipType{Name: "Esposo/a"}
	require.NoError(t, db.Create(&spouse).Error)

	_, err := repo.Create(juan.ID, maria.ID, spouse.ID)
	require.NoError(t, err)

	forJuan, err := repo.GetByContactID(juan.ID)
	require.NoError(t, err)
	require.Len(t, forJuan, 1)
	assert.Equal(t, "Maria", forJuan[0].RelatedContact.FirstName)
	assert.Equal(t, "Esposo/a", forJuan[0].RelationshipType.Name)

	forMaria, err := repo.GetByContactID(maria.ID)
	require.NoError(t, err)
	require.Len(t, forMaria, 1)
	assert.Equal(t, "Juan", forMaria[0].Contact.FirstName)
}

func TestBulkAddTag(t *testing.T) {
	db := testDB(t)
	tagRepo := NewTagRepository(db)

	juan := createContact(t, db, "Juan", "Perez", "")
	maria := createContact(t, db, "Maria", "Gomez", "")
	trabajo := createTag(t, db, "Trabajo")

	require.NoError(t, tagRepo.BulkAddTag([]uint{juan.ID, maria.ID}, trabajo.ID))
	// Re-adding must not fail or duplicate.
	require.NoError(t, tagRepo.BulkAddTag([]uint{juan.ID}, trabajo.ID))

	tags, err := tagRepo.GetByContactID(juan.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Trabajo", tags[0].Name)
}

func TestBulkAddTagUnknownTag(t *testing.T) {
	db := testDB(t)
	tagRepo := NewTagRepository(db)
	juan := createContact(t, db, "Juan", "Perez", "")

	err := tagRepo.BulkAddTag([]uint{juan.ID}, 999)
	assert.Error(t, err)
}
