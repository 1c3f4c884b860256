package database

import (
	"time"

	"personal-crm/internal/models"

	"gorm.io/gorm"
)

// ContactRepository wraps contact persistence. The campaign dispatcher consumes
// it through its ContactSource interface.
type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) GetAll() ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Preload("Tags").Order("first_name, last_name").Find(&contacts).Error
	return contacts, err
}

func (r *ContactRepository) GetPaginated(offset, limit int) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Preload("Tags").Order("first_name, last_name").
		Offset(offset).Limit(limit).Find(&contacts).Error
	return contacts, err
}

func (r *ContactRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).Count(&count).Error
	return count, err
}

// SearchCandidates returns every contact whose first name, last name or primary
// phone contains the term. Relevance ordering is applied in memory by the
// search package.
func (r *ContactRepository) SearchCandidates(term string) ([]models.Contact, error) {
	var contacts []models.Contact
	pattern := "%" + term + "%"
	err := r.db.Preload("Tags").
		Where("LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR phone_1 LIKE ?",
			pattern, pattern, pattern).
		Find(&contacts).Error
	return contacts, err
}

func (r *ContactRepository) GetByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.Preload("Tags").First(&contact, id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetByTag returns all contacts carrying the named tag, tags preloaded.
func (r *ContactRepository) GetByTag(tagName string) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.
		Joins("JOIN contact_tags ON contact_tags.contact_id = contacts.id").
		Joins("JOIN tag_types ON tag_types.id = contact_tags.tag_type_id").
		Where("tag_types.name = ?", tagName).
		Preload("Tags").
		Distinct().
		Find(&contacts).Error
	return contacts, err
}

func (r *ContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *ContactRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Contact{}).Where("id = ?", id).Updates(fields).Error
}

// UpdateLastContact records the date and channel of the latest successful send.
func (r *ContactRepository) UpdateLastContact(id uint, when time.Time, channel string) error {
	return r.Update(id, map[string]interface{}{
		"last_contact_date":    when.Format("2006-01-02 15:04:05"),
		"last_contact_channel": channel,
	})
}

func (r *ContactRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RelationshipRepository wraps contact relationship persistence.
type RelationshipRepository struct {
	db *gorm.DB
}

func NewRelationshipRepository(db *gorm.DB) *RelationshipRepository {
	return &RelationshipRepository{db: db}
}

// GetByContactID returns relationships from both directions, with both
// contacts and the relationship type preloaded.
func (r *RelationshipRepository) GetByContactID(contactID uint) ([]models.ContactRelationship, error) {
	var relationships []models.ContactRelationship
	err := r.db.
		Preload("Contact").
		Preload("RelatedContact").
		Preload("RelationshipType").
		Where("contact_id = ? OR related_contact_id = ?", contactID, contactID).
		Find(&relationships).Error
	return relationships, err
}

func (r *RelationshipRepository) GetAllTypes() ([]models.RelationshipType, error) {
	var types []models.RelationshipType
	err := r.db.Order("name").Find(&types).Error
	return types, err
}

func (r *RelationshipRepository) Create(contactID, relatedContactID, relationshipTypeID uint) (*models.ContactRelationship, error) {
	relationship := models.ContactRelationship{
		ContactID:          contactID,
		RelatedContactID:   relatedContactID,
		RelationshipTypeID: relationshipTypeID,
	}
	if err := r.db.Create(&relationship).Error; err != nil {
		return nil, err
	}
	return &relationship, nil
}

func (r *RelationshipRepository) Delete(id uint) error {
	result := r.db.Delete(&models.ContactRelationship{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TagRepository wraps tag persistence.
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) GetAllTypes() ([]models.TagType, error) {
	var types []models.TagType
	err := r.db.Order("name").Find(&types).Error
	return types, err
}

func (r *TagRepository) GetByContactID(contactID uint) ([]models.TagType, error) {
	var types []models.TagType
	err := r.db.
		Joins("JOIN contact_tags ON contact_tags.tag_type_id = tag_types.id").
		Where("contact_tags.contact_id = ?", contactID).
		Find(&types).Error
	return types, err
}

// BulkAddTag attaches one tag to several contacts, skipping contacts that
// already carry it.
func (r *TagRepository) BulkAddTag(contactIDs []uint, tagTypeID uint) error {
	var tag models.TagType
	if err := r.db.First(&tag, tagTypeID).Error; err != nil {
		return err
	}
	for _, contactID := range contactIDs {
		contact := models.Contact{ID: contactID}
		if err := r.db.Model(&contact).Association("Tags").Append(&tag); err != nil {
			return err
		}
	}
	return nil
}
