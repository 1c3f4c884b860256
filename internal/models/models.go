package models

import (
	"time"
)

// Contact statuses
const (
	StatusActive   = "Activo"
	StatusInactive = "Inactivo"
	StatusBlocked  = "Bloqueado"
)

// Contact represents a person in the address book. First and last name are
// always present; everything else defaults to empty.
type Contact struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	FirstName          string    `gorm:"type:varchar(255);not null" json:"first_name"`
	MiddleName         string    `gorm:"type:varchar(255)" json:"middle_name"`
	LastName           string    `gorm:"type:varchar(255);not null" json:"last_name"`
	Title              string    `gorm:"type:varchar(50)" json:"title"` // Sr., Sra., Dr., ...
	Phone1             string    `gorm:"type:varchar(50)" json:"phone_1"`
	Phone2             string    `gorm:"type:varchar(50)" json:"phone_2"`
	Email1             string    `gorm:"type:varchar(255)" json:"email_1"`
	Email2             string    `gorm:"type:varchar(255)" json:"email_2"`
	Address            string    `gorm:"type:varchar(255)" json:"address"`
	City               string    `gorm:"type:varchar(100)" json:"city"`
	Country            string    `gorm:"type:varchar(100)" json:"country"`
	BirthDate          string    `gorm:"type:varchar(10)" json:"birth_date"` // YYYY-MM-DD
	Notes              string    `gorm:"type:text" json:"notes"`
	Status             string    `gorm:"type:varchar(20);default:'Activo'" json:"status"`
	LastContactDate    string    `gorm:"type:varchar(20)" json:"last_contact_date"`
	LastContactChannel string    `gorm:"type:varchar(50)" json:"last_contact_channel"` // whatsapp, phone, email, ...
	Tags               []TagType `gorm:"many2many:contact_tags;" json:"tags,omitempty"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// TagType is a categorical label attached to contacts. Restricted tags mark
// contacts that must not be messaged (e.g. "No contactar").
type TagType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Restricted  bool   `gorm:"default:false" json:"restricted"`
}

func (TagType) TableName() string {
	return "tag_types"
}

// RelationshipType labels a relationship between two contacts (Esposo/a, Colega, ...).
type RelationshipType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
}

func (RelationshipType) TableName() string {
	return "relationship_types"
}

// ContactRelationship links two contacts. It is stored directed
// (owner -> related) but queried from both sides.
type ContactRelationship struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	ContactID          uint             `gorm:"index;not null" json:"contact_id"`
	RelatedContactID   uint             `gorm:"index;not null" json:"related_contact_id"`
	RelationshipTypeID uint             `json:"relationship_type_id"`
	Contact            Contact          `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
	RelatedContact     Contact          `gorm:"foreignKey:RelatedContactID" json:"related_contact,omitempty"`
	RelationshipType   RelationshipType `gorm:"foreignKey:RelationshipTypeID" json:"relationship_type,omitempty"`
	CreatedAt          time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (ContactRelationship) TableName() string {
	return "contact_relationships"
}

// MessageTemplate is stored campaign copy. BodyB is the optional A/B variant.
type MessageTemplate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	BodyA     string    `gorm:"type:text;not null" json:"body_a"`
	BodyB     string    `gorm:"type:text" json:"body_b"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MessageTemplate) TableName() string {
	return "message_templates"
}

// CampaignLog records one progress event of a campaign run.
type CampaignLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Tag       string    `gorm:"type:varchar(100);index" json:"tag"`
	Current   int       `json:"current"`
	Total     int       `json:"total"`
	Message   string    `gorm:"type:text" json:"message"`
	DryRun    bool      `json:"dry_run"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CampaignLog) TableName() string {
	return "campaign_logs"
}
