package campaign

import (
	"testing"

	"personal-crm/internal/models"

	"github.com/stretchr/testify/assert"
)

func testContact() models.Contact {
	return models.Contact{
		ID:        1,
		FirstName: "Juan",
		LastName:  "Perez",
		Title:     "Sr.",
		Phone1:    "12345678",
	}
}

func testRelationships() []models.ContactRelationship {
	return []models.ContactRelationship{
		{
			ContactID:        1,
			RelatedContactID: 2,
			Contact:          models.Contact{ID: 1, FirstName: "Juan", LastName: "Perez"},
			RelatedContact:   models.Contact{ID: 2, FirstName: "Maria", LastName: "Gomez"},
			RelationshipType: models.RelationshipType{Name: "Esposo/a"},
		},
	}
}

func TestRenderBasicSubstitution(t *testing.T) {
	got := Render("Hola [$nombre] [$apellido]", testContact(), nil)
	assert.Equal(t, "Hola Juan Perez", got)
}

func TestRenderTitle(t *testing.T) {
	got := Render("Hola [$tratamiento] [$nombre]", testContact(), nil)
	assert.Equal(t, "Hola Sr. Juan", got)
}

func TestRenderFullName(t *testing.T) {
	got := Render("Estimado [$nombre_completo]", testContact(), nil)
	assert.Equal(t, "Estimado Juan Perez", got)
}

func TestRenderVariableNamesCaseInsensitive(t *testing.T) {
	got := Render("Hola [$NOMBRE] [$Apellido]", testContact(), nil)
	assert.Equal(t, "Hola Juan Perez", got)
}

func TestRenderConditionalBlockSuccess(t *testing.T) {
	got := Render("Hola [$nombre] {y saludos a [$familiar]}", testContact(), testRelationships())
	assert.Equal(t, "Hola Juan y saludos a Maria", got)
}

func TestRenderConditionalBlockDropped(t *testing.T) {
	got := Render("Hola [$nombre] {y saludos a [$familiar]}", testContact(), nil)
	assert.Equal(t, "Hola Juan", got)
}

func TestRenderFamiliarFromReverseSide(t *testing.T) {
	// The subject is the related contact; the other side should resolve.
	rels := []models.ContactRelationship{
		{
			ContactID:        2,
			RelatedContactID: 1,
			Contact:          models.Contact{ID: 2, FirstName: "Maria"},
			RelatedContact:   models.Contact{ID: 1, FirstName: "Juan"},
		},
	}
	got := Render("Saludos a [$familiar]", testContact(), rels)
	assert.Equal(t, "Saludos a Maria", got)
}

func TestRenderVariableInsideBlock(t *testing.T) {
	got := Render("Hola {[$nombre] te saluda}", testContact(), nil)
	assert.Equal(t, "Hola Juan te saluda", got)
}

func TestRenderUnknownVariableOutsideBlock(t *testing.T) {
	got := Render("Hola [$nombre] [$desconocida]", testContact(), nil)
	assert.Equal(t, "Hola Juan", got)
}

func TestRenderBlockWithUnknownVariableDropped(t *testing.T) {
	got := Render("Hola [$nombre] {extra [$desconocida] texto}", testContact(), nil)
	assert.Equal(t, "Hola Juan", got)
}

func TestRenderEmptyTitleDropsBlockButNotBarePlaceholder(t *testing.T) {
	contact := testContact()
	contact.Title = ""

	assert.Equal(t, "Hola Juan", Render("Hola {[$tratamiento]} [$nombre]", contact, nil))
	assert.Equal(t, "Hola Juan", Render("Hola [$tratamiento] [$nombre]", contact, nil))
}

func TestRenderNoPlaceholders(t *testing.T) {
	got := Render("Feliz año nuevo", testContact(), nil)
	assert.Equal(t, "Feliz año nuevo", got)
}

func TestRenderEmptyTemplate(t *testing.T) {
	assert.Equal(t, "", Render("", testContact(), nil))
}

func TestRenderCollapsesWhitespace(t *testing.T) {
	got := Render("Hola  [$nombre]   {y a [$familiar]}  !", testContact(), nil)
	assert.Equal(t, "Hola Juan !", got)
}
