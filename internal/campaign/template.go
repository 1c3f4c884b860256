package campaign

import (
	"regexp"
	"strings"

	"personal-crm/internal/models"
)

var (
	fragmentRe    = regexp.MustCompile(`\{(.*?)\}`)
	placeholderRe = regexp.MustCompile(`\[\$(.*?)\]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// Render personalizes a message template for one contact.
//
// Two passes: first {...} conditional fragments, which are dropped whole when
// any [$var] inside them cannot be resolved; then remaining bare [$var]
// placeholders, which degrade to empty strings. Only one fragment nesting level
// is supported; inner braces pass through as literal text. Whitespace runs left
// behind by dropped fragments are collapsed and the result is trimmed.
// Rendering never fails.
func Render(template string, contact models.Contact, relationships []models.ContactRelationship) string {
	if template == "" {
		return ""
	}

	result := fragmentRe.ReplaceAllStringFunc(template, func(match string) string {
		content := match[1 : len(match)-1]
		resolved := content
		for _, sub := range placeholderRe.FindAllStringSubmatch(content, -1) {
			value := variableValue(sub[1], contact, relationships)
			if value == "" {
				return ""
			}
			resolved = strings.ReplaceAll(resolved, sub[0], value)
		}
		return resolved
	})

	result = placeholderRe.ReplaceAllStringFunc(result, func(match string) string {
		name := placeholderRe.FindStringSubmatch(match)[1]
		return variableValue(name, contact, relationships)
	})

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(result, " "))
}

// variableValue resolves a placeholder name (case-insensitive). Unknown names
// resolve to empty, which drops the enclosing fragment or blanks a bare
// placeholder.
func variableValue(name string, contact models.Contact, relationships []models.ContactRelationship) string {
	switch strings.ToLower(name) {
	case "nombre":
		return contact.FirstName
	case "apellido":
		return contact.LastName
	case "nombre_completo":
		return contact.FirstName + " " + contact.LastName
	case "tratamiento":
		return contact.Title
	case "familiar":
		// First relationship wins, whichever side the contact is on. No
		// type-specific selection, e.g. [$familiar:Esposa] is not a thing.
		for _, rel := range relationships {
			related := rel.RelatedContact
			if rel.ContactID != contact.ID {
				related = rel.Contact
			}
			return related.FirstName
		}
		return ""
	}
	return ""
}
