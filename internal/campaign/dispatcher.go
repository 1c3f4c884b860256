package campaign

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"personal-crm/internal/models"
	"personal-crm/internal/phone"
)

const (
	// Anti-throttling window: a uniform random pause inside it precedes every
	// real send so the cadence looks human to the messaging platform.
	defaultMinSendDelay = 5 * time.Second
	defaultMaxSendDelay = 15 * time.Second

	channelWhatsApp = "whatsapp"
	previewLength   = 30
)

// Progress is one campaign progress event: (sequence index, total, status).
type Progress struct {
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Message string `json:"message"`
}

// ContactSource resolves recipients and records delivery bookkeeping.
type ContactSource interface {
	GetByTag(tagName string) ([]models.Contact, error)
	UpdateLastContact(contactID uint, when time.Time, channel string) error
}

// RelationshipSource supplies the relationship facts used by the [$familiar]
// template variable.
type RelationshipSource interface {
	GetByContactID(contactID uint) ([]models.ContactRelationship, error)
}

// Messenger transmits a rendered message to a chat id. The delivery receipt is
// a transport concern; the dispatcher only cares whether the send failed.
type Messenger interface {
	SendText(chatID, text string) error
}

// Dispatcher runs outbound message campaigns. Collaborators, randomness, sleep
// and clock are fields so tests can swap them for deterministic stand-ins.
// Every Run draws its own rand.Rand from NewRand; a rand.Rand is not safe for
// concurrent use and runs may overlap (e.g. a preview during a live send).
type Dispatcher struct {
	Contacts      ContactSource
	Relationships RelationshipSource
	Messenger     Messenger
	Normalizer    *phone.Normalizer

	NewRand  func() *rand.Rand
	Sleep    func(time.Duration)
	Now      func() time.Time
	MinDelay time.Duration
	MaxDelay time.Duration
}

func NewDispatcher(contacts ContactSource, relationships RelationshipSource, messenger Messenger, normalizer *phone.Normalizer) *Dispatcher {
	return &Dispatcher{
		Contacts:      contacts,
		Relationships: relationships,
		Messenger:     messenger,
		Normalizer:    normalizer,
		NewRand:       func() *rand.Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) },
		Sleep:         time.Sleep,
		Now:           time.Now,
		MinDelay:      defaultMinSendDelay,
		MaxDelay:      defaultMaxSendDelay,
	}
}

// Run executes a campaign for every contact carrying tagFilter and streams
// progress events over the returned channel.
//
// The channel is unbuffered: nothing advances until the caller pulls the next
// event, events arrive strictly in recipient order, and the channel closes
// after the last recipient. Recipients are processed one at a time; a
// per-recipient failure never aborts the batch. Cancelling ctx stops the run
// at the next event; messages already handed to the Messenger stay sent.
func (d *Dispatcher) Run(ctx context.Context, tagFilter, templateA, templateB string, dryRun bool) <-chan Progress {
	out := make(chan Progress)

	go func() {
		defer close(out)

		rng := d.NewRand()

		emit := func(p Progress) bool {
			select {
			case out <- p:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if tagFilter == "" {
			emit(Progress{0, 0, "Error: Se requiere una etiqueta para filtrar"})
			return
		}

		recipients, err := d.Contacts.GetByTag(tagFilter)
		if err != nil {
			log.Printf("Error resolving recipients for tag %q: %v", tagFilter, err)
			emit(Progress{0, 0, "Error consultando contactos"})
			return
		}
		if len(recipients) == 0 {
			emit(Progress{0, 0, fmt.Sprintf("No se encontraron contactos con la etiqueta '%s'", tagFilter)})
			return
		}

		total := len(recipients)
		if !emit(Progress{0, total, fmt.Sprintf("Iniciando campaña para %d contactos...", total)}) {
			return
		}

		for i, contact := range recipients {
			template := templateA
			if templateB != "" && rng.Intn(2) == 0 {
				template = templateB
			}

			relationships, err := d.Relationships.GetByContactID(contact.ID)
			if err != nil {
				log.Printf("Error loading relationships for %s: %v", contact.FullName(), err)
				relationships = nil
			}

			text := Render(template, contact, relationships)
			if strings.TrimSpace(text) == "" {
				log.Printf("Mensaje vacío para %s, saltando", contact.FullName())
				if !emit(Progress{i + 1, total, fmt.Sprintf("Saltado: %s (Mensaje vacío)", contact.FullName())}) {
					return
				}
				continue
			}

			destination := d.Normalizer.Normalize(contact.Phone1)
			digits := phone.Digits(destination)
			if digits == "" {
				log.Printf("Contacto %s sin teléfono válido", contact.FullName())
				if !emit(Progress{i + 1, total, fmt.Sprintf("Saltado: %s (Sin teléfono)", contact.FullName())}) {
					return
				}
				continue
			}
			chatID := digits + "@c.us"

			if dryRun {
				if !emit(Progress{i + 1, total, fmt.Sprintf("Simulado: %s -> %s", contact.FullName(), truncate(text, previewLength))}) {
					return
				}
				continue
			}

			d.Sleep(d.sendDelay(rng))

			if err := d.Messenger.SendText(chatID, text); err != nil {
				log.Printf("Fallo envío a %s: %v", contact.FullName(), err)
				if !emit(Progress{i + 1, total, fmt.Sprintf("Error: %s", contact.FullName())}) {
					return
				}
				continue
			}

			if err := d.Contacts.UpdateLastContact(contact.ID, d.Now(), channelWhatsApp); err != nil {
				log.Printf("Error updating last contact for %s: %v", contact.FullName(), err)
			}

			if !emit(Progress{i + 1, total, fmt.Sprintf("Enviado a %s", contact.FullName())}) {
				return
			}
		}
	}()

	return out
}

func (d *Dispatcher) sendDelay(rng *rand.Rand) time.Duration {
	window := d.MaxDelay - d.MinDelay
	if window <= 0 {
		return d.MinDelay
	}
	return d.MinDelay + time.Duration(rng.Float64()*float64(window))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
