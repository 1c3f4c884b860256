package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"personal-crm/internal/database"
	"personal-crm/internal/models"
	"personal-crm/internal/search"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 8
	maxPageSize     = 50
)

type ContactHandler struct {
	Repo *database.ContactRepository
}

func NewContactHandler(repo *database.ContactRepository) *ContactHandler {
	return &ContactHandler{Repo: repo}
}

// GetContacts returns a page of contacts. With ?q= the page is filtered and
// relevance-ranked; terms shorter than the search minimum short-circuit to an
// empty result.
func (h *ContactHandler) GetContacts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}
	offset := (page - 1) * limit

	query := strings.TrimSpace(c.Query("q"))
	if query != "" {
		if len([]rune(query)) < search.MinTermLength {
			c.JSON(http.StatusOK, gin.H{"items": []models.Contact{}, "total": 0, "page": page, "limit": limit})
			return
		}
		candidates, err := h.Repo.SearchCandidates(query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ranked := search.Rank(candidates, query)
		items := search.Page(ranked, offset, limit)
		if items == nil {
			items = []models.Contact{}
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "total": len(ranked), "page": page, "limit": limit})
		return
	}

	contacts, err := h.Repo.GetPaginated(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total, err := h.Repo.CountAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	c.JSON(http.StatusOK, gin.H{"items": contacts, "total": total, "page": page, "limit": limit})
}

// SearchContacts returns the top relevance-ranked matches for a term.
func (h *ContactHandler) SearchContacts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if len([]rune(query)) < search.MinTermLength {
		c.JSON(http.StatusOK, []models.Contact{})
		return
	}

	candidates, err := h.Repo.SearchCandidates(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	results := search.RankPage(candidates, query, 0, 20)
	if results == nil {
		results = []models.Contact{}
	}
	c.JSON(http.StatusOK, results)
}

func (h *ContactHandler) GetContact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact id"})
		return
	}

	contact, err := h.Repo.GetByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contact)
}

type CreateContactRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name" binding:"required"`
	Title      string `json:"title"`
	Phone1     string `json:"phone_1"`
	Phone2     string `json:"phone_2"`
	Email1     string `json:"email_1"`
	Email2     string `json:"email_2"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	BirthDate  string `json:"birth_date"`
	Notes      string `json:"notes"`
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := models.Contact{
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Title:      req.Title,
		Phone1:     req.Phone1,
		Phone2:     req.Phone2,
		Email1:     req.Email1,
		Email2:     req.Email2,
		Address:    req.Address,
		City:       req.City,
		Country:    req.Country,
		BirthDate:  req.BirthDate,
		Notes:      req.Notes,
		Status:     models.StatusActive,
	}
	if err := h.Repo.Create(&contact); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
		return
	}

	log.Printf("Contact created: %s", contact.FullName())
	c.JSON(http.StatusCreated, contact)
}

var updatableColumns = map[string]bool{
	"first_name": true, "middle_name": true, "last_name": true, "title": true,
	"phone_1": true, "phone_2": true, "email_1": true, "email_2": true,
	"address": true, "city": true, "country": true, "birth_date": true,
	"notes": true, "status": true,
}

func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact id"})
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := make(map[string]interface{})
	for key, value := range body {
		if updatableColumns[key] {
			fields[key] = value
		}
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updatable fields provided"})
		return
	}

	if err := h.Repo.Update(uint(id), fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Contact updated"})
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact id"})
		return
	}

	if err := h.Repo.Delete(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Contact deleted"})
}

func (h *ContactHandler) ExportContacts(c *gin.Context) {
	contacts, err := h.Repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	csv := "First Name,Last Name,Phone,Email,Tags,Last Contact\n"
	for _, contact := range contacts {
		var tagNames []string
		for _, tag := range contact.Tags {
			tagNames = append(tagNames, tag.Name)
		}
		csv += fmt.Sprintf("%s,%s,%s,%s,%s,%s\n",
			contact.FirstName, contact.LastName, contact.Phone1, contact.Email1,
			strings.Join(tagNames, ";"), contact.LastContactDate)
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=contacts.csv")
	c.String(http.StatusOK, csv)
}
