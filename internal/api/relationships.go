package api

import (
	"net/http"
	"strconv"

	"personal-crm/internal/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RelationshipHandler struct {
	Repo *database.RelationshipRepository
}

func NewRelationshipHandler(repo *database.RelationshipRepository) *RelationshipHandler {
	return &RelationshipHandler{Repo: repo}
}

func (h *RelationshipHandler) GetRelationshipTypes(c *gin.Context) {
	types, err := h.Repo.GetAllTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *RelationshipHandler) GetContactRelationships(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact id"})
		return
	}

	relationships, err := h.Repo.GetByContactID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, relationships)
}

type CreateRelationshipRequest struct {
	ContactID          uint `json:"contact_id" binding:"required"`
	RelatedContactID   uint `json:"related_contact_id" binding:"required"`
	RelationshipTypeID uint `json:"relationship_type_id" binding:"required"`
}

func (h *RelationshipHandler) CreateRelationship(c *gin.Context) {
	var req CreateRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ContactID == req.RelatedContactID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A contact cannot relate to itself"})
		return
	}

	relationship, err := h.Repo.Create(req.ContactID, req.RelatedContactID, req.RelationshipTypeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create relationship"})
		return
	}
	c.JSON(http.StatusCreated, relationship)
}

func (h *RelationshipHandler) DeleteRelationship(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid relationship id"})
		return
	}

	if err := h.Repo.Delete(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Relationship not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete relationship"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Relationship deleted"})
}
