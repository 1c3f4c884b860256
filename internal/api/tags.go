package api

import (
	"net/http"
	"strconv"

	"personal-crm/internal/database"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	Repo *database.TagRepository
}

func NewTagHandler(repo *database.TagRepository) *TagHandler {
	return &TagHandler{Repo: repo}
}

func (h *TagHandler) GetTagTypes(c *gin.Context) {
	types, err := h.Repo.GetAllTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *TagHandler) GetContactTags(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact id"})
		return
	}

	tags, err := h.Repo.GetByContactID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tags)
}

type BulkTagRequest struct {
	ContactIDs []uint `json:"contact_ids" binding:"required"`
	TagTypeID  uint   `json:"tag_type_id" binding:"required"`
}

// BulkAddTag attaches one tag to many contacts at once, e.g. before a campaign.
func (h *TagHandler) BulkAddTag(c *gin.Context) {
	var req BulkTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Repo.BulkAddTag(req.ContactIDs, req.TagTypeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to tag contacts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Tag added", "count": len(req.ContactIDs)})
}
