package api

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"sync"

	"personal-crm/internal/campaign"
	"personal-crm/internal/database"
	"personal-crm/internal/models"
	"personal-crm/internal/ws"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	Dispatcher *campaign.Dispatcher
	Contacts   *database.ContactRepository
	Hub        *ws.Hub

	mu      sync.Mutex
	running bool
}

func NewCampaignHandler(dispatcher *campaign.Dispatcher, contacts *database.ContactRepository, hub *ws.Hub) *CampaignHandler {
	return &CampaignHandler{Dispatcher: dispatcher, Contacts: contacts, Hub: hub}
}

type recipientSummary struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// GetRecipients lists the contacts a campaign for the given tag would target.
func (h *CampaignHandler) GetRecipients(c *gin.Context) {
	tag := c.Query("tag")
	if tag == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tag parameter is required"})
		return
	}

	contacts, err := h.Contacts.GetByTag(tag)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recipients := make([]recipientSummary, 0, len(contacts))
	for _, contact := range contacts {
		recipients = append(recipients, recipientSummary{
			ID:       contact.ID,
			FullName: contact.FullName(),
			Phone:    contact.Phone1,
		})
	}
	c.JSON(http.StatusOK, gin.H{"tag": tag, "total": len(recipients), "recipients": recipients})
}

type CampaignRequest struct {
	Tag       string `json:"tag" binding:"required"`
	TemplateA string `json:"template_a" binding:"required"`
	TemplateB string `json:"template_b"`
}

// Preview runs the campaign in dry-run mode and returns every progress event
// synchronously. Nothing is transmitted or recorded.
func (h *CampaignHandler) Preview(c *gin.Context) {
	var req CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events := []campaign.Progress{}
	for p := range h.Dispatcher.Run(c.Request.Context(), req.Tag, req.TemplateA, req.TemplateB, true) {
		events = append(events, p)
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

type SendCampaignRequest struct {
	CampaignRequest
	DryRun bool `json:"dry_run"`
}

// Send starts a campaign run in the background. Progress is streamed to
// websocket clients and recorded in campaign_logs. Only one run at a time.
func (h *CampaignHandler) Send(c *gin.Context) {
	var req SendCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	if h.running {
		h.mu.Unlock()
		c.JSON(http.StatusConflict, gin.H{"error": "Ya hay una campaña en curso"})
		return
	}
	h.running = true
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			h.running = false
			h.mu.Unlock()
		}()

		log.Printf("Campaign started for tag %q (dry_run=%v)", req.Tag, req.DryRun)
		for p := range h.Dispatcher.Run(context.Background(), req.Tag, req.TemplateA, req.TemplateB, req.DryRun) {
			h.Hub.NotifyCampaignProgress(p)
			entry := models.CampaignLog{
				Tag:     req.Tag,
				Current: p.Current,
				Total:   p.Total,
				Message: p.Message,
				DryRun:  req.DryRun,
			}
			if err := database.DB.Create(&entry).Error; err != nil {
				log.Printf("Error saving campaign log: %v", err)
			}
		}
		h.Hub.NotifyCampaignFinished(req.Tag)
		log.Printf("Campaign finished for tag %q", req.Tag)
	}()

	c.JSON(http.StatusAccepted, gin.H{"status": "Campaña iniciada", "tag": req.Tag})
}

// GetLogs returns recent campaign log entries, newest first.
func (h *CampaignHandler) GetLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit < 1 || limit > 1000 {
		limit = 100
	}

	query := database.DB.Order("id DESC").Limit(limit)
	if tag := c.Query("tag"); tag != "" {
		query = query.Where("tag = ?", tag)
	}

	var logs []models.CampaignLog
	if err := query.Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if logs == nil {
		logs = []models.CampaignLog{}
	}
	c.JSON(http.StatusOK, logs)
}
