package api

import (
	"net/http"

	"personal-crm/internal/waha"

	"github.com/gin-gonic/gin"
)

type WahaHandler struct {
	Client *waha.Client
}

func NewWahaHandler(client *waha.Client) *WahaHandler {
	return &WahaHandler{Client: client}
}

// GetStatus proxies the configured WAHA session state.
func (h *WahaHandler) GetStatus(c *gin.Context) {
	status, err := h.Client.GetStatus()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *WahaHandler) GetSessions(c *gin.Context) {
	sessions, err := h.Client.GetSessions()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}
