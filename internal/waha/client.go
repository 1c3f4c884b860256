// Package waha is a client for WAHA (WhatsApp HTTP API), the gateway that
// actually transmits messages.
package waha

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"personal-crm/internal/config"
)

type Client struct {
	BaseURL string
	APIKey  string
	Session string

	http *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL: cfg.WahaBaseURL,
		APIKey:  cfg.WahaAPIKey,
		Session: cfg.WahaSession,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type sendTextRequest struct {
	ChatID  string `json:"chatId"`
	Text    string `json:"text"`
	Session string `json:"session"`
}

// sendRequest performs one JSON request against WAHA and returns the raw body.
func (c *Client) sendRequest(method, url string, body interface{}) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.APIKey != "" {
		req.Header.Set("X-Api-Key", c.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return respBody, fmt.Errorf("WAHA error: %s - %s", resp.Status, string(respBody))
	}

	return respBody, nil
}

// SendText sends a text message to a chat id (e.g. 584143416986@c.us).
// WAHA returns a delivery receipt; its message id is logged, nothing more is
// done with it.
func (c *Client) SendText(chatID, text string) error {
	url := fmt.Sprintf("%s/api/sendText", c.BaseURL)
	payload := sendTextRequest{
		ChatID:  chatID,
		Text:    text,
		Session: c.Session,
	}

	respBody, err := c.sendRequest("POST", url, payload)
	if err != nil {
		return err
	}

	var receipt struct {
		ID interface{} `json:"id"`
	}
	if err := json.Unmarshal(respBody, &receipt); err == nil && receipt.ID != nil {
		log.Printf("Message sent to %s (id %v)", chatID, receipt.ID)
	} else {
		log.Printf("Message sent to %s", chatID)
	}
	return nil
}

// GetStatus returns the state of the configured WAHA session.
func (c *Client) GetStatus() (interface{}, error) {
	url := fmt.Sprintf("%s/api/sessions/%s", c.BaseURL, c.Session)
	resp, err := c.sendRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	var result interface{}
	err = json.Unmarshal(resp, &result)
	return result, err
}

// GetSessions lists all WAHA sessions.
func (c *Client) GetSessions() (interface{}, error) {
	url := fmt.Sprintf("%s/api/sessions", c.BaseURL)
	resp, err := c.sendRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	var result interface{}
	err = json.Unmarshal(resp, &result)
	return result, err
}
