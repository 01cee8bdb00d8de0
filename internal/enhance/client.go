// internal/enhance/client.go

// Package enhance talks to an external text-enhancement service that rewrites
// a poster element's copy (better phrasing, diacritics, tone). One request in
// flight at a time, enforced by the caller's busy flag; no retries.
package enhance

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-lecture-poster/internal/config"
)

// Client posts element text to the configured endpoint and returns the
// enhanced version.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: config.EnhanceTimeoutSeconds * time.Second},
	}
}

// Configured reports whether an endpoint is set; the enhance button stays
// disabled otherwise.
func (c *Client) Configured() bool {
	return c.endpoint != ""
}

type enhanceRequest struct {
	Text    string `json:"text"`
	Element string `json:"element"`
	Lang    string `json:"lang"`
}

type enhanceResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// Enhance sends the element's current text and returns the rewritten text.
func (c *Client) Enhance(elementID, text string) (string, error) {
	if !c.Configured() {
		return "", errors.New("no enhancement endpoint configured (set enhance_endpoint in ~/.posterrc)")
	}

	body, err := json.Marshal(enhanceRequest{Text: text, Element: elementID, Lang: "ar"})
	if err != nil {
		return "", fmt.Errorf("failed to encode enhance request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build enhance request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("enhance request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("enhance service returned %s", resp.Status)
	}

	var out enhanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode enhance response: %w", err)
	}
	if out.Error != "" {
		return "", errors.New("enhance service: " + out.Error)
	}
	if out.Text == "" {
		return "", errors.New("enhance service returned empty text")
	}
	return out.Text, nil
}
