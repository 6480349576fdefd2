package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/idtoken"
)

// ErrLetterServiceUnavailable is returned when no letter service URL is
// configured.
var ErrLetterServiceUnavailable = errors.New("letter service is not configured")

// LetterPoster posts case facts to the letter-generation service.
type LetterPoster interface {
	PostJSON(ctx context.Context, path string, payload any, requestID string) (map[string]any, error)
}

// LetterClient calls the external AI letter-generation service over JSON.
type LetterClient struct {
	client  *http.Client
	baseURL string
}

// NewLetterClient builds a letter-service client. When client is nil it
// auto-configures an ID-token client for Cloud Run to Cloud Run calls,
// falling back to a plain client outside that environment.
func NewLetterClient(client *http.Client, baseURL string) *LetterClient {
	baseURL = strings.TrimRight(baseURL, "/")
	if client == nil {
		idc, err := idtoken.NewClient(context.Background(), baseURL)
		if err != nil {
			client = &http.Client{Timeout: 60 * time.Second}
		} else {
			client = idc
		}
	}
	return &LetterClient{client: client, baseURL: baseURL}
}

// PostJSON posts the payload to the letter service and returns the "data"
// object from its response envelope.
func (c *LetterClient) PostJSON(ctx context.Context, path string, payload any, requestID string) (map[string]any, error) {
	if c.baseURL == "" {
		return nil, ErrLetterServiceUnavailable
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create letter service request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("letter service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("letter service error: %s", extractServiceError(resp.Body))
	}

	var serviceResp struct {
		Data  map[string]any `json:"data"`
		Error string         `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&serviceResp); err != nil && err != io.EOF {
		return nil, fmt.Errorf("could not decode letter service response: %w", err)
	}
	if serviceResp.Error != "" {
		return nil, fmt.Errorf("letter service error: %s", serviceResp.Error)
	}
	return serviceResp.Data, nil
}

func extractServiceError(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return "letter service returned an error"
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(data)
}

var _ LetterPoster = (*LetterClient)(nil)
