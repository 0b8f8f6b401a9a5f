package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// UploadPayload is the citation image relay body sent to document storage.
type UploadPayload struct {
	ImageData      string `json:"imageData"`
	FileName       string `json:"fileName"`
	ClientName     string `json:"clientName"`
	CourtName      string `json:"courtName"`
	CitationNumber string `json:"citationNumber"`
	Source         string `json:"source"`
	UploadedAt     string `json:"uploadedAt"`
}

// StorageClient relays base64 citation images to the external document
// storage webhook. Unlike the case sheet relay this client's failures are
// surfaced to the caller: without a stored image there is nothing for staff
// to act on.
type StorageClient struct {
	url  string
	http *http.Client
}

// NewStorageClient creates a document storage webhook client.
func NewStorageClient(url string, httpClient *http.Client) *StorageClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &StorageClient{url: url, http: httpClient}
}

// Upload relays the image and returns the storage system's file id.
func (c *StorageClient) Upload(ctx context.Context, payload *UploadPayload) (string, error) {
	if payload.UploadedAt == "" {
		payload.UploadedAt = time.Now().UTC().Format(time.RFC3339)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode upload payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("post to citation storage: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("citation storage returned %d: %s", resp.StatusCode, msg)
	}

	var result struct {
		FileID string `json:"fileId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode storage response: %w", err)
	}
	return result.FileID, nil
}
