package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"intake-gateway/internal/intake/models"
)

// SheetClient posts case records to the case-management spreadsheet webhook
// (a Google Apps Script endpoint). The webhook appends one row per record.
type SheetClient struct {
	url  string
	http *http.Client
}

// NewSheetClient creates a sheet webhook client. The caller owns the
// http.Client so timeouts are configured in one place.
func NewSheetClient(url string, httpClient *http.Client) *SheetClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &SheetClient{url: url, http: httpClient}
}

func (c *SheetClient) SubmitTraffic(ctx context.Context, rec *models.CaseRecord) error {
	return c.post(ctx, rec)
}

func (c *SheetClient) SubmitDUI(ctx context.Context, rec *models.DUIRecord) error {
	return c.post(ctx, rec)
}

func (c *SheetClient) post(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode sheet payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sheet request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post to case sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("case sheet returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}
