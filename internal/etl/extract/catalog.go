package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/healthai/etl/internal/etl/frame"
	"github.com/healthai/etl/internal/logger"
)

const ninjasURL = "https://api.api-ninjas.com/v1/exercises"

// CatalogClient fetches the public exercise catalog mirror. When the mirror
// is unreachable and an API key is configured, it fails over to the
// API-Ninjas exercises endpoint; without a key the mirror error propagates.
type CatalogClient struct {
	URL        string
	APIKey     string
	HTTPClient *http.Client
	Log        *logger.Logger
}

func (c *CatalogClient) Fetch(ctx context.Context, limit int) (*frame.Frame, error) {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	f, err := fetchJSONTable(ctx, httpClient, c.URL, nil)
	if err != nil {
		if strings.TrimSpace(c.APIKey) == "" {
			return nil, &Error{Source: c.URL, Err: err}
		}
		c.Log.Warn("Catalog mirror unreachable, failing over to keyed provider", "url", c.URL, "error", err)
		f, err = fetchJSONTable(ctx, httpClient, ninjasURL, map[string]string{"X-Api-Key": c.APIKey})
		if err != nil {
			return nil, &Error{Source: ninjasURL, Err: err}
		}
	}

	f.Head(limit)
	c.Log.Info("Extracted rows from exercise catalog", "rows", f.Len())
	return f, nil
}

// fetchJSONTable GETs a JSON array of flat objects and folds it into a frame.
// String lists survive as []string; nested objects are dropped.
func fetchJSONTable(ctx context.Context, client *http.Client, url string, headers map[string]string) (*frame.Frame, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create catalog request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute catalog request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog request failed with status %d", resp.StatusCode)
	}

	var records []map[string]any
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("parse catalog response: %w", err)
	}

	f := &frame.Frame{}
	for _, record := range records {
		row := frame.Row{}
		for k, v := range record {
			cell := toCell(v)
			if cell == nil && v != nil {
				continue
			}
			f.AddColumn(k)
			row[k] = cell
		}
		f.Append(row)
	}
	return f, nil
}

func toCell(v any) any {
	switch val := v.(type) {
	case nil, string, float64, bool:
		return val
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil
			}
			items = append(items, s)
		}
		return items
	default:
		return nil
	}
}
