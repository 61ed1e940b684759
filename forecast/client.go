package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bistro/models"
)

// DefaultURL is where the external predictor listens when none is configured.
const DefaultURL = "http://127.0.0.1:5000/predict"

// Horizons recognized by the predictor. The tokens are opaque here; the
// forecasting math lives entirely in the external service.
const (
	HorizonWeek  = "7d"
	HorizonMonth = "30d"
	HorizonYear  = "365d"
)

// NormalizeHorizon validates a requested horizon, defaulting to the weekly
// window when empty.
func NormalizeHorizon(h string) (string, error) {
	switch strings.TrimSpace(h) {
	case "":
		return HorizonWeek, nil
	case HorizonWeek:
		return HorizonWeek, nil
	case HorizonMonth:
		return HorizonMonth, nil
	case HorizonYear:
		return HorizonYear, nil
	}
	return "", fmt.Errorf("unknown horizon %q", h)
}

// SchemaError reports required keys missing from a predictor response. The
// partial result is never forwarded.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "predictor response missing " + strings.Join(e.Missing, ", ")
}

// UpstreamError reports an unreachable predictor, a non-2xx status, or an
// unparseable response body.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("predictor request failed (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("predictor request failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Result is a validated predictor response. Marshalling reproduces the
// upstream body's top-level keys unchanged, so optional fields like
// totalPredictedOrders pass through to the caller.
type Result struct {
	ForecastedSales map[string]map[string]float64
	InventoryNeeded map[string]map[string]float64

	raw map[string]json.RawMessage
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.raw)
}

// Client calls the external forecasting service. Calls are synchronous and
// never retried; a failure surfaces immediately to the caller.
type Client struct {
	url  string
	http *http.Client
}

// NewClient returns a client for the predictor at url, or DefaultURL when
// url is empty.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

type predictRequest struct {
	SalesCSV    string          `json:"sales_csv"`
	RecipesJSON []models.Recipe `json:"recipes_json"`
	Horizon     string          `json:"horizon"`
}

// Predict sends the raw ledger snapshot and the full recipe collection to the
// predictor and returns its validated response.
func (c *Client) Predict(ctx context.Context, salesCSV string, recipes []models.Recipe, horizon string) (*Result, error) {
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	body, err := json.Marshal(predictRequest{
		SalesCSV:    salesCSV,
		RecipesJSON: recipes,
		Horizon:     horizon,
	})
	if err != nil {
		return nil, fmt.Errorf("encode predictor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build predictor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{Status: resp.StatusCode, Err: fmt.Errorf("predictor returned %s", resp.Status)}
	}
	return parseResult(payload)
}

func parseResult(payload []byte) (*Result, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("predictor response is not valid JSON: %w", err)}
	}

	var missing []string
	for _, key := range []string{"forecastedSales", "inventoryNeeded"} {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	res := &Result{raw: raw}
	if err := json.Unmarshal(raw["forecastedSales"], &res.ForecastedSales); err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("decode forecastedSales: %w", err)}
	}
	if err := json.Unmarshal(raw["inventoryNeeded"], &res.InventoryNeeded); err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("decode inventoryNeeded: %w", err)}
	}
	return res, nil
}
