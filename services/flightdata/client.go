package flightdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"travelagent/models"
	"travelagent/services/inventory"

	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no API key is set. It wraps
// inventory.ErrSourceUnavailable so searches fall back to generated data.
var ErrNotConfigured = fmt.Errorf("aviationstack API key not configured: %w", inventory.ErrSourceUnavailable)

var iataCode = regexp.MustCompile(`^[A-Za-z]{3}$`)

// Client queries the Aviationstack flights endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchFlights returns the scheduled flights between two airports. Queries
// naming cities rather than IATA codes return no records, as do upstream
// denials (quota, plan, key) reported in the response body. Network faults,
// unexpected statuses and undecodable bodies are errors.
func (c *Client) FetchFlights(ctx context.Context, q models.FlightQuery) ([]models.AviationstackFlight, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}
	from, to := strings.TrimSpace(q.From), strings.TrimSpace(q.To)
	if !iataCode.MatchString(from) || !iataCode.MatchString(to) {
		c.logger.Debug("Skipping flight data lookup for non-IATA route", zap.String("from", from), zap.String("to", to))
		return []models.AviationstackFlight{}, nil
	}

	u, err := url.Parse(c.baseURL + "/flights")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	params := u.Query()
	params.Set("access_key", c.apiKey)
	params.Set("dep_iata", strings.ToUpper(from))
	params.Set("arr_iata", strings.ToUpper(to))
	if q.Date != "" {
		params.Set("flight_date", q.Date)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var payload models.AviationstackResponse
	decodeErr := json.Unmarshal(body, &payload)

	if payload.Error != nil && len(payload.Data) == 0 {
		c.logger.Warn("Flight data request denied",
			zap.Int("status", resp.StatusCode),
			zap.String("code", payload.Error.Code),
			zap.String("message", payload.Error.Message))
		return []models.AviationstackFlight{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to parse response: %w", decodeErr)
	}
	if payload.Data == nil {
		return []models.AviationstackFlight{}, nil
	}
	return payload.Data, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
